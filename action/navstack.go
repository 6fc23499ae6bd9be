package action

// NavStack is the document navigation stack
// Handlers push, pop, and replace document ids; the UI layer owns actually
// showing and hiding them and reports open/close to the input arbiter
type NavStack struct {
	docs []string
}

// NewNavStack creates an empty stack
func NewNavStack() *NavStack {
	return &NavStack{}
}

// Push makes doc the top document
func (n *NavStack) Push(doc string) {
	n.docs = append(n.docs, doc)
}

// Pop removes the top document, returning it and whether one existed
func (n *NavStack) Pop() (string, bool) {
	if len(n.docs) == 0 {
		return "", false
	}
	top := n.docs[len(n.docs)-1]
	n.docs = n.docs[:len(n.docs)-1]
	return top, true
}

// Replace swaps the top document, or pushes when the stack is empty
func (n *NavStack) Replace(doc string) {
	if len(n.docs) == 0 {
		n.docs = append(n.docs, doc)
		return
	}
	n.docs[len(n.docs)-1] = doc
}

// Top returns the current document without removing it
func (n *NavStack) Top() (string, bool) {
	if len(n.docs) == 0 {
		return "", false
	}
	return n.docs[len(n.docs)-1], true
}

// Depth returns the number of stacked documents
func (n *NavStack) Depth() int {
	return len(n.docs)
}

// Clear drops every document
func (n *NavStack) Clear() {
	n.docs = n.docs[:0]
}

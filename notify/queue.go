// Package notify holds the transient message queue: a fixed number of
// scrolling notify lines plus one centerprint slot, all with timed expiry.
package notify

// DefaultLines is the stock number of visible notify lines
const DefaultLines = 4

// Entry is one visible message
type Entry struct {
	Text   string
	Expiry float64 // absolute time in seconds; expired when now >= Expiry
}

// Chime is fired when a chat-flagged message arrives (the talk sound)
type Chime func()

// Queue manages notify lines and the centerprint slot
// Times are monotonic seconds supplied by the caller each frame
type Queue struct {
	lines []Entry // insertion order, oldest first
	max   int

	center    Entry
	hasCenter bool

	chime Chime
}

// NewQueue creates a queue with the given number of visible line slots
func NewQueue(lines int) *Queue {
	if lines <= 0 {
		lines = DefaultLines
	}
	return &Queue{max: lines, lines: make([]Entry, 0, lines)}
}

// SetChime installs the chat sound hook
func (q *Queue) SetChime(c Chime) { q.chime = c }

// Push inserts a notify line expiring at now+ttl
// With all slots occupied the oldest line by insertion time is evicted,
// regardless of remaining ttl
func (q *Queue) Push(text string, now, ttl float64) {
	if len(q.lines) == q.max {
		copy(q.lines, q.lines[1:])
		q.lines = q.lines[:q.max-1]
	}
	q.lines = append(q.lines, Entry{Text: text, Expiry: now + ttl})
}

// PushChat inserts a chat line and fires the chime
func (q *Queue) PushChat(text string, now, ttl float64) {
	q.Push(text, now, ttl)
	if q.chime != nil {
		q.chime()
	}
}

// PushCenter overwrites the centerprint slot
// The slot is a singleton; a new centerprint replaces the old one outright
func (q *Queue) PushCenter(text string, now, ttl float64) {
	q.center = Entry{Text: text, Expiry: now + ttl}
	q.hasCenter = true
}

// Update evicts every line whose expiry has been reached
// now == expiry counts as expired
func (q *Queue) Update(now float64) {
	kept := q.lines[:0]
	for _, e := range q.lines {
		if now < e.Expiry {
			kept = append(kept, e)
		}
	}
	q.lines = kept
	if q.hasCenter && now >= q.center.Expiry {
		q.hasCenter = false
	}
}

// Visible returns the currently unexpired lines, oldest first
// Rendering reads only this; expired entries never appear even if Update
// has not run yet this frame
func (q *Queue) Visible(now float64) []Entry {
	out := make([]Entry, 0, len(q.lines))
	for _, e := range q.lines {
		if now < e.Expiry {
			out = append(out, e)
		}
	}
	return out
}

// Center returns the centerprint text if still visible
func (q *Queue) Center(now float64) (string, bool) {
	if q.hasCenter && now < q.center.Expiry {
		return q.center.Text, true
	}
	return "", false
}

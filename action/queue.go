package action

import "sync/atomic"

const (
	commandQueueSize = 256
	commandQueueMask = commandQueueSize - 1
)

// Command is one engine console command queued for the next simulation step
type Command struct {
	Text string
}

// CommandQueue is a lock-free MPSC ring buffer for queued commands
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (dispatch handlers, scripts)
//   - Drain: Single consumer (the host's frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest commands overwritten when full
type CommandQueue struct {
	cmds      [commandQueueSize]Command
	published [commandQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
}

// NewCommandQueue creates an empty command queue
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push adds a command using lock-free CAS with published flags
// Safe to call at arbitrary depth during frame composition
func (q *CommandQueue) Push(cmd Command) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & commandQueueMask

			q.cmds[idx] = cmd
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread commands
			currentHead := q.head.Load()
			if nextTail-currentHead > commandQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-commandQueueSize)
			}
			return
		}
	}
}

// Drain returns all pending commands in FIFO order and advances head
// Single-consumer design; checks published flags for safety
func (q *CommandQueue) Drain() []Command {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > commandQueueSize {
			maxAvailable = commandQueueSize
			currentHead = currentTail - commandQueueSize
		}

		result := make([]Command, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & commandQueueMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.cmds[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import "sync/atomic"

const defaultQueueCapacity = 1024

// releaseQueue carries driver object IDs from handle owners on any
// goroutine to the Factory, which deletes them on the context thread.
// Senders never block. The queue is never closed.
type releaseQueue struct {
	ch      chan uint
	dropped atomic.Uint64
}

func newReleaseQueue(capacity int) *releaseQueue {
	return &releaseQueue{ch: make(chan uint, capacity)}
}

// enqueue records id for deletion. A full queue drops the request.
func (q *releaseQueue) enqueue(id uint) {
	select {
	case q.ch <- id:
	default:
		q.dropped.Add(1)
	}
}

// next returns the oldest pending id, if any.
func (q *releaseQueue) next() (uint, bool) {
	select {
	case id := <-q.ch:
		return id, true
	default:
		return 0, false
	}
}

func (q *releaseQueue) len() int {
	return len(q.ch)
}

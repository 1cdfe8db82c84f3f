// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"runtime"
	"sync/atomic"
)

// releaser is implemented by every handle and by Accessor.
type releaser interface {
	Release()
}

// destructor is shared by all owners of one driver object. When the
// last owner lets go, the object's ID is sent to its release queue and
// the children the object keeps alive are released.
type destructor struct {
	id       uint
	queue    *releaseQueue // nil for objects the Factory must not delete
	refs     atomic.Int64
	children []releaser
}

func newDestructor(id uint, q *releaseQueue, children ...releaser) *destructor {
	if id == 0 {
		q = nil
	}
	return &destructor{id: id, queue: q, children: children}
}

func (d *destructor) drop() {
	switch n := d.refs.Add(-1); {
	case n > 0:
		return
	case n < 0:
		panic("gpu: destructor reference count underflow")
	}
	if d.queue != nil {
		d.queue.enqueue(d.id)
	}
	for _, c := range d.children {
		c.Release()
	}
}

// owner is one counted reference to a destructor. Each handle value
// holds exactly one owner.
type owner struct {
	d        *destructor
	released atomic.Bool
}

func newOwner(d *destructor) *owner {
	d.refs.Add(1)
	return &owner{d: d}
}

func (o *owner) release() {
	if o.released.CompareAndSwap(false, true) {
		o.d.drop()
	}
}

// mustLive panics with ErrReleased if the owner let go of its object.
func (o *owner) mustLive() {
	if o == nil || o.released.Load() {
		panic(ErrReleased)
	}
}

// track arranges for o to be released when h becomes unreachable
// without an explicit Release. The cleanup may run on any goroutine.
func track[T any](h *T, o *owner) *T {
	runtime.AddCleanup(h, (*owner).release, o)
	return h
}

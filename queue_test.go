// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"sort"
	"sync"
	"testing"
)

func TestReleaseQueueOrder(t *testing.T) {
	q := newReleaseQueue(4)
	for _, id := range []uint{3, 1, 2} {
		q.enqueue(id)
	}
	for _, exp := range []uint{3, 1, 2} {
		got, ok := q.next()
		if !ok || got != exp {
			t.Errorf("got %v (%v), expected %v", got, ok, exp)
		}
	}
	if _, ok := q.next(); ok {
		t.Error("expected an empty queue")
	}
}

func TestReleaseQueueDropsWhenFull(t *testing.T) {
	q := newReleaseQueue(2)
	q.enqueue(1)
	q.enqueue(2)
	q.enqueue(3)
	if got := q.dropped.Load(); got != 1 {
		t.Errorf("got %d dropped, expected 1", got)
	}
	if got := q.len(); got != 2 {
		t.Errorf("got %d pending, expected 2", got)
	}
}

func TestReleaseQueueConcurrentSenders(t *testing.T) {
	const senders, perSender = 8, 64
	q := newReleaseQueue(senders * perSender)
	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func(base uint) {
			defer wg.Done()
			for i := uint(0); i < perSender; i++ {
				q.enqueue(base + i + 1)
			}
		}(uint(s * perSender))
	}
	wg.Wait()
	var ids []int
	for {
		id, ok := q.next()
		if !ok {
			break
		}
		ids = append(ids, int(id))
	}
	if len(ids) != senders*perSender {
		t.Fatalf("got %d ids, expected %d", len(ids), senders*perSender)
	}
	sort.Ints(ids)
	for i, id := range ids {
		if id != i+1 {
			t.Fatalf("id %d missing or duplicated", i+1)
		}
	}
}

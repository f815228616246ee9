package solver

import (
	"sync"
	"sync/atomic"
)

// A WorkItem is either a Task carrying a SolverState to search, or a
// poison token telling a Worker to exit. It is consumed exactly once by
// some worker.
type WorkItem struct {
	Poison bool
	State  *SolverState
}

// poisonItem is the single poison token value; every field but Poison is
// irrelevant, so all poison tokens can share one value.
var poisonItem = WorkItem{Poison: true}

// A WorkQueue is a bounded-in-spirit, multi-producer multi-consumer FIFO
// of WorkItems. Put is non-blocking (it never rejects work; admission
// control is the caller's responsibility, per spec §4.6 - see
// maxQueueDepth in parallel.go); Get blocks until an item is available.
// Len and TotalPuts are read with atomic loads so callers can
// inspect the queue's depth without taking the lock.
type WorkQueue struct {
	mu         sync.Mutex
	cond       *sync.Cond
	items      []WorkItem
	length     int32
	totalPuts  int32
}

// NewWorkQueue returns an empty WorkQueue.
func NewWorkQueue() *WorkQueue {
	q := &WorkQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Put appends item to the queue and wakes one waiting Get.
func (q *WorkQueue) Put(item WorkItem) {
	atomic.AddInt32(&q.totalPuts, 1)
	q.mu.Lock()
	q.items = append(q.items, item)
	atomic.AddInt32(&q.length, 1)
	q.mu.Unlock()
	q.cond.Signal()
}

// Get blocks until the queue is non-empty, then pops and returns the
// oldest item.
func (q *WorkQueue) Get() WorkItem {
	q.mu.Lock()
	for len(q.items) == 0 {
		q.cond.Wait()
	}
	item := q.items[0]
	q.items = q.items[1:]
	q.mu.Unlock()
	atomic.AddInt32(&q.length, -1)
	return item
}

// Len returns the current queue depth. It is advisory: by the time the
// caller acts on it, the real depth may have changed.
func (q *WorkQueue) Len() int {
	return int(atomic.LoadInt32(&q.length))
}

// TotalPuts returns the number of items ever enqueued, poison tokens
// included. Carried over from the original thread_safe_queue's unused
// counter (see DESIGN.md); useful for tests asserting work actually flows
// through the queue under the parallel scenarios.
func (q *WorkQueue) TotalPuts() int {
	return int(atomic.LoadInt32(&q.totalPuts))
}

// PutPoison enqueues n poison tokens, one per worker that should exit.
func (q *WorkQueue) PutPoison(n int) {
	for i := 0; i < n; i++ {
		q.Put(poisonItem)
	}
}

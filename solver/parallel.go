package solver

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	// maxQueueDepth bounds the work queue at split time (spec §4.6, §5).
	// It is a tunable heuristic, not an invariant: raising or lowering it
	// changes fork overhead and load balance, never correctness.
	maxQueueDepth = 128

	// trailCutoffFactor sets how close to the root of the search tree a
	// Worker is willing to fork a sibling branch (spec §4.7). Also a
	// tunable heuristic, not an invariant.
	trailCutoffFactor = 0.05
)

// A ParallelSolver owns an Instance, a fixed pool of workers, a bounded
// work queue, and the termination protocol described in spec §4.7 and §5:
// search concludes either when any worker finds a satisfying witness, or
// when every originally seeded or forked branch has concluded
// unsatisfiable.
type ParallelSolver struct {
	instance      *Instance
	queue         *WorkQueue
	threadCount   int
	trailCutoff   int
	workItems     int32
	foundSolution atomic.Bool
	witness       atomic.Pointer[SolverState]
	group         *errgroup.Group
}

// NewParallelSolver takes ownership of inst and spawns threadCount worker
// goroutines, which immediately block on the (still empty) work queue.
// threadCount must be at least 1; threadCount == 1 forces trailCutoff to
// 0, so a single-threaded solver never splits (spec §4.7).
func NewParallelSolver(inst *Instance, threadCount int) *ParallelSolver {
	if threadCount < 1 {
		threadCount = 1
	}
	trailCutoff := int(trailCutoffFactor * float64(inst.VarCount))
	if threadCount == 1 {
		trailCutoff = 0
	}
	p := &ParallelSolver{
		instance:    inst,
		queue:       NewWorkQueue(),
		threadCount: threadCount,
		trailCutoff: trailCutoff,
	}
	p.group = &errgroup.Group{}
	for i := 0; i < threadCount; i++ {
		w := newWorker(i, p)
		p.group.Go(func() error {
			w.run()
			return nil
		})
	}
	return p
}

// Solve runs initial unit/empty-clause processing, seeds the work queue
// with the resulting state, and waits for the worker pool to settle on
// Sat or Unsat. On Sat, Witness returns a satisfying SolverState
// afterwards.
func (p *ParallelSolver) Solve() Status {
	initial := NewSolverState(p.instance)
	if initial.InitialProcessing(p.instance) == Unsat {
		p.BroadcastPoison()
		p.Join()
		return Unsat
	}

	p.incrementWorkItems()
	p.queue.Put(WorkItem{State: initial})

	p.Join()

	if p.foundSolution.Load() {
		return Sat
	}
	return Unsat
}

// Witness returns the satisfying SolverState found by Solve, or nil if
// the instance was unsatisfiable (or Solve has not returned Sat).
func (p *ParallelSolver) Witness() *SolverState {
	return p.witness.Load()
}

// Join waits for every worker goroutine to exit.
func (p *ParallelSolver) Join() {
	if p.group != nil {
		_ = p.group.Wait()
	}
}

// BroadcastPoison enqueues one poison token per worker. It may be called
// more than once; redundant tokens left in the queue at shutdown are
// discarded with the solver.
func (p *ParallelSolver) BroadcastPoison() {
	p.queue.PutPoison(p.threadCount)
}

// reportSat latches the first satisfying witness and wakes every worker
// still waiting on the queue so they abandon their in-flight Unsat work.
func (p *ParallelSolver) reportSat(s *SolverState) {
	if p.foundSolution.CompareAndSwap(false, true) {
		p.witness.Store(s)
	}
	p.BroadcastPoison()
}

// incrementWorkItems records one more outstanding Task, covering either
// the initial seed or a freshly forked sibling.
func (p *ParallelSolver) incrementWorkItems() {
	atomic.AddInt32(&p.workItems, 1)
}

// decrementWorkItems records one Task concluding Unsat. It returns true
// exactly for the single worker that observes the outstanding-work count
// transition to zero, after broadcasting poison on that worker's behalf.
// The atomic decrement returns the new value, and testing it against zero
// is equivalent to testing the previous value against one, so exactly one
// worker acts on the transition.
func (p *ParallelSolver) decrementWorkItems() bool {
	if atomic.AddInt32(&p.workItems, -1) == 0 {
		p.BroadcastPoison()
		return true
	}
	return false
}

package solver

// A Worker runs one search loop per dequeued WorkItem, optionally forking
// sibling branches back into the parent's queue. All workers are peers:
// there is no leader, and any worker may find the satisfying witness or
// observe the search finish as unsatisfiable.
type Worker struct {
	ID     int
	parent *ParallelSolver
}

// newWorker returns a Worker bound to parent.
func newWorker(id int, parent *ParallelSolver) *Worker {
	return &Worker{ID: id, parent: parent}
}

// run is the worker's main loop: dequeue, work, repeat, until a poison
// token arrives, a satisfying witness is found, or this worker drives the
// outstanding-work counter to zero.
func (w *Worker) run() {
	for {
		item := w.parent.queue.Get()
		if item.Poison {
			return
		}
		status := w.solveBranch(item.State)
		if status == Sat {
			w.parent.reportSat(item.State)
			return
		}
		// Branch exhausted Unsat.
		if w.parent.decrementWorkItems() {
			return
		}
	}
}

// solveBranch is the chronological-backtracking search of spec §4.5,
// identical to SolverState.Solve except that at each branch point it may
// fork the negated decision off to a sibling, per spec §4.6.
func (w *Worker) solveBranch(s *SolverState) Status {
	inst := w.parent.instance
	for {
		if s.UnitPropagate(inst) == Unsat {
			for {
				if len(s.Trail) == 0 {
					return Unsat
				}
				entry := s.PopAssignment()
				if entry.IsDecision {
					s.PushAssignment(false, entry.Lit.Negation())
					break
				}
			}
			s.CommittedLength = len(s.Trail) - 1
			continue
		}
		if len(s.Trail) == inst.VarCount {
			return Sat
		}
		d := s.Decide(inst)
		if len(s.Trail) < w.parent.trailCutoff && w.parent.queue.Len() <= maxQueueDepth {
			w.split(s, d)
			s.PushAssignment(false, d)
		} else {
			s.PushAssignment(true, d)
		}
	}
}

// split forks the sibling subtree rooted at the negation of d: a
// value-copy of s, with flip(d) pushed as a non-decision implication, is
// enqueued for a peer worker to run. The caller continues locally with d
// itself pushed as a non-decision (see solveBranch), so that its own
// chronological backtrack eventually abandons this subtree once d's
// consequences are exhausted - the sibling, not this worker, owns the
// flip(d) half of the split.
func (w *Worker) split(s *SolverState, d Lit) {
	child := s.Clone()
	child.PushAssignment(false, d.Negation())
	w.parent.incrementWorkItems()
	w.parent.queue.Put(WorkItem{State: child})
}

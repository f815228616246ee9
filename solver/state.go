package solver

// A TrailEntry is one assignment on a SolverState's trail, tagged with
// whether it was chosen independently (a decision) or forced by
// propagation or a sibling branch (an implication).
type TrailEntry struct {
	IsDecision bool
	Lit        Lit
}

// A SolverState is the cheaply clonable, mutable state of one branch of
// the search: its trail, how much of that trail has had its propagation
// consequences explored, and the three-valued binding of every variable.
// A SolverState is created from an Instance, forked by value-copy at
// split points, and discarded once its branch concludes.
type SolverState struct {
	Trail           []TrailEntry
	CommittedLength int
	Assignments     []Assignment
}

// NewSolverState returns the all-unassigned state for inst, with an empty
// trail.
func NewSolverState(inst *Instance) *SolverState {
	assignments := make([]Assignment, inst.VarCount)
	for i := range assignments {
		assignments[i] = Unassigned
	}
	return &SolverState{Assignments: assignments}
}

// Clone returns a deep value-copy of s: the copy shares no mutable
// storage with s, so the two can be explored independently by different
// workers without aliasing.
func (s *SolverState) Clone() *SolverState {
	trail := make([]TrailEntry, len(s.Trail))
	copy(trail, s.Trail)
	assignments := make([]Assignment, len(s.Assignments))
	copy(assignments, s.Assignments)
	return &SolverState{
		Trail:           trail,
		CommittedLength: s.CommittedLength,
		Assignments:     assignments,
	}
}

// PushAssignment appends literal to the trail, tagged as a decision or an
// implication, and records its binding in Assignments.
func (s *SolverState) PushAssignment(isDecision bool, literal Lit) {
	s.Trail = append(s.Trail, TrailEntry{IsDecision: isDecision, Lit: literal})
	s.Assignments[literal.Var()] = literal.Polarity()
}

// PopAssignment removes and returns the most recent trail entry, clearing
// its variable back to Unassigned. It panics if the trail is empty: that
// can only happen from an internal invariant violation, never from
// well-formed input.
func (s *SolverState) PopAssignment() TrailEntry {
	if len(s.Trail) == 0 {
		panic("scowsat: pop from empty trail")
	}
	n := len(s.Trail) - 1
	entry := s.Trail[n]
	s.Assignments[entry.Lit.Var()] = Unassigned
	s.Trail = s.Trail[:n]
	return entry
}

// InitialProcessing looks for an empty clause or conflicting unit clauses
// before the main search loop runs. It returns Unsat if the instance is
// trivially unsatisfiable this way, or Indet otherwise (in which case any
// unit clauses found have already been pushed onto the trail).
func (s *SolverState) InitialProcessing(inst *Instance) Status {
	for _, c := range inst.Clauses {
		if c.Len() == 0 {
			return Unsat
		}
		if c.Len() != 1 {
			continue
		}
		l := c.Get(0)
		switch s.Assignments[l.Var()] {
		case l.Polarity():
			// already asserted, duplicate unit clause
		case Unassigned:
			s.PushAssignment(false, l)
		default:
			return Unsat
		}
	}
	return Indet
}

// UnitPropagate extends the trail with every literal forced by Boolean
// constraint propagation under the current assignments, starting from
// CommittedLength. It returns Unsat on conflict (some clause has no
// satisfied and no unassigned literal) or Indet otherwise. The conflicting
// clause itself is never reported: this solver does no clause learning.
func (s *SolverState) UnitPropagate(inst *Instance) Status {
	for s.CommittedLength < len(s.Trail) {
		l := s.Trail[s.CommittedLength].Lit
		for _, ci := range inst.ClausesContaining(l.Negation()) {
			clause := inst.Clauses[ci]
			unassigned := 0
			var witness Lit
			satisfied := false
			for i := 0; i < clause.Len(); i++ {
				lit := clause.Get(i)
				a := s.Assignments[lit.Var()]
				if a == lit.Polarity() {
					satisfied = true
					break
				}
				if a == Unassigned {
					unassigned++
					witness = lit
				}
			}
			if satisfied {
				continue
			}
			if unassigned == 0 {
				return Unsat
			}
			if unassigned == 1 {
				s.PushAssignment(false, witness)
			}
		}
		s.CommittedLength++
	}
	return Indet
}

// Decide returns the first literal in inst's static importance order
// whose variable is currently unassigned. It panics if every variable is
// already bound; callers must only invoke it when len(s.Trail) <
// inst.VarCount.
func (s *SolverState) Decide(inst *Instance) Lit {
	for _, l := range inst.LiteralsByImportance() {
		if s.Assignments[l.Var()] == Unassigned {
			return l
		}
	}
	panic("scowsat: decide called with no unassigned variable")
}

// Solve runs chronological-backtracking DPLL search to completion on s,
// with no branch splitting: it is the sequential algorithm of spec §4.5.
// ParallelSolver does not call it; each Worker runs the same loop in
// Worker.solveBranch, with branch splitting added.
func (s *SolverState) Solve(inst *Instance) Status {
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
		} else {
			if len(s.Trail) == inst.VarCount {
				return Sat
			}
			s.PushAssignment(true, s.Decide(inst))
		}
	}
}

// Satisfies reports whether every clause of inst is true under s's
// current assignments. It assumes every variable is bound; it is used by
// tests to check the soundness property (spec §8.1), not by the search
// loop itself.
func (s *SolverState) Satisfies(inst *Instance) bool {
	for _, c := range inst.Clauses {
		ok := false
		for i := 0; i < c.Len(); i++ {
			lit := c.Get(i)
			if s.Assignments[lit.Var()] == lit.Polarity() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

package solver

import "sort"

// An Instance is an immutable, shared-for-reads description of a CNF
// problem: its clauses, an occurrence index used to restrict unit
// propagation to affected clauses, and a static variable ordering used by
// the branching heuristic. It is built once, handed to every worker by
// reference, and never mutated afterwards.
type Instance struct {
	Clauses []*Clause

	// VarCount is one plus the maximum variable appearing in any clause,
	// or 0 if no clause has any literals.
	VarCount int

	// literalToContainingClauses maps each literal to the ordered list of
	// clause ids (positions in Clauses) that textually contain it.
	literalToContainingClauses [][]int

	// literalsByImportance orders exactly VarCount literals, one per
	// variable, by descending static branching score (see scoreLiterals).
	literalsByImportance []Lit
}

// NewInstance builds an Instance from clauses. Construction never fails:
// an instance with an empty clause, or with conflicting unit clauses, is
// legal and is simply unsatisfiable once searched.
func NewInstance(clauses []*Clause) *Instance {
	inst := &Instance{Clauses: clauses}

	var maxVar Var = -1
	for _, c := range clauses {
		for _, l := range c.Lits() {
			if v := l.Var(); v > maxVar {
				maxVar = v
			}
		}
	}
	inst.VarCount = int(maxVar) + 1

	inst.literalToContainingClauses = make([][]int, 2*inst.VarCount)
	for ci, c := range clauses {
		for _, l := range c.Lits() {
			inst.literalToContainingClauses[l] = append(inst.literalToContainingClauses[l], ci)
		}
	}

	inst.literalsByImportance = scoreLiterals(clauses, inst.VarCount)
	return inst
}

// ClausesContaining returns, in textual order, the ids of clauses that
// contain l.
func (inst *Instance) ClausesContaining(l Lit) []int {
	return inst.literalToContainingClauses[l]
}

// LiteralsByImportance returns the static branching order: exactly
// VarCount literals, one per variable, most important first.
func (inst *Instance) LiteralsByImportance() []Lit {
	return inst.literalsByImportance
}

// scoreLiterals implements spec §4.1's branching heuristic: each textual
// occurrence of a literal adds 1.01 to its own score and 1.00 to its
// negation's score, then literals are sorted by descending score and
// walked to emit each variable's first (highest-scoring) literal. The
// asymmetric weights make a positive occurrence marginally more valuable
// than a negative one at the same position, and act as a deterministic
// tie-breaker favoring variables that occur more often overall.
func scoreLiterals(clauses []*Clause, varCount int) []Lit {
	scores := make([]float64, 2*varCount)
	for _, c := range clauses {
		for _, l := range c.Lits() {
			scores[l] += 1.01
			scores[l.Negation()] += 1.00
		}
	}

	all := make([]Lit, 2*varCount)
	for l := range all {
		all[l] = Lit(l)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return scores[all[i]] > scores[all[j]]
	})

	seen := make([]bool, varCount)
	ordered := make([]Lit, 0, varCount)
	for _, l := range all {
		v := l.Var()
		if !seen[v] {
			seen[v] = true
			ordered = append(ordered, l)
		}
	}
	return ordered
}

package solver

import "fmt"

// A Clause is an ordered, possibly-tautological, possibly-duplicated list
// of literals. No normalization is performed on construction: duplicates
// and tautologies are legal input and are simply never satisfied any
// faster or slower than a clean clause would be.
type Clause struct {
	lits []Lit
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// Lits returns the clause's literals. The caller must treat the returned
// slice as read-only: it is shared with the Instance's own storage.
func (c *Clause) Lits() []Lit {
	return c.lits
}

// CNF returns a DIMACS CNF representation of the clause.
func (c *Clause) CNF() string {
	res := ""
	for _, lit := range c.lits {
		res += fmt.Sprintf("%d ", lit.Int())
	}
	return fmt.Sprintf("%s0", res)
}

// String implements fmt.Stringer.
func (c *Clause) String() string {
	return c.CNF()
}

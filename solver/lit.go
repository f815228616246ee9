package solver

import "fmt"

// Var identifies a propositional variable. The instance uses variables
// 0..VarCount-1; DIMACS variables 1..n map to 0..n-1.
type Var int32

// Lit is a literal: a variable paired with a polarity. The low bit carries
// the polarity (1 = positive, 0 = negative); the remaining bits are the
// variable. So Lit = Var*2 + polarity, and the two literals of a variable
// v are the adjacent integers 2v and 2v+1.
type Lit int32

// Assignment is a three-valued per-variable binding. Unassigned is 2 so
// that AssignFalse/AssignTrue line up with a literal's polarity bit,
// letting "is this literal satisfied" collapse to a single comparison.
type Assignment uint8

const (
	// AssignFalse matches the polarity bit of a negative literal (0).
	AssignFalse Assignment = 0
	// AssignTrue matches the polarity bit of a positive literal (1).
	AssignTrue Assignment = 1
	// Unassigned marks a variable with no current binding.
	Unassigned Assignment = 2
)

// MakeLit builds the literal for v with the given polarity.
func MakeLit(v Var, positive bool) Lit {
	if positive {
		return Lit(v)<<1 | 1
	}
	return Lit(v) << 1
}

// IntToLit converts a nonzero DIMACS literal (sign-encoded, 1-based
// variable) to the internal encoding.
func IntToLit(x int) Lit {
	if x < 0 {
		return MakeLit(Var(-x-1), false)
	}
	return MakeLit(Var(x-1), true)
}

// Var returns the variable referenced by l.
func (l Lit) Var() Var {
	return Var(l >> 1)
}

// Polarity returns the Assignment value that would satisfy l, i.e. the
// value assignments[l.Var()] must hold for l to evaluate true.
func (l Lit) Polarity() Assignment {
	return Assignment(l & 1)
}

// IsPositive reports whether l is the positive literal of its variable.
func (l Lit) IsPositive() bool {
	return l&1 == 1
}

// Negation flips the polarity of l, leaving the variable unchanged.
// l.Negation().Negation() == l.
func (l Lit) Negation() Lit {
	return l ^ 1
}

// Int returns the DIMACS (sign-encoded, 1-based) literal for l.
func (l Lit) Int() int {
	n := int(l.Var()) + 1
	if !l.IsPositive() {
		return -n
	}
	return n
}

// String implements fmt.Stringer.
func (l Lit) String() string {
	return fmt.Sprintf("%d", l.Int())
}

// PosLit returns the positive literal of v.
func (v Var) PosLit() Lit {
	return MakeLit(v, true)
}

// NegLit returns the negative literal of v.
func (v Var) NegLit() Lit {
	return MakeLit(v, false)
}

package solver

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, dimacs string) *Instance {
	t.Helper()
	inst, err := ParseDIMACS(strings.NewReader(dimacs), nil)
	if err != nil {
		t.Fatalf("ParseDIMACS: %v", err)
	}
	return inst
}

func TestInstanceVarCount(t *testing.T) {
	inst := mustParse(t, "p cnf 3 2\n1 2 0\n-2 3 0\n")
	if inst.VarCount != 3 {
		t.Errorf("VarCount = %d, want 3", inst.VarCount)
	}
}

func TestInstanceEmpty(t *testing.T) {
	inst := NewInstance(nil)
	if inst.VarCount != 0 {
		t.Errorf("VarCount = %d, want 0 for no clauses", inst.VarCount)
	}
	if len(inst.LiteralsByImportance()) != 0 {
		t.Errorf("LiteralsByImportance should be empty for an empty instance")
	}
}

func TestOccurrenceIndex(t *testing.T) {
	inst := mustParse(t, "p cnf 2 3\n1 2 0\n1 -2 0\n-1 0\n")
	// Literal for variable 0 positive (DIMACS 1) should appear in clauses 0 and 1.
	pos0 := Var(0).PosLit()
	ids := inst.ClausesContaining(pos0)
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 1 {
		t.Errorf("ClausesContaining(+1) = %v, want [0 1]", ids)
	}
	neg0 := Var(0).NegLit()
	ids = inst.ClausesContaining(neg0)
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("ClausesContaining(-1) = %v, want [2]", ids)
	}
}

func TestLiteralsByImportanceCoversEveryVariableOnce(t *testing.T) {
	inst := mustParse(t, "p cnf 4 3\n1 2 3 0\n-1 2 0\n3 4 -4 0\n")
	order := inst.LiteralsByImportance()
	if len(order) != inst.VarCount {
		t.Fatalf("len(LiteralsByImportance) = %d, want %d", len(order), inst.VarCount)
	}
	seen := make(map[Var]bool)
	for _, l := range order {
		if seen[l.Var()] {
			t.Fatalf("variable %d appears twice in LiteralsByImportance", l.Var())
		}
		seen[l.Var()] = true
	}
}

func TestLiteralsByImportanceIsDeterministic(t *testing.T) {
	dimacs := "p cnf 5 4\n1 2 0\n-1 2 3 0\n-2 -3 4 0\n4 5 0\n"
	a := mustParse(t, dimacs).LiteralsByImportance()
	b := mustParse(t, dimacs).LiteralsByImportance()
	if len(a) != len(b) {
		t.Fatalf("orderings differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("orderings differ at index %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestLiteralsByImportancePrefersMoreFrequentVariable(t *testing.T) {
	// Variable 0 (DIMACS 1) occurs three times, variable 1 (DIMACS 2) once.
	inst := mustParse(t, "p cnf 2 3\n1 2 0\n1 0\n-1 0\n")
	order := inst.LiteralsByImportance()
	if order[0].Var() != 0 {
		t.Errorf("expected the more frequent variable first, got var %d first", order[0].Var())
	}
}

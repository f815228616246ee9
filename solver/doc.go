/*
Package solver implements a DPLL SAT decision procedure over CNF
instances: chronological backtracking with unit propagation and a static
literal-occurrence branching heuristic, dispatched across a fixed pool of
worker goroutines that cooperate by work-stealing on partial search
states.

Describing a problem

A problem is built from a DIMACS CNF stream:

    p cnf 3 2
    1 2 3 0
    -1 -2 0

    inst, err := solver.ParseDIMACS(f, os.Stderr)

or directly from a slice of clauses:

    inst := solver.NewInstance([]*solver.Clause{
        solver.NewClause([]solver.Lit{solver.IntToLit(1), solver.IntToLit(2)}),
        solver.NewClause([]solver.Lit{solver.IntToLit(-1)}),
    })

Solving a problem

The sequential algorithm runs directly on a SolverState:

    s := solver.NewSolverState(inst)
    if s.InitialProcessing(inst) != solver.Unsat {
        status := s.Solve(inst)
    }

For parallel search, a ParallelSolver owns the instance and a fixed pool
of worker goroutines cooperating over a bounded work queue:

    p := solver.NewParallelSolver(inst, threadCount)
    switch p.Solve() {
    case solver.Sat:
        witness := p.Witness() // a SolverState with every variable bound
    case solver.Unsat:
    }
*/
package solver

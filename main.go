package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/petersn/scowsat/solver"
)

// args is the CLI surface. The positional File argument and the SAT/UNSAT
// exit-code contract are the only parts any script should depend on; the
// rest is diagnostic, matching gophersat's own "only verdict+exit code are
// load-bearing" stance in main.go.
var args struct {
	File    string `arg:"positional,required" help:"path to a DIMACS CNF file"`
	Threads int    `arg:"-t,--threads" help:"number of worker goroutines (default: number of CPUs)"`
	Verbose bool   `arg:"-v,--verbose" help:"print instance stats and the satisfying assignment"`
	Quiet   bool   `arg:"-q,--quiet" help:"suppress the 'c solving ...' banner"`
}

func main() {
	arg.MustParse(&args)

	threads := args.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	if threads < 1 {
		fmt.Fprintf(os.Stderr, "scowsat: --threads must be at least 1, got %d\n", threads)
		os.Exit(1)
	}

	f, err := os.Open(args.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scowsat: could not open %q: %v\n", args.File, err)
		os.Exit(1)
	}
	defer f.Close()

	if !args.Quiet {
		fmt.Fprintf(os.Stderr, "c solving %s\n", args.File)
	}

	inst, err := solver.ParseDIMACS(f, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scowsat: could not parse %q: %v\n", args.File, err)
		os.Exit(1)
	}

	if args.Verbose {
		fmt.Fprintf(os.Stderr, "c variables: %d\n", inst.VarCount)
		fmt.Fprintf(os.Stderr, "c clauses:   %d\n", len(inst.Clauses))
		fmt.Fprintf(os.Stderr, "c threads:   %d\n", threads)
	}

	start := time.Now()
	p := solver.NewParallelSolver(inst, threads)
	status := p.Solve()
	if args.Verbose {
		fmt.Fprintf(os.Stderr, "c elapsed: %s\n", time.Since(start))
	}

	switch status {
	case solver.Sat:
		fmt.Println("SAT")
		if args.Verbose {
			printWitness(p.Witness(), inst.VarCount)
		}
		os.Exit(10)
	case solver.Unsat:
		fmt.Println("UNSAT")
		os.Exit(20)
	default:
		fmt.Fprintf(os.Stderr, "scowsat: internal error: solve returned status %v\n", status)
		os.Exit(1)
	}
}

// printWitness prints the satisfying assignment as a DIMACS-style
// "v <lit> <lit> ... 0" line, following the "v" line convention used by
// DIMACS-consuming tools and supplementing the trail dump of the original
// scowsat driver's main() (see SPEC_FULL.md's Supplemented Features).
func printWitness(s *solver.SolverState, varCount int) {
	if s == nil {
		return
	}
	fmt.Print("v")
	for v := 0; v < varCount; v++ {
		lit := solver.Var(v).NegLit()
		if s.Assignments[v] == solver.AssignTrue {
			lit = solver.Var(v).PosLit()
		}
		fmt.Printf(" %d", lit.Int())
	}
	fmt.Println(" 0")
}

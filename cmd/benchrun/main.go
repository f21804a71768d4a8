// Command benchrun is the out-of-scope benchmark driver stub: it builds the
// two reference programs, runs all three execution backends against each,
// checks that they agree, and reports timings.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/numvm/pkg/bytecode"
	"github.com/chazu/numvm/pkg/closure"
	"github.com/chazu/numvm/pkg/config"
	"github.com/chazu/numvm/pkg/eval"
	"github.com/chazu/numvm/pkg/machine"
	"github.com/chazu/numvm/pkg/results"
	"github.com/chazu/numvm/pkg/sample"
	"github.com/chazu/numvm/pkg/tree"
)

func main() {
	configPath := flag.String("config", "numvm.toml", "path to benchmark driver config")
	flag.Parse()

	commonlog.NewInfoMessage(0, "numvm benchmark driver starting")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var store *results.Store
	if cfg.Results.Enabled {
		store, err = results.Open(cfg.Results.Path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer store.Close()
	}

	runID := uuid.NewString()

	commonlog.NewInfoMessage(0, fmt.Sprintf("run %s: fibonacci(%d)", runID, cfg.Samples.FibonacciIterations))
	runSample(store, runID, "fibonacci", sample.Fibonacci(), cfg.Memory.Size, func(ctx *machine.Context) {
		ctx.Store(0, float64(cfg.Samples.FibonacciIterations))
	})

	commonlog.NewInfoMessage(0, fmt.Sprintf("run %s: insertion_sort(%d)", runID, cfg.Samples.SortSize))
	n := cfg.Samples.SortSize
	runSample(store, runID, "insertion_sort", sample.InsertionSortAlternatingSum(n), cfg.Memory.Size, func(ctx *machine.Context) {
		_ = sample.SeedInsertionInput(func(i int, v float64) error {
			_, err := ctx.Store(i, v)
			return err
		}, n)
	})
}

// runSample runs root under all three backends on freshly seeded Contexts,
// verifies the results agree, prints timings, and optionally persists them.
func runSample(store *results.Store, runID, name string, root tree.Node, memSize int, seed func(*machine.Context)) {
	type outcome struct {
		backend string
		value   float64
		elapsed time.Duration
	}

	var outcomes []outcome

	evalCtx := machine.NewContext(memSize)
	seed(evalCtx)
	start := time.Now()
	evalVal, err := eval.Evaluate(root, evalCtx)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: tree walker: %v\n", name, err)
		return
	}
	outcomes = append(outcomes, outcome{"tree", evalVal, elapsed})

	closureCtx := machine.NewContext(memSize)
	seed(closureCtx)
	fn, err := closure.Lower(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: closure lowering: %v\n", name, err)
		return
	}
	start = time.Now()
	closureVal, err := fn(closureCtx)
	elapsed = time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: closure: %v\n", name, err)
		return
	}
	outcomes = append(outcomes, outcome{"closure", closureVal, elapsed})

	bytecodeCtx := machine.NewContext(memSize)
	seed(bytecodeCtx)
	prog, err := bytecode.Compile(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: compile: %v\n", name, err)
		return
	}
	start = time.Now()
	bytecodeVal, err := bytecode.Run(prog, bytecodeCtx)
	elapsed = time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: bytecode: %v\n", name, err)
		return
	}
	outcomes = append(outcomes, outcome{"bytecode", bytecodeVal, elapsed})

	if evalVal != closureVal || evalVal != bytecodeVal {
		fmt.Fprintf(os.Stderr, "%s: backend disagreement: tree=%v closure=%v bytecode=%v\n",
			name, evalVal, closureVal, bytecodeVal)
	}

	now := time.Now()
	for _, o := range outcomes {
		fmt.Printf("%-12s %-10s value=%v elapsed=%s\n", name, o.backend, o.value, humanize.SI(o.elapsed.Seconds(), "s"))
		if store != nil {
			row := results.Row{
				RunID:      runID,
				Backend:    o.backend,
				Sample:     name,
				Elapsed:    o.elapsed,
				Value:      o.value,
				RecordedAt: now,
			}
			if err := store.Record(row); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s: %v\n", name, o.backend, err)
			}
		}
	}
}

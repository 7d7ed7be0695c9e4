// Command simphotons-choices benchmarks the candidate layouts for storing
// SimPhotons tick / photon-count pairs.
//
// Usage:
//
//	go run ./cmd/simphotons-choices -sizes 10,100,1000 -ops sum,largest
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sirupsen/simphotons-bench/internal/bench"
	"github.com/sirupsen/simphotons-bench/internal/measure"
)

const defaultSizes = "10,30,100,300,1000,3000,10000"

type options struct {
	sizes    []int
	layouts  []measure.Layout
	ops      []string
	baseline string
	cfg      bench.Config
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	stop, err := bench.Setup(opts.cfg)
	if err != nil {
		return err
	}
	defer stop()

	p := message.NewPrinter(language.English)
	fmt.Println(bench.Header())
	for _, n := range opts.sizes {
		p.Printf("%d measurements\n", n)
		for _, l := range opts.layouts {
			l.Fill(n)
			p.Printf("\t%s: %d pairs, ~%.1f KiB\n", l.Name(), l.Len(), float64(l.Footprint())/1024)
		}
		if bench.Debug {
			bench.PrintGCStats(os.Stdout)
		}
		for _, op := range opts.ops {
			b := bench.New(fmt.Sprintf("simphotons choices: %s, n=%d", op, n), opts.cfg)
			for _, l := range opts.layouts {
				runOp(b, op, l, n)
			}
			b.Report()
			if opts.baseline == "" {
				continue
			}
			sp, err := b.Compare(benchName(op, opts.baseline, n), bench.DefaultThresholds)
			if err != nil {
				return err
			}
			b.ReportSpeedups(sp)
		}
	}
	return nil
}

func benchName(op, layout string, n int) string {
	return fmt.Sprintf("%s_%s_%d", op, layout, n)
}

func runOp(b *bench.Bench, op string, l measure.Layout, n int) {
	name := benchName(op, l.Name(), n)
	switch op {
	case "sum":
		var sz int
		b.Run(name, func() { sz = measure.Sum(l) })
		bench.DoNotOptimizeAway(sz)
	case "largest":
		var r measure.Result
		b.Run(name, func() { r = measure.FindLargest(l) })
		bench.DoNotOptimizeAway(r.Value)
	}
}

func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("simphotons-choices", flag.ContinueOnError)
	sizes := fs.String("sizes", defaultSizes, "comma separated container sizes")
	layouts := fs.String("layouts", "", "comma separated layouts (default all)")
	ops := fs.String("ops", "sum", "comma separated operations: sum, largest")
	baseline := fs.String("baseline", "map", "layout the others are compared with, empty to skip")
	iters := fs.Int("min-epoch-iters", 200_000, "minimum iterations per epoch")
	epochs := fs.Int("epochs", 11, "epochs per benchmark")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	var opts options
	var err error
	if opts.sizes, err = parseSizes(*sizes); err != nil {
		return options{}, err
	}
	if opts.layouts, err = selectLayouts(*layouts); err != nil {
		return options{}, err
	}
	if opts.ops, err = parseOps(*ops); err != nil {
		return options{}, err
	}
	if *baseline != "" {
		if _, ok := measure.Lookup(*baseline); !ok {
			return options{}, fmt.Errorf("unknown baseline layout %q", *baseline)
		}
		found := false
		for _, l := range opts.layouts {
			found = found || l.Name() == *baseline
		}
		if !found {
			return options{}, fmt.Errorf("baseline %q is not among the selected layouts", *baseline)
		}
	}
	opts.baseline = *baseline

	cfg := bench.DefaultConfig(*iters)
	cfg.Epochs = *epochs
	if opts.cfg, err = cfg.FromEnv(); err != nil {
		return options{}, err
	}
	return opts, nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", f, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return sizes, nil
}

func selectLayouts(s string) ([]measure.Layout, error) {
	if strings.TrimSpace(s) == "" {
		return measure.Layouts(), nil
	}
	var ls []measure.Layout
	seen := map[string]bool{}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		l, ok := measure.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown layout %q", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("layout %q given twice", name)
		}
		seen[name] = true
		ls = append(ls, l)
	}
	return ls, nil
}

func parseOps(s string) ([]string, error) {
	var ops []string
	for _, op := range strings.Split(s, ",") {
		op = strings.TrimSpace(op)
		switch op {
		case "sum", "largest":
			ops = append(ops, op)
		case "":
		default:
			return nil, fmt.Errorf("unknown operation %q", op)
		}
	}
	if len(ops) == 0 {
		return nil, errors.New("no operations given")
	}
	return ops, nil
}

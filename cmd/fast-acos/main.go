// Command fast-acos compares polynomial acos approximations with math.Acos:
// it writes an accuracy table to stderr, then times each variant.
//
// Usage:
//
//	go run ./cmd/fast-acos 2>acos.tsv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/sirupsen/simphotons-bench/internal/bench"
	"github.com/sirupsen/simphotons-bench/internal/fastmath"
)

// Package variables so the compiler cannot fold the benchmarked calls.
var (
	inputX = 0.457
	inputY = -0.57
)

type variant struct {
	name string
	f    func(float64) float64
}

var variants = []variant{
	{"fast_acos", fastmath.FastAcos},
	{"hastings_acos", fastmath.HastingsAcos},
	{"hastings_acos_signed", fastmath.HastingsAcosSigned},
	{"acosd", fastmath.StdAcos},
	{"acosf", func(x float64) float64 { return float64(fastmath.StdAcosf(float32(x))) }},
	{"hastings_acos_4", fastmath.HastingsAcos4},
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, tableOut io.Writer) error {
	fs := flag.NewFlagSet("fast-acos", flag.ContinueOnError)
	points := fs.Int("points", 100_000, "number of table rows")
	table := fs.Bool("table", true, "write the accuracy table")
	iters := fs.Int("min-epoch-iters", 1_000_000, "minimum iterations per epoch")
	batch := fs.Int("batch", 4096, "slice length for the batch benchmarks")
	agm := fs.Bool("agm", false, "also time the iterative AGM acos")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *points <= 0 || *batch <= 0 {
		return fmt.Errorf("points and batch must be positive, got %d and %d", *points, *batch)
	}
	cfg, err := bench.DefaultConfig(*iters).FromEnv()
	if err != nil {
		return err
	}
	stop, err := bench.Setup(cfg)
	if err != nil {
		return err
	}
	defer stop()

	if *table {
		if err := writeTable(tableOut, *points); err != nil {
			return err
		}
	}

	fmt.Println(bench.Header())
	b := bench.New("acos tests", cfg)
	timed := variants
	if *agm {
		timed = append(timed[:len(timed):len(timed)], variant{"agm_acos", fastmath.AGMAcos})
	}
	for _, v := range timed {
		f := v.f
		b.Run(v.name, func() {
			z1 := f(inputX)
			z2 := f(inputY)
			bench.DoNotOptimizeAway(z1)
			bench.DoNotOptimizeAway(z2)
		})
	}
	b.Report()
	sp, err := b.Compare("acosd", bench.DefaultThresholds)
	if err != nil {
		return err
	}
	b.ReportSpeedups(sp)

	return runBatch(cfg, *batch)
}

// runBatch times whole-slice evaluation, scalar loops against vector lanes.
func runBatch(cfg bench.Config, n int) error {
	in := fastmath.Uniform(n, -1, 1, fastmath.Seed)
	out := make([]float64, n)
	cfg.MinEpochIterations = max(1, cfg.MinEpochIterations/n)
	b := bench.New(fmt.Sprintf("acos batch tests, n=%d", n), cfg)
	b.Run("acosd_loop", func() { fastmath.Apply(math.Acos, in, out) })
	b.Run("hastings_acos_4_loop", func() { fastmath.Apply(fastmath.HastingsAcos4, in, out) })
	b.Run("hastings_acos_4_batch", func() { fastmath.AcosBatch(in, out) })
	bench.DebugChecksum("batch", out)
	b.Report()
	sp, err := b.Compare("acosd_loop", bench.DefaultThresholds)
	if err != nil {
		return err
	}
	b.ReportSpeedups(sp)
	return nil
}

// writeTable writes x and every approximation, tab separated, for npoints
// values of x stepping from -1 towards 1.
func writeTable(w io.Writer, npoints int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "x\tfast\tstd\tstdf\thastings\thastings_4\tagm\n")
	for _, x := range fastmath.Grid(-1, 1, npoints, false) {
		xf := float32(x)
		row := []float64{
			x,
			fastmath.FastAcos(x),
			math.Acos(x),
			float64(fastmath.StdAcosf(xf)),
			fastmath.HastingsAcos(x),
			fastmath.HastingsAcos4(x),
			fastmath.AGMAcos(x),
		}
		for i, v := range row {
			if i > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', 17, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

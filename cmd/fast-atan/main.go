// Command fast-atan compares the atan2 approximations with math.Atan2. It
// writes atan2(y, 1) for y in [-4, 4] to stderr, then times every variant
// over arrays large enough to spill out of L2.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/simphotons-bench/internal/bench"
	"github.com/sirupsen/simphotons-bench/internal/fastmath"
)

type variant struct {
	name string
	f    func(y, x float64) float64
}

var variants = []variant{
	{"atan2d", fastmath.StdAtan2},
	{"atan2_1", fastmath.Atan2},
	{"atan2_4", fastmath.Atan24},
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, tableOut io.Writer) error {
	fs := flag.NewFlagSet("fast-atan", flag.ContinueOnError)
	points := fs.Int("points", 40_000, "number of table intervals")
	table := fs.Bool("table", true, "write the accuracy table")
	n := fs.Int("n", 1_000_000, "number of (y, x) pairs per benchmark call")
	iters := fs.Int("min-epoch-iters", 1, "minimum iterations per epoch")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *points <= 0 || *n <= 0 {
		return fmt.Errorf("points and n must be positive, got %d and %d", *points, *n)
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
	vals := fastmath.Uniform(2**n, -4, 4, fastmath.Seed)
	ys, xs := vals[:*n], vals[*n:]
	zs := make([]float64, *n)

	b := bench.New("atan tests", cfg)
	for _, v := range variants {
		f := v.f
		b.Run(v.name, func() { fastmath.Apply2(f, ys, xs, zs) })
		bench.DebugChecksum(v.name, zs)
	}
	b.Run("atan2_4_batch", func() { fastmath.Atan2Batch(ys, xs, zs) })
	bench.DebugChecksum("atan2_4_batch", zs)
	b.Report()

	sp, err := b.Compare("atan2d", bench.DefaultThresholds)
	if err != nil {
		return err
	}
	b.ReportSpeedups(sp)
	return nil
}

// writeTable writes y and atan2(y, 1) for every variant, npoints+1 rows
// from -4 to 4 inclusive.
func writeTable(w io.Writer, npoints int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "x\tatan2d\tatan2_1\tatan2_4\n")
	for _, y := range fastmath.Grid(-4, 4, npoints, true) {
		bw.WriteString(strconv.FormatFloat(y, 'g', 17, 64))
		for _, v := range variants {
			bw.WriteByte('\t')
			bw.WriteString(strconv.FormatFloat(v.f(y, 1), 'g', 17, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

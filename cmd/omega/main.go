// Command omega times the two solid-angle formulations, acos based and
// atan2 based, on a fixed rectangle.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/simphotons-bench/internal/bench"
	"github.com/sirupsen/simphotons-bench/internal/fastmath"
)

// Rectangle sides and distance. Package variables so the compiler
// cannot fold the benchmarked calls.
var (
	sideA = 0.457
	sideB = -0.57
	dist  = 0.9
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("omega", flag.ContinueOnError)
	iters := fs.Int("min-epoch-iters", 100*1000*1000, "minimum iterations per epoch")
	if err := fs.Parse(args); err != nil {
		return err
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

	fmt.Println(bench.Header())
	fmt.Printf("omega_1 %.9f\tomega_2 %.9f\texact %.9f\n",
		fastmath.Omega1(sideA, sideB, dist), fastmath.Omega2(sideA, sideB, dist), fastmath.OmegaExact(sideA, sideB, dist))

	b := bench.New("solid angle tests", cfg)
	b.Run("omega_1", func() { bench.DoNotOptimizeAway(fastmath.Omega1(sideA, sideB, dist)) })
	b.Run("omega_2", func() { bench.DoNotOptimizeAway(fastmath.Omega2(sideA, sideB, dist)) })
	b.Run("omega_exact", func() { bench.DoNotOptimizeAway(fastmath.OmegaExact(sideA, sideB, dist)) })
	b.Report()

	sp, err := b.Compare("omega_exact", bench.DefaultThresholds)
	if err != nil {
		return err
	}
	b.ReportSpeedups(sp)
	return nil
}

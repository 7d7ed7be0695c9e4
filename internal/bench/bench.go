// Package bench times small functions in the nanobench manner: a
// calibrated number of iterations per epoch, several epochs, and the
// median time per call reported in a table.
package bench

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result is the timing of one benchmarked function.
type Result struct {
	Name       string
	Iterations int       // calls per epoch
	Samples    []float64 // ns per call, one per epoch
	NsPerOp    float64   // median of Samples
	ErrPct     float64   // median absolute percentage error of Samples
	Total      time.Duration
}

// OpsPerSec converts NsPerOp to a rate.
func (r Result) OpsPerSec() float64 {
	if r.NsPerOp == 0 {
		return 0
	}
	return 1e9 / r.NsPerOp
}

type Bench struct {
	Title string
	cfg   Config
	out   io.Writer
	p     *message.Printer

	results []Result
}

// New returns a Bench printing to stdout.
func New(title string, cfg Config) *Bench {
	return &Bench{
		Title: title,
		cfg:   cfg,
		out:   os.Stdout,
		p:     message.NewPrinter(language.English),
	}
}

// SetOutput redirects the report.
func (b *Bench) SetOutput(w io.Writer) { b.out = w }

// Run times fn and records the result under name.
func (b *Bench) Run(name string, fn func()) Result {
	fn()

	iters := b.cfg.MinEpochIterations
	for {
		el := epoch(fn, iters)
		if el >= b.cfg.MinEpochTime || iters >= maxEpochIterations {
			break
		}
		iters *= 2
	}

	res := Result{Name: name, Iterations: iters, Samples: make([]float64, b.cfg.Epochs)}
	for e := range res.Samples {
		el := epoch(fn, iters)
		res.Total += el
		res.Samples[e] = float64(el.Nanoseconds()) / float64(iters)
	}
	res.NsPerOp = median(res.Samples)
	res.ErrPct = mdape(res.Samples)
	b.results = append(b.results, res)
	Debugf("%s: %d iterations x %d epochs in %s", name, iters, b.cfg.Epochs, res.Total)
	return res
}

const maxEpochIterations = 1 << 30

func epoch(fn func(), iters int) time.Duration {
	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	return time.Since(start)
}

// Results returns what has been run so far, in order.
func (b *Bench) Results() []Result { return b.results }

// Lookup returns the result recorded under name.
func (b *Bench) Lookup(name string) (Result, bool) {
	for _, r := range b.results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

// Report prints the results table.
func (b *Bench) Report() {
	b.p.Fprintf(b.out, "\n| %s\n", b.Title)
	fmt.Fprintln(b.out, "|               ns/op |                op/s |    err% |     total | benchmark")
	fmt.Fprintln(b.out, "|--------------------:|--------------------:|--------:|----------:|:----------")
	for _, r := range b.results {
		b.p.Fprintf(b.out, "| %19.2f | %19.2f | %6.1f%% | %9.2f | `%s`\n",
			r.NsPerOp, r.OpsPerSec(), r.ErrPct, r.Total.Seconds(), r.Name)
	}
}

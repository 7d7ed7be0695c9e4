package bench

import (
	"fmt"

	"github.com/TomTonic/rtcompare"
)

// DefaultThresholds are the relative speedups Compare asks about.
var DefaultThresholds = []float64{0.1, 0.2, 0.5, 1.0}

const resamples = 10000

// Speedup is the confidence that a candidate is at least Threshold faster
// than the baseline (0.2 means 20% faster).
type Speedup struct {
	Candidate  string
	Baseline   string
	Threshold  float64
	Confidence float64
}

// Compare bootstraps the epoch samples of every other result against the
// result named baseline.
func (b *Bench) Compare(baseline string, thresholds []float64) ([]Speedup, error) {
	base, ok := b.Lookup(baseline)
	if !ok {
		return nil, fmt.Errorf("no benchmark named %q", baseline)
	}
	var out []Speedup
	for _, r := range b.results {
		if r.Name == baseline {
			continue
		}
		conf, err := rtcompare.CompareRuntimes(r.Samples, base.Samples, thresholds, resamples)
		if err != nil {
			return nil, fmt.Errorf("compare %s with %s: %w", r.Name, baseline, err)
		}
		for _, c := range conf {
			out = append(out, Speedup{
				Candidate:  r.Name,
				Baseline:   baseline,
				Threshold:  c.RelativeSpeedupSampleAvsSampleB,
				Confidence: c.Confidence,
			})
		}
	}
	return out, nil
}

// ReportSpeedups prints the output of Compare.
func (b *Bench) ReportSpeedups(sp []Speedup) {
	last := ""
	for _, s := range sp {
		if s.Candidate != last {
			b.p.Fprintf(b.out, "\n%s vs %s\n", s.Candidate, s.Baseline)
			last = s.Candidate
		}
		b.p.Fprintf(b.out, "\tspeedup >= %.0f%%: confidence %.4f\n", s.Threshold*100, s.Confidence)
	}
}

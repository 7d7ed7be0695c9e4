package bench

import (
	"bytes"
	"math"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		in   []float64
		want float64
	}{
		{nil, 0},
		{[]float64{3}, 3},
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
	}
	for _, tt := range tests {
		if got := median(tt.in); got != tt.want {
			t.Errorf("median(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := median([]int{5, 1, 9}); got != 5 {
		t.Errorf("median of ints = %v", got)
	}
}

func TestMedianDoesNotReorder(t *testing.T) {
	in := []float64{3, 1, 2}
	median(in)
	if diff := cmp.Diff([]float64{3, 1, 2}, in); diff != "" {
		t.Fatalf("input reordered (-want +got):\n%s", diff)
	}
}

func TestMdape(t *testing.T) {
	if got := mdape([]float64{10, 10, 10}); got != 0 {
		t.Fatalf("mdape of constant samples = %v", got)
	}
	// deviations from 10: 10%, 0%, 10%, 0%, 50% -> median 10%
	if got := mdape([]float64{9, 10, 11, 10, 15}); math.Abs(got-10) > 1e-12 {
		t.Fatalf("mdape = %v, want 10", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", DefaultConfig(100), true},
		{"zero iterations", DefaultConfig(0), false},
		{"zero epochs", Config{MinEpochIterations: 1}, false},
		{"negative time", Config{MinEpochIterations: 1, Epochs: 1, MinEpochTime: -time.Second}, false},
	}
	for _, tt := range tests {
		if err := tt.cfg.Validate(); (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DEBUG", "1")
	t.Setenv("PROFILE", "")
	t.Setenv("MIN_EPOCH_ITERS", "42")
	t.Setenv("EPOCHS", "5")
	cfg, err := DefaultConfig(1000).FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{MinEpochIterations: 42, Epochs: 5, MinEpochTime: time.Millisecond, Debug: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	t.Setenv("EPOCHS", "many")
	if _, err := DefaultConfig(1000).FromEnv(); err == nil {
		t.Fatal("non-numeric EPOCHS accepted")
	}
	t.Setenv("EPOCHS", "0")
	if _, err := DefaultConfig(1000).FromEnv(); err == nil {
		t.Fatal("zero EPOCHS accepted")
	}
}

func quietBench(cfg Config) (*Bench, *bytes.Buffer) {
	var buf bytes.Buffer
	b := New("test", cfg)
	b.SetOutput(&buf)
	return b, &buf
}

func TestRunCallCount(t *testing.T) {
	cfg := Config{MinEpochIterations: 10, Epochs: 3}
	b, _ := quietBench(cfg)
	calls := 0
	res := b.Run("count", func() { calls++ })
	// one warm-up call, one calibration epoch, then the timed epochs
	if want := 1 + 10 + 3*10; calls != want {
		t.Fatalf("fn called %d times, want %d", calls, want)
	}
	if res.Iterations != 10 || len(res.Samples) != 3 {
		t.Fatalf("result = %+v", res)
	}
	if got, ok := b.Lookup("count"); !ok || got.Name != "count" {
		t.Fatalf("Lookup = %+v, %v", got, ok)
	}
}

func TestRunCalibratesToEpochTime(t *testing.T) {
	cfg := Config{MinEpochIterations: 1, Epochs: 2, MinEpochTime: 2 * time.Millisecond}
	b, _ := quietBench(cfg)
	res := b.Run("sleep", func() { time.Sleep(100 * time.Microsecond) })
	if res.Iterations < 2 {
		t.Fatalf("iterations not scaled up: %d", res.Iterations)
	}
	if res.NsPerOp < 100_000 {
		t.Fatalf("ns/op %v below the sleep time", res.NsPerOp)
	}
}

func TestReport(t *testing.T) {
	b, buf := quietBench(Config{MinEpochIterations: 100, Epochs: 3})
	b.Run("noop", func() {})
	b.Run("sqrt", func() { DoNotOptimizeAway(math.Sqrt(2)) })
	b.Report()
	out := buf.String()
	for _, s := range []string{"| test", "`noop`", "`sqrt`", "ns/op"} {
		if !strings.Contains(out, s) {
			t.Fatalf("report missing %q:\n%s", s, out)
		}
	}
}

func TestCompare(t *testing.T) {
	b, buf := quietBench(Config{MinEpochIterations: 1000, Epochs: 11})
	b.Run("fast", func() { DoNotOptimizeAway(1) })
	b.Run("slow", func() {
		s := 0.0
		for i := 0; i < 50; i++ {
			s += math.Sqrt(float64(i))
		}
		DoNotOptimizeAway(s)
	})
	sp, err := b.Compare("slow", []float64{0.1})
	if err != nil {
		t.Fatal(err)
	}
	if len(sp) == 0 {
		t.Fatal("no comparisons returned")
	}
	for _, s := range sp {
		if s.Candidate != "fast" || s.Baseline != "slow" {
			t.Fatalf("unexpected pair %+v", s)
		}
		if s.Confidence < 0 || s.Confidence > 1 {
			t.Fatalf("confidence %v out of range", s.Confidence)
		}
	}
	b.ReportSpeedups(sp)
	if !strings.Contains(buf.String(), "fast vs slow") {
		t.Fatalf("speedups not reported:\n%s", buf.String())
	}
	if _, err := b.Compare("missing", DefaultThresholds); err == nil {
		t.Fatal("unknown baseline accepted")
	}
}

func TestChecksum(t *testing.T) {
	if got := Checksum([]float64{1, 2, 3.5}); got != 6.5 {
		t.Fatalf("Checksum = %v", got)
	}
}

func TestDebugChecksumOnlyWhenDebugging(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(os.Stderr)
	defer func(d bool) { Debug = d }(Debug)

	Debug = false
	DebugChecksum("off", []float64{1, 2})
	if buf.Len() != 0 {
		t.Fatalf("wrote %q with debugging off", buf.String())
	}
	Debug = true
	DebugChecksum("on", []float64{1, 2, 3.5})
	if got, want := buf.String(), "[DEBUG] on checksum 6.5\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHeader(t *testing.T) {
	h := Header()
	if !strings.Contains(h, runtime.GOARCH) || !strings.Contains(h, "hwy:") {
		t.Fatalf("header %q", h)
	}
}

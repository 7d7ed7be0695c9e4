package fastmath

import (
	"math"
	"testing"
)

func TestAcosAccuracy(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		tol  float64
	}{
		{"FastAcos", FastAcos, 1e-4},
		{"HastingsAcos", HastingsAcos, 1e-4},
		{"HastingsAcosSigned", HastingsAcosSigned, 1e-4},
		{"HastingsAcos4", HastingsAcos4, 5e-5},
		{"AGMAcos", AGMAcos, 2e-3},
		{"StdAcosf", func(x float64) float64 { return float64(StdAcosf(float32(x))) }, 1e-5},
	}
	xs := Grid(-1, 1, 20000, true)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worst := 0.0
			for _, x := range xs {
				if d := math.Abs(tt.f(x) - math.Acos(x)); d > worst {
					worst = d
				}
			}
			if worst > tt.tol {
				t.Fatalf("max error %g exceeds %g", worst, tt.tol)
			}
		})
	}
}

func TestAcosSpecialValues(t *testing.T) {
	if got := FastAcos(1.5); math.Abs(got) > 1e-12 {
		t.Errorf("FastAcos(1.5) = %v, want clamp to 0", got)
	}
	if got := FastAcos(-1.5); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("FastAcos(-1.5) = %v, want clamp to pi", got)
	}
	for _, f := range []func(float64) float64{HastingsAcos, HastingsAcos4, HastingsAcosSigned} {
		if got := f(1.5); !math.IsNaN(got) {
			t.Errorf("acos(1.5) = %v, want NaN", got)
		}
		if got := f(math.NaN()); !math.IsNaN(got) {
			t.Errorf("acos(NaN) = %v, want NaN", got)
		}
		if got := f(1); got != 0 {
			t.Errorf("acos(1) = %v, want 0", got)
		}
		if got := f(-1); math.Abs(got-math.Pi) > 1e-15 {
			t.Errorf("acos(-1) = %v, want pi", got)
		}
	}
}

func TestHastingsFormsAgree(t *testing.T) {
	for _, x := range Grid(-1, 1, 1000, true) {
		a, b, c := HastingsAcos(x), HastingsAcosSigned(x), FastAcos(x)
		if math.Abs(a-b) > 1e-14 || math.Abs(a-c) > 1e-12 {
			t.Fatalf("x=%v: HastingsAcos %v, HastingsAcosSigned %v, FastAcos %v", x, a, b, c)
		}
	}
}

func TestAtan2Accuracy(t *testing.T) {
	ys := Uniform(100000, -4, 4, Seed)
	xs := Uniform(100000, -4, 4, Seed+1)
	tests := []struct {
		name string
		f    func(y, x float64) float64
		tol  float64
	}{
		{"Atan2", Atan2, 2e-3},
		{"Atan24", Atan24, 2e-4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range ys {
				want := math.Atan2(ys[i], xs[i])
				if d := math.Abs(tt.f(ys[i], xs[i]) - want); d > tt.tol {
					t.Fatalf("(%v, %v): error %g exceeds %g", ys[i], xs[i], d, tt.tol)
				}
			}
		})
	}
}

func TestAtan2Quadrants(t *testing.T) {
	tests := []struct {
		y, x, want float64
	}{
		{1, 0, math.Pi / 2},
		{-1, 0, -math.Pi / 2},
		{1, math.Copysign(0, -1), math.Pi / 2},
		{0, 1, 0},
		{0, -1, math.Pi},
		{1, 1, math.Pi / 4},
		{1, -1, 3 * math.Pi / 4},
		{-1, -1, -3 * math.Pi / 4},
		{-1, 1, -math.Pi / 4},
		{3, 0.5, math.Atan2(3, 0.5)},
	}
	for _, tt := range tests {
		for _, f := range []func(y, x float64) float64{Atan2, Atan24} {
			if got := f(tt.y, tt.x); math.Abs(got-tt.want) > 2e-3 {
				t.Errorf("atan2(%v, %v) = %v, want %v", tt.y, tt.x, got, tt.want)
			}
		}
	}
	if got := Atan24(0, 0); !math.IsNaN(got) {
		t.Errorf("Atan24(0, 0) = %v, want NaN", got)
	}
}

func TestAtanOddSymmetry(t *testing.T) {
	for _, z := range Grid(0, 10, 500, true) {
		if Atan(-z) != -Atan(z) || Atan4(-z) != -Atan4(z) {
			t.Fatalf("atan is not odd at %v", z)
		}
	}
}

func TestAcosBatchMatchesScalar(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 7, 8, 9, 1001} {
		in := Uniform(n, -1, 1, Seed)
		out := make([]float64, n)
		AcosBatch(in, out)
		for i, x := range in {
			if d := math.Abs(out[i] - HastingsAcos4(x)); d > 1e-12 {
				t.Fatalf("n=%d x=%v: batch %v scalar %v", n, x, out[i], HastingsAcos4(x))
			}
		}
	}
}

func TestAcosBatchFloat32(t *testing.T) {
	in := []float32{-1, -0.57, 0, 0.457, 1}
	out := make([]float32, len(in))
	AcosBatch(in, out)
	for i, x := range in {
		if d := math.Abs(float64(out[i]) - math.Acos(float64(x))); d > 1e-4 {
			t.Fatalf("x=%v: got %v", x, out[i])
		}
	}
}

func TestAtan2BatchMatchesScalar(t *testing.T) {
	negZero := math.Copysign(0, -1)
	ys := append(Uniform(1003, -4, 4, Seed), 1, -1, 0, 2, -2, 1)
	xs := append(Uniform(1003, -4, 4, Seed+7), 0, 0, 0, -3, -3, negZero)
	out := make([]float64, len(ys))
	Atan2Batch(ys, xs, out)
	for i := range ys {
		want := Atan24(ys[i], xs[i])
		if math.IsNaN(want) {
			if !math.IsNaN(out[i]) {
				t.Fatalf("(%v, %v): batch %v, want NaN", ys[i], xs[i], out[i])
			}
			continue
		}
		if d := math.Abs(out[i] - want); d > 1e-12 {
			t.Fatalf("(%v, %v): batch %v scalar %v", ys[i], xs[i], out[i], want)
		}
	}
}

func TestBatchRespectsShortOutput(t *testing.T) {
	in := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	out := make([]float64, 2)
	AcosBatch(in, out)
	if out[0] == 0 || out[1] == 0 {
		t.Fatalf("outputs not written: %v", out)
	}
}

func TestOmega(t *testing.T) {
	// A square of side 2d seen from distance d covers a sixth of the sphere.
	if got, want := OmegaExact(2, 2, 1), 4*math.Pi/6; math.Abs(got-want) > 1e-12 {
		t.Fatalf("OmegaExact(2, 2, 1) = %v, want %v", got, want)
	}
	as := Uniform(5000, 0.01, 5, Seed)
	bs := Uniform(5000, 0.01, 5, Seed+1)
	ds := Uniform(5000, 0.05, 5, Seed+2)
	for i := range as {
		want := OmegaExact(as[i], bs[i], ds[i])
		if d := math.Abs(Omega1(as[i], bs[i], ds[i]) - want); d > 3e-4 {
			t.Fatalf("Omega1(%v, %v, %v) off by %g", as[i], bs[i], ds[i], d)
		}
		if d := math.Abs(Omega2(as[i], bs[i], ds[i]) - want); d > 1e-3 {
			t.Fatalf("Omega2(%v, %v, %v) off by %g", as[i], bs[i], ds[i], d)
		}
	}
}

func TestOmegaSign(t *testing.T) {
	if Omega1(0.457, -0.57, 0.9) <= 0 {
		t.Error("Omega1 should be unsigned")
	}
	if Omega2(0.457, -0.57, 0.9) >= 0 {
		t.Error("Omega2 should follow the sign of a*b")
	}
}

func TestUniform(t *testing.T) {
	a := Uniform(10000, -4, 4, Seed)
	b := Uniform(10000, -4, 4, Seed)
	var lo, hi bool
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed gave different draws")
		}
		if a[i] < -4 || a[i] >= 4 {
			t.Fatalf("draw %v out of range", a[i])
		}
		lo = lo || a[i] < -3.9
		hi = hi || a[i] > 3.9
	}
	if !lo || !hi {
		t.Fatal("draws do not cover the range")
	}
}

func TestGrid(t *testing.T) {
	if g := Grid(-4, 4, 8, true); len(g) != 9 || g[0] != -4 || g[8] != 4 {
		t.Fatalf("inclusive grid = %v", g)
	}
	if g := Grid(-1, 1, 4, false); len(g) != 4 || g[3] != 0.5 {
		t.Fatalf("exclusive grid = %v", g)
	}
	if g := Grid(0, 1, 0, true); g != nil {
		t.Fatalf("empty grid = %v", g)
	}
}

var sink float64

func BenchmarkAcos(b *testing.B) {
	funcs := []struct {
		name string
		f    func(float64) float64
	}{
		{"fast_acos", FastAcos},
		{"hastings_acos", HastingsAcos},
		{"hastings_acos_signed", HastingsAcosSigned},
		{"hastings_acos_4", HastingsAcos4},
		{"acosd", StdAcos},
		{"acosf", func(x float64) float64 { return float64(StdAcosf(float32(x))) }},
	}
	x, y := 0.457, -0.57
	for _, fn := range funcs {
		b.Run(fn.name, func(b *testing.B) {
			for b.Loop() {
				sink = fn.f(x) + fn.f(y)
			}
		})
	}
}

func BenchmarkAtan2(b *testing.B) {
	const n = 4096
	ys := Uniform(n, -4, 4, Seed)
	xs := Uniform(n, -4, 4, Seed+1)
	out := make([]float64, n)
	for _, fn := range []struct {
		name string
		f    func(y, x float64) float64
	}{{"atan2d", StdAtan2}, {"atan2_1", Atan2}, {"atan2_4", Atan24}} {
		b.Run(fn.name, func(b *testing.B) {
			for b.Loop() {
				Apply2(fn.f, ys, xs, out)
			}
		})
	}
	b.Run("atan2_4_batch", func(b *testing.B) {
		for b.Loop() {
			Atan2Batch(ys, xs, out)
		}
	})
}

func BenchmarkOmega(b *testing.B) {
	a, c, d := 0.457, -0.57, 0.9
	b.Run("omega_1", func(b *testing.B) {
		for b.Loop() {
			sink = Omega1(a, c, d)
		}
	})
	b.Run("omega_2", func(b *testing.B) {
		for b.Loop() {
			sink = Omega2(a, c, d)
		}
	})
}

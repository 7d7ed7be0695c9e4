package fastmath

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// AcosBatch writes HastingsAcos4(in[i]) to out[i] using vector lanes.
func AcosBatch[T hwy.Floats](in, out []T) {
	size := min(len(in), len(out))

	zero := hwy.Zero[T]()
	one := hwy.Set(T(1))
	pi := hwy.Set(T(math.Pi))
	a0 := hwy.Set(T(hastings4A0))
	a1 := hwy.Set(T(hastings4A1))
	a2 := hwy.Set(T(hastings4A2))
	a3 := hwy.Set(T(hastings4A3))

	kernel := func(x hwy.Vec[T]) hwy.Vec[T] {
		nonNeg := hwy.GreaterEqual(x, zero)
		ax := hwy.IfThenElse(nonNeg, x, hwy.Neg(x))
		ret := hwy.FMA(a3, ax, a2)
		ret = hwy.FMA(ret, ax, a1)
		ret = hwy.FMA(ret, ax, a0)
		ret = hwy.Mul(ret, hwy.Sqrt(hwy.Sub(one, ax)))
		return hwy.IfThenElse(nonNeg, ret, hwy.Sub(pi, ret))
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			hwy.Store(kernel(hwy.Load(in[offset:])), out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			hwy.MaskStore(mask, kernel(hwy.MaskLoad(mask, in[offset:])), out[offset:])
		},
	)
}

// Atan2Batch writes Atan24(ys[i], xs[i]) to out[i] using vector lanes.
func Atan2Batch[T hwy.Floats](ys, xs, out []T) {
	size := min(len(ys), len(xs), len(out))

	zero := hwy.Zero[T]()
	one := hwy.Set(T(1))
	pi := hwy.Set(T(math.Pi))
	halfPi := hwy.Set(T(math.Pi / 2))
	a0 := hwy.Set(T(7.85534551672149362e-01))
	a1 := hwy.Set(T(2.17350373225576182e-01))
	a2 := hwy.Set(T(-1.39301583348149155e-01))
	a3 := hwy.Set(T(-1.44923156111041140e+00))

	kernel := func(y, x hwy.Vec[T]) hwy.Vec[T] {
		// -0 + 0 is +0, so x == -0 takes the x == 0 path of Atan24.
		x = hwy.Add(x, zero)
		z := hwy.Div(y, x)
		zNonNeg := hwy.GreaterEqual(z, zero)
		abz := hwy.IfThenElse(zNonNeg, z, hwy.Neg(z))
		small := hwy.GreaterEqual(one, abz)
		u := hwy.IfThenElse(small, abz, hwy.Div(one, abz))

		p := hwy.Mul(hwy.Mul(a2, u), hwy.Add(a3, u))
		p = hwy.Add(a1, p)
		p = hwy.Sub(a0, hwy.Mul(hwy.Sub(u, one), p))
		p = hwy.Mul(u, p)

		t := hwy.IfThenElse(small, p, hwy.Sub(halfPi, p))
		t = hwy.IfThenElse(zNonNeg, t, hwy.Neg(t))
		shift := hwy.IfThenElse(hwy.GreaterEqual(y, zero), pi, hwy.Neg(pi))
		return hwy.IfThenElse(hwy.GreaterEqual(x, zero), t, hwy.Add(t, shift))
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			hwy.Store(kernel(hwy.Load(ys[offset:]), hwy.Load(xs[offset:])), out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			y := hwy.MaskLoad(mask, ys[offset:])
			x := hwy.MaskLoad(mask, xs[offset:])
			hwy.MaskStore(mask, kernel(y, x), out[offset:])
		},
	)
}

// Apply writes f(in[i]) to out[i].
func Apply(f func(float64) float64, in, out []float64) {
	for i := range min(len(in), len(out)) {
		out[i] = f(in[i])
	}
}

// Apply2 writes f(ys[i], xs[i]) to out[i].
func Apply2(f func(y, x float64) float64, ys, xs, out []float64) {
	for i := range min(len(ys), len(xs), len(out)) {
		out[i] = f(ys[i], xs[i])
	}
}

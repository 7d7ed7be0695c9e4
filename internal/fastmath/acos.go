// Package fastmath holds polynomial approximations of acos, atan and
// atan2, vectorised batch forms of them, and the solid-angle functions
// built on top.
package fastmath

import "math"

// Hastings coefficients, highest order first.
const (
	hastingsA3 = -0.0187293
	hastingsA2 = 0.0742610
	hastingsA1 = -0.2121144
	hastingsA0 = 1.5707288
)

// Refit of the same cubic.
const (
	hastings4A3 = -2.08730442907856008e-02
	hastings4A2 = 7.68769404161671888e-02
	hastings4A1 = -2.12871094165645952e-01
	hastings4A0 = 1.57075835365209659e+00
)

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// FastAcos is the branch-free Hastings acos used in LArSim. |x| is
// clamped to 1.
func FastAcos(x float64) float64 {
	negate := b2f(x < 0)
	x = math.Abs(x)
	x -= b2f(x > 1) * (x - 1)
	ret := hastingsA3
	ret = ret * x
	ret = ret + hastingsA2
	ret = ret * x
	ret = ret + hastingsA1
	ret = ret * x
	ret = ret + hastingsA0
	ret = ret * math.Sqrt(1-x)
	ret = ret - 2*negate*ret
	return negate*3.14159265358979 + ret
}

// HastingsAcosSigned applies the reflection for negative x as
// factor*r + term instead of a branch on the result.
func HastingsAcosSigned(xin float64) float64 {
	x := xin
	term := 0.0
	factor := 1.0
	if xin < 0 {
		x *= -1
		factor = -1
		term = math.Pi
	}
	ret := hastingsA3
	ret *= x
	ret += hastingsA2
	ret *= x
	ret += hastingsA1
	ret *= x
	ret += hastingsA0
	ret *= math.Sqrt(1 - x)
	return factor*ret + term
}

// HastingsAcos returns NaN for |x| > 1.
func HastingsAcos(xin float64) float64 {
	x := math.Abs(xin)
	ret := hastingsA3
	ret *= x
	ret += hastingsA2
	ret *= x
	ret += hastingsA1
	ret *= x
	ret += hastingsA0
	ret *= math.Sqrt(1 - x)
	if xin >= 0 {
		return ret
	}
	return math.Pi - ret
}

// HastingsAcos4 is HastingsAcos with refitted coefficients.
func HastingsAcos4(xin float64) float64 {
	x := math.Abs(xin)
	ret := hastings4A3
	ret *= x
	ret += hastings4A2
	ret *= x
	ret += hastings4A1
	ret *= x
	ret += hastings4A0
	ret *= math.Sqrt(1 - x)
	if xin >= 0 {
		return ret
	}
	return math.Pi - ret
}

const agmTolerance = 1e-3

func agmAcosUnit(x float64) float64 {
	l := math.Sqrt(1 - x*x)
	a, b := x, 1.0
	for math.Abs(a-b) > agmTolerance {
		a = 0.5 * (a + b)
		b = math.Sqrt(a * b)
	}
	return l / a
}

// AGMAcos evaluates acos through the arithmetic-geometric mean. It is far
// slower than the polynomials even at this loose tolerance, so it is only
// used for accuracy tables.
func AGMAcos(xin float64) float64 {
	res := agmAcosUnit(math.Abs(xin))
	if xin >= 0 {
		return res
	}
	return math.Pi - res
}

func StdAcos(x float64) float64 { return math.Acos(x) }

// StdAcosf is acos evaluated at single precision.
func StdAcosf(x float32) float32 { return float32(math.Acos(float64(x))) }

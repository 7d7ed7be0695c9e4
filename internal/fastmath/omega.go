package fastmath

import "math"

func halfAngles(a, b, d float64) (alpha, beta float64) {
	return a / (2 * d), b / (2 * d)
}

// Omega1 returns the solid angle subtended by an a×b rectangle seen from
// distance d on its axis, through acos. The result is unsigned.
func Omega1(a, b, d float64) float64 {
	alpha, beta := halfAngles(a, b, d)
	numerator := 1 + alpha*alpha + beta*beta
	denominator := (1 + alpha*alpha) * (1 + beta*beta)
	x := math.Sqrt(numerator / denominator)
	return 4 * HastingsAcos4(x)
}

// Omega2 is Omega1 through atan2. Its sign follows a*b.
func Omega2(a, b, d float64) float64 {
	alpha, beta := halfAngles(a, b, d)
	return 4 * Atan24(alpha*beta, math.Sqrt(1+alpha*alpha+beta*beta))
}

// OmegaExact is Omega2 on math.Atan2.
func OmegaExact(a, b, d float64) float64 {
	alpha, beta := halfAngles(a, b, d)
	return 4 * math.Atan2(alpha*beta, math.Sqrt(1+alpha*alpha+beta*beta))
}

package fastmath

import "math"

// atanUnit approximates atan on 0 < z <= 1.
func atanUnit(z float64) float64 {
	const (
		a0 = 7.84086493111993965e-01
		a1 = 2.43049810801771404e-01
		a2 = 7.67849627218896019e-02
	)
	return z * (a0 - (z-1)*(a1+a2*z))
}

// atanUnit4 approximates atan on 0 < z <= 1.
func atanUnit4(z float64) float64 {
	const (
		a0 = 7.85534551672149362e-01
		a1 = 2.17350373225576182e-01
		a2 = -1.39301583348149155e-01
		a3 = -1.44923156111041140e+00
	)
	return z * (a0 - (z-1)*(a1+a2*z*(a3+z)))
}

func atanWith(unit func(float64) float64, z float64) float64 {
	abz := math.Abs(z)
	var tmp float64
	if abz <= 1 {
		tmp = unit(abz)
	} else {
		tmp = math.Pi/2 - unit(1/abz)
	}
	if z >= 0 {
		return tmp
	}
	return -tmp
}

// Atan is accurate to about 1.3e-3 rad.
func Atan(z float64) float64 { return atanWith(atanUnit, z) }

// Atan4 is accurate to about 1.4e-4 rad.
func Atan4(z float64) float64 { return atanWith(atanUnit4, z) }

func atan2With(atan func(float64) float64, y, x float64) float64 {
	if x == 0 {
		if y > 0 {
			return math.Pi / 2
		}
		if y < 0 {
			return -math.Pi / 2
		}
		return math.NaN()
	}
	tmp := atan(y / x)
	if x > 0 {
		return tmp
	}
	if y >= 0 {
		return math.Pi + tmp
	}
	return -math.Pi + tmp
}

// Atan2 follows math.Atan2 except that Atan2(0, 0) is NaN.
func Atan2(y, x float64) float64 { return atan2With(Atan, y, x) }

// Atan24 is Atan2 on the cubic fit.
func Atan24(y, x float64) float64 { return atan2With(Atan4, y, x) }

func StdAtan2(y, x float64) float64 { return math.Atan2(y, x) }

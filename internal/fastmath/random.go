package fastmath

import "github.com/MichaelTJones/pcg"

// Seed is the default seed for Uniform.
const Seed = 123

// Uniform returns n draws from [lo, hi).
func Uniform(n int, lo, hi float64, seed uint64) []float64 {
	r := pcg.NewPCG32()
	r.Seed(seed, 0xda3e39cb94b95bdb)
	vals := make([]float64, n)
	for i := range vals {
		// 53 random bits, as for a float64 mantissa.
		u := uint64(r.Random())<<21 | uint64(r.Random())>>11
		vals[i] = lo + (hi-lo)*(float64(u)/(1<<53))
	}
	return vals
}

// Grid returns n evenly spaced points starting at lo with step
// (hi-lo)/n, plus hi itself when inclusive is set.
func Grid(lo, hi float64, n int, inclusive bool) []float64 {
	if n <= 0 {
		return nil
	}
	d := (hi - lo) / float64(n)
	m := n
	if inclusive {
		m++
	}
	pts := make([]float64, m)
	for i := range pts {
		pts[i] = lo + float64(i)*d
	}
	return pts
}

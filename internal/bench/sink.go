package bench

import "github.com/tphakala/simd/f64"

var sink float64

// DoNotOptimizeAway keeps v observable so the computation producing it
// is not dropped.
func DoNotOptimizeAway[T number](v T) { sink += float64(v) }

// Checksum sums vals so debug output can show that variants computed
// matching slices.
func Checksum(vals []float64) float64 { return f64.Sum(vals) }

// DebugChecksum logs the checksum of vals under name. The sum is only
// computed when debugging.
func DebugChecksum(name string, vals []float64) {
	if !Debug {
		return
	}
	Debugf("%s checksum %g", name, Checksum(vals))
}

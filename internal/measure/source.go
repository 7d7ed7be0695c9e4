package measure

import "github.com/MichaelTJones/pcg"

const (
	// Seed is the generator seed every fill starts from.
	Seed = 123
	// MaxPhots is the largest value drawn for a tick or a photon count.
	MaxPhots = 1000

	pcgStream = 0xda3e39cb94b95bdb
)

// Source draws integers uniformly from [0, MaxPhots].
type Source struct {
	r *pcg.PCG32
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	r := pcg.NewPCG32()
	r.Seed(seed, pcgStream)
	return &Source{r: r}
}

// Next returns the next draw.
func (s *Source) Next() int32 {
	return int32(s.r.Bounded(MaxPhots + 1))
}

// Generate fills dst with draws.
func (s *Source) Generate(dst []int32) {
	for i := range dst {
		dst[i] = s.Next()
	}
}

// columns draws all n ticks, then all n photon counts.
func columns(n int) (ticks, nphots []int32) {
	if n < 0 {
		n = 0
	}
	src := NewSource(Seed)
	ticks = make([]int32, n)
	nphots = make([]int32, n)
	src.Generate(ticks)
	src.Generate(nphots)
	return ticks, nphots
}

// records draws n records, tick then photon count for each.
func records(n int, emit func(Record)) {
	src := NewSource(Seed)
	for i := 0; i < n; i++ {
		var r Record
		r.Tick = src.Next()
		r.NPhot = src.Next()
		emit(r)
	}
}

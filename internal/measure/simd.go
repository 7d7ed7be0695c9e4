package measure

import "github.com/ajroetker/go-highway/hwy"

// laneChunk bounds how many values are folded into the int32 lane
// accumulators before they are reduced: MaxPhots*laneChunk fits in an
// int32.
const laneChunk = 1 << 16

// SOAVectorSIMD is a SOAVector whose Sum runs on vector lanes.
type SOAVectorSIMD struct {
	SOAVector
}

func (v *SOAVectorSIMD) Name() string { return "soa_vector_simd" }

func (v *SOAVectorSIMD) Sum() int { return SumLanes(v.NPhots) }

// SumLanes adds vals using go-highway vectors.
func SumLanes(vals []int32) int {
	total := 0
	for start := 0; start < len(vals); start += laneChunk {
		chunk := vals[start:min(start+laneChunk, len(vals))]
		acc := hwy.Zero[int32]()
		hwy.ProcessWithTail[int32](len(chunk),
			func(offset int) {
				acc = hwy.Add(acc, hwy.Load(chunk[offset:]))
			},
			func(offset, count int) {
				mask := hwy.TailMask[int32](count)
				acc = hwy.Add(acc, hwy.MaskLoad(mask, chunk[offset:]))
			},
		)
		total += int(hwy.ReduceSum(acc))
	}
	return total
}

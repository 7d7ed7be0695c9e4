package measure

import (
	"github.com/google/btree"
)

const btreeDegree = 32

// OrderedMap keeps one photon count per tick, iterated in tick order.
type OrderedMap struct {
	tree *btree.BTreeG[Record]
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{tree: newTree()}
}

func newTree() *btree.BTreeG[Record] {
	return btree.NewG(btreeDegree, func(a, b Record) bool { return a.Tick < b.Tick })
}

// t returns the tree, creating it on first use so the zero OrderedMap
// is empty and ready.
func (m *OrderedMap) t() *btree.BTreeG[Record] {
	if m.tree == nil {
		m.tree = newTree()
	}
	return m.tree
}

func (m *OrderedMap) Name() string { return "map" }

// Fill inserts the generated pairs in order; a repeated tick keeps the
// count it was first inserted with.
func (m *OrderedMap) Fill(n int) {
	m.Clear()
	ticks, nphots := columns(n)
	for i := range ticks {
		m.Insert(ticks[i], nphots[i])
	}
}

// Insert adds the pair unless tick is already present, and reports
// whether it did.
func (m *OrderedMap) Insert(tick, nphot int32) bool {
	r := Record{Tick: tick, NPhot: nphot}
	if m.t().Has(r) {
		return false
	}
	m.t().ReplaceOrInsert(r)
	return true
}

func (m *OrderedMap) Len() int { return m.t().Len() }

func (m *OrderedMap) Sum() int {
	sum := 0
	m.t().Ascend(func(r Record) bool {
		sum += int(r.NPhot)
		return true
	})
	return sum
}

func (m *OrderedMap) FindLargest() Result {
	res := NoResult()
	m.t().Ascend(func(r Record) bool {
		if res.Value < r.NPhot {
			res.Key = r.Tick
			res.Value = r.NPhot
		}
		return true
	})
	return res
}

func (m *OrderedMap) Clear() { m.t().Clear(false) }

// Footprint counts the items plus one child pointer per item, which is
// roughly what the interior nodes add on top.
func (m *OrderedMap) Footprint() int { return m.t().Len() * (recordSize + 8) }

// HashMap keeps one photon count per tick in a Go map.
type HashMap struct {
	m map[int32]int32
}

func NewHashMap() *HashMap { return &HashMap{m: map[int32]int32{}} }

func (h *HashMap) Name() string { return "hashmap" }

func (h *HashMap) Fill(n int) {
	h.Clear()
	ticks, nphots := columns(n)
	for i := range ticks {
		h.Insert(ticks[i], nphots[i])
	}
}

// Insert adds the pair unless tick is already present, and reports
// whether it did.
func (h *HashMap) Insert(tick, nphot int32) bool {
	if _, ok := h.m[tick]; ok {
		return false
	}
	if h.m == nil {
		h.m = map[int32]int32{}
	}
	h.m[tick] = nphot
	return true
}

func (h *HashMap) Len() int { return len(h.m) }

func (h *HashMap) Sum() int {
	sum := 0
	for _, v := range h.m {
		sum += int(v)
	}
	return sum
}

// FindLargest breaks ties by map iteration order, which Go randomises.
func (h *HashMap) FindLargest() Result {
	res := NoResult()
	for k, v := range h.m {
		if res.Value < v {
			res.Key = k
			res.Value = v
		}
	}
	return res
}

func (h *HashMap) Clear() { clear(h.m) }

// Footprint assumes one control byte per slot on top of key and value.
func (h *HashMap) Footprint() int { return len(h.m) * (recordSize + 1) }

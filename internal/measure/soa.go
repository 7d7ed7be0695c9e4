package measure

import "github.com/gammazero/deque"

// SOAVector keeps ticks and photon counts in two parallel slices.
type SOAVector struct {
	Ticks  []int32
	NPhots []int32
}

func (v *SOAVector) Name() string { return "soa_vector" }

func (v *SOAVector) Fill(n int) {
	v.Ticks, v.NPhots = columns(n)
}

func (v *SOAVector) Len() int { return len(v.NPhots) }

func (v *SOAVector) Sum() int {
	sum := 0
	for _, p := range v.NPhots {
		sum += int(p)
	}
	return sum
}

func (v *SOAVector) FindLargest() Result {
	res := NoResult()
	for i := range v.NPhots {
		if res.Value < v.NPhots[i] {
			res.Key = v.Ticks[i]
			res.Value = v.NPhots[i]
		}
	}
	return res
}

func (v *SOAVector) Clear() {
	v.Ticks = v.Ticks[:0]
	v.NPhots = v.NPhots[:0]
}

func (v *SOAVector) Footprint() int { return 4 * (cap(v.Ticks) + cap(v.NPhots)) }

// SOADeque keeps ticks and photon counts in two parallel deques.
type SOADeque struct {
	ticks  deque.Deque[int32]
	nphots deque.Deque[int32]
}

func (d *SOADeque) Name() string { return "soa_deque" }

func (d *SOADeque) Fill(n int) {
	d.Clear()
	ticks, nphots := columns(n)
	for i := range ticks {
		d.ticks.PushBack(ticks[i])
		d.nphots.PushBack(nphots[i])
	}
}

func (d *SOADeque) Len() int { return d.nphots.Len() }

func (d *SOADeque) Sum() int {
	sum := 0
	for i, n := 0, d.nphots.Len(); i < n; i++ {
		sum += int(d.nphots.At(i))
	}
	return sum
}

func (d *SOADeque) FindLargest() Result {
	res := NoResult()
	for i, n := 0, d.nphots.Len(); i < n; i++ {
		if p := d.nphots.At(i); res.Value < p {
			res.Key = d.ticks.At(i)
			res.Value = p
		}
	}
	return res
}

func (d *SOADeque) Clear() {
	d.ticks.Clear()
	d.nphots.Clear()
}

func (d *SOADeque) Footprint() int { return 4 * (d.ticks.Len() + d.nphots.Len()) }

// SOAList keeps ticks and photon counts in two parallel singly linked
// lists.
type SOAList struct {
	ticks  slist[int32]
	nphots slist[int32]
}

func (s *SOAList) Name() string { return "soa_slist" }

func (s *SOAList) Fill(n int) {
	s.Clear()
	ticks, nphots := columns(n)
	for i := range ticks {
		s.ticks.pushBack(ticks[i])
		s.nphots.pushBack(nphots[i])
	}
}

func (s *SOAList) Len() int { return s.nphots.len() }

func (s *SOAList) Sum() int {
	sum := 0
	for p := s.nphots.head; p != nil; p = p.next {
		sum += int(p.val)
	}
	return sum
}

// FindLargest walks both lists in lockstep.
func (s *SOAList) FindLargest() Result {
	res := NoResult()
	for t, p := s.ticks.head, s.nphots.head; p != nil; t, p = t.next, p.next {
		if res.Value < p.val {
			res.Key = t.val
			res.Value = p.val
		}
	}
	return res
}

func (s *SOAList) Clear() {
	s.ticks.clear()
	s.nphots.clear()
}

func (s *SOAList) Footprint() int {
	return s.ticks.len()*s.ticks.nodeSize() + s.nphots.len()*s.nphots.nodeSize()
}

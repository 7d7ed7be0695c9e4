package measure

import "github.com/gammazero/deque"

// AOSVector stores records contiguously.
type AOSVector struct {
	recs []Record
}

func (v *AOSVector) Name() string { return "aos_vector" }

func (v *AOSVector) Fill(n int) {
	v.Clear()
	if n > 0 {
		v.recs = make([]Record, 0, n)
	}
	records(n, func(r Record) { v.recs = append(v.recs, r) })
}

func (v *AOSVector) Len() int { return len(v.recs) }

// Records exposes the backing slice.
func (v *AOSVector) Records() []Record { return v.recs }

func (v *AOSVector) Sum() int {
	sum := 0
	for i := range v.recs {
		sum += int(v.recs[i].NPhot)
	}
	return sum
}

func (v *AOSVector) FindLargest() Result {
	res := NoResult()
	for _, r := range v.recs {
		if res.Value < r.NPhot {
			res.Key = r.Tick
			res.Value = r.NPhot
		}
	}
	return res
}

func (v *AOSVector) Clear() { v.recs = v.recs[:0] }

func (v *AOSVector) Footprint() int { return cap(v.recs) * recordSize }

// AOSDeque stores records in a ring-buffer deque.
type AOSDeque struct {
	q deque.Deque[Record]
}

func (d *AOSDeque) Name() string { return "aos_deque" }

func (d *AOSDeque) Fill(n int) {
	d.Clear()
	records(n, d.q.PushBack)
}

func (d *AOSDeque) Len() int { return d.q.Len() }

func (d *AOSDeque) Sum() int {
	sum := 0
	for i, n := 0, d.q.Len(); i < n; i++ {
		sum += int(d.q.At(i).NPhot)
	}
	return sum
}

func (d *AOSDeque) FindLargest() Result {
	res := NoResult()
	for i, n := 0, d.q.Len(); i < n; i++ {
		r := d.q.At(i)
		if res.Value < r.NPhot {
			res.Key = r.Tick
			res.Value = r.NPhot
		}
	}
	return res
}

func (d *AOSDeque) Clear() { d.q.Clear() }

func (d *AOSDeque) Footprint() int { return d.q.Len() * recordSize }

// AOSList stores records in a singly linked list, one node per record.
type AOSList struct {
	l slist[Record]
}

func (s *AOSList) Name() string { return "aos_slist" }

func (s *AOSList) Fill(n int) {
	s.Clear()
	records(n, s.l.pushBack)
}

func (s *AOSList) Len() int { return s.l.len() }

func (s *AOSList) Sum() int {
	sum := 0
	for p := s.l.head; p != nil; p = p.next {
		sum += int(p.val.NPhot)
	}
	return sum
}

func (s *AOSList) FindLargest() Result {
	res := NoResult()
	for p := s.l.head; p != nil; p = p.next {
		if res.Value < p.val.NPhot {
			res.Key = p.val.Tick
			res.Value = p.val.NPhot
		}
	}
	return res
}

func (s *AOSList) Clear() { s.l.clear() }

func (s *AOSList) Footprint() int { return s.l.len() * s.l.nodeSize() }

package measure

// AOSPointers stores each record in its own allocation.
type AOSPointers struct {
	recs []*Record
}

func (v *AOSPointers) Name() string { return "aos_pointers" }

func (v *AOSPointers) Fill(n int) {
	v.Clear()
	records(n, func(r Record) {
		rec := r
		v.recs = append(v.recs, &rec)
	})
}

func (v *AOSPointers) Len() int { return len(v.recs) }

func (v *AOSPointers) Sum() int {
	sum := 0
	for _, r := range v.recs {
		sum += int(r.NPhot)
	}
	return sum
}

func (v *AOSPointers) FindLargest() Result {
	res := NoResult()
	for _, r := range v.recs {
		if res.Value < r.NPhot {
			res.Key = r.Tick
			res.Value = r.NPhot
		}
	}
	return res
}

func (v *AOSPointers) Clear() {
	clear(v.recs)
	v.recs = v.recs[:0]
}

func (v *AOSPointers) Footprint() int { return cap(v.recs)*8 + len(v.recs)*recordSize }

// AOSArena is AOSPointers with every record carved from one backing
// slice.
type AOSArena struct {
	arena []Record
	recs  []*Record
}

func (v *AOSArena) Name() string { return "aos_arena" }

func (v *AOSArena) Fill(n int) {
	v.Clear()
	if n <= 0 {
		return
	}
	v.arena = make([]Record, 0, n)
	v.recs = make([]*Record, 0, n)
	records(n, func(r Record) {
		v.arena = append(v.arena, r)
		v.recs = append(v.recs, &v.arena[len(v.arena)-1])
	})
}

func (v *AOSArena) Len() int { return len(v.recs) }

func (v *AOSArena) Sum() int {
	sum := 0
	for _, r := range v.recs {
		sum += int(r.NPhot)
	}
	return sum
}

func (v *AOSArena) FindLargest() Result {
	res := NoResult()
	for _, r := range v.recs {
		if res.Value < r.NPhot {
			res.Key = r.Tick
			res.Value = r.NPhot
		}
	}
	return res
}

func (v *AOSArena) Clear() {
	v.arena, v.recs = nil, nil
}

func (v *AOSArena) Footprint() int { return cap(v.recs)*8 + cap(v.arena)*recordSize }

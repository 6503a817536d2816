package splay

// Stats counts restructuring work done on a tree and on all trees merged
// into it. Every tree owns its counters: a split hands them to the left half
// only, and a merge adds up the counters of both arguments, so no unit of
// work is counted twice.
type Stats struct {
	Rotations int64 // single rotations
	Splays    int64 // splay operations, including no-op splays of a root
	Finds     int64 // rank lookups
}

func (s *Stats) rotated() {
	if s != nil {
		s.Rotations++
	}
}

func (s *Stats) splayed() {
	if s != nil {
		s.Splays++
	}
}

func (s *Stats) found() {
	if s != nil {
		s.Finds++
	}
}

// absorb adds the counters of other to s.
func (s *Stats) absorb(other *Stats) {
	if s == nil || other == nil || s == other {
		return
	}
	s.Rotations += other.Rotations
	s.Splays += other.Splays
	s.Finds += other.Finds
}

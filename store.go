package tcellsixel

import "sort"

// store holds the live placements keyed by id, together with the running
// byte total the governor budgets against. Identifiers start at 1 and are
// never reused within a session.
type store struct {
	placements map[uint64]*Placement
	nextID     uint64
	totalBytes int
}

func newStore() *store {
	return &store{
		placements: make(map[uint64]*Placement),
		nextID:     1,
	}
}

func (s *store) count() int {
	return len(s.placements)
}

// insert assigns the next identifier and adds the placement.
func (s *store) insert(p *Placement) {
	p.ID = s.nextID
	s.nextID++
	s.placements[p.ID] = p
	s.totalBytes += p.Size()
}

func (s *store) remove(id uint64) {
	p, ok := s.placements[id]
	if !ok {
		return
	}
	s.totalBytes -= p.Size()
	delete(s.placements, id)
}

// oldest returns the placement with the smallest identifier.
func (s *store) oldest() *Placement {
	var oldest *Placement
	for _, p := range s.placements {
		if oldest == nil || p.ID < oldest.ID {
			oldest = p
		}
	}
	return oldest
}

// enforce evicts oldest placements until the count and byte budgets are both
// met. If a single placement alone exceeds the byte budget it stays
// resident; rejecting the image outright would be worse than briefly
// running over.
func (s *store) enforce(maxPlacements, maxBytes int) (evicted int) {
	for s.count() > maxPlacements || s.totalBytes > maxBytes {
		if s.count() <= 1 && s.count() <= maxPlacements {
			break
		}
		p := s.oldest()
		if p == nil {
			break
		}
		s.remove(p.ID)
		evicted++
	}
	return evicted
}

// ordered returns the placements sorted by ascending identifier.
func (s *store) ordered() []*Placement {
	out := make([]*Placement, 0, len(s.placements))
	for _, p := range s.placements {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

package entity

import "sort"

// IDSet is an immutable set of user ids. The zero value is empty.
type IDSet struct {
	ids map[uint]struct{}
}

func NewIDSet(ids ...uint) IDSet {
	s := IDSet{ids: make(map[uint]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id uint) bool {
	_, ok := s.ids[id]
	return ok
}

func (s IDSet) Len() int { return len(s.ids) }

// With returns a copy that also contains id.
func (s IDSet) With(id uint) IDSet {
	if s.Has(id) {
		return s
	}
	next := s.clone(len(s.ids) + 1)
	next.ids[id] = struct{}{}
	return next
}

// Without returns a copy that no longer contains id.
func (s IDSet) Without(id uint) IDSet {
	if !s.Has(id) {
		return s
	}
	next := s.clone(len(s.ids))
	delete(next.ids, id)
	return next
}

// Slice returns the members in ascending order.
func (s IDSet) Slice() []uint {
	out := make([]uint, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s IDSet) clone(capacity int) IDSet {
	next := IDSet{ids: make(map[uint]struct{}, capacity)}
	for id := range s.ids {
		next.ids[id] = struct{}{}
	}
	return next
}

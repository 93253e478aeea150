package automaton

import "slices"

// IDSet is a hashable set of state ids. The two implementations are the
// mutable StateSet, used while a subset is still being assembled, and the
// immutable FrozenStateSet, the canonical form used as a map key.
type IDSet interface {
	Hashable

	IDs() []StateID
	Size() int
}

var (
	_ IDSet = (*StateSet)(nil)
	_ IDSet = (*FrozenStateSet)(nil)
)

// StateSet is a mutable set of state ids with a lazily maintained hash.
type StateSet struct {
	inner       map[StateID]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(ids ...StateID) *StateSet {
	s := &StateSet{inner: make(map[StateID]struct{})}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *StateSet) Add(id StateID) {
	if _, ok := s.inner[id]; ok {
		return
	}
	s.inner[id] = struct{}{}
	s.hashUpdated = false
}

func (s *StateSet) Remove(id StateID) {
	if _, ok := s.inner[id]; !ok {
		return
	}
	delete(s.inner, id)
	s.hashUpdated = false
}

func (s *StateSet) Has(id StateID) bool {
	_, ok := s.inner[id]
	return ok
}

func (s *StateSet) Size() int { return len(s.inner) }

// IDs returns the members, sorted.
func (s *StateSet) IDs() []StateID {
	return sortedIDs(s.inner)
}

// Hash sums the mixed member ids; the mix keeps sums of small sequential ids
// from colliding. Order-independent, so equal sets hash equally.
func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for id := range s.inner {
		s.hashCode += mix64(uint64(id))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	set, ok := other.(IDSet)
	if !ok {
		return false
	}
	if s.Size() != set.Size() {
		return false
	}
	return slices.Equal(s.IDs(), set.IDs())
}

// Freeze returns the canonical immutable form of the set.
func (s *StateSet) Freeze() *FrozenStateSet {
	return NewFrozenStateSet(s.IDs())
}

// FrozenStateSet is an immutable, sorted, deduplicated set of state ids with
// a precomputed hash. Equal member sets always freeze to equal values, which
// is what lets subsets and partition blocks key a HashMap.
type FrozenStateSet struct {
	ids      []StateID
	hashCode uint64
}

func NewFrozenStateSet(ids []StateID) *FrozenStateSet {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	hash := uint64(len(sorted))
	for _, id := range sorted {
		hash += mix64(uint64(id))
	}
	return &FrozenStateSet{ids: sorted, hashCode: hash}
}

// IDs returns the members, sorted. Callers must not mutate the slice.
func (f *FrozenStateSet) IDs() []StateID { return f.ids }

func (f *FrozenStateSet) Size() int { return len(f.ids) }

func (f *FrozenStateSet) Has(id StateID) bool {
	_, ok := slices.BinarySearch(f.ids, id)
	return ok
}

func (f *FrozenStateSet) Hash() uint64 { return f.hashCode }

func (f *FrozenStateSet) Equals(other Hashable) bool {
	set, ok := other.(IDSet)
	if !ok {
		return false
	}
	if len(f.ids) != set.Size() {
		return false
	}
	return slices.Equal(f.ids, set.IDs())
}

func sortedIDs(set map[StateID]struct{}) []StateID {
	ids := make([]StateID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

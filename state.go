package automaton

import "slices"

// StateID identifies a state within one automaton. Ids are assigned by a
// monotonic counter and never reused after a state is removed, so references
// held outside the automaton stay stable across deletions.
type StateID uint64

// Epsilon is the reserved empty-transition symbol. AddTransition normalizes
// the empty string to Epsilon, so both spellings denote the same transition.
const Epsilon = "ε"

// State is a named vertex with initial/final flags and an outgoing transition
// table mapping each target state to the set of symbols leading there. Names
// may repeat across states; ids may not. The label holds the origin-state ids
// when the state was synthesized by subset construction or minimization; it
// is introspection metadata and plays no part in simulation.
//
// Neither the transition table nor the symbol sets have a meaningful
// iteration order.
type State struct {
	name        string
	initialFlag bool
	finalFlag   bool
	transitions map[StateID]map[string]struct{}
	label       []StateID
}

func NewState(name string) *State {
	return &State{
		name:        name,
		transitions: make(map[StateID]map[string]struct{}),
	}
}

func (s *State) Name() string { return s.name }

func (s *State) IsInitial() bool { return s.initialFlag }

func (s *State) IsFinal() bool { return s.finalFlag }

// Label returns the origin-state ids of a synthesized state, sorted. Empty
// for hand-built states.
func (s *State) Label() []StateID {
	return slices.Clone(s.label)
}

// AddTransition inserts symbol into the target's symbol set. Idempotent. It
// reports whether the symbol already appeared on any transition out of this
// state, which the owning automaton uses to spot duplicate-symbol
// nondeterminism.
func (s *State) AddTransition(target StateID, symbol string) bool {
	existed := false
	for _, symbols := range s.transitions {
		if _, ok := symbols[symbol]; ok {
			existed = true
			break
		}
	}
	set, ok := s.transitions[target]
	if !ok {
		set = make(map[string]struct{})
		s.transitions[target] = set
	}
	set[symbol] = struct{}{}
	return existed
}

// RemoveTransition drops symbol from the edge to target.
func (s *State) RemoveTransition(target StateID, symbol string) {
	set, ok := s.transitions[target]
	if !ok {
		return
	}
	delete(set, symbol)
	if len(set) == 0 {
		delete(s.transitions, target)
	}
}

// RemoveTarget drops every transition to the given target. Used when the
// target state is deleted elsewhere in the automaton.
func (s *State) RemoveTarget(target StateID) {
	delete(s.transitions, target)
}

// ModifyInput replaces one symbol on the edge to target with another. A no-op
// when the edge or the old symbol is absent.
func (s *State) ModifyInput(target StateID, oldSymbol, newSymbol string) {
	set, ok := s.transitions[target]
	if !ok {
		return
	}
	if _, ok := set[oldSymbol]; !ok {
		return
	}
	delete(set, oldSymbol)
	set[newSymbol] = struct{}{}
}

// Update re-points every symbol going to oldTarget at newTarget instead.
func (s *State) Update(oldTarget, newTarget StateID) {
	set, ok := s.transitions[oldTarget]
	if !ok {
		return
	}
	delete(s.transitions, oldTarget)
	dst, ok := s.transitions[newTarget]
	if !ok {
		s.transitions[newTarget] = set
		return
	}
	for symbol := range set {
		dst[symbol] = struct{}{}
	}
}

// Targets returns the target ids of all outgoing transitions, sorted.
func (s *State) Targets() []StateID {
	targets := make([]StateID, 0, len(s.transitions))
	for id := range s.transitions {
		targets = append(targets, id)
	}
	slices.Sort(targets)
	return targets
}

// Symbols returns the symbols on the edge to target, sorted. Nil when there
// is no such edge.
func (s *State) Symbols(target StateID) []string {
	set, ok := s.transitions[target]
	if !ok {
		return nil
	}
	symbols := make([]string, 0, len(set))
	for symbol := range set {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// HasTransition reports whether the edge to target carries symbol.
func (s *State) HasTransition(target StateID, symbol string) bool {
	_, ok := s.transitions[target][symbol]
	return ok
}

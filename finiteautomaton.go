package automaton

import (
	"slices"
	"strings"
)

// FiniteAutomaton is a finite-state machine over opaque string symbols. It
// accepts nondeterministic construction: epsilon transitions and several
// targets for the same symbol are allowed, and the determinism flag is
// rederived from the transition tables after every structural mutation
// instead of being toggled incrementally.
type FiniteAutomaton struct {
	machine
	alphabet      map[string]struct{}
	deterministic bool
}

var _ StateMachine = (*FiniteAutomaton)(nil)

func NewFiniteAutomaton() *FiniteAutomaton {
	return &FiniteAutomaton{
		machine:       newMachine(),
		alphabet:      make(map[string]struct{}),
		deterministic: true,
	}
}

// AddTransition adds input to the edge from -> to. A no-op when either id is
// unknown. The empty string is normalized to Epsilon.
func (a *FiniteAutomaton) AddTransition(from, to StateID, input string) {
	if _, ok := a.states[to]; !ok {
		return
	}
	state, ok := a.states[from]
	if !ok {
		return
	}
	state.AddTransition(to, normalizeSymbol(input))
	a.refresh()
}

func (a *FiniteAutomaton) RemoveState(id StateID) {
	a.removeState(id)
	a.refresh()
}

func (a *FiniteAutomaton) RemoveTransition(from, to StateID, input string) {
	a.removeTransition(from, to, input)
	a.refresh()
}

func (a *FiniteAutomaton) ModifyInput(id, target StateID, oldInput, newInput string) {
	a.modifyInput(id, target, oldInput, newInput)
	a.refresh()
}

// Clear resets the automaton to its freshly constructed state, id counter
// included.
func (a *FiniteAutomaton) Clear() {
	a.clear()
	a.alphabet = make(map[string]struct{})
	a.deterministic = true
}

// IsDeterministic reports whether no transition carries epsilon and no state
// has the same symbol leading to two different targets.
func (a *FiniteAutomaton) IsDeterministic() bool { return a.deterministic }

// Alphabet returns the distinct non-epsilon symbols appearing on any
// transition, sorted.
func (a *FiniteAutomaton) Alphabet() []string {
	symbols := make([]string, 0, len(a.alphabet))
	for symbol := range a.alphabet {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// SetLabel attaches the origin-state ids to a synthesized state. A no-op when
// id is unknown.
func (a *FiniteAutomaton) SetLabel(id StateID, members []StateID) {
	state, ok := a.states[id]
	if !ok {
		return
	}
	label := slices.Clone(members)
	slices.Sort(label)
	state.label = slices.Compact(label)
}

// TransitionFunction is the single-step transition function: the target
// reached from id on symbol. Meaningful on deterministic automata; on
// nondeterministic ones it returns one of the possible targets.
func (a *FiniteAutomaton) TransitionFunction(id StateID, symbol string) (StateID, bool) {
	state, ok := a.states[id]
	if !ok {
		return 0, false
	}
	for target, symbols := range state.transitions {
		if _, ok := symbols[symbol]; ok {
			return target, true
		}
	}
	return 0, false
}

// refresh rederives the alphabet and the determinism flag from the transition
// tables. Recomputing keeps both from drifting when transitions are removed
// or rewritten.
func (a *FiniteAutomaton) refresh() {
	alphabet := make(map[string]struct{})
	deterministic := true
	for _, state := range a.states {
		seen := make(map[string]StateID, len(state.transitions))
		for target, symbols := range state.transitions {
			for symbol := range symbols {
				if symbol == Epsilon {
					deterministic = false
					continue
				}
				alphabet[symbol] = struct{}{}
				if prev, ok := seen[symbol]; ok && prev != target {
					deterministic = false
					continue
				}
				seen[symbol] = target
			}
		}
	}
	a.alphabet = alphabet
	a.deterministic = deterministic
}

// CheckInput reports whether the automaton accepts input, searching
// depth-first with backtracking from the initial state. Matching is maximal
// munch: of the outgoing symbols prefixing the unread input only the longest
// is consumed, with ties explored across all tied targets. Epsilon
// transitions are always explored and consume nothing. A (state, offset)
// visited set keeps the search terminating even across epsilon cycles. On a
// deterministic automaton the search degenerates to a single linear walk.
func (a *FiniteAutomaton) CheckInput(input string) (bool, error) {
	if !a.hasInitial {
		return false, ErrNoInitialState
	}
	visited := make(map[faConfig]struct{})
	return a.traverse(a.initial, input, 0, visited), nil
}

// faConfig is one search configuration: a state plus how much input is read.
// The input itself is never sliced or copied during the search.
type faConfig struct {
	state  StateID
	offset int
}

func (a *FiniteAutomaton) traverse(id StateID, input string, offset int, visited map[faConfig]struct{}) bool {
	key := faConfig{state: id, offset: offset}
	if _, ok := visited[key]; ok {
		return false
	}
	visited[key] = struct{}{}

	state, ok := a.states[id]
	if !ok {
		return false
	}
	if state.finalFlag && offset == len(input) {
		return true
	}

	rest := input[offset:]
	longest := 0
	var matches []StateID
	for target, symbols := range state.transitions {
		for symbol := range symbols {
			if symbol == Epsilon {
				if a.traverse(target, input, offset, visited) {
					return true
				}
				continue
			}
			if !strings.HasPrefix(rest, symbol) {
				continue
			}
			switch {
			case len(symbol) > longest:
				longest = len(symbol)
				matches = matches[:0]
				matches = append(matches, target)
			case len(symbol) == longest:
				matches = append(matches, target)
			}
		}
	}
	for _, target := range matches {
		if a.traverse(target, input, offset+longest, visited) {
			return true
		}
	}
	return false
}

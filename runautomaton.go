package automaton

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// RunAutomaton is a deterministic automaton compiled into per-state lookup
// tables for repeated acceptance checks. Building it costs one pass over the
// transition tables; Run is then a single linear walk with no backtracking,
// which is what an editor wants when re-checking the same machine on every
// keystroke. Later mutations of the source automaton are not reflected.
type RunAutomaton struct {
	initial StateID
	steps   map[StateID]map[string]StateID
	symbols map[StateID][]string // outgoing symbols, longest first
	accept  *bitset.BitSet
}

// NewRunAutomaton compiles a deterministic automaton with an initial state.
func NewRunAutomaton(a *FiniteAutomaton) (*RunAutomaton, error) {
	if !a.IsDeterministic() {
		return nil, ErrRequiresDeterministic
	}
	initial, ok := a.InitialState()
	if !ok {
		return nil, ErrNoInitialState
	}

	r := &RunAutomaton{
		initial: initial,
		steps:   make(map[StateID]map[string]StateID, a.NumStates()),
		symbols: make(map[StateID][]string, a.NumStates()),
		accept:  bitset.New(uint(a.nextID)),
	}
	for id, state := range a.states {
		if state.finalFlag {
			r.accept.Set(uint(id))
		}
		table := make(map[string]StateID)
		for target, symbols := range state.transitions {
			for symbol := range symbols {
				table[symbol] = target
			}
		}
		outgoing := make([]string, 0, len(table))
		for symbol := range table {
			outgoing = append(outgoing, symbol)
		}
		// Longest first, so the walk keeps maximal-munch semantics.
		slices.SortFunc(outgoing, func(x, y string) int {
			if d := len(y) - len(x); d != 0 {
				return d
			}
			return strings.Compare(x, y)
		})
		r.steps[id] = table
		r.symbols[id] = outgoing
	}
	return r, nil
}

// Step performs the transition lookup from state on symbol. The second
// return is false when the state has no transition on the symbol.
func (r *RunAutomaton) Step(state StateID, symbol string) (StateID, bool) {
	target, ok := r.steps[state][symbol]
	return target, ok
}

// Run reports whether the compiled automaton accepts input.
func (r *RunAutomaton) Run(input string) bool {
	state := r.initial
	for offset := 0; offset < len(input); {
		matched := false
		for _, symbol := range r.symbols[state] {
			if strings.HasPrefix(input[offset:], symbol) {
				state = r.steps[state][symbol]
				offset += len(symbol)
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return r.accept.Test(uint(state))
}

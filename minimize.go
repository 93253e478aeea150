package automaton

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Minimize returns the minimal deterministic automaton equivalent to the
// receiver: states unreachable from the initial state are pruned, then
// Hopcroft partition refinement merges every pair of states no input string
// can tell apart. The receiver is never mutated. Returns
// ErrRequiresDeterministic on a nondeterministic automaton and
// ErrNoInitialState when no initial state is set.
func (a *FiniteAutomaton) Minimize() (*FiniteAutomaton, error) {
	if !a.deterministic {
		return nil, ErrRequiresDeterministic
	}
	if !a.hasInitial {
		return nil, ErrNoInitialState
	}

	pruned := a.reachableCopy()
	return pruned.buildFromPartition(pruned.hopcroft()), nil
}

// reachableCopy clones the automaton keeping only states reachable from the
// initial state. O(states + transitions): a bitset-backed worklist walk, one
// pass to copy states and one to copy surviving transitions.
func (a *FiniteAutomaton) reachableCopy() *FiniteAutomaton {
	reachable := bitset.New(uint(a.nextID))
	worklist := []StateID{a.initial}
	reachable.Set(uint(a.initial))
	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for target := range a.states[id].transitions {
			if !reachable.Test(uint(target)) {
				reachable.Set(uint(target))
				worklist = append(worklist, target)
			}
		}
	}

	clone := NewFiniteAutomaton()
	clone.nextID = a.nextID
	for id, state := range a.states {
		if !reachable.Test(uint(id)) {
			continue
		}
		copied := NewState(state.name)
		copied.label = slices.Clone(state.label)
		clone.states[id] = copied
	}
	for id, state := range a.states {
		if !reachable.Test(uint(id)) {
			continue
		}
		for target, symbols := range state.transitions {
			for symbol := range symbols {
				clone.states[id].AddTransition(target, symbol)
			}
		}
	}
	clone.MakeInitial(a.initial)
	for id := range a.finals {
		if reachable.Test(uint(id)) {
			_ = clone.MakeFinal(id)
		}
	}
	clone.refresh()
	return clone
}

// hopcroft computes the coarsest partition of the states in which two states
// share a block iff no input string distinguishes their acceptance behavior.
// The initial partition is {finals, non-finals}; each splitter block A and
// symbol σ refine every block straddling the σ-preimage of A.
func (a *FiniteAutomaton) hopcroft() []*FrozenStateSet {
	finals := NewStateSet()
	nonFinals := NewStateSet()
	for id := range a.states {
		if _, ok := a.finals[id]; ok {
			finals.Add(id)
		} else {
			nonFinals.Add(id)
		}
	}

	var partition []*FrozenStateSet
	if finals.Size() > 0 {
		partition = append(partition, finals.Freeze())
	}
	if nonFinals.Size() > 0 {
		partition = append(partition, nonFinals.Freeze())
	}

	alphabet := a.Alphabet()
	worklist := slices.Clone(partition)
	processed := NewHashMap[struct{}]()

	for len(worklist) > 0 {
		splitter := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if processed.Has(splitter) {
			continue
		}
		processed.Set(splitter, struct{}{})

		for _, symbol := range alphabet {
			// preimage: states whose symbol-transition lands in the splitter.
			preimage := NewStateSet()
			for id := range a.states {
				if target, ok := a.TransitionFunction(id, symbol); ok && splitter.Has(target) {
					preimage.Add(id)
				}
			}
			if preimage.Size() == 0 {
				continue
			}

			next := make([]*FrozenStateSet, 0, len(partition))
			for _, block := range partition {
				intersection := NewStateSet()
				difference := NewStateSet()
				for _, id := range block.IDs() {
					if preimage.Has(id) {
						intersection.Add(id)
					} else {
						difference.Add(id)
					}
				}
				if intersection.Size() == 0 || difference.Size() == 0 {
					next = append(next, block)
					continue
				}
				in, out := intersection.Freeze(), difference.Freeze()
				next = append(next, in, out)
				if !processed.Has(in) {
					worklist = append(worklist, in)
				}
				if !processed.Has(out) {
					worklist = append(worklist, out)
				}
			}
			partition = next
		}
	}
	return partition
}

// buildFromPartition synthesizes one state per block and wires transitions by
// following a representative member of each block, mapping its targets to
// their containing blocks.
func (a *FiniteAutomaton) buildFromPartition(blocks []*FrozenStateSet) *FiniteAutomaton {
	minimized := NewFiniteAutomaton()
	ids := make([]StateID, len(blocks))
	for i, block := range blocks {
		id := minimized.AddState()
		ids[i] = id
		minimized.SetLabel(id, block.IDs())
		if a.hasInitial && block.Has(a.initial) {
			minimized.MakeInitial(id)
		}
		for _, member := range block.IDs() {
			if _, ok := a.finals[member]; ok {
				_ = minimized.MakeFinal(id)
				break
			}
		}
	}

	blockOf := func(id StateID) (int, bool) {
		for i, block := range blocks {
			if block.Has(id) {
				return i, true
			}
		}
		return 0, false
	}
	alphabet := a.Alphabet()
	for i, block := range blocks {
		representative := block.IDs()[0]
		for _, symbol := range alphabet {
			target, ok := a.TransitionFunction(representative, symbol)
			if !ok {
				continue
			}
			if j, ok := blockOf(target); ok {
				minimized.AddTransition(ids[i], ids[j], symbol)
			}
		}
	}
	return minimized
}

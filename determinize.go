package automaton

// ToDFA builds a deterministic automaton accepting the same language via
// subset construction, worst case exponential in the number of states. The
// receiver is left untouched. Returns ErrAlreadyDeterministic when the
// determinism flag is already set, and ErrNoInitialState when there is
// nothing to seed the construction with.
func (a *FiniteAutomaton) ToDFA() (*FiniteAutomaton, error) {
	if a.deterministic {
		return nil, ErrAlreadyDeterministic
	}
	if !a.hasInitial {
		return nil, ErrNoInitialState
	}

	alphabet := a.Alphabet()
	seed := NewFrozenStateSet(sortedIDs(a.closureWithSelf(a.initial)))

	subsets := []*FrozenStateSet{seed}
	// moves[i][symbol] indexes the successor subset of subsets[i].
	moves := []map[string]int{nil}
	indexBySubset := NewHashMap[int]()
	indexBySubset.Set(seed, 0)

	worklist := []int{0}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		subset := subsets[current]
		successors := make(map[string]int, len(alphabet))
		for _, symbol := range alphabet {
			successor := NewStateSet()
			for _, target := range a.move(subset.IDs(), symbol) {
				for member := range a.closureWithSelf(target) {
					successor.Add(member)
				}
			}
			if successor.Size() == 0 {
				continue
			}
			frozen := successor.Freeze()
			index, ok := indexBySubset.Get(frozen)
			if !ok {
				index = len(subsets)
				subsets = append(subsets, frozen)
				moves = append(moves, nil)
				indexBySubset.Set(frozen, index)
				worklist = append(worklist, index)
			}
			successors[symbol] = index
		}
		moves[current] = successors
	}

	// One synthesized state per subset, in discovery order; the seed subset
	// becomes the initial state, any subset containing a final member becomes
	// final, and the subset itself is kept as the label.
	dfa := NewFiniteAutomaton()
	ids := make([]StateID, len(subsets))
	for i, subset := range subsets {
		id := dfa.AddState()
		ids[i] = id
		dfa.SetLabel(id, subset.IDs())
		if i == 0 {
			dfa.MakeInitial(id)
		}
		for _, member := range subset.IDs() {
			if _, ok := a.finals[member]; ok {
				_ = dfa.MakeFinal(id)
				break
			}
		}
	}
	for i, successors := range moves {
		for symbol, target := range successors {
			dfa.AddTransition(ids[i], ids[target], symbol)
		}
	}
	return dfa, nil
}

package automaton

// LambdaClosure returns the states reachable from id using only epsilon
// transitions. When remaining is the empty string, a state with no unexplored
// epsilon moves left additionally settles into the closure itself; that rule
// is what pulls the ends of epsilon chains into the closure of a set.
func (a *FiniteAutomaton) LambdaClosure(id StateID, remaining string) map[StateID]struct{} {
	closure := make(map[StateID]struct{})
	a.lambdaClosure(id, remaining, closure)
	return closure
}

func (a *FiniteAutomaton) lambdaClosure(id StateID, remaining string, closure map[StateID]struct{}) {
	state, ok := a.states[id]
	if !ok {
		return
	}
	explored := false
	for target, symbols := range state.transitions {
		if _, ok := closure[target]; ok {
			// Already a member; nothing left to explore through it.
			continue
		}
		if _, ok := symbols[Epsilon]; !ok {
			continue
		}
		explored = true
		closure[target] = struct{}{}
		a.lambdaClosure(target, remaining, closure)
	}
	if !explored && remaining == "" {
		closure[id] = struct{}{}
	}
}

// LambdaClosureOnSet returns the union of the individual closures of ids.
func (a *FiniteAutomaton) LambdaClosureOnSet(ids []StateID, remaining string) map[StateID]struct{} {
	closure := make(map[StateID]struct{})
	for _, id := range ids {
		for member := range a.LambdaClosure(id, remaining) {
			closure[member] = struct{}{}
		}
	}
	return closure
}

// closureWithSelf is the textbook epsilon closure: LambdaClosure on empty
// residual input plus the state itself. Subset-construction seeds and
// successors use this form.
func (a *FiniteAutomaton) closureWithSelf(id StateID) map[StateID]struct{} {
	closure := a.LambdaClosure(id, "")
	closure[id] = struct{}{}
	return closure
}

// move returns every state reachable from a member of set with exactly one
// transition on symbol, sorted.
func (a *FiniteAutomaton) move(set []StateID, symbol string) []StateID {
	targets := make(map[StateID]struct{})
	for _, id := range set {
		state, ok := a.states[id]
		if !ok {
			continue
		}
		for target, symbols := range state.transitions {
			if _, ok := symbols[symbol]; ok {
				targets[target] = struct{}{}
			}
		}
	}
	return sortedIDs(targets)
}

package automaton

import "errors"

// Precondition failures reported by the mutation and transformation API.
// Mutations that merely reference an unknown transition or target are silent
// no-ops instead; see the StateMachine docs.
var (
	// ErrNoInitialState is returned by CheckInput, ToDFA and Minimize when
	// the automaton has no initial state set.
	ErrNoInitialState = errors.New("automaton: no initial state")

	// ErrAlreadyDeterministic is returned by ToDFA when the determinism flag
	// is already set.
	ErrAlreadyDeterministic = errors.New("automaton: already deterministic")

	// ErrRequiresDeterministic is returned by Minimize and NewRunAutomaton
	// when the automaton is not deterministic.
	ErrRequiresDeterministic = errors.New("automaton: requires a deterministic automaton")

	// ErrUnknownState is returned by mutations that must reference an
	// existing state, such as MakeFinal.
	ErrUnknownState = errors.New("automaton: unknown state")
)

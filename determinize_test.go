package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// branchingNFA builds a six-state automaton with an epsilon branch from the
// initial state and several same-symbol forks.
//
//	q0 (initial, final) -ε-> q4, -a-> q1
//	q1 -b-> q2, -b-> q3
//	q3 -a-> q1
//	q4 -a-> q4, -a-> q2, -b-> q5
//	q5 -b-> q5, -a-> q2
//	finals: q0, q2
func branchingNFA() *FiniteAutomaton {
	a := NewFiniteAutomaton()
	a.AddNStates(6)
	a.MakeInitial(0)
	_ = a.MakeFinal(0)
	_ = a.MakeFinal(2)
	a.AddTransition(0, 4, Epsilon)
	a.AddTransition(0, 1, "a")
	a.AddTransition(1, 2, "b")
	a.AddTransition(1, 3, "b")
	a.AddTransition(3, 1, "a")
	a.AddTransition(4, 4, "a")
	a.AddTransition(4, 2, "a")
	a.AddTransition(4, 5, "b")
	a.AddTransition(5, 5, "b")
	a.AddTransition(5, 2, "a")
	return a
}

// stringsUpTo returns every string over alphabet of length at most n.
func stringsUpTo(alphabet []string, n int) []string {
	all := []string{""}
	frontier := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, prefix := range frontier {
			for _, symbol := range alphabet {
				next = append(next, prefix+symbol)
			}
		}
		all = append(all, next...)
		frontier = next
	}
	return all
}

func TestToDFA(t *testing.T) {
	t.Run("AlreadyDeterministic", func(t *testing.T) {
		_, err := oddA().ToDFA()
		assert.ErrorIs(t, err, ErrAlreadyDeterministic)
	})

	t.Run("NoInitialState", func(t *testing.T) {
		a := NewFiniteAutomaton()
		a.AddNStates(2)
		a.AddTransition(0, 1, Epsilon)
		_, err := a.ToDFA()
		assert.ErrorIs(t, err, ErrNoInitialState)
	})

	t.Run("ResultIsDeterministic", func(t *testing.T) {
		dfa, err := branchingNFA().ToDFA()
		assert.NoError(t, err)
		assert.True(t, dfa.IsDeterministic())
	})

	t.Run("SeedLabelIsInitialClosure", func(t *testing.T) {
		dfa, err := branchingNFA().ToDFA()
		assert.NoError(t, err)
		initial, ok := dfa.InitialState()
		assert.True(t, ok)
		state, _ := dfa.State(initial)
		assert.Equal(t, []StateID{0, 4}, state.Label())
		assert.True(t, state.IsFinal())
	})

	t.Run("LanguagePreserved", func(t *testing.T) {
		nfa := branchingNFA()
		dfa, err := nfa.ToDFA()
		assert.NoError(t, err)

		for _, input := range stringsUpTo([]string{"a", "b"}, 6) {
			want, err := nfa.CheckInput(input)
			assert.NoError(t, err)
			got, err := dfa.CheckInput(input)
			assert.NoError(t, err)
			assert.Equal(t, want, got, "input %q", input)
		}
	})

	t.Run("SubstringNFALanguagePreserved", func(t *testing.T) {
		nfa := substring01or10()
		dfa, err := nfa.ToDFA()
		assert.NoError(t, err)
		assert.True(t, dfa.IsDeterministic())

		for _, input := range stringsUpTo([]string{"0", "1"}, 6) {
			want, _ := nfa.CheckInput(input)
			got, _ := dfa.CheckInput(input)
			assert.Equal(t, want, got, "input %q", input)
		}
	})

	t.Run("SourceUntouched", func(t *testing.T) {
		nfa := branchingNFA()
		states := nfa.NumStates()
		_, err := nfa.ToDFA()
		assert.NoError(t, err)
		assert.Equal(t, states, nfa.NumStates())
		assert.False(t, nfa.IsDeterministic())
	})
}

package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// epsilonChain builds q0 -ε-> q1 -ε-> q2 -a-> q3.
func epsilonChain() *FiniteAutomaton {
	a := NewFiniteAutomaton()
	a.AddNStates(4)
	a.AddTransition(0, 1, Epsilon)
	a.AddTransition(1, 2, Epsilon)
	a.AddTransition(2, 3, "a")
	return a
}

func TestLambdaClosure(t *testing.T) {
	a := epsilonChain()

	t.Run("FollowsChains", func(t *testing.T) {
		closure := a.LambdaClosure(0, "")
		assert.Equal(t, []StateID{1, 2}, sortedIDs(closure))
	})

	t.Run("RemainingInputBlocksSettling", func(t *testing.T) {
		// With input left to read, a state with no epsilon moves does not
		// settle into its own closure.
		assert.Empty(t, a.LambdaClosure(2, "x"))
		assert.Equal(t, []StateID{2}, sortedIDs(a.LambdaClosure(2, "")))
	})

	t.Run("ChainMembersUnaffectedByRemaining", func(t *testing.T) {
		closure := a.LambdaClosure(0, "x")
		assert.Equal(t, []StateID{1, 2}, sortedIDs(closure))
	})

	t.Run("EpsilonCycleTerminates", func(t *testing.T) {
		b := NewFiniteAutomaton()
		b.AddNStates(2)
		b.AddTransition(0, 1, Epsilon)
		b.AddTransition(1, 0, Epsilon)
		closure := b.LambdaClosure(0, "")
		assert.Equal(t, []StateID{0, 1}, sortedIDs(closure))
	})

	t.Run("UnknownState", func(t *testing.T) {
		assert.Empty(t, a.LambdaClosure(42, ""))
	})
}

func TestLambdaClosureOnSet(t *testing.T) {
	a := epsilonChain()
	closure := a.LambdaClosureOnSet([]StateID{0, 3}, "")
	assert.Equal(t, []StateID{1, 2, 3}, sortedIDs(closure))
}

func TestMove(t *testing.T) {
	a := epsilonChain()
	assert.Equal(t, []StateID{3}, a.move([]StateID{0, 1, 2}, "a"))
	assert.Empty(t, a.move([]StateID{0, 1}, "a"))
	assert.Empty(t, a.move([]StateID{2}, "b"))
}

package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateAddTransition(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		s := NewState("q0")
		s.AddTransition(1, "a")
		s.AddTransition(1, "a")
		assert.Equal(t, []string{"a"}, s.Symbols(1))
	})

	t.Run("ReportsExistingSymbol", func(t *testing.T) {
		s := NewState("q0")
		assert.False(t, s.AddTransition(1, "a"))
		assert.False(t, s.AddTransition(1, "b"))
		// Same symbol again, even toward another target.
		assert.True(t, s.AddTransition(1, "a"))
		assert.True(t, s.AddTransition(2, "a"))
	})

	t.Run("MultipleTargets", func(t *testing.T) {
		s := NewState("q0")
		s.AddTransition(2, "a")
		s.AddTransition(1, "b")
		assert.Equal(t, []StateID{1, 2}, s.Targets())
	})
}

func TestStateRemoveTransition(t *testing.T) {
	s := NewState("q0")
	s.AddTransition(1, "a")
	s.AddTransition(1, "b")

	s.RemoveTransition(1, "a")
	assert.Equal(t, []string{"b"}, s.Symbols(1))

	// Dropping the last symbol drops the edge.
	s.RemoveTransition(1, "b")
	assert.Nil(t, s.Symbols(1))
	assert.Empty(t, s.Targets())

	// Unknown edge is a no-op.
	s.RemoveTransition(7, "a")
}

func TestStateModifyInput(t *testing.T) {
	s := NewState("q0")
	s.AddTransition(1, "a")

	s.ModifyInput(1, "a", "b")
	assert.Equal(t, []string{"b"}, s.Symbols(1))
	assert.False(t, s.HasTransition(1, "a"))

	// Absent old symbol leaves the edge alone.
	s.ModifyInput(1, "z", "c")
	assert.Equal(t, []string{"b"}, s.Symbols(1))
}

func TestStateUpdate(t *testing.T) {
	t.Run("Repoint", func(t *testing.T) {
		s := NewState("q0")
		s.AddTransition(1, "a")
		s.AddTransition(1, "b")

		s.Update(1, 2)
		assert.Nil(t, s.Symbols(1))
		assert.Equal(t, []string{"a", "b"}, s.Symbols(2))
	})

	t.Run("MergeIntoExistingEdge", func(t *testing.T) {
		s := NewState("q0")
		s.AddTransition(1, "a")
		s.AddTransition(2, "b")

		s.Update(1, 2)
		assert.Equal(t, []string{"a", "b"}, s.Symbols(2))
	})
}

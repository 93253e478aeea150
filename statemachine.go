package automaton

import (
	"fmt"
	"slices"
)

// StateMachine is the construction, mutation and simulation surface shared by
// finite and pushdown automata. Mutations referencing an unknown transition
// or target are silent no-ops: invalid references are rejected at the point
// of mutation and never stored. MakeFinal is the exception and reports
// ErrUnknownState.
type StateMachine interface {
	AddState() StateID
	AddStateWithName(id StateID, name string)
	AddNStates(n int)
	AddTransition(from, to StateID, input string)
	RemoveState(id StateID)
	RemoveTransition(from, to StateID, input string)
	MakeInitial(id StateID)
	MakeFinal(id StateID) error
	ModifyName(id StateID, name string)
	ModifyInput(id, target StateID, oldInput, newInput string)
	CheckInput(input string) (bool, error)
	Clear()

	States() []StateID
	State(id StateID) (*State, bool)
	InitialState() (StateID, bool)
	FinalStates() []StateID
	IsDeterministic() bool
	NumStates() int
}

// machine is the state collection shared by both automaton kinds: the id
// counter, the state map and the initial/final bookkeeping. The embedding
// type owns transition semantics and the determinism flag.
type machine struct {
	states     map[StateID]*State
	nextID     StateID
	initial    StateID
	hasInitial bool
	finals     map[StateID]struct{}
}

func newMachine() machine {
	return machine{
		states: make(map[StateID]*State),
		finals: make(map[StateID]struct{}),
	}
}

// AddState creates a state under the next unused id with the default name
// q<id> and returns the id.
func (m *machine) AddState() StateID {
	id := m.nextID
	m.nextID++
	m.states[id] = NewState(fmt.Sprintf("q%d", id))
	return id
}

// AddStateWithName inserts a state under a caller-chosen id with a display
// name. A no-op when the id is already taken. The id counter is bumped past
// id so later AddState calls never collide with it.
func (m *machine) AddStateWithName(id StateID, name string) {
	if _, ok := m.states[id]; ok {
		return
	}
	m.states[id] = NewState(name)
	if id >= m.nextID {
		m.nextID = id + 1
	}
}

// AddNStates adds n states with default names.
func (m *machine) AddNStates(n int) {
	for i := 0; i < n; i++ {
		m.AddState()
	}
}

func (m *machine) ModifyName(id StateID, name string) {
	if state, ok := m.states[id]; ok {
		state.name = name
	}
}

// MakeInitial marks id as the initial state, clearing the flag on the
// previous one. A no-op when id is unknown, leaving the old initial state in
// place.
func (m *machine) MakeInitial(id StateID) {
	if _, ok := m.states[id]; !ok {
		return
	}
	if m.hasInitial {
		if old, ok := m.states[m.initial]; ok {
			old.initialFlag = false
		}
	}
	m.states[id].initialFlag = true
	m.initial = id
	m.hasInitial = true
}

func (m *machine) MakeFinal(id StateID) error {
	state, ok := m.states[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	state.finalFlag = true
	m.finals[id] = struct{}{}
	return nil
}

// removeState deletes the state and strips it from the initial/final
// bookkeeping and from every remaining transition table.
func (m *machine) removeState(id StateID) {
	if _, ok := m.states[id]; !ok {
		return
	}
	delete(m.states, id)
	delete(m.finals, id)
	if m.hasInitial && m.initial == id {
		m.hasInitial = false
	}
	for _, state := range m.states {
		state.RemoveTarget(id)
	}
}

func (m *machine) removeTransition(from, to StateID, input string) {
	if state, ok := m.states[from]; ok {
		state.RemoveTransition(to, normalizeSymbol(input))
	}
}

func (m *machine) modifyInput(id, target StateID, oldInput, newInput string) {
	if state, ok := m.states[id]; ok {
		state.ModifyInput(target, normalizeSymbol(oldInput), normalizeSymbol(newInput))
	}
}

func (m *machine) clear() {
	m.states = make(map[StateID]*State)
	m.finals = make(map[StateID]struct{})
	m.nextID = 0
	m.hasInitial = false
}

// States returns all state ids, sorted.
func (m *machine) States() []StateID {
	ids := make([]StateID, 0, len(m.states))
	for id := range m.states {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *machine) State(id StateID) (*State, bool) {
	state, ok := m.states[id]
	return state, ok
}

func (m *machine) InitialState() (StateID, bool) {
	return m.initial, m.hasInitial
}

// FinalStates returns the final state ids, sorted.
func (m *machine) FinalStates() []StateID {
	ids := make([]StateID, 0, len(m.finals))
	for id := range m.finals {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *machine) NumStates() int { return len(m.states) }

// normalizeSymbol maps the empty string onto the reserved epsilon symbol.
func normalizeSymbol(symbol string) string {
	if symbol == "" {
		return Epsilon
	}
	return symbol
}

package automaton

import (
	"slices"
	"strings"
)

// PushdownAutomaton is a finite-state machine extended with a stack.
// Transition inputs take the form "read;top/replacement": read is matched
// against the input exactly like a finite-automaton symbol, top constrains
// the current stack top (ε leaves it unconstrained) and replacement rewrites
// it. A bare ε input consumes nothing and leaves the stack alone. Acceptance
// is by final state: the stack does not have to be empty.
type PushdownAutomaton struct {
	machine
	initialStackSymbol string
	rules              map[pdaKey]pdaRule
	deterministic      bool
}

// pdaKey identifies a rule by source state and read symbol. A second rule
// under the same key with a different target, or one added next to a
// registered ε stack-op, makes the automaton nondeterministic.
type pdaKey struct {
	state StateID
	read  string
}

type pdaRule struct {
	target  StateID
	stackOp string
}

var _ StateMachine = (*PushdownAutomaton)(nil)

// NewPushdownAutomaton returns an empty pushdown automaton whose stack starts
// out holding only the given symbol.
func NewPushdownAutomaton(initialStackSymbol string) *PushdownAutomaton {
	return &PushdownAutomaton{
		machine:            newMachine(),
		initialStackSymbol: initialStackSymbol,
		rules:              make(map[pdaKey]pdaRule),
		deterministic:      true,
	}
}

func (p *PushdownAutomaton) InitialStackSymbol() string { return p.initialStackSymbol }

func (p *PushdownAutomaton) IsDeterministic() bool { return p.deterministic }

// AddTransition adds a rule from -> to. A no-op when either id is unknown.
// Inputs are "read;top/replacement" or a bare ε; an input with no stack part
// constrains and rewrites nothing.
func (p *PushdownAutomaton) AddTransition(from, to StateID, input string) {
	if _, ok := p.states[to]; !ok {
		return
	}
	state, ok := p.states[from]
	if !ok {
		return
	}
	input = normalizeSymbol(input)
	read, stackOp := splitPDAInput(input)

	if input == Epsilon {
		p.deterministic = false
	}
	key := pdaKey{state: from, read: read}
	if rule, ok := p.rules[key]; ok && (rule.target != to || rule.stackOp == Epsilon) {
		p.deterministic = false
	}
	state.AddTransition(to, input)
	p.rules[key] = pdaRule{target: to, stackOp: stackOp}
}

func (p *PushdownAutomaton) RemoveState(id StateID) {
	p.removeState(id)
	for key, rule := range p.rules {
		if key.state == id || rule.target == id {
			delete(p.rules, key)
		}
	}
}

func (p *PushdownAutomaton) RemoveTransition(from, to StateID, input string) {
	input = normalizeSymbol(input)
	p.removeTransition(from, to, input)
	read, _ := splitPDAInput(input)
	key := pdaKey{state: from, read: read}
	if rule, ok := p.rules[key]; ok && rule.target == to {
		delete(p.rules, key)
	}
}

func (p *PushdownAutomaton) ModifyInput(id, target StateID, oldInput, newInput string) {
	state, ok := p.states[id]
	if !ok {
		return
	}
	oldInput = normalizeSymbol(oldInput)
	if !state.HasTransition(target, oldInput) {
		return
	}
	p.RemoveTransition(id, target, oldInput)
	p.AddTransition(id, target, newInput)
}

// Clear resets the automaton to its freshly constructed state; the initial
// stack symbol is kept.
func (p *PushdownAutomaton) Clear() {
	p.clear()
	p.rules = make(map[pdaKey]pdaRule)
	p.deterministic = true
}

// splitPDAInput splits "read;top/replacement" into its read and stack-op
// parts. A bare ε reads as "ε;ε"; an input with no ';' carries no stack op.
func splitPDAInput(input string) (read, stackOp string) {
	if input == Epsilon {
		return Epsilon, Epsilon
	}
	read, stackOp, ok := strings.Cut(input, ";")
	if !ok {
		return normalizeSymbol(read), Epsilon
	}
	return normalizeSymbol(read), stackOp
}

// splitStackOp splits "top/replacement". A bare ε op (or a missing '/')
// constrains nothing and rewrites nothing.
func splitStackOp(stackOp string) (top, replacement string) {
	if stackOp == Epsilon {
		return Epsilon, Epsilon
	}
	top, replacement, ok := strings.Cut(stackOp, "/")
	if !ok {
		return Epsilon, Epsilon
	}
	return normalizeSymbol(top), normalizeSymbol(replacement)
}

// CheckInput reports whether the automaton accepts input: a final state must
// be reached with the input exhausted. The search mirrors the
// finite-automaton traversal with the stack threaded through; every explored
// branch operates on its own stack copy, and the visited set keys on the
// stack contents as well so ε-cycles that leave the stack alone terminate.
func (p *PushdownAutomaton) CheckInput(input string) (bool, error) {
	if !p.hasInitial {
		return false, ErrNoInitialState
	}
	visited := make(map[pdaConfig]struct{})
	stack := []string{p.initialStackSymbol}
	return p.traverse(p.initial, input, 0, stack, visited), nil
}

type pdaConfig struct {
	state  StateID
	offset int
	stack  string
}

type pdaMatch struct {
	target      StateID
	top         string
	replacement string
}

func (p *PushdownAutomaton) traverse(id StateID, input string, offset int, stack []string, visited map[pdaConfig]struct{}) bool {
	key := pdaConfig{state: id, offset: offset, stack: strings.Join(stack, "\x1f")}
	if _, ok := visited[key]; ok {
		return false
	}
	visited[key] = struct{}{}

	state, ok := p.states[id]
	if !ok {
		return false
	}
	if state.finalFlag && offset == len(input) {
		return true
	}

	rest := input[offset:]
	longest := 0
	var matches []pdaMatch
	for target, symbols := range state.transitions {
		for symbol := range symbols {
			if symbol == Epsilon {
				if p.traverse(target, input, offset, stack, visited) {
					return true
				}
				continue
			}
			read, stackOp := splitPDAInput(symbol)
			top, replacement := splitStackOp(stackOp)
			if !topMatches(stack, top) {
				continue
			}
			if read == Epsilon {
				// Consumes no input, so it is explored immediately like ε;
				// the stack effect still applies.
				if p.traverse(target, input, offset, applyStackOp(stack, top, replacement), visited) {
					return true
				}
				continue
			}
			if !strings.HasPrefix(rest, read) {
				continue
			}
			switch {
			case len(read) > longest:
				longest = len(read)
				matches = matches[:0]
				matches = append(matches, pdaMatch{target: target, top: top, replacement: replacement})
			case len(read) == longest:
				matches = append(matches, pdaMatch{target: target, top: top, replacement: replacement})
			}
		}
	}
	for _, match := range matches {
		if p.traverse(match.target, input, offset+longest, applyStackOp(stack, match.top, match.replacement), visited) {
			return true
		}
	}
	return false
}

func topMatches(stack []string, top string) bool {
	if top == Epsilon {
		return true
	}
	return len(stack) > 0 && stack[len(stack)-1] == top
}

// applyStackOp returns a new stack with the rule applied: a replacement
// carrying the top as its suffix pushes the extra leading part (replacements
// are written top-first), an ε replacement pops, and any other differing
// replacement pops then pushes.
func applyStackOp(stack []string, top, replacement string) []string {
	next := slices.Clone(stack)
	switch {
	case top == Epsilon && replacement == Epsilon:
		// No stack effect.
	case replacement == Epsilon:
		if len(next) > 0 {
			next = next[:len(next)-1]
		}
	case len(replacement) > len(top) && strings.HasSuffix(replacement, top):
		next = append(next, replacement[:len(replacement)-len(top)])
	case replacement != top:
		if len(next) > 0 {
			next = next[:len(next)-1]
		}
		next = append(next, replacement)
	}
	return next
}

// Package table implements the droe symbol table: one Scope type for
// every binding level (program, module, action, control-flow body) and
// an explicit ScopeStack the checker pushes and pops.
package table

import (
	"fmt"

	"github.com/droe-lang/droe-sub001/internal/types"
)

// Variable is one declared name. Slot is a frame index for a later
// codegen pass: indices stay unique across a whole scope chain.
type Variable struct {
	Name    string
	Type    types.VariableType
	Mutable bool
	Slot    int
}

// Scope is a map of names with a parent chain. Child scopes seed their
// slot counter from the parent's current value so sibling and nested
// declarations never share an index.
type Scope struct {
	parent   *Scope
	vars     map[string]*Variable
	nextSlot int
}

// NewScope returns a scope chained under parent; nil starts a root.
func NewScope(parent *Scope) *Scope {
	s := &Scope{parent: parent, vars: make(map[string]*Variable)}
	if parent != nil {
		s.nextSlot = parent.nextSlot
	}
	return s
}

// Declare binds a new name in this scope. Redeclaring a name bound in
// this same scope fails; shadowing a parent's name is fine.
func (s *Scope) Declare(name string, t types.VariableType, mutable bool) (*Variable, error) {
	if _, exists := s.vars[name]; exists {
		return nil, fmt.Errorf("variable %q already declared in this scope", name)
	}
	v := &Variable{Name: name, Type: t, Mutable: mutable, Slot: s.nextSlot}
	s.nextSlot++
	s.vars[name] = v
	return v, nil
}

// Lookup walks the chain from the innermost scope outward.
func (s *Scope) Lookup(name string) (*Variable, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign updates the type of an existing variable, wherever in the
// chain it lives. Assigning to a name that is not declared anywhere,
// or to an immutable variable, fails.
func (s *Scope) Assign(name string, t types.VariableType) error {
	v, ok := s.Lookup(name)
	if !ok {
		return fmt.Errorf("undefined variable %q", name)
	}
	if !v.Mutable {
		return fmt.Errorf("cannot assign to immutable variable %q", name)
	}
	v.Type = t
	return nil
}

// NextSlot exposes the current slot counter, mainly for tests and for
// ScopeStack's carry-forward on exit.
func (s *Scope) NextSlot() int {
	return s.nextSlot
}

// ScopeStack makes scope entry and exit explicit. The checker pushes
// on every body it walks into and pops on the way out; nothing else
// manipulates scope parents.
type ScopeStack struct {
	current *Scope
}

// NewScopeStack starts a stack with a fresh root scope.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{current: NewScope(nil)}
}

// Current returns the active scope.
func (st *ScopeStack) Current() *Scope {
	return st.current
}

// Push enters a child scope and returns it.
func (st *ScopeStack) Push() *Scope {
	st.current = NewScope(st.current)
	return st.current
}

// Pop exits the current scope. The child's final slot counter carries
// forward into the parent so later declarations continue numbering
// where the child stopped.
func (st *ScopeStack) Pop() *Scope {
	child := st.current
	if child.parent == nil {
		return child
	}
	child.parent.nextSlot = child.nextSlot
	st.current = child.parent
	return st.current
}

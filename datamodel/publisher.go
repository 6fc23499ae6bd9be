// Package datamodel projects the per-frame simulation snapshot into named,
// typed bindings for the declarative UI layer. Each binding carries its last
// published value; Update recomputes every projection and marks only the
// changed ones dirty, so the UI re-renders the minimum set.
package datamodel

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/qrml/snapshot"
)

// Projection derives one binding value from a snapshot
// Must be pure: same snapshot, same value
type Projection func(*snapshot.Snapshot) Value

type binding struct {
	name      string
	project   Projection
	value     Value
	published bool // false until the first Update
}

// Publisher owns the binding table
// Declare at setup, Update once per composed UI frame
type Publisher struct {
	bindings []*binding
	index    map[string]int
	dirty    []string
	log      *slog.Logger
}

// NewPublisher creates an empty publisher
func NewPublisher(log *slog.Logger) *Publisher {
	if log == nil {
		log = slog.Default()
	}
	return &Publisher{index: make(map[string]int), log: log}
}

// Declare registers a binding and its projection
// Called once per binding at setup; duplicate names are an error
func (p *Publisher) Declare(name string, fn Projection) error {
	if _, ok := p.index[name]; ok {
		return fmt.Errorf("datamodel: binding %q already declared", name)
	}
	if fn == nil {
		return fmt.Errorf("datamodel: binding %q has nil projection", name)
	}
	p.index[name] = len(p.bindings)
	p.bindings = append(p.bindings, &binding{name: name, project: fn})
	return nil
}

// Update recomputes every binding against snap and rebuilds the dirty set
// Runs after the simulation finalizes the frame, before UI composition.
// A nil snapshot (no frame produced yet) keeps last published values and
// yields an empty dirty set
func (p *Publisher) Update(snap *snapshot.Snapshot) {
	p.dirty = p.dirty[:0]
	if snap == nil {
		return
	}
	for _, b := range p.bindings {
		v := b.project(snap)
		if b.published && v.Equal(b.value) {
			continue
		}
		b.value = v
		b.published = true
		p.dirty = append(p.dirty, b.name)
	}
}

// Dirty returns the names whose value changed in the last Update
// The slice is reused across Updates; callers must not retain it
func (p *Publisher) Dirty() []string {
	return p.dirty
}

// Value returns the last published value for name
func (p *Publisher) Value(name string) (Value, bool) {
	i, ok := p.index[name]
	if !ok {
		return Value{}, false
	}
	b := p.bindings[i]
	if !b.published {
		return Value{}, false
	}
	return b.value, true
}

// Each visits every published binding in declaration order
// The UI layer walks this to build its data model table
func (p *Publisher) Each(fn func(name string, v Value)) {
	for _, b := range p.bindings {
		if b.published {
			fn(b.name, b.value)
		}
	}
}

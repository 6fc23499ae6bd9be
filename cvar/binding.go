package cvar

import (
	"fmt"
	"log/slog"
)

type tracked struct {
	v       *Var
	lastGen uint64 // generation at last reconciliation point
}

// Binding is the UI-exposed subset of the store
// SetFromUI writes through immediately; Update polls generation counters at
// the frame's synchronization point and reports externally changed names.
// Same-frame conflicting writes resolve last-write-at-poll-time, no locking
type Binding struct {
	store   *Store
	exposed []*tracked
	index   map[string]int
	changed []string
	log     *slog.Logger
}

// NewBinding creates a binding layer over store
func NewBinding(store *Store, log *slog.Logger) *Binding {
	if log == nil {
		log = slog.Default()
	}
	return &Binding{store: store, index: make(map[string]int), log: log}
}

// Expose adds a registered variable to the UI-visible set
func (b *Binding) Expose(name string) error {
	if _, ok := b.index[name]; ok {
		return nil // already exposed
	}
	v, ok := b.store.Lookup(name)
	if !ok {
		return fmt.Errorf("cvar: expose %q: %w", name, ErrUnknown)
	}
	b.index[name] = len(b.exposed)
	b.exposed = append(b.exposed, &tracked{v: v, lastGen: v.Generation()})
	return nil
}

// SetFromUI validates, coerces, and writes through to the canonical store
// A TypeMismatch is logged and the last good value is retained
func (b *Binding) SetFromUI(name, raw string) error {
	i, ok := b.index[name]
	if !ok {
		return fmt.Errorf("cvar: %q not exposed: %w", name, ErrUnknown)
	}
	tr := b.exposed[i]
	if err := tr.v.write(raw); err != nil {
		b.log.Warn("ui cvar write rejected", "name", name, "value", raw, "err", err)
		return err
	}
	// Consume our own generation bump so the next poll does not echo the
	// UI's write back as an external change
	tr.lastGen = tr.v.Generation()
	return nil
}

// Update polls generation counters and returns names changed by non-UI
// sources since the last poll. The slice is reused; do not retain
func (b *Binding) Update() []string {
	b.changed = b.changed[:0]
	for _, tr := range b.exposed {
		if g := tr.v.Generation(); g != tr.lastGen {
			tr.lastGen = g
			b.changed = append(b.changed, tr.v.Name())
		}
	}
	return b.changed
}

// String returns the exposed variable's string form
func (b *Binding) String(name string) (string, error) {
	i, ok := b.index[name]
	if !ok {
		return "", fmt.Errorf("cvar: %q not exposed: %w", name, ErrUnknown)
	}
	return b.exposed[i].v.String(), nil
}

// Number returns the exposed variable's numeric form
func (b *Binding) Number(name string) (float64, error) {
	i, ok := b.index[name]
	if !ok {
		return 0, fmt.Errorf("cvar: %q not exposed: %w", name, ErrUnknown)
	}
	return b.exposed[i].v.Number(), nil
}

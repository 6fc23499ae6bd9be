// Package cvar is the canonical configuration variable store plus the
// two-way binding layer that keeps the UI-visible subset in sync with it.
// Generation counters make external-change detection a single compare per
// variable per frame.
package cvar

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ErrUnknown reports a lookup of an unregistered variable
var ErrUnknown = errors.New("cvar: unknown variable")

// ErrTypeMismatch reports a write whose value cannot coerce to the
// variable's declared type
var ErrTypeMismatch = errors.New("cvar: type mismatch")

// Type constrains what a variable's writes must coerce to
type Type uint8

const (
	TypeString Type = iota
	TypeFloat
	TypeBool
)

// Var is one configuration variable
// Keeps both string and numeric forms, like the engine's cvar_t
type Var struct {
	name string
	typ  Type
	str  string
	num  float64
	gen  uint64 // bumped on every accepted write
}

func (v *Var) Name() string       { return v.name }
func (v *Var) Type() Type         { return v.typ }
func (v *Var) String() string     { return v.str }
func (v *Var) Number() float64    { return v.num }
func (v *Var) Bool() bool         { return v.num != 0 }
func (v *Var) Generation() uint64 { return v.gen }

// Store owns the full variable table
// All writers (UI, console, scripts, defaults) funnel through Set so the
// generation counter observes every source
type Store struct {
	vars map[string]*Var
	log  *slog.Logger
}

// NewStore creates an empty store
func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{vars: make(map[string]*Var), log: log}
}

// Register adds a variable with its default value
func (st *Store) Register(name string, typ Type, def string) (*Var, error) {
	if _, ok := st.vars[name]; ok {
		return nil, fmt.Errorf("cvar: %q already registered", name)
	}
	v := &Var{name: name, typ: typ}
	if err := v.write(def); err != nil {
		return nil, fmt.Errorf("cvar: default for %q: %w", name, err)
	}
	st.vars[name] = v
	return v, nil
}

// Lookup returns the variable for name
func (st *Store) Lookup(name string) (*Var, bool) {
	v, ok := st.vars[name]
	return v, ok
}

// Set writes a variable from any non-UI source (console, script, defaults)
// Rejected writes leave the last good value in place
func (st *Store) Set(name, value string) error {
	v, ok := st.vars[name]
	if !ok {
		return fmt.Errorf("cvar: %q: %w", name, ErrUnknown)
	}
	if err := v.write(value); err != nil {
		st.log.Warn("cvar write rejected", "name", name, "value", value, "err", err)
		return err
	}
	return nil
}

// write coerces raw to the declared type and bumps the generation
func (v *Var) write(raw string) error {
	var num float64
	switch v.typ {
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("%q is not numeric: %w", raw, ErrTypeMismatch)
		}
		num = f
	case TypeBool:
		switch strings.TrimSpace(strings.ToLower(raw)) {
		case "1", "true", "on":
			num = 1
		case "0", "false", "off":
			num = 0
		default:
			return fmt.Errorf("%q is not boolean: %w", raw, ErrTypeMismatch)
		}
	case TypeString:
		// Strings also carry a best-effort numeric form, engine style
		num, _ = strconv.ParseFloat(strings.TrimSpace(raw), 64)
	}
	v.str = raw
	v.num = num
	v.gen++
	return nil
}

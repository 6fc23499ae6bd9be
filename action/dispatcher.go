// Package action maps UI-originated symbolic actions onto engine effects.
// Handlers never touch simulation state directly: they enqueue console
// commands or edit the navigation stack, so Dispatch is safe to call
// reentrantly at any depth during frame composition.
package action

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownAction reports a dispatch against an unregistered name
var ErrUnknownAction = errors.New("action: unknown action")

// Handler executes one symbolic action
// Must only enqueue effects through ctx, never block or mutate sim state
type Handler func(ctx *Context, args []string)

// Context carries the effect sinks handlers write into
type Context struct {
	Commands *CommandQueue
	Nav      *NavStack
}

// Dispatcher looks up handlers by exact symbolic name
type Dispatcher struct {
	handlers map[string]Handler
	names    []string // registration order, for suggestions
	ctx      *Context
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher bound to the given effect sinks
func NewDispatcher(ctx *Context, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{handlers: make(map[string]Handler), ctx: ctx, log: log}
}

// Register binds name to handler
// Duplicate registration is an error so collisions surface at setup, not
// as silently shadowed handlers at runtime
func (d *Dispatcher) Register(name string, h Handler) error {
	if h == nil {
		return fmt.Errorf("action: %q has nil handler", name)
	}
	if _, ok := d.handlers[name]; ok {
		return fmt.Errorf("action: %q already registered", name)
	}
	d.handlers[name] = h
	d.names = append(d.names, name)
	return nil
}

// Dispatch runs the handler registered under name
// Unknown names are reported with a nearest-match hint and change no state
func (d *Dispatcher) Dispatch(name string, args ...string) error {
	h, ok := d.handlers[name]
	if !ok {
		hint := d.nearest(name)
		if hint != "" {
			d.log.Warn("unknown action", "name", name, "did_you_mean", hint)
			return fmt.Errorf("action: %q (did you mean %q?): %w", name, hint, ErrUnknownAction)
		}
		d.log.Warn("unknown action", "name", name)
		return fmt.Errorf("action: %q: %w", name, ErrUnknownAction)
	}
	h(d.ctx, args)
	return nil
}

// nearest returns the closest registered name within a small edit distance
func (d *Dispatcher) nearest(name string) string {
	best, bestDist := "", 4
	for _, n := range d.names {
		if dist := levenshtein.ComputeDistance(name, n); dist < bestDist {
			best, bestDist = n, dist
		}
	}
	return best
}

// RegisterStandard binds the stock action set
// Console commands and lifecycle transitions are all queued, never executed
// inline; navigation edits the stack the UI layer observes after dispatch
func (d *Dispatcher) RegisterStandard() error {
	std := map[string]Handler{
		"exec": func(ctx *Context, args []string) {
			if len(args) > 0 {
				ctx.Commands.Push(Command{Text: strings.Join(args, " ")})
			}
		},
		"navigate": func(ctx *Context, args []string) {
			if len(args) > 0 {
				ctx.Nav.Push(args[0])
			}
		},
		"back": func(ctx *Context, args []string) {
			ctx.Nav.Pop()
		},
		"replace": func(ctx *Context, args []string) {
			if len(args) > 0 {
				ctx.Nav.Replace(args[0])
			}
		},
		"quit": func(ctx *Context, args []string) {
			ctx.Commands.Push(Command{Text: "quit"})
		},
		"disconnect": func(ctx *Context, args []string) {
			ctx.Commands.Push(Command{Text: "disconnect"})
		},
		"reload": func(ctx *Context, args []string) {
			ctx.Commands.Push(Command{Text: "ui_reload"})
		},
	}
	for name, h := range std {
		if err := d.Register(name, h); err != nil {
			return err
		}
	}
	return nil
}

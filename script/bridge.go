// Package script exposes the bridge API to the embedded Lua layer: a
// read-only view of the current snapshot, queued command execution, cvar
// access, monotonic time, and named per-frame callbacks. Scripts react to
// simulation state; they never own it, so every write path into the
// snapshot raises a catchable error.
package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Shopify/go-lua"

	"github.com/lixenwraith/qrml/action"
	"github.com/lixenwraith/qrml/cvar"
	"github.com/lixenwraith/qrml/snapshot"
)

// ErrWriteProtected reports a script write into the read-only snapshot
var ErrWriteProtected = errors.New("script: snapshot is write protected")

// ErrNotRunning reports use of the bridge outside its lifecycle
var ErrNotRunning = errors.New("script: bridge not bootstrapped")

// Bridge owns one Lua state with an explicit lifecycle
// Construct with New, Bootstrap before the first frame, Shutdown on teardown
type Bridge struct {
	l        *lua.State
	snap     *snapshot.Snapshot
	store    *cvar.Store
	commands *action.CommandQueue
	clock    func() float64 // monotonic seconds

	// Callback functions live in the Lua registry under a per-name key;
	// this slice only tracks registration order
	callbacks []string
	cbIndex   map[string]int

	log *slog.Logger
}

func callbackKey(name string) string {
	return "qrml.callback." + name
}

// New creates an unstarted bridge over the given engine endpoints
func New(store *cvar.Store, commands *action.CommandQueue, clock func() float64, log *slog.Logger) *Bridge {
	if log == nil {
		log = slog.Default()
	}
	return &Bridge{
		store:    store,
		commands: commands,
		clock:    clock,
		cbIndex:  make(map[string]int),
		log:      log,
	}
}

// Bootstrap constructs the Lua state and registers the bridge API
func (b *Bridge) Bootstrap() error {
	if b.l != nil {
		return errors.New("script: already bootstrapped")
	}
	l := lua.NewState()
	lua.OpenLibraries(l)

	b.l = l
	b.registerQuakeTable()
	b.registerSnapProxy()
	return nil
}

// Shutdown drops the Lua state and every registered callback
func (b *Bridge) Shutdown() {
	b.l = nil
	b.callbacks = nil
	b.cbIndex = make(map[string]int)
}

// Running reports whether the bridge holds a live Lua state
func (b *Bridge) Running() bool { return b.l != nil }

// SetSnapshot installs the frame's read-only view for script reads
func (b *Bridge) SetSnapshot(s *snapshot.Snapshot) {
	b.snap = s
}

// registerQuakeTable installs the quake.* API
func (b *Bridge) registerQuakeTable() {
	l := b.l
	l.NewTable()
	for name, fn := range map[string]lua.Function{
		"exec":       b.luaExec,
		"cvar":       b.luaCvar,
		"cvarNumber": b.luaCvarNumber,
		"setCvar":    b.luaSetCvar,
		"time":       b.luaTime,
		"register":   b.luaRegister,
	} {
		l.PushGoFunction(fn)
		l.SetField(-2, name)
	}
	l.SetGlobal("quake")
}

// registerSnapProxy installs the read-only snap global
// snap is an empty table whose metatable routes reads into the current
// Snapshot and turns every write into an error
func (b *Bridge) registerSnapProxy() {
	l := b.l
	l.NewTable() // the proxy, stays empty forever
	l.NewTable() // its metatable
	l.PushGoFunction(b.luaSnapIndex)
	l.SetField(-2, "__index")
	l.PushGoFunction(b.luaSnapNewIndex)
	l.SetField(-2, "__newindex")
	l.SetMetaTable(-2)
	l.SetGlobal("snap")
}

// luaExec queues a console command for the next simulation step
func (b *Bridge) luaExec(l *lua.State) int {
	cmd := lua.CheckString(l, 1)
	b.commands.Push(action.Command{Text: cmd})
	return 0
}

// luaCvar returns a cvar's string form, or nil when unregistered
func (b *Bridge) luaCvar(l *lua.State) int {
	name := lua.CheckString(l, 1)
	v, ok := b.store.Lookup(name)
	if !ok {
		l.PushNil()
		return 1
	}
	l.PushString(v.String())
	return 1
}

// luaCvarNumber returns a cvar's numeric form, or nil when unregistered
func (b *Bridge) luaCvarNumber(l *lua.State) int {
	name := lua.CheckString(l, 1)
	v, ok := b.store.Lookup(name)
	if !ok {
		l.PushNil()
		return 1
	}
	l.PushNumber(v.Number())
	return 1
}

// luaSetCvar writes a cvar through the canonical store
// Returns false (and logs) when the write is rejected; script execution
// continues either way
func (b *Bridge) luaSetCvar(l *lua.State) int {
	name := lua.CheckString(l, 1)
	value := lua.CheckString(l, 2)
	if err := b.store.Set(name, value); err != nil {
		b.log.Warn("script cvar write rejected", "name", name, "err", err)
		l.PushBoolean(false)
		return 1
	}
	l.PushBoolean(true)
	return 1
}

// luaTime returns monotonic seconds
func (b *Bridge) luaTime(l *lua.State) int {
	l.PushNumber(b.clock())
	return 1
}

// luaRegister installs a named per-frame callback
// Re-registering a used name replaces the old callback so reload cycles
// never accumulate stale ones
func (b *Bridge) luaRegister(l *lua.State) int {
	name := lua.CheckString(l, 1)
	lua.CheckType(l, 2, lua.TypeFunction)

	// Writing the same registry key replaces the old function outright
	l.PushValue(2)
	l.SetField(lua.RegistryIndex, callbackKey(name))

	if _, ok := b.cbIndex[name]; !ok {
		b.cbIndex[name] = len(b.callbacks)
		b.callbacks = append(b.callbacks, name)
	}
	return 0
}

// luaSnapIndex reads a field off the current snapshot
// Unknown fields read as nil; with no snapshot installed yet every field
// reads as nil
func (b *Bridge) luaSnapIndex(l *lua.State) int {
	key := lua.CheckString(l, 2)
	s := b.snap
	if s == nil {
		l.PushNil()
		return 1
	}
	switch key {
	case "health":
		l.PushInteger(s.Health())
	case "armor":
		l.PushInteger(s.Armor())
	case "frags":
		l.PushInteger(s.Frags())
	case "ammo":
		l.PushInteger(s.Ammo())
	case "shells":
		l.PushInteger(s.Shells())
	case "nails":
		l.PushInteger(s.Nails())
	case "rockets":
		l.PushInteger(s.Rockets())
	case "cells":
		l.PushInteger(s.Cells())
	case "items":
		l.PushNumber(float64(s.Items()))
	case "weapon":
		l.PushNumber(float64(s.ActiveWeapon()))
	case "weapon_frame":
		l.PushInteger(s.WeaponFrame())
	case "weapon_name":
		l.PushString(s.WeaponName())
	case "ammo_name":
		l.PushString(s.AmmoName())
	case "armor_name":
		l.PushString(s.ArmorName())
	case "level_name":
		l.PushString(s.LevelName())
	case "map_time":
		l.PushNumber(s.MapTime())
	case "monsters":
		l.PushInteger(s.Monsters())
	case "total_monsters":
		l.PushInteger(s.TotalMonsters())
	case "secrets":
		l.PushInteger(s.Secrets())
	case "total_secrets":
		l.PushInteger(s.TotalSecrets())
	case "connected":
		l.PushBoolean(s.Connected())
	case "intermission":
		l.PushBoolean(s.Intermission())
	case "paused":
		l.PushBoolean(s.Paused())
	case "chat":
		l.PushString(s.Chat())
	default:
		l.PushNil()
	}
	return 1
}

// luaSnapNewIndex rejects every write, declared field or not
// Raised as a catchable Lua error so scripts can pcall around it
func (b *Bridge) luaSnapNewIndex(l *lua.State) int {
	key, _ := l.ToString(2)
	lua.Errorf(l, "snap.%s: write protected", key)
	panic("unreachable")
}

// RunCallbacks invokes every registered callback once
// A callback error is logged and skipped; it never stops the frame or the
// remaining callbacks
func (b *Bridge) RunCallbacks() {
	if b.l == nil {
		return
	}
	for _, name := range b.callbacks {
		b.l.Field(lua.RegistryIndex, callbackKey(name))
		if err := b.l.ProtectedCall(0, 0, 0); err != nil {
			b.log.Warn("script callback failed", "name", name, "err", err)
		}
	}
}

// CallbackCount returns the number of registered per-frame callbacks
func (b *Bridge) CallbackCount() int { return len(b.callbacks) }

// RunString executes src in the bridge's state
// A rejected snapshot write surfaces Go-side as ErrWriteProtected
func (b *Bridge) RunString(src string) error {
	err := b.RunReader(strings.NewReader(src), "string")
	if err != nil && strings.Contains(err.Error(), "write protected") {
		return fmt.Errorf("%v: %w", err, ErrWriteProtected)
	}
	return err
}

// RunReader loads and executes a chunk from r (a resolved vfs handle)
func (b *Bridge) RunReader(r io.Reader, name string) error {
	if b.l == nil {
		return ErrNotRunning
	}
	if err := b.l.Load(r, "@"+name, ""); err != nil {
		return fmt.Errorf("script: load %s: %w", name, err)
	}
	if err := b.l.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("script: run %s: %w", name, err)
	}
	return nil
}

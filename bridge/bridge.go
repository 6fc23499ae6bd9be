// Package bridge assembles the engine-to-UI synchronization layer and runs
// it frame-synchronously: the host calls Init once, Frame once per composed
// UI frame, and Shutdown on teardown. Everything runs on the host's frame
// thread; nothing here spawns background work.
package bridge

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/qrml/action"
	"github.com/lixenwraith/qrml/cvar"
	"github.com/lixenwraith/qrml/datamodel"
	"github.com/lixenwraith/qrml/inputmode"
	"github.com/lixenwraith/qrml/notify"
	"github.com/lixenwraith/qrml/script"
	"github.com/lixenwraith/qrml/snapshot"
	"github.com/lixenwraith/qrml/vfs"
)

// Options configures a Bridge
type Options struct {
	GameFS      vfs.GameFS   // engine search paths; nil when none mounted
	BaseDir     string       // loose-file fallback root
	NotifyLines int          // 0 means notify.DefaultLines
	Clock       Clock        // nil means a fresh monotonic clock
	Chime       notify.Chime // optional chat sound hook
	Log         *slog.Logger // nil means slog.Default()
}

// Bridge owns every subsystem and the per-frame ordering between them
type Bridge struct {
	Resolver  *vfs.Resolver
	Publisher *datamodel.Publisher
	Cvars     *cvar.Store
	UICvars   *cvar.Binding
	Notify    *notify.Queue
	Arbiter   *inputmode.Arbiter
	Commands  *action.CommandQueue
	Nav       *action.NavStack
	Actions   *action.Dispatcher
	Scripts   *script.Bridge

	builder snapshot.Builder
	clock   Clock
	log     *slog.Logger
}

// New wires the subsystems together; the script state is not yet live
func New(opts Options) (*Bridge, error) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewClock()
	}

	b := &Bridge{
		Resolver:  vfs.NewResolver(opts.GameFS, opts.BaseDir, log),
		Publisher: datamodel.NewPublisher(log),
		Cvars:     cvar.NewStore(log),
		Notify:    notify.NewQueue(opts.NotifyLines),
		Arbiter:   inputmode.NewArbiter(),
		Commands:  action.NewCommandQueue(),
		Nav:       action.NewNavStack(),
		clock:     clock,
		log:       log,
	}
	b.UICvars = cvar.NewBinding(b.Cvars, log)
	b.Notify.SetChime(opts.Chime)
	b.Actions = action.NewDispatcher(&action.Context{Commands: b.Commands, Nav: b.Nav}, log)
	b.Scripts = script.New(b.Cvars, b.Commands, clock.Now, log)

	if err := datamodel.DeclareStandard(b.Publisher); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	if err := b.Actions.RegisterStandard(); err != nil {
		return nil, fmt.Errorf("bridge: %w", err)
	}
	return b, nil
}

// Init boots the script state; call once before the first frame
func (b *Bridge) Init() error {
	return b.Scripts.Bootstrap()
}

// Shutdown tears the script state down
func (b *Bridge) Shutdown() {
	b.Scripts.Shutdown()
}

// Now returns the bridge's monotonic time in seconds
func (b *Bridge) Now() float64 {
	return b.clock.Now()
}

// Frame runs one synchronization pass
// build fills the frame's snapshot from simulation state; it runs first,
// then bindings republish, cvars reconcile, expired notifications evict,
// and script callbacks fire. Dirty bindings are readable off Publisher
// until the next Frame. UI- and script-queued commands accumulate in
// Commands for the host to drain after composition
func (b *Bridge) Frame(build func(*snapshot.Builder)) {
	var snap *snapshot.Snapshot
	if build != nil {
		build(&b.builder)
		snap = b.builder.Freeze()
	}

	b.Publisher.Update(snap)
	if snap != nil {
		// A frame with no simulation output keeps the last view for
		// bindings and scripts alike
		b.Scripts.SetSnapshot(snap)
	}
	b.UICvars.Update()
	b.Notify.Update(b.clock.Now())
	b.Scripts.RunCallbacks()
}

// DrainCommands hands queued console commands to the host, oldest first
func (b *Bridge) DrainCommands() []action.Command {
	return b.Commands.Drain()
}

// OpenDocument pushes doc and takes exclusive input capture
func (b *Bridge) OpenDocument(doc string) {
	b.Nav.Push(doc)
	b.Arbiter.DocumentOpened()
}

// CloseDocument pops the top document and releases its capture
func (b *Bridge) CloseDocument() (string, bool) {
	doc, ok := b.Nav.Pop()
	if ok {
		b.Arbiter.DocumentClosed()
	}
	return doc, ok
}

// LoadScript resolves path through the vfs and executes it
// A vfs miss or script error is logged and returned, never fatal
func (b *Bridge) LoadScript(path string) error {
	h, err := b.Resolver.Open(path)
	if err != nil {
		b.log.Warn("ui script missing", "path", path, "err", err)
		return err
	}
	defer h.Close()
	if err := b.Scripts.RunReader(h, path); err != nil {
		b.log.Warn("ui script failed", "path", path, "err", err)
		return err
	}
	return nil
}

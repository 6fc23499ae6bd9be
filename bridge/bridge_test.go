package bridge

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/lixenwraith/qrml/cvar"
	"github.com/lixenwraith/qrml/inputmode"
	"github.com/lixenwraith/qrml/snapshot"
)

func newTestBridge(t *testing.T, baseDir string) (*Bridge, *ManualClock) {
	t.Helper()
	clock := &ManualClock{}
	b, err := New(Options{BaseDir: baseDir, Clock: clock})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(b.Shutdown)
	return b, clock
}

// TestFrameOrdering runs a full frame and checks each stage's output
func TestFrameOrdering(t *testing.T) {
	b, clock := newTestBridge(t, "")

	b.Frame(func(s *snapshot.Builder) {
		s.Connected = true
		s.Health = 100
	})
	dirty := b.Publisher.Dirty()
	if !slices.Contains(dirty, "health") {
		t.Errorf("Expected health dirty on first frame, got %v", dirty)
	}

	// Unchanged frame publishes nothing
	b.Frame(func(s *snapshot.Builder) {})
	if len(b.Publisher.Dirty()) != 0 {
		t.Errorf("Expected empty dirty set, got %v", b.Publisher.Dirty())
	}

	// Changed health republishes exactly the changed binding
	b.Frame(func(s *snapshot.Builder) { s.Health = 50 })
	dirty = b.Publisher.Dirty()
	if len(dirty) != 1 || dirty[0] != "health" {
		t.Errorf("Expected [health], got %v", dirty)
	}

	// Notify expiry is driven by the frame clock
	b.Notify.Push("picked up 25 shells", clock.Now(), 2)
	clock.Advance(1)
	b.Frame(func(s *snapshot.Builder) {})
	if len(b.Notify.Visible(clock.Now())) != 1 {
		t.Error("Expected notify line visible at t=1")
	}
	clock.Advance(1)
	b.Frame(func(s *snapshot.Builder) {})
	if len(b.Notify.Visible(clock.Now())) != 0 {
		t.Error("Expected notify line evicted at t=2")
	}
}

// TestScriptSeesFrameState verifies scripts read the frame's snapshot and
// their queued commands surface at drain time
func TestScriptSeesFrameState(t *testing.T) {
	b, _ := newTestBridge(t, "")

	err := b.Scripts.RunString(`
		quake.register("lowhealth", function()
			if snap.health ~= nil and snap.health < 25 then
				quake.exec("play items/health.wav")
			end
		end)
	`)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}

	b.Frame(func(s *snapshot.Builder) {
		s.Connected = true
		s.Health = 80
	})
	if cmds := b.DrainCommands(); len(cmds) != 0 {
		t.Errorf("Expected no commands at health 80, got %v", cmds)
	}

	b.Frame(func(s *snapshot.Builder) { s.Health = 10 })
	cmds := b.DrainCommands()
	if len(cmds) != 1 || cmds[0].Text != "play items/health.wav" {
		t.Errorf("Expected queued play command, got %v", cmds)
	}
}

// TestCvarReconciliation verifies both write directions across a frame
func TestCvarReconciliation(t *testing.T) {
	b, _ := newTestBridge(t, "")
	if _, err := b.Cvars.Register("sensitivity", cvar.TypeFloat, "3"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := b.UICvars.Expose("sensitivity"); err != nil {
		t.Fatalf("Expose failed: %v", err)
	}

	b.UICvars.SetFromUI("sensitivity", "5.0")
	v, _ := b.Cvars.Lookup("sensitivity")
	if v.Number() != 5.0 {
		t.Errorf("Expected write-through 5.0, got %v", v.Number())
	}

	// External write becomes UI-visible at the next frame's poll
	b.Cvars.Set("sensitivity", "8")
	b.Frame(func(s *snapshot.Builder) {})
	n, _ := b.UICvars.Number("sensitivity")
	if n != 8 {
		t.Errorf("Expected 8 after poll, got %v", n)
	}
}

// TestDocumentInputFlow verifies nav and arbiter stay in step
func TestDocumentInputFlow(t *testing.T) {
	b, _ := newTestBridge(t, "")

	if err := b.Actions.Dispatch("navigate", "main_menu"); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	// Dispatch edits the stack; the UI layer reports the open
	b.Arbiter.DocumentOpened()
	if b.Arbiter.Mode() != inputmode.MenuActive {
		t.Errorf("Expected MenuActive, got %v", b.Arbiter.Mode())
	}

	b.CloseDocument()
	if b.Arbiter.Mode() != inputmode.Inactive {
		t.Errorf("Expected Inactive after close, got %v", b.Arbiter.Mode())
	}
	if b.Nav.Depth() != 0 {
		t.Errorf("Expected empty nav stack, got depth %d", b.Nav.Depth())
	}

	b.OpenDocument("options")
	if top, _ := b.Nav.Top(); top != "options" || b.Arbiter.Mode() != inputmode.MenuActive {
		t.Errorf("Expected options captured, got %q %v", top, b.Arbiter.Mode())
	}
}

// TestLoadScriptFromBasedir verifies the vfs tier-2 path and reload cycles
func TestLoadScriptFromBasedir(t *testing.T) {
	base := t.TempDir()
	full := filepath.Join(base, "ui", "hud.lua")
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	content := []byte(`quake.register("hud", function() end)`)
	if err := os.WriteFile(full, content, 0o644); err != nil {
		t.Fatal(err)
	}

	b, _ := newTestBridge(t, base)
	for i := 0; i < 3; i++ {
		if err := b.LoadScript("ui/hud.lua"); err != nil {
			t.Fatalf("LoadScript %d failed: %v", i, err)
		}
	}
	if n := b.Scripts.CallbackCount(); n != 1 {
		t.Errorf("Expected 1 callback after reloads, got %d", n)
	}

	if err := b.LoadScript("ui/missing.lua"); err == nil {
		t.Error("Expected error for missing script")
	}
}

// TestFrameWithoutSimulation verifies a nil build keeps last-known state
func TestFrameWithoutSimulation(t *testing.T) {
	b, _ := newTestBridge(t, "")
	b.Frame(func(s *snapshot.Builder) {
		s.Connected = true
		s.Health = 42
	})

	b.Frame(nil)
	v, ok := b.Publisher.Value("health")
	if !ok || v.AsInt() != 42 {
		t.Errorf("Expected retained health 42, got %v ok=%v", v, ok)
	}
	if err := b.Scripts.RunString(`assert(snap.health == 42)`); err != nil {
		t.Errorf("Script read failed: %v", err)
	}
}

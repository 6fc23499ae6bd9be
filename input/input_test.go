package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/qrml/inputmode"
)

// TestRouteByMode verifies events land on the side the arbiter picked
func TestRouteByMode(t *testing.T) {
	arb := inputmode.NewArbiter()
	var toUI, toSim []int
	ui := func(ev inputmode.Event) { toUI = append(toUI, ev.Key) }
	sim := func(ev inputmode.Event) { toSim = append(toSim, ev.Key) }

	Route(arb, inputmode.Event{Key: 'w'}, ui, sim)
	if len(toSim) != 1 || len(toUI) != 0 {
		t.Errorf("Inactive: expected sim delivery, got ui=%v sim=%v", toUI, toSim)
	}

	arb.DocumentOpened()
	Route(arb, inputmode.Event{Key: 'w'}, ui, sim)
	if len(toUI) != 1 {
		t.Errorf("MenuActive: expected ui delivery, got ui=%v sim=%v", toUI, toSim)
	}
	arb.DocumentClosed()

	arb.SetHUD(true)
	arb.AddInterest('r')
	Route(arb, inputmode.Event{Key: 'w'}, ui, sim)
	Route(arb, inputmode.Event{Key: 'r'}, ui, sim)
	if len(toSim) != 2 || len(toUI) != 2 {
		t.Errorf("Overlay: expected split delivery, got ui=%v sim=%v", toUI, toSim)
	}
}

// TestRouteNilHandlers verifies missing handlers drop events quietly
func TestRouteNilHandlers(t *testing.T) {
	arb := inputmode.NewArbiter()
	Route(arb, inputmode.Event{Key: 'w'}, nil, nil)
	arb.DocumentOpened()
	Route(arb, inputmode.Event{Key: 'w'}, nil, nil)
}

// TestTranslateKey covers rune and special-key mapping
func TestTranslateKey(t *testing.T) {
	key, ok := TranslateKey(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if !ok || key != 'w' {
		t.Errorf("Expected rune key 'w', got %d ok=%v", key, ok)
	}

	key, ok = TranslateKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !ok || key >= 0 {
		t.Errorf("Expected negative code for escape, got %d ok=%v", key, ok)
	}

	// Non-key events are not input
	if _, ok := TranslateKey(tcell.NewEventResize(80, 24)); ok {
		t.Error("Resize must not translate to a key")
	}
}

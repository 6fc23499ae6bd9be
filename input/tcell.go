package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/qrml/inputmode"
)

// TcellBackend feeds a tcell screen's events through the arbiter
// For hosts with a terminal frontend; the real engine backend implements
// the same Backend contract over its own event source
type TcellBackend struct {
	screen tcell.Screen
	arb    *inputmode.Arbiter
	ui     Handler
	sim    Handler
}

// NewTcellBackend creates a backend over an initialized screen
func NewTcellBackend(screen tcell.Screen, arb *inputmode.Arbiter, ui, sim Handler) *TcellBackend {
	return &TcellBackend{screen: screen, arb: arb, ui: ui, sim: sim}
}

// Pump drains pending events without blocking
func (t *TcellBackend) Pump() {
	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		key, ok := TranslateKey(ev)
		if !ok {
			continue
		}
		Route(t.arb, inputmode.Event{Key: key}, t.ui, t.sim)
	}
}

// TranslateKey maps a tcell event to a backend-neutral key code
// Printable runes map to their code point; special keys map below zero so
// the two ranges never collide
func TranslateKey(ev tcell.Event) (int, bool) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return 0, false
	}
	if kev.Key() == tcell.KeyRune {
		return int(kev.Rune()), true
	}
	return -int(kev.Key()), true
}

// Package input routes backend events through the arbiter's claim
// predicate. Backends differ in where events come from; the claim decision
// is identical for all of them.
package input

import (
	"github.com/lixenwraith/qrml/inputmode"
)

// Handler consumes one routed event
type Handler func(ev inputmode.Event)

// Backend produces input events for the bridge
// Pump is called once per frame on the frame thread and must not block
type Backend interface {
	Pump()
}

// Route delivers ev to the UI or the simulation per the arbiter's claim
// Every backend funnels through here so claim behavior never depends on
// where the event originated
func Route(arb *inputmode.Arbiter, ev inputmode.Event, ui, sim Handler) {
	if arb.Claim(ev) {
		if ui != nil {
			ui(ev)
		}
		return
	}
	if sim != nil {
		sim(ev)
	}
}

// Package inputmode decides which subsystem consumes input each frame.
// One arbiter instance is the single owner of that decision; every
// input-producing backend consults the same Claim predicate so behavior
// is backend-independent.
package inputmode

// Mode is the current input ownership state
type Mode uint8

const (
	// Inactive: the simulation owns all input
	Inactive Mode = iota
	// MenuActive: an open document captures every input event
	MenuActive
	// Overlay: the HUD is shown; only events of registered interest are
	// claimed, the rest pass through to the simulation
	Overlay
)

func (m Mode) String() string {
	switch m {
	case Inactive:
		return "inactive"
	case MenuActive:
		return "menu"
	case Overlay:
		return "overlay"
	}
	return "unknown"
}

// Override is a transient per-event claim decision
// Used for cases like escape-to-cancel during a key capture, which must be
// honored even while the arbiter would otherwise claim all input
type Override uint8

const (
	OverrideNone Override = iota
	OverrideClaim
	OverridePass
)

// Event is the backend-neutral view of one input event
type Event struct {
	Key      int // backend-neutral key code
	Override Override
}

// Arbiter derives the input mode from capture state
// Open documents are counted; captures dominate HUD visibility, so the
// observable mode never passes through MenuActive on a HUD toggle
type Arbiter struct {
	captures int
	hud      bool
	interest map[int]bool
}

// NewArbiter creates an arbiter in Inactive
func NewArbiter() *Arbiter {
	return &Arbiter{interest: make(map[int]bool)}
}

// Mode returns the current input mode
func (a *Arbiter) Mode() Mode {
	switch {
	case a.captures > 0:
		return MenuActive
	case a.hud:
		return Overlay
	}
	return Inactive
}

// DocumentOpened records an exclusive-capture request (a menu opening)
func (a *Arbiter) DocumentOpened() {
	a.captures++
}

// DocumentClosed releases one capture; the last release returns input to
// the simulation (or the overlay, when the HUD is shown)
func (a *Arbiter) DocumentClosed() {
	if a.captures > 0 {
		a.captures--
	}
}

// SetHUD shows or hides the overlay; no exclusive capture involved
func (a *Arbiter) SetHUD(visible bool) {
	a.hud = visible
}

// AddInterest registers a key the overlay claims (e.g. a rebind target)
func (a *Arbiter) AddInterest(key int) {
	a.interest[key] = true
}

// RemoveInterest drops a registered overlay key
func (a *Arbiter) RemoveInterest(key int) {
	delete(a.interest, key)
}

// ClearInterest drops all registered overlay keys
func (a *Arbiter) ClearInterest() {
	clear(a.interest)
}

// Claim reports whether the UI consumes ev this frame
// Pure function of the current mode plus the event's transient override
func (a *Arbiter) Claim(ev Event) bool {
	switch ev.Override {
	case OverrideClaim:
		return true
	case OverridePass:
		return false
	}
	switch a.Mode() {
	case MenuActive:
		return true
	case Overlay:
		return a.interest[ev.Key]
	}
	return false
}

// WantsInput reports whether any UI input claim is possible this frame
func (a *Arbiter) WantsInput() bool {
	return a.Mode() != Inactive
}

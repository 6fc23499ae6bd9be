package datamodel

import (
	"testing"

	"github.com/lixenwraith/qrml/snapshot"
)

func healthProjection(s *snapshot.Snapshot) Value {
	return Int(int64(s.Health()))
}

// TestDirtyOnChange verifies a binding is dirty exactly when its value moved
func TestDirtyOnChange(t *testing.T) {
	p := NewPublisher(nil)
	if err := p.Declare("health", healthProjection); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	b := &snapshot.Builder{Health: 100, Connected: true}
	p.Update(b.Freeze())

	if len(p.Dirty()) != 1 || p.Dirty()[0] != "health" {
		t.Errorf("Expected [health] dirty on first update, got %v", p.Dirty())
	}
	v, ok := p.Value("health")
	if !ok || v.AsInt() != 100 {
		t.Errorf("Expected published 100, got %v ok=%v", v, ok)
	}

	b.Health = 80
	p.Update(b.Freeze())
	if len(p.Dirty()) != 1 {
		t.Errorf("Expected 1 dirty after change, got %v", p.Dirty())
	}
	v, _ = p.Value("health")
	if v.AsInt() != 80 {
		t.Errorf("Expected published 80, got %d", v.AsInt())
	}
}

// TestUpdateIdempotent verifies an unchanged snapshot yields no dirty set
func TestUpdateIdempotent(t *testing.T) {
	p := NewPublisher(nil)
	p.Declare("health", healthProjection)

	snap := (&snapshot.Builder{Health: 50}).Freeze()
	p.Update(snap)
	p.Update(snap)

	if len(p.Dirty()) != 0 {
		t.Errorf("Expected empty dirty set on second update, got %v", p.Dirty())
	}
}

// TestNilSnapshot verifies values survive a frame with no simulation state
func TestNilSnapshot(t *testing.T) {
	p := NewPublisher(nil)
	p.Declare("health", healthProjection)
	p.Update((&snapshot.Builder{Health: 66}).Freeze())

	p.Update(nil)
	if len(p.Dirty()) != 0 {
		t.Errorf("Expected empty dirty set for nil snapshot, got %v", p.Dirty())
	}
	v, ok := p.Value("health")
	if !ok || v.AsInt() != 66 {
		t.Errorf("Expected retained value 66, got %v ok=%v", v, ok)
	}
}

// TestDuplicateDeclare verifies re-declaring a name fails
func TestDuplicateDeclare(t *testing.T) {
	p := NewPublisher(nil)
	if err := p.Declare("health", healthProjection); err != nil {
		t.Fatalf("First declare failed: %v", err)
	}
	if err := p.Declare("health", healthProjection); err == nil {
		t.Error("Expected error on duplicate declare")
	}
	if err := p.Declare("broken", nil); err == nil {
		t.Error("Expected error on nil projection")
	}
}

// TestStandardBindings covers the stock table and degraded-state fallback
func TestStandardBindings(t *testing.T) {
	p := NewPublisher(nil)
	if err := DeclareStandard(p); err != nil {
		t.Fatalf("DeclareStandard failed: %v", err)
	}

	b := &snapshot.Builder{
		Connected:    true,
		Health:       99,
		ActiveWeapon: snapshot.ItemSuperNailgun,
		Nails:        120,
		Ammo:         120,
		Items:        snapshot.ItemSuperNailgun | snapshot.ItemNails | snapshot.ItemQuad,
		MapTime:      125,
		LevelName:    "The Slipgate Complex",
	}
	p.Update(b.Freeze())

	want := map[string]string{
		"health":       "99",
		"weapon_label": "Super Nailgun",
		"ammo_label":   "Nails",
		"ammo":         "120",
		"map_time":     "2:05",
		"level_name":   "The Slipgate Complex",
		"has_quad":     "1",
		"has_pent":     "0",
	}
	for name, expected := range want {
		v, ok := p.Value(name)
		if !ok {
			t.Errorf("Missing binding %q", name)
			continue
		}
		if got := v.Format(); got != expected {
			t.Errorf("Binding %q = %q, want %q", name, got, expected)
		}
	}

	// Disconnect: combat stats drop to defaults, not stale values
	b.Connected = false
	p.Update(b.Freeze())
	v, _ := p.Value("health")
	if v.AsInt() != 0 {
		t.Errorf("Expected health 0 while disconnected, got %d", v.AsInt())
	}
}

// TestEachOrder verifies Each walks bindings in declaration order
func TestEachOrder(t *testing.T) {
	p := NewPublisher(nil)
	p.Declare("b", func(*snapshot.Snapshot) Value { return Int(2) })
	p.Declare("a", func(*snapshot.Snapshot) Value { return Int(1) })
	p.Update((&snapshot.Builder{}).Freeze())

	var names []string
	p.Each(func(name string, v Value) { names = append(names, name) })
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("Expected declaration order [b a], got %v", names)
	}
}

package datamodel

import (
	"fmt"

	"github.com/lixenwraith/qrml/snapshot"
)

// DeclareStandard registers the stock HUD binding table
// Combat stats fall back to zero values while disconnected or during
// intermission instead of publishing stale garbage
func DeclareStandard(p *Publisher) error {
	live := func(fn Projection) Projection {
		return func(s *snapshot.Snapshot) Value {
			if !s.Connected() || s.Intermission() {
				return Int(0)
			}
			return fn(s)
		}
	}

	decls := []struct {
		name string
		fn   Projection
	}{
		{"health", live(func(s *snapshot.Snapshot) Value { return Int(int64(s.Health())) })},
		{"armor", live(func(s *snapshot.Snapshot) Value { return Int(int64(s.Armor())) })},
		{"armor_label", func(s *snapshot.Snapshot) Value { return String(s.ArmorName()) }},
		{"ammo", live(func(s *snapshot.Snapshot) Value { return Int(int64(s.Ammo())) })},
		{"ammo_label", func(s *snapshot.Snapshot) Value { return String(s.AmmoName()) }},
		{"weapon_label", func(s *snapshot.Snapshot) Value { return String(s.WeaponName()) }},
		{"shells", live(func(s *snapshot.Snapshot) Value { return Int(int64(s.Shells())) })},
		{"nails", live(func(s *snapshot.Snapshot) Value { return Int(int64(s.Nails())) })},
		{"rockets", live(func(s *snapshot.Snapshot) Value { return Int(int64(s.Rockets())) })},
		{"cells", live(func(s *snapshot.Snapshot) Value { return Int(int64(s.Cells())) })},
		{"frags", func(s *snapshot.Snapshot) Value { return Int(int64(s.Frags())) }},
		{"level_name", func(s *snapshot.Snapshot) Value { return String(s.LevelName()) }},
		{"map_time", func(s *snapshot.Snapshot) Value { return String(clockString(s.MapTime())) }},
		{"monsters", func(s *snapshot.Snapshot) Value { return Int(int64(s.Monsters())) }},
		{"total_monsters", func(s *snapshot.Snapshot) Value { return Int(int64(s.TotalMonsters())) }},
		{"secrets", func(s *snapshot.Snapshot) Value { return Int(int64(s.Secrets())) }},
		{"total_secrets", func(s *snapshot.Snapshot) Value { return Int(int64(s.TotalSecrets())) }},
		{"connected", func(s *snapshot.Snapshot) Value { return Bool(s.Connected()) }},
		{"intermission", func(s *snapshot.Snapshot) Value { return Bool(s.Intermission()) }},
		{"paused", func(s *snapshot.Snapshot) Value { return Bool(s.Paused()) }},
		{"has_quad", func(s *snapshot.Snapshot) Value { return Bool(s.HasItem(snapshot.ItemQuad)) }},
		{"has_pent", func(s *snapshot.Snapshot) Value { return Bool(s.HasItem(snapshot.ItemInvulnerability)) }},
		{"has_ring", func(s *snapshot.Snapshot) Value { return Bool(s.HasItem(snapshot.ItemInvisibility)) }},
		{"has_suit", func(s *snapshot.Snapshot) Value { return Bool(s.HasItem(snapshot.ItemSuit)) }},
		{"has_key1", func(s *snapshot.Snapshot) Value { return Bool(s.HasItem(snapshot.ItemKey1)) }},
		{"has_key2", func(s *snapshot.Snapshot) Value { return Bool(s.HasItem(snapshot.ItemKey2)) }},
	}

	for _, d := range decls {
		if err := p.Declare(d.name, d.fn); err != nil {
			return err
		}
	}
	return nil
}

// clockString renders map time as m:ss
func clockString(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

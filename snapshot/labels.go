package snapshot

// weaponNames maps the active-weapon item bit to its display label
// Order matters: checked from the strongest bit down
var weaponNames = []struct {
	bit  uint32
	name string
}{
	{ItemSuperLightning, "Super Lightning"},
	{ItemLightning, "Thunderbolt"},
	{ItemRocketLauncher, "Rocket Launcher"},
	{ItemGrenadeLauncher, "Grenade Launcher"},
	{ItemSuperNailgun, "Super Nailgun"},
	{ItemNailgun, "Nailgun"},
	{ItemSuperShotgun, "Double-barrelled Shotgun"},
	{ItemShotgun, "Shotgun"},
	{ItemAxe, "Axe"},
}

// WeaponName returns the display label for the held weapon
// Empty string when no weapon bit is set (disconnected, intermission)
func (s *Snapshot) WeaponName() string {
	for _, w := range weaponNames {
		if s.data.ActiveWeapon == w.bit {
			return w.name
		}
	}
	return ""
}

// AmmoName returns the ammo-type label for the held weapon
func (s *Snapshot) AmmoName() string {
	switch s.data.ActiveWeapon {
	case ItemShotgun, ItemSuperShotgun:
		return "Shells"
	case ItemNailgun, ItemSuperNailgun:
		return "Nails"
	case ItemGrenadeLauncher, ItemRocketLauncher:
		return "Rockets"
	case ItemLightning, ItemSuperLightning:
		return "Cells"
	}
	return ""
}

// ArmorName returns the display label for the worn armor, empty when none
func (s *Snapshot) ArmorName() string {
	switch {
	case s.HasItem(ItemArmor3):
		return "Red Armor"
	case s.HasItem(ItemArmor2):
		return "Yellow Armor"
	case s.HasItem(ItemArmor1):
		return "Green Armor"
	}
	return ""
}

// Package snapshot holds the per-frame copy of simulation state consumed
// by the UI layer. A Builder is mutable while the engine fills it in; Freeze
// produces the immutable Snapshot handed to bindings and scripts for the
// remainder of the frame.
package snapshot

// Builder accumulates one frame of simulation state
// Owned by the engine until Freeze; reusable across frames
type Builder struct {
	Health       int
	Armor        int
	Frags        int
	ActiveWeapon uint32 // IT_* bit of the held weapon
	WeaponFrame  int
	Ammo         int // rounds for the active weapon
	Shells       int
	Nails        int
	Rockets      int
	Cells        int
	Items        uint32 // IT_* bitmask

	LevelName     string
	MapTime       float64 // seconds since level start
	Monsters      int
	TotalMonsters int
	Secrets       int
	TotalSecrets  int

	Connected    bool
	Intermission bool
	Paused       bool
	Chat         string // most recent chat line, empty if none
}

// FromStats fills stat-array-backed fields from the engine's stat block
// Fields without a stat slot (level name, flags) are left untouched
func (b *Builder) FromStats(stats []int) {
	get := func(i int) int {
		if i < len(stats) {
			return stats[i]
		}
		return 0
	}
	b.Health = get(StatHealth)
	b.Frags = get(StatFrags)
	b.Armor = get(StatArmor)
	b.WeaponFrame = get(StatWeaponFrame)
	b.Ammo = get(StatAmmo)
	b.Shells = get(StatShells)
	b.Nails = get(StatNails)
	b.Rockets = get(StatRockets)
	b.Cells = get(StatCells)
	b.ActiveWeapon = uint32(get(StatActiveWeapon))
	b.Items = uint32(get(StatItems))
	b.Monsters = get(StatMonsters)
	b.TotalMonsters = get(StatTotalMonsters)
	b.Secrets = get(StatSecrets)
	b.TotalSecrets = get(StatTotalSecrets)
}

// Freeze copies the builder into an immutable Snapshot
// The builder may be mutated again immediately; the returned view never changes
func (b *Builder) Freeze() *Snapshot {
	return &Snapshot{data: *b}
}

// Snapshot is the read-only view of one frame of simulation state
// Access is accessor-only so scripts and bindings cannot mutate it
type Snapshot struct {
	data Builder
}

func (s *Snapshot) Health() int          { return s.data.Health }
func (s *Snapshot) Armor() int           { return s.data.Armor }
func (s *Snapshot) Frags() int           { return s.data.Frags }
func (s *Snapshot) ActiveWeapon() uint32 { return s.data.ActiveWeapon }
func (s *Snapshot) WeaponFrame() int     { return s.data.WeaponFrame }
func (s *Snapshot) Ammo() int            { return s.data.Ammo }
func (s *Snapshot) Shells() int          { return s.data.Shells }
func (s *Snapshot) Nails() int           { return s.data.Nails }
func (s *Snapshot) Rockets() int         { return s.data.Rockets }
func (s *Snapshot) Cells() int           { return s.data.Cells }
func (s *Snapshot) Items() uint32        { return s.data.Items }
func (s *Snapshot) LevelName() string    { return s.data.LevelName }
func (s *Snapshot) MapTime() float64     { return s.data.MapTime }
func (s *Snapshot) Monsters() int        { return s.data.Monsters }
func (s *Snapshot) TotalMonsters() int   { return s.data.TotalMonsters }
func (s *Snapshot) Secrets() int         { return s.data.Secrets }
func (s *Snapshot) TotalSecrets() int    { return s.data.TotalSecrets }
func (s *Snapshot) Connected() bool      { return s.data.Connected }
func (s *Snapshot) Intermission() bool   { return s.data.Intermission }
func (s *Snapshot) Paused() bool         { return s.data.Paused }
func (s *Snapshot) Chat() string         { return s.data.Chat }

// HasItem reports whether an IT_* bit is set
func (s *Snapshot) HasItem(bit uint32) bool {
	return s.data.Items&bit != 0
}

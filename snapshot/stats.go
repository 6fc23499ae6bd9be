package snapshot

// Stat indices as communicated to the client by the server
// Mirrors the engine's stat array layout
const (
	StatHealth        = 0
	StatFrags         = 1
	StatWeapon        = 2
	StatAmmo          = 3
	StatArmor         = 4
	StatWeaponFrame   = 5
	StatShells        = 6
	StatNails         = 7
	StatRockets       = 8
	StatCells         = 9
	StatActiveWeapon  = 10
	StatTotalSecrets  = 11
	StatTotalMonsters = 12
	StatSecrets       = 13
	StatMonsters      = 14
	StatItems         = 15

	MaxBaseStats = 32
)

// Item bits carried in the items bitmask
const (
	ItemShotgun         = 1 << 0
	ItemSuperShotgun    = 1 << 1
	ItemNailgun         = 1 << 2
	ItemSuperNailgun    = 1 << 3
	ItemGrenadeLauncher = 1 << 4
	ItemRocketLauncher  = 1 << 5
	ItemLightning       = 1 << 6
	ItemSuperLightning  = 1 << 7
	ItemShells          = 1 << 8
	ItemNails           = 1 << 9
	ItemRockets         = 1 << 10
	ItemCells           = 1 << 11
	ItemAxe             = 1 << 12
	ItemArmor1          = 1 << 13
	ItemArmor2          = 1 << 14
	ItemArmor3          = 1 << 15
	ItemSuperHealth     = 1 << 16
	ItemKey1            = 1 << 17
	ItemKey2            = 1 << 18
	ItemInvisibility    = 1 << 19
	ItemInvulnerability = 1 << 20
	ItemSuit            = 1 << 21
	ItemQuad            = 1 << 22
	ItemSigil1          = 1 << 28
	ItemSigil2          = 1 << 29
	ItemSigil3          = 1 << 30
	ItemSigil4          = 1 << 31
)

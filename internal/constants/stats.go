package constants

import "strconv"

// Stat ids referenced directly by code.
const (
	StatFlags         = 0
	StatMaxHealth     = 1
	StatCanFlags      = 30
	StatLevel         = 54
	StatValue         = 74
	StatItemClass     = 76
	StatIcon          = 79
	StatStrength      = 16
	StatAgility       = 17
	StatStamina       = 18
	StatIntelligence  = 19
	StatSense         = 20
	StatPsychic       = 21
	StatTreatment     = 124
	StatRunSpeed      = 156
	StatComputerLit   = 161
	StatMaxNanoEnergy = 221
	StatEquipmentSlot = 298
)

var (
	// StatNames covers every stat the service reports by name.
	StatNames = map[int]string{
		0:  "Flags",
		1:  "Max Health",
		16: "Strength",
		17: "Agility",
		18: "Stamina",
		19: "Intelligence",
		20: "Sense",
		21: "Psychic",
		30: "Can",
		54: "Level",
		74: "Value",
		76: "Item Class",
		79: "Icon",

		// armor class
		90: "Projectile AC",
		91: "Melee AC",
		92: "Energy AC",
		93: "Chemical AC",
		94: "Radiation AC",
		95: "Cold AC",
		96: "Poison AC",
		97: "Fire AC",

		// skills
		100: "Martial Arts",
		101: "Multi Melee",
		102: "1h Blunt",
		103: "1h Edged",
		104: "Melee Energy",
		105: "2h Edged",
		106: "Piercing",
		107: "2h Blunt",
		108: "Sharp Objects",
		109: "Grenade",
		110: "Heavy Weapons",
		111: "Bow",
		112: "Pistol",
		113: "Rifle",
		114: "MG / SMG",
		115: "Shotgun",
		116: "Assault Rifle",
		117: "Vehicle Water",
		118: "Melee Init",
		119: "Ranged Init",
		120: "Physical Init",
		121: "Bow Special Attack",
		122: "Sensory Improvement",
		123: "First Aid",
		124: "Treatment",
		125: "Mechanical Engineering",
		126: "Electrical Engineering",
		127: "Matter Metamorphosis",
		128: "Biological Metamorphosis",
		129: "Psychological Modifications",
		130: "Matter Creation",
		131: "Time and Space",
		132: "Nano Pool",
		133: "Ranged Energy",
		134: "Multi Ranged",
		135: "Trap Disarm",
		136: "Perception",
		137: "Adventuring",
		138: "Swimming",
		139: "Vehicle Air",
		140: "Map Navigation",
		141: "Tutoring",
		142: "Brawl",
		143: "Riposte",
		144: "Dimach",
		145: "Parry",
		146: "Sneak Attack",
		147: "Fast Attack",
		148: "Burst",
		149: "Nano Init",
		150: "Fling Shot",
		151: "Aimed Shot",
		152: "Body Development",
		153: "Duck Explosions",
		154: "Dodge Ranged",
		155: "Evade Close",
		156: "Run Speed",
		157: "Quantum FT",
		158: "Weapon Smithing",
		159: "Pharmaceuticals",
		160: "Nano Programming",
		161: "Computer Literacy",
		162: "Psychology",
		163: "Chemistry",
		164: "Concealment",
		165: "Breaking and Entry",
		166: "Vehicle Ground",
		167: "Full Auto",
		168: "Nano Resist",

		181: "Max NCU",
		205: "Reflect Projectile AC",
		206: "Reflect Melee AC",
		207: "Reflect Energy AC",
		208: "Reflect Chemical AC",
		210: "Attack Delay",
		216: "Reflect Radiation AC",
		217: "Reflect Cold AC",
		218: "Reflect Nano AC",
		219: "Reflect Fire AC",
		221: "Max Nano Energy",
		225: "Reflect Poison AC",
		226: "Shield Projectile AC",
		227: "Shield Melee AC",
		228: "Shield Energy AC",
		229: "Shield Chemical AC",
		230: "Shield Radiation AC",
		231: "Shield Cold AC",
		232: "Shield Nano AC",
		233: "Shield Fire AC",
		234: "Shield Poison AC",
		238: "Absorb Projectile AC",
		239: "Absorb Melee AC",
		240: "Absorb Energy AC",
		241: "Absorb Chemical AC",
		242: "Absorb Radiation AC",
		243: "Absorb Cold AC",
		244: "Absorb Fire AC",
		245: "Absorb Poison AC",
		246: "Absorb Nano AC",
		276: "Add All Offense",
		277: "Add All Defense",
		278: "Projectile Damage Modifier",
		279: "Melee Damage Modifier",
		280: "Energy Damage Modifier",
		281: "Chemical Damage Modifier",
		282: "Radiation Damage Modifier",
		285: "Max Damage",
		286: "Min Damage",
		287: "Attack Range",
		294: "Recharge Delay",
		298: "Equipment Slot",
		311: "Cold Damage Modifier",
		315: "Nano Damage Modifier",
		316: "Fire Damage Modifier",
		317: "Poison Damage Modifier",
		319: "XP Modifier",
		343: "Heal Delta",
		364: "Nano Delta",
		379: "Critical Increase",
		381: "Nano Range",
		383: "Nano Interrupt Modifier",
		535: "Heal Multiplier",
		536: "Nano Damage Multiplier",
	}

	interpolatableStats = buildInterpolatableStats()
)

// IsInterpolatableStat reports whether a stat's value scales with QL.
// Anything else is structural and is never interpolated.
func IsInterpolatableStat(id int) bool {
	return interpolatableStats[id]
}

func buildInterpolatableStats() map[int]bool {
	stats := map[int]bool{
		StatMaxHealth:     true,
		StatValue:         true,
		StatMaxNanoEnergy: true,
		181:               true,
		210:               true,
		276:               true,
		277:               true,
		285:               true,
		286:               true,
		287:               true,
		294:               true,
		319:               true,
		343:               true,
		364:               true,
		379:               true,
		381:               true,
		383:               true,
		535:               true,
		536:               true,
	}

	// abilities
	for id := StatStrength; id <= StatPsychic; id++ {
		stats[id] = true
	}
	// armor class
	for id := 90; id <= 97; id++ {
		stats[id] = true
	}
	// skills
	for id := 100; id <= 168; id++ {
		stats[id] = true
	}
	// reflects
	for _, id := range []int{205, 206, 207, 208, 216, 217, 218, 219, 225} {
		stats[id] = true
	}
	// shields and absorbs
	for id := 226; id <= 234; id++ {
		stats[id] = true
	}
	for id := 238; id <= 246; id++ {
		stats[id] = true
	}
	// damage modifiers
	for _, id := range []int{278, 279, 280, 281, 282, 311, 315, 316, 317} {
		stats[id] = true
	}

	return stats
}

// StatName returns the display name of a stat, or "Stat <id>" when unknown.
func StatName(id int) string {
	if name, ok := StatNames[id]; ok {
		return name
	}
	return "Stat " + strconv.Itoa(id)
}

package constants

import "strings"

// EquipmentSlots maps slot names to their bit in the equipment slot stat.
var EquipmentSlots = map[string]int{
	"neck":           1 << 1,
	"head":           1 << 2,
	"back":           1 << 3,
	"right-shoulder": 1 << 4,
	"chest":          1 << 5,
	"left-shoulder":  1 << 6,
	"right-arm":      1 << 7,
	"hands":          1 << 8,
	"left-arm":       1 << 9,
	"right-wrist":    1 << 10,
	"legs":           1 << 11,
	"left-wrist":     1 << 12,
	"right-finger":   1 << 13,
	"feet":           1 << 14,
	"left-finger":    1 << 15,
}

// SlotMask resolves a slot name (case-insensitive).
func SlotMask(name string) (int, bool) {
	mask, ok := EquipmentSlots[strings.ToLower(strings.TrimSpace(name))]
	return mask, ok
}

// NonInterpolatableNameMarker excludes whole item families from interpolation.
const NonInterpolatableNameMarker = "Control Point"

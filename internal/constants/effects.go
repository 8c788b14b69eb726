package constants

// ParamShape describes which keys an effect's parameter map carries.
type ParamShape int

const (
	ShapeOpaque ParamShape = iota
	ShapeAttributeAmount
	ShapeSkillAmount
	ShapeAttributePercent
)

// Effect type ids.
const (
	EffectHit              = 53002
	EffectDrain            = 53030
	EffectModify           = 53045
	EffectSkill            = 53026
	EffectAddSkill         = 53184
	EffectModifyPercentage = 53117
	EffectChangeEffect     = 53187

	EffectSet          = 53033
	EffectTeleport     = 53044
	EffectCastNano     = 53051
	EffectLockSkill    = 53054
	EffectHeadText     = 53016
	EffectSetFlag      = 53070
	EffectAnimEffect   = 53019
	EffectSpawnMonster = 53083
)

var (
	interpolatableEffects = map[int]ParamShape{
		EffectHit:              ShapeAttributeAmount,
		EffectDrain:            ShapeAttributeAmount,
		EffectModify:           ShapeAttributeAmount,
		EffectSkill:            ShapeSkillAmount,
		EffectAddSkill:         ShapeSkillAmount,
		EffectModifyPercentage: ShapeAttributePercent,
		EffectChangeEffect:     ShapeAttributePercent,
	}

	modifierEffects = map[int]bool{
		EffectModify:   true,
		EffectSkill:    true,
		EffectAddSkill: true,
	}
)

// EffectShape reports the parameter shape of an effect type whose magnitude
// scales with QL. Other types report false and are copied through.
func EffectShape(effectType int) (ParamShape, bool) {
	shape, ok := interpolatableEffects[effectType]
	return shape, ok
}

// IsModifierEffect reports whether an effect type counts as a stat modifier
// when matching equipment by modifier combination.
func IsModifierEffect(effectType int) bool {
	return modifierEffects[effectType]
}

// Event (trigger) codes of effect groups.
const (
	EventOnUse     = 0
	EventOnRepair  = 1
	EventOnWield   = 2
	EventOnTarget  = 3
	EventOnHit     = 5
	EventOnCreate  = 7
	EventOnEffects = 10
	EventOnRun     = 11
	EventOnWear    = 14
	EventOnUnwear  = 15
)

// Action codes.
const (
	ActionGet      = 0
	ActionUse      = 3
	ActionWield    = 5
	ActionWear     = 6
	ActionToRemove = 7
	ActionUseOn    = 8
)

// Requirement operator codes.
const (
	OpEqual          = 0
	OpLessThan       = 1
	OpGreaterThan    = 2
	OpGreaterOrEqual = 3
	OpNotEqual       = 24
	OpBitAnd         = 22
	OpNotBitAnd      = 107
)

var OperatorSymbols = map[int]string{
	OpEqual:          "==",
	OpLessThan:       "<",
	OpGreaterThan:    ">",
	OpGreaterOrEqual: ">=",
	OpNotEqual:       "!=",
	OpBitAnd:         "&",
	OpNotBitAnd:      "!&",
}

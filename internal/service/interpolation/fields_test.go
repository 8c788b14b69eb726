package interpolation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoitems/internal/constants"
	"aoitems/internal/storage"
)

var halfway = span{delta: 50, deltaFull: 100}

func TestInterpolateAttributes(t *testing.T) {
	low := []storage.AttributeEntry{
		attr(constants.StatStrength, 100),
		attr(constants.StatIcon, 100),
		attr(constants.StatEquipmentSlot, 4),
		attr(constants.StatValue, 1000),
		attr(constants.StatAgility, 10),
	}
	high := []storage.AttributeEntry{
		attr(constants.StatStrength, 200),
		attr(constants.StatIcon, 200),
		attr(constants.StatEquipmentSlot, 4),
		attr(constants.StatMaxHealth, 500),
		attr(constants.StatValue, 3000),
	}

	got := interpolateAttributes(low, high, halfway)

	want := []storage.AttributeEntry{
		attr(constants.StatStrength, 150),
		// structural stat differs but is never interpolated
		attr(constants.StatIcon, 100),
		attr(constants.StatEquipmentSlot, 4),
		attr(constants.StatValue, 2000),
		// absent on the high side
		attr(constants.StatAgility, 10),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolateAttributes_EqualValuesOutsideAllowList(t *testing.T) {
	low := []storage.AttributeEntry{attr(constants.StatFlags, 77)}
	high := []storage.AttributeEntry{attr(constants.StatFlags, 77)}

	got := interpolateAttributes(low, high, halfway)
	assert.Equal(t, 77, got[0].Value)
}

func TestInterpolateAttributes_DoesNotAliasInput(t *testing.T) {
	low := []storage.AttributeEntry{attr(constants.StatStrength, 100)}
	got := interpolateAttributes(low, nil, halfway)

	got[0].Value = 1
	assert.Equal(t, 100, low[0].Value)
	assert.Nil(t, interpolateAttributes(nil, low, halfway))
}

func TestInterpolateEffects_MatchesByTypeAndTarget(t *testing.T) {
	low := []storage.EffectGroup{{
		Event: constants.EventOnWear,
		Effects: []storage.Effect{
			modify(constants.StatStrength, 10),
			modify(constants.StatAgility, 20),
			modify(constants.StatStamina, 5),
		},
	}}
	high := []storage.EffectGroup{{
		Event: constants.EventOnWear,
		Effects: []storage.Effect{
			// order differs from the low side on purpose
			modify(constants.StatAgility, 40),
			modify(constants.StatStrength, 30),
			modify(constants.StatSense, 50),
		},
	}}

	got := interpolateEffects(low, high, halfway)

	require.Len(t, got, 1)
	want := []storage.Effect{
		modify(constants.StatStrength, 20),
		modify(constants.StatAgility, 30),
		// no effect on the same attribute in the high group
		modify(constants.StatStamina, 5),
	}
	if diff := cmp.Diff(want, got[0].Effects); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpolateEffects_ParameterShapes(t *testing.T) {
	skill := func(amount int) storage.Effect {
		return storage.Effect{Type: constants.EffectSkill, Params: storage.SkillAmount{Skill: constants.StatTreatment, Amount: amount}}
	}
	percent := func(p int) storage.Effect {
		return storage.Effect{Type: constants.EffectModifyPercentage, Params: storage.AttributePercent{Attribute: constants.StatMaxHealth, Percent: p}}
	}

	low := []storage.EffectGroup{{Event: constants.EventOnUse, Effects: []storage.Effect{skill(10), percent(2)}}}
	high := []storage.EffectGroup{{Event: constants.EventOnUse, Effects: []storage.Effect{skill(50), percent(6)}}}

	got := interpolateEffects(low, high, span{delta: 1, deltaFull: 4})

	assert.Equal(t, storage.SkillAmount{Skill: constants.StatTreatment, Amount: 20}, got[0].Effects[0].Params)
	assert.Equal(t, storage.AttributePercent{Attribute: constants.StatMaxHealth, Percent: 3}, got[0].Effects[1].Params)
}

func TestInterpolateEffects_ExtraKeysKeepShape(t *testing.T) {
	withHits := func(amount float64) storage.Effect {
		return storage.Effect{
			Type:   constants.EffectModify,
			Target: 1,
			Params: storage.ParamsFromMap(constants.EffectModify, map[string]any{"attribute": 16.0, "amount": amount, "hits": 1.0}),
		}
	}
	low := []storage.EffectGroup{{Event: constants.EventOnWear, Effects: []storage.Effect{withHits(10)}}}
	high := []storage.EffectGroup{{Event: constants.EventOnWear, Effects: []storage.Effect{withHits(20)}}}

	got := interpolateEffects(low, high, halfway)

	want := storage.AttributeAmount{Attribute: 16, Amount: 15, Extra: map[string]any{"hits": 1.0}}
	if diff := cmp.Diff(want, got[0].Effects[0].Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}

	got[0].Effects[0].Params.(storage.AttributeAmount).Extra["hits"] = 2.0
	assert.Equal(t, 1.0, low[0].Effects[0].Params.(storage.AttributeAmount).Extra["hits"])
}

func TestInterpolateEffects_CopyThrough(t *testing.T) {
	setEffect := func(v float64) storage.Effect {
		return storage.Effect{
			Type:   constants.EffectSet,
			Params: storage.ParamsFromMap(constants.EffectSet, map[string]any{"attribute": float64(constants.StatLevel), "amount": v}),
		}
	}

	low := []storage.EffectGroup{
		{Event: constants.EventOnUse, Effects: []storage.Effect{setEffect(10)}},
		{Event: constants.EventOnTarget, Effects: []storage.Effect{modify(constants.StatStrength, 10)}},
	}
	high := []storage.EffectGroup{
		{Event: constants.EventOnUse, Effects: []storage.Effect{setEffect(90)}},
		{Event: constants.EventOnWear, Effects: []storage.Effect{modify(constants.StatStrength, 90)}},
	}

	got := interpolateEffects(low, high, halfway)

	// type outside the interpolatable set
	assert.Equal(t, low[0].Effects[0].Params, got[0].Effects[0].Params)
	// no high group for this event
	assert.Equal(t, low[1], got[1])
}

func TestInterpolateEffects_OpaqueParamsMatchOnTypeOnly(t *testing.T) {
	// an interpolatable type whose stored map lacks the expected keys
	malformed := storage.Effect{
		Type:   constants.EffectHit,
		Params: storage.ParamsFromMap(constants.EffectHit, map[string]any{"min": 1.0, "max": 5.0}),
	}
	high := storage.Effect{Type: constants.EffectHit, Params: storage.AttributeAmount{Attribute: 27, Amount: 100}}

	got := interpolateEffects(
		[]storage.EffectGroup{{Event: constants.EventOnUse, Effects: []storage.Effect{malformed}}},
		[]storage.EffectGroup{{Event: constants.EventOnUse, Effects: []storage.Effect{high}}},
		halfway,
	)

	assert.Equal(t, malformed.Params, got[0].Effects[0].Params)
}

func TestInterpolateEffects_DoesNotAliasOpaqueParams(t *testing.T) {
	low := storage.Effect{
		Type:   constants.EffectTeleport,
		Params: storage.OpaqueParams{Raw: map[string]any{"playfield": 1.0}},
	}
	got := interpolateEffects([]storage.EffectGroup{{Event: 0, Effects: []storage.Effect{low}}}, nil, halfway)

	got[0].Effects[0].Params.(storage.OpaqueParams).Raw["playfield"] = 2.0
	assert.Equal(t, 1.0, low.Params.(storage.OpaqueParams).Raw["playfield"])
}

func TestInterpolateActions_Positional(t *testing.T) {
	low := []storage.Action{{Type: constants.ActionWear, Requirements: []storage.Requirement{req(16, constants.OpGreaterOrEqual, 100)}}}
	high := []storage.Action{{Type: constants.ActionWear, Requirements: []storage.Requirement{req(16, constants.OpGreaterOrEqual, 200)}}}

	got := interpolateActions(low, high, halfway)

	assert.Equal(t, []storage.Requirement{req(16, constants.OpGreaterOrEqual, 150)}, got[0].Requirements)
}

func TestInterpolateActions_MismatchCopiesLow(t *testing.T) {
	low := []storage.Action{{
		Type: constants.ActionWear,
		Requirements: []storage.Requirement{
			req(16, constants.OpGreaterOrEqual, 100),
			req(17, constants.OpGreaterThan, 100),
			req(constants.StatEquipmentSlot, constants.OpBitAnd, 4),
			req(18, constants.OpGreaterThan, 100),
		},
	}}
	high := []storage.Action{{
		Type: constants.ActionWear,
		Requirements: []storage.Requirement{
			// operator differs
			req(16, constants.OpGreaterThan, 200),
			// attribute differs at this index
			req(18, constants.OpGreaterThan, 200),
			// not allow-listed
			req(constants.StatEquipmentSlot, constants.OpBitAnd, 8),
		},
	}}

	got := interpolateActions(low, high, halfway)

	assert.Equal(t, low[0].Requirements, got[0].Requirements)
}

func TestInterpolateActions_UnmatchedActionType(t *testing.T) {
	low := []storage.Action{
		{Type: constants.ActionUse, Requirements: []storage.Requirement{req(16, constants.OpGreaterThan, 10)}},
		{Type: constants.ActionWear, Requirements: []storage.Requirement{req(16, constants.OpGreaterThan, 10)}},
	}
	high := []storage.Action{
		{Type: constants.ActionWear, Requirements: []storage.Requirement{req(16, constants.OpGreaterThan, 30), req(17, constants.OpGreaterThan, 1)}},
	}

	got := interpolateActions(low, high, halfway)

	assert.Equal(t, low[0], got[0])
	assert.Equal(t, []storage.Requirement{req(16, constants.OpGreaterThan, 20)}, got[1].Requirements)
}

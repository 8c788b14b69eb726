package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoitems/internal/constants"
)

func TestDecodeEffectParams(t *testing.T) {
	tests := []struct {
		name       string
		effectType int
		data       string
		want       EffectParams
	}{
		{
			name:       "modify",
			effectType: constants.EffectModify,
			data:       `{"attribute": 16, "amount": 12}`,
			want:       AttributeAmount{Attribute: 16, Amount: 12},
		},
		{
			name:       "skill",
			effectType: constants.EffectSkill,
			data:       `{"skill": 124, "amount": -3}`,
			want:       SkillAmount{Skill: 124, Amount: -3},
		},
		{
			name:       "percentage",
			effectType: constants.EffectModifyPercentage,
			data:       `{"attribute": 1, "percent": 15}`,
			want:       AttributePercent{Attribute: 1, Percent: 15},
		},
		{
			name:       "missing amount stays opaque",
			effectType: constants.EffectModify,
			data:       `{"attribute": 16}`,
			want:       OpaqueParams{Raw: map[string]any{"attribute": 16.0}},
		},
		{
			name:       "extra keys are kept",
			effectType: constants.EffectModify,
			data:       `{"attribute": 16, "amount": 1, "flag": true}`,
			want:       AttributeAmount{Attribute: 16, Amount: 1, Extra: map[string]any{"flag": true}},
		},
		{
			name:       "fractional amount stays opaque",
			effectType: constants.EffectHit,
			data:       `{"attribute": 27, "amount": 1.5}`,
			want:       OpaqueParams{Raw: map[string]any{"attribute": 27.0, "amount": 1.5}},
		},
		{
			name:       "non interpolated type",
			effectType: constants.EffectTeleport,
			data:       `{"playfield": 800}`,
			want:       OpaqueParams{Raw: map[string]any{"playfield": 800.0}},
		},
		{
			name:       "null",
			effectType: constants.EffectModify,
			data:       `null`,
			want:       OpaqueParams{Raw: map[string]any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeEffectParams(tt.effectType, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEffectParams_Invalid(t *testing.T) {
	_, err := DecodeEffectParams(constants.EffectModify, []byte(`[1,2]`))
	assert.Error(t, err)
}

func TestOpaqueParams_Target(t *testing.T) {
	target, ok := OpaqueParams{Raw: map[string]any{"skill": 124.0}}.Target()
	assert.True(t, ok)
	assert.Equal(t, 124, target)

	_, ok = OpaqueParams{Raw: map[string]any{"text": "hello"}}.Target()
	assert.False(t, ok)
}

func TestEffect_JSON(t *testing.T) {
	e := Effect{
		Type:   constants.EffectModify,
		Target: 1,
		Params: AttributeAmount{Attribute: 16, Amount: 4},
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":53045,"target":1,"tick_count":0,"tick_interval":0,"params":{"attribute":16,"amount":4},"requirements":null}`, string(data))

	var decoded Effect
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, e, decoded)
}

func TestParamsToMap_MergesExtra(t *testing.T) {
	p := SkillAmount{Skill: 124, Amount: 3, Extra: map[string]any{"hits": 1.0, "amount": 99.0}}

	got := ParamsToMap(p)

	assert.Equal(t, map[string]any{"skill": 124, "amount": 3, "hits": 1.0}, got)
	got["hits"] = 2.0
	assert.Equal(t, 1.0, p.Extra["hits"])
}

func TestEffect_JSONWithExtra(t *testing.T) {
	data := []byte(`{"type":53117,"target":1,"tick_count":0,"tick_interval":0,"params":{"attribute":1,"percent":15,"stack":[2]},"requirements":null}`)

	var e Effect
	require.NoError(t, json.Unmarshal(data, &e))
	assert.Equal(t, AttributePercent{Attribute: 1, Percent: 15, Extra: map[string]any{"stack": []any{2.0}}}, e.Params)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(out))
}

func TestItem_CloneIsDeep(t *testing.T) {
	item := &Item{
		ID:         1,
		Attributes: []AttributeEntry{{Attribute: 16, Value: 1}},
		Effects: []EffectGroup{{Event: constants.EventOnWear, Effects: []Effect{{
			Type:   constants.EffectTeleport,
			Params: OpaqueParams{Raw: map[string]any{"list": []any{1.0}}},
		}, {
			Type:   constants.EffectModify,
			Params: AttributeAmount{Attribute: 16, Amount: 1, Extra: map[string]any{"list": []any{1.0}}},
		}}}},
		Actions: []Action{{Type: constants.ActionWear, Requirements: []Requirement{{Attribute: 16, Value: 5}}}},
	}

	clone := item.Clone()
	clone.Attributes[0].Value = 99
	clone.Effects[0].Effects[0].Params.(OpaqueParams).Raw["list"].([]any)[0] = 2.0
	clone.Effects[0].Effects[1].Params.(AttributeAmount).Extra["list"].([]any)[0] = 2.0
	clone.Actions[0].Requirements[0].Value = 99

	assert.Equal(t, 1, item.Attributes[0].Value)
	assert.Equal(t, 1.0, item.Effects[0].Effects[0].Params.(OpaqueParams).Raw["list"].([]any)[0])
	assert.Equal(t, 1.0, item.Effects[0].Effects[1].Params.(AttributeAmount).Extra["list"].([]any)[0])
	assert.Equal(t, 5, item.Actions[0].Requirements[0].Value)
}

package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"aoitems/internal/constants"
)

// Effect is a single spell effect. Params carries the type-dependent payload.
type Effect struct {
	Type         int           `json:"type"`
	Target       int           `json:"target"`
	TickCount    int           `json:"tick_count"`
	TickInterval int           `json:"tick_interval"`
	Params       EffectParams  `json:"params"`
	Requirements []Requirement `json:"requirements"`
}

func (e Effect) Clone() Effect {
	out := e
	if e.Params != nil {
		out.Params = e.Params.clone()
	}
	out.Requirements = CloneRequirements(e.Requirements)
	return out
}

type effectJSON struct {
	Type         int             `json:"type"`
	Target       int             `json:"target"`
	TickCount    int             `json:"tick_count"`
	TickInterval int             `json:"tick_interval"`
	Params       json.RawMessage `json:"params"`
	Requirements []Requirement   `json:"requirements"`
}

func (e Effect) MarshalJSON() ([]byte, error) {
	params, err := json.Marshal(ParamsToMap(e.Params))
	if err != nil {
		return nil, err
	}
	return json.Marshal(effectJSON{
		Type:         e.Type,
		Target:       e.Target,
		TickCount:    e.TickCount,
		TickInterval: e.TickInterval,
		Params:       params,
		Requirements: e.Requirements,
	})
}

func (e *Effect) UnmarshalJSON(data []byte) error {
	var raw effectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	params, err := DecodeEffectParams(raw.Type, raw.Params)
	if err != nil {
		return err
	}
	*e = Effect{
		Type:         raw.Type,
		Target:       raw.Target,
		TickCount:    raw.TickCount,
		TickInterval: raw.TickInterval,
		Params:       params,
		Requirements: raw.Requirements,
	}
	return nil
}

// EffectParams is the payload of an effect. The concrete type is decided by
// the effect type: AttributeAmount, SkillAmount, AttributePercent, or
// OpaqueParams for everything that is not interpolated.
type EffectParams interface {
	// Target returns the attribute or skill the effect acts on.
	Target() (int, bool)
	clone() EffectParams
}

// Extra on the typed payloads holds any keys beyond the ones the shape
// names. They are carried through untouched and are nil when absent.

type AttributeAmount struct {
	Attribute int
	Amount    int
	Extra     map[string]any
}

type SkillAmount struct {
	Skill  int
	Amount int
	Extra  map[string]any
}

type AttributePercent struct {
	Attribute int
	Percent   int
	Extra     map[string]any
}

type OpaqueParams struct {
	Raw map[string]any
}

func (p AttributeAmount) Target() (int, bool)  { return p.Attribute, true }
func (p SkillAmount) Target() (int, bool)      { return p.Skill, true }
func (p AttributePercent) Target() (int, bool) { return p.Attribute, true }

// Target reports the "attribute" or "skill" key of the raw map, if any.
func (p OpaqueParams) Target() (int, bool) {
	for _, key := range []string{"attribute", "skill"} {
		if v, ok := p.Raw[key]; ok {
			if n, ok := intValue(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func (p AttributeAmount) clone() EffectParams {
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p SkillAmount) clone() EffectParams {
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p AttributePercent) clone() EffectParams {
	p.Extra = cloneExtra(p.Extra)
	return p
}

func (p OpaqueParams) clone() EffectParams {
	return OpaqueParams{Raw: cloneValue(p.Raw).(map[string]any)}
}

// DecodeEffectParams decodes the stored JSON parameter map of an effect.
func DecodeEffectParams(effectType int, data []byte) (EffectParams, error) {
	const op = "storage.DecodeEffectParams"

	if len(data) == 0 || string(data) == "null" {
		return OpaqueParams{Raw: map[string]any{}}, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: effect %d: %w", op, effectType, err)
	}
	return ParamsFromMap(effectType, raw), nil
}

// ParamsFromMap builds the typed payload for an effect type. A map that lacks
// the keys its type requires is kept as OpaqueParams. Keys beyond the required
// ones end up in Extra.
func ParamsFromMap(effectType int, raw map[string]any) EffectParams {
	if raw == nil {
		raw = map[string]any{}
	}

	shape, _ := constants.EffectShape(effectType)
	switch shape {
	case constants.ShapeAttributeAmount:
		attr, okA := intKey(raw, "attribute")
		amount, okB := intKey(raw, "amount")
		if okA && okB {
			return AttributeAmount{Attribute: attr, Amount: amount, Extra: extraKeys(raw, "attribute", "amount")}
		}
	case constants.ShapeSkillAmount:
		skill, okA := intKey(raw, "skill")
		amount, okB := intKey(raw, "amount")
		if okA && okB {
			return SkillAmount{Skill: skill, Amount: amount, Extra: extraKeys(raw, "skill", "amount")}
		}
	case constants.ShapeAttributePercent:
		attr, okA := intKey(raw, "attribute")
		percent, okB := intKey(raw, "percent")
		if okA && okB {
			return AttributePercent{Attribute: attr, Percent: percent, Extra: extraKeys(raw, "attribute", "percent")}
		}
	}

	return OpaqueParams{Raw: cloneValue(raw).(map[string]any)}
}

// ParamsToMap returns the flat map form used on the wire and in storage.
func ParamsToMap(p EffectParams) map[string]any {
	switch v := p.(type) {
	case AttributeAmount:
		out := withExtra(v.Extra)
		out["attribute"], out["amount"] = v.Attribute, v.Amount
		return out
	case SkillAmount:
		out := withExtra(v.Extra)
		out["skill"], out["amount"] = v.Skill, v.Amount
		return out
	case AttributePercent:
		out := withExtra(v.Extra)
		out["attribute"], out["percent"] = v.Attribute, v.Percent
		return out
	case OpaqueParams:
		if v.Raw == nil {
			return map[string]any{}
		}
		return cloneValue(v.Raw).(map[string]any)
	default:
		return map[string]any{}
	}
}

// extraKeys copies every key of raw except the named ones. It returns nil
// when nothing is left.
func extraKeys(raw map[string]any, named ...string) map[string]any {
	var out map[string]any
	for k, v := range raw {
		if slices.Contains(named, k) {
			continue
		}
		if out == nil {
			out = make(map[string]any, len(raw)-len(named))
		}
		out[k] = cloneValue(v)
	}
	return out
}

// withExtra starts a flat map from a copy of extra. The typed keys are set
// afterwards and win over any extra key of the same name.
func withExtra(extra map[string]any) map[string]any {
	if extra == nil {
		return map[string]any{}
	}
	return cloneValue(extra).(map[string]any)
}

func cloneExtra(extra map[string]any) map[string]any {
	if extra == nil {
		return nil
	}
	return cloneValue(extra).(map[string]any)
}

func intKey(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return intValue(v)
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}

package interpolation

import (
	"aoitems/internal/constants"
	"aoitems/internal/storage"
)

// interpolateAttributes scales allow-listed attributes whose value differs
// between the endpoints. Structural attributes keep the low value.
func interpolateAttributes(low, high []storage.AttributeEntry, s span) []storage.AttributeEntry {
	if low == nil {
		return nil
	}

	highValues := make(map[int]int, len(high))
	for _, a := range high {
		if _, seen := highValues[a.Attribute]; !seen {
			highValues[a.Attribute] = a.Value
		}
	}

	out := make([]storage.AttributeEntry, len(low))
	for i, a := range low {
		out[i] = a

		hv, ok := highValues[a.Attribute]
		if !ok || hv == a.Value || !constants.IsInterpolatableStat(a.Attribute) {
			continue
		}
		out[i].Value = s.apply(a.Value, hv)
	}

	return out
}

// interpolateEffects pairs effect groups by event code and effects by type
// and target.
func interpolateEffects(low, high []storage.EffectGroup, s span) []storage.EffectGroup {
	if low == nil {
		return nil
	}

	out := make([]storage.EffectGroup, len(low))
	for i, g := range low {
		hg, ok := findEffectGroup(high, g.Event)
		if !ok {
			out[i] = g.Clone()
			continue
		}
		out[i] = storage.EffectGroup{
			Event:   g.Event,
			Effects: interpolateEffectList(g.Effects, hg.Effects, s),
		}
	}

	return out
}

func findEffectGroup(groups []storage.EffectGroup, event int) (storage.EffectGroup, bool) {
	for _, g := range groups {
		if g.Event == event {
			return g, true
		}
	}
	return storage.EffectGroup{}, false
}

func interpolateEffectList(low, high []storage.Effect, s span) []storage.Effect {
	if low == nil {
		return nil
	}

	out := make([]storage.Effect, len(low))
	for i, e := range low {
		out[i] = e.Clone()

		if _, ok := constants.EffectShape(e.Type); !ok {
			continue
		}
		match, ok := matchEffect(e, high)
		if !ok {
			continue
		}
		out[i].Params = interpolateParams(out[i].Params, match.Params, s)
	}

	return out
}

// matchEffect finds the first effect of the same type acting on the same
// attribute or skill. Effects without a target match on type alone.
func matchEffect(e storage.Effect, candidates []storage.Effect) (storage.Effect, bool) {
	target, hasTarget := paramsTarget(e.Params)

	for _, c := range candidates {
		if c.Type != e.Type {
			continue
		}
		if hasTarget {
			ct, ok := paramsTarget(c.Params)
			if !ok || ct != target {
				continue
			}
		}
		return c, true
	}

	return storage.Effect{}, false
}

func paramsTarget(p storage.EffectParams) (int, bool) {
	if p == nil {
		return 0, false
	}
	return p.Target()
}

// interpolateParams replaces the magnitude field of a typed payload. The
// target field is never touched, and mismatched shapes keep the low payload.
func interpolateParams(low, high storage.EffectParams, s span) storage.EffectParams {
	switch lp := low.(type) {
	case storage.AttributeAmount:
		if hp, ok := high.(storage.AttributeAmount); ok {
			lp.Amount = s.apply(lp.Amount, hp.Amount)
		}
		return lp
	case storage.SkillAmount:
		if hp, ok := high.(storage.SkillAmount); ok {
			lp.Amount = s.apply(lp.Amount, hp.Amount)
		}
		return lp
	case storage.AttributePercent:
		if hp, ok := high.(storage.AttributePercent); ok {
			lp.Percent = s.apply(lp.Percent, hp.Percent)
		}
		return lp
	default:
		return low
	}
}

// interpolateActions pairs actions by type and compares their requirements
// by position.
func interpolateActions(low, high []storage.Action, s span) []storage.Action {
	if low == nil {
		return nil
	}

	out := make([]storage.Action, len(low))
	for i, a := range low {
		ha, ok := findAction(high, a.Type)
		if !ok {
			out[i] = a.Clone()
			continue
		}
		out[i] = storage.Action{
			Type:         a.Type,
			Requirements: interpolateRequirements(a.Requirements, ha.Requirements, s),
		}
	}

	return out
}

func findAction(actions []storage.Action, actionType int) (storage.Action, bool) {
	for _, a := range actions {
		if a.Type == actionType {
			return a, true
		}
	}
	return storage.Action{}, false
}

// interpolateRequirements matches requirements by index, not by attribute.
// A pair only scales when attribute and operator agree and the attribute is
// allow-listed; indices past the end of the high list copy through.
func interpolateRequirements(low, high []storage.Requirement, s span) []storage.Requirement {
	out := storage.CloneRequirements(low)

	for i := range out {
		if i >= len(high) {
			break
		}
		h := high[i]
		if h.Attribute != out[i].Attribute || h.Operator != out[i].Operator {
			continue
		}
		if !constants.IsInterpolatableStat(out[i].Attribute) {
			continue
		}
		out[i].Value = s.apply(out[i].Value, h.Value)
	}

	return out
}

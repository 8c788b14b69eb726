package storage

import "errors"

var ErrItemNotFound = errors.New("item not found")

// Item is one stored variant of a logical item at a single QL.
type Item struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	QL          int              `json:"ql"`
	IsNano      bool             `json:"is_nano"`
	ItemClass   int              `json:"item_class"`
	Attributes  []AttributeEntry `json:"attributes"`
	Effects     []EffectGroup    `json:"effects"`
	Actions     []Action         `json:"actions"`
}

// GroupKey identifies the variant group an item belongs to.
type GroupKey struct {
	Name        string
	Description string
}

func (i *Item) GroupKey() GroupKey {
	return GroupKey{Name: i.Name, Description: i.Description}
}

// Attribute returns the value of an attribute entry, if present.
func (i *Item) Attribute(id int) (int, bool) {
	for _, a := range i.Attributes {
		if a.Attribute == id {
			return a.Value, true
		}
	}
	return 0, false
}

type AttributeEntry struct {
	Attribute int `json:"attribute"`
	Value     int `json:"value"`
}

// EffectGroup is a set of effects fired together by one event.
type EffectGroup struct {
	Event   int      `json:"event"`
	Effects []Effect `json:"effects"`
}

type Action struct {
	Type         int           `json:"action"`
	Requirements []Requirement `json:"requirements"`
}

type Requirement struct {
	Attribute int `json:"attribute"`
	Operator  int `json:"operator"`
	Value     int `json:"value"`
}

// Clone returns a deep copy of the item; nothing in the copy aliases i.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := *i
	out.Attributes = cloneAttributes(i.Attributes)
	out.Effects = cloneEffectGroups(i.Effects)
	out.Actions = cloneActions(i.Actions)
	return &out
}

func cloneAttributes(in []AttributeEntry) []AttributeEntry {
	if in == nil {
		return nil
	}
	out := make([]AttributeEntry, len(in))
	copy(out, in)
	return out
}

func cloneEffectGroups(in []EffectGroup) []EffectGroup {
	if in == nil {
		return nil
	}
	out := make([]EffectGroup, len(in))
	for i, g := range in {
		out[i] = g.Clone()
	}
	return out
}

func (g EffectGroup) Clone() EffectGroup {
	out := EffectGroup{Event: g.Event}
	if g.Effects != nil {
		out.Effects = make([]Effect, len(g.Effects))
		for i, e := range g.Effects {
			out.Effects[i] = e.Clone()
		}
	}
	return out
}

func cloneActions(in []Action) []Action {
	if in == nil {
		return nil
	}
	out := make([]Action, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

func (a Action) Clone() Action {
	return Action{Type: a.Type, Requirements: CloneRequirements(a.Requirements)}
}

func CloneRequirements(in []Requirement) []Requirement {
	if in == nil {
		return nil
	}
	out := make([]Requirement, len(in))
	copy(out, in)
	return out
}

package interpolation

import (
	"aoitems/internal/constants"
	"aoitems/internal/storage"
)

func newVariant(id int64, ql int, attrs ...storage.AttributeEntry) *storage.Item {
	return &storage.Item{
		ID:          id,
		Name:        "Nanite Boots",
		Description: "Boots woven with nanites.",
		QL:          ql,
		ItemClass:   1,
		Attributes:  attrs,
	}
}

func attr(id, value int) storage.AttributeEntry {
	return storage.AttributeEntry{Attribute: id, Value: value}
}

func modify(attribute, amount int) storage.Effect {
	return storage.Effect{
		Type:   constants.EffectModify,
		Target: 1,
		Params: storage.AttributeAmount{Attribute: attribute, Amount: amount},
	}
}

func req(attribute, operator, value int) storage.Requirement {
	return storage.Requirement{Attribute: attribute, Operator: operator, Value: value}
}

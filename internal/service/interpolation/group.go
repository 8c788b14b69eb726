package interpolation

import (
	"sort"
	"strings"

	"aoitems/internal/constants"
	"aoitems/internal/storage"
)

// VariantGroup is every stored variant of one logical item, ascending by QL.
type VariantGroup struct {
	Representative *storage.Item
	Variants       []*storage.Item
	Interpolatable bool
}

func (g VariantGroup) Empty() bool {
	return g.Representative == nil || len(g.Variants) == 0
}

// NewVariantGroup orders the variants and classifies the group. The
// representative is the variant the caller asked for.
func NewVariantGroup(representative *storage.Item, variants []*storage.Item) VariantGroup {
	if representative == nil {
		return VariantGroup{}
	}

	ordered := make([]*storage.Item, 0, len(variants)+1)
	found := false
	for _, v := range variants {
		if v == nil {
			continue
		}
		if v.ID == representative.ID {
			found = true
		}
		ordered = append(ordered, v)
	}
	if !found {
		ordered = append(ordered, representative)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].QL != ordered[j].QL {
			return ordered[i].QL < ordered[j].QL
		}
		return ordered[i].ID < ordered[j].ID
	})

	return VariantGroup{
		Representative: representative,
		Variants:       ordered,
		Interpolatable: len(ordered) > 1 && !excludedByKind(representative),
	}
}

// excludedByKind reports items that never interpolate however many
// variants they have.
func excludedByKind(item *storage.Item) bool {
	return item.IsNano || strings.Contains(item.Name, constants.NonInterpolatableNameMarker)
}

// SelectBounds picks the variants bracketing targetQL. high is nil when only
// one endpoint applies: the group does not interpolate, or targetQL lies
// outside the stored range.
func SelectBounds(group VariantGroup, targetQL int) (low, high *storage.Item) {
	if group.Empty() {
		return nil, nil
	}
	if !group.Interpolatable {
		return group.Representative, nil
	}

	vs := group.Variants
	last := len(vs) - 1
	if targetQL <= vs[0].QL {
		return vs[0], nil
	}
	if targetQL >= vs[last].QL {
		return vs[last], nil
	}

	// first variant strictly above targetQL; the one before it is <= targetQL
	i := sort.Search(len(vs), func(i int) bool { return vs[i].QL > targetQL }) - 1
	return vs[i], vs[i+1]
}

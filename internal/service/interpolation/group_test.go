package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoitems/internal/storage"
)

func TestNewVariantGroup_OrdersByQL(t *testing.T) {
	v1 := newVariant(3, 300)
	v2 := newVariant(1, 1)
	v3 := newVariant(2, 200)

	group := NewVariantGroup(v3, []*storage.Item{v1, v2, v3})

	require.Len(t, group.Variants, 3)
	assert.Equal(t, []int{1, 200, 300}, []int{group.Variants[0].QL, group.Variants[1].QL, group.Variants[2].QL})
	assert.True(t, group.Interpolatable)
	assert.Same(t, v3, group.Representative)
}

func TestNewVariantGroup_AddsMissingRepresentative(t *testing.T) {
	rep := newVariant(9, 150)
	group := NewVariantGroup(rep, []*storage.Item{newVariant(1, 100), newVariant(2, 200)})

	require.Len(t, group.Variants, 3)
	assert.Same(t, rep, group.Variants[1])
}

func TestNewVariantGroup_Classification(t *testing.T) {
	single := newVariant(1, 50)
	assert.False(t, NewVariantGroup(single, []*storage.Item{single}).Interpolatable)

	nano := newVariant(1, 1)
	nano.IsNano = true
	assert.False(t, NewVariantGroup(nano, []*storage.Item{nano, newVariant(2, 100), newVariant(3, 200)}).Interpolatable)

	cp := newVariant(1, 1)
	cp.Name = "Notum Control Point Tower"
	assert.False(t, NewVariantGroup(cp, []*storage.Item{cp, newVariant(2, 100)}).Interpolatable)

	assert.True(t, NewVariantGroup(nil, nil).Empty())
}

func TestSelectBounds(t *testing.T) {
	v1, v2, v3 := newVariant(1, 1), newVariant(2, 200), newVariant(3, 300)
	group := NewVariantGroup(v1, []*storage.Item{v1, v2, v3})

	cases := []struct {
		name      string
		ql        int
		low, high *storage.Item
	}{
		{"below range", 0, v1, nil},
		{"at minimum", 1, v1, nil},
		{"inside first pair", 100, v1, v2},
		{"on inner variant", 200, v2, v3},
		{"inside second pair", 299, v2, v3},
		{"at maximum", 300, v3, nil},
		{"above range", 500, v3, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			low, high := SelectBounds(group, c.ql)
			assert.Same(t, c.low, low)
			if c.high == nil {
				assert.Nil(t, high)
			} else {
				assert.Same(t, c.high, high)
			}
		})
	}
}

func TestSelectBounds_NonInterpolatableReturnsRepresentative(t *testing.T) {
	nano := newVariant(2, 100)
	nano.IsNano = true
	group := NewVariantGroup(nano, []*storage.Item{newVariant(1, 1), nano, newVariant(3, 200)})

	for _, ql := range []int{1, 50, 100, 150, 999} {
		low, high := SelectBounds(group, ql)
		assert.Same(t, nano, low)
		assert.Nil(t, high)
	}
}

func TestSelectBounds_EmptyGroup(t *testing.T) {
	low, high := SelectBounds(VariantGroup{}, 10)
	assert.Nil(t, low)
	assert.Nil(t, high)
}

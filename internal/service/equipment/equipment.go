// Package equipment finds wearable items for an equipment slot at a given QL.
package equipment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"aoitems/internal/constants"
	"aoitems/internal/service/interpolation"
	"aoitems/internal/storage"
)

var ErrUnknownSlot = errors.New("unknown equipment slot")

type SlotStorage interface {
	GetSlotCandidates(ctx context.Context, mask int) ([]*storage.ItemSummary, error)
}

type GroupResolver interface {
	Resolve(ctx context.Context, id int64) (interpolation.VariantGroup, error)
}

type SlotQuery struct {
	Slot string
	QL   int
	// Modifiers is the exact set of attributes/skills the item must modify
	// when worn. Empty means any.
	Modifiers []int
}

type Service struct {
	storage  SlotStorage
	resolver GroupResolver
	workers  int
	log      *slog.Logger
}

func NewService(storage SlotStorage, resolver GroupResolver, workers int, log *slog.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{storage: storage, resolver: resolver, workers: workers, log: log}
}

func (s *Service) FindSlotItems(ctx context.Context, q SlotQuery) ([]*storage.InterpolatedItem, error) {
	const op = "service.equipment.FindSlotItems"

	mask, ok := constants.SlotMask(q.Slot)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", op, q.Slot, ErrUnknownSlot)
	}

	candidates, err := s.storage.GetSlotCandidates(ctx, mask)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := distinctGroups(candidates)
	wanted := modifierSet(q.Modifiers)
	results := make([]*storage.InterpolatedItem, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, id := range ids {
		g.Go(func() error {
			group, err := s.resolver.Resolve(gCtx, id)
			if err != nil {
				return err
			}
			if !matches(group, wanted, q.QL) {
				return nil
			}
			results[i] = interpolation.InterpolateGroup(group, q.QL)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := slices.DeleteFunc(results, func(item *storage.InterpolatedItem) bool { return item == nil })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})

	s.log.Debug("slot lookup done",
		slog.String("slot", q.Slot),
		slog.Int("ql", q.QL),
		slog.Int("candidates", len(candidates)),
		slog.Int("groups", len(ids)),
		slog.Int("matched", len(items)),
	)

	return items, nil
}

// distinctGroups keeps the first candidate of every variant group.
func distinctGroups(candidates []*storage.ItemSummary) []int64 {
	seen := make(map[storage.GroupKey]bool, len(candidates))
	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		key := c.GroupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		ids = append(ids, c.ID)
	}
	return ids
}

func matches(group interpolation.VariantGroup, wanted map[int]bool, ql int) bool {
	if group.Empty() {
		return false
	}

	report := interpolation.BuildRangeReport(group)
	if ql < report.MinQL || ql > report.MaxQL {
		return false
	}

	if len(wanted) == 0 {
		return true
	}
	return maps.Equal(WornModifiers(group.Representative), wanted)
}

// WornModifiers returns the attributes and skills modified by the item's
// wear-triggered effects.
func WornModifiers(item *storage.Item) map[int]bool {
	set := make(map[int]bool)
	for _, g := range item.Effects {
		if g.Event != constants.EventOnWear {
			continue
		}
		for _, e := range g.Effects {
			if !constants.IsModifierEffect(e.Type) || e.Params == nil {
				continue
			}
			if target, ok := e.Params.Target(); ok {
				set[target] = true
			}
		}
	}
	return set
}

func modifierSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

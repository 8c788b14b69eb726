package interpolation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aoitems/internal/storage"
)

var ErrNotFound = fmt.Errorf("interpolation: %w", storage.ErrItemNotFound)

type VariantStorage interface {
	GetItemByID(ctx context.Context, id int64) (*storage.Item, error)
	GetVariantsByIdentity(ctx context.Context, name, description string) ([]*storage.Item, error)
}

// Engine computes items at arbitrary QLs from their stored variants.
type Engine struct {
	storage VariantStorage
	log     *slog.Logger
}

func NewEngine(storage VariantStorage, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{storage: storage, log: log}
}

// Resolve loads the variant group of an item. An unknown id yields an empty
// group and no error.
func (e *Engine) Resolve(ctx context.Context, id int64) (VariantGroup, error) {
	const op = "service.interpolation.Resolve"

	item, err := e.storage.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return VariantGroup{}, nil
		}
		return VariantGroup{}, fmt.Errorf("%s: item %d: %w", op, id, err)
	}

	if excludedByKind(item) {
		return NewVariantGroup(item, nil), nil
	}

	variants, err := e.storage.GetVariantsByIdentity(ctx, item.Name, item.Description)
	if err != nil {
		return VariantGroup{}, fmt.Errorf("%s: variants of item %d: %w", op, id, err)
	}

	return NewVariantGroup(item, variants), nil
}

// Interpolate returns the item identified by id computed at targetQL.
func (e *Engine) Interpolate(ctx context.Context, id int64, targetQL int) (*storage.InterpolatedItem, error) {
	group, err := e.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if group.Empty() {
		return nil, ErrNotFound
	}

	result := InterpolateGroup(group, targetQL)

	e.log.Debug("item interpolated",
		slog.Int64("id", id),
		slog.Int("target_ql", targetQL),
		slog.Int("low_ql", result.LowQL),
		slog.Int("high_ql", result.HighQL),
		slog.Bool("interpolating", result.Interpolating),
	)

	return result, nil
}

// InterpolateGroup computes the group's item at targetQL. The result shares
// no memory with the group.
func InterpolateGroup(group VariantGroup, targetQL int) *storage.InterpolatedItem {
	low, high := SelectBounds(group, targetQL)
	if low == nil {
		return nil
	}

	out := &storage.InterpolatedItem{
		Item:     *low.Clone(),
		LowQL:    low.QL,
		HighQL:   low.QL,
		TargetQL: targetQL,
		Delta:    targetQL - low.QL,
	}
	if high == nil {
		return out
	}

	s := span{delta: targetQL - low.QL, deltaFull: high.QL - low.QL}

	out.Attributes = interpolateAttributes(low.Attributes, high.Attributes, s)
	out.Effects = interpolateEffects(low.Effects, high.Effects, s)
	out.Actions = interpolateActions(low.Actions, high.Actions, s)
	out.Interpolating = true
	out.HighQL = high.QL
	out.DeltaFull = s.deltaFull

	return out
}

// Package seed loads item fixtures from YAML and writes them to storage.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"aoitems/internal/storage"
)

type ItemSaver interface {
	SaveItem(ctx context.Context, item *storage.Item) error
}

type fixture struct {
	Items []itemDoc `yaml:"items"`
}

type itemDoc struct {
	ID          int64         `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	QL          int           `yaml:"ql"`
	IsNano      bool          `yaml:"is_nano"`
	ItemClass   int           `yaml:"item_class"`
	Attributes  map[int]int   `yaml:"attributes"`
	Effects     []effectGroup `yaml:"effects"`
	Actions     []actionDoc   `yaml:"actions"`
}

type effectGroup struct {
	Event   int         `yaml:"event"`
	Effects []effectDoc `yaml:"effects"`
}

type effectDoc struct {
	Type         int                   `yaml:"type"`
	Target       int                   `yaml:"target"`
	TickCount    int                   `yaml:"tick_count"`
	TickInterval int                   `yaml:"tick_interval"`
	Params       map[string]any        `yaml:"params"`
	Requirements []storage.Requirement `yaml:"requirements"`
}

type actionDoc struct {
	Action       int                   `yaml:"action"`
	Requirements []storage.Requirement `yaml:"requirements"`
}

// Load decodes a fixture document. Attribute maps are flattened in ascending
// attribute order.
func Load(r io.Reader) ([]*storage.Item, error) {
	const op = "seed.Load"

	var doc fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]*storage.Item, 0, len(doc.Items))
	seen := make(map[int64]bool, len(doc.Items))
	for _, d := range doc.Items {
		if d.ID == 0 {
			return nil, fmt.Errorf("%s: item %q has no id", op, d.Name)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("%s: duplicate item id %d", op, d.ID)
		}
		seen[d.ID] = true
		items = append(items, d.toItem())
	}

	return items, nil
}

func (d itemDoc) toItem() *storage.Item {
	item := &storage.Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		QL:          d.QL,
		IsNano:      d.IsNano,
		ItemClass:   d.ItemClass,
	}

	for _, id := range slices.Sorted(maps.Keys(d.Attributes)) {
		item.Attributes = append(item.Attributes, storage.AttributeEntry{Attribute: id, Value: d.Attributes[id]})
	}

	for _, g := range d.Effects {
		group := storage.EffectGroup{Event: g.Event}
		for _, e := range g.Effects {
			group.Effects = append(group.Effects, storage.Effect{
				Type:         e.Type,
				Target:       e.Target,
				TickCount:    e.TickCount,
				TickInterval: e.TickInterval,
				Params:       storage.ParamsFromMap(e.Type, e.Params),
				Requirements: e.Requirements,
			})
		}
		item.Effects = append(item.Effects, group)
	}

	for _, a := range d.Actions {
		item.Actions = append(item.Actions, storage.Action{Type: a.Action, Requirements: a.Requirements})
	}

	return item
}

// Apply saves every item and returns how many were written.
func Apply(ctx context.Context, log *slog.Logger, saver ItemSaver, items []*storage.Item) (int, error) {
	const op = "seed.Apply"

	for i, item := range items {
		if err := saver.SaveItem(ctx, item); err != nil {
			return i, fmt.Errorf("%s: item %d: %w", op, item.ID, err)
		}
		log.Debug("item saved", slog.Int64("id", item.ID), slog.String("name", item.Name), slog.Int("ql", item.QL))
	}

	log.Info("seed applied", slog.Int("items", len(items)))

	return len(items), nil
}

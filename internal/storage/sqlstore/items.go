package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"aoitems/internal/storage"
)

const itemColumns = `id, name, description, ql, is_nano, item_class`

func (s *Storage) GetItemByID(ctx context.Context, id int64) (*storage.Item, error) {
	const op = "storage.sqlstore.GetItemByID"

	stmt := s.rebind(`SELECT ` + itemColumns + ` FROM items WHERE id = ?`)

	item := &storage.Item{}
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.QL,
		&item.IsNano,
		&item.ItemClass,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: item %d: %w", op, id, storage.ErrItemNotFound)
		}
		return nil, fmt.Errorf("%s: query item %d: %w", op, id, err)
	}

	if err := s.loadDetails(ctx, []*storage.Item{item}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// GetVariantsByIdentity returns every variant sharing the exact name and
// description, ascending by QL, with all nested data loaded.
func (s *Storage) GetVariantsByIdentity(ctx context.Context, name, description string) ([]*storage.Item, error) {
	const op = "storage.sqlstore.GetVariantsByIdentity"

	stmt := s.rebind(`SELECT ` + itemColumns + ` FROM items WHERE name = ? AND description = ? ORDER BY ql, id`)

	rows, err := s.db.QueryContext(ctx, stmt, name, description)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []*storage.Item
	for rows.Next() {
		item := &storage.Item{}
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.QL, &item.IsNano, &item.ItemClass)
		if err != nil {
			return nil, fmt.Errorf("%s: scan item: %w", op, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate items: %w", op, err)
	}

	if err := s.loadDetails(ctx, items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// loadDetails fills attributes, effects and actions of the given items. The
// three collections are fetched concurrently.
func (s *Storage) loadDetails(ctx context.Context, items []*storage.Item) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	var (
		attributes map[int64][]storage.AttributeEntry
		effects    map[int64][]storage.EffectGroup
		actions    map[int64][]storage.Action
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attributes, err = s.loadAttributes(gCtx, ids)
		if err != nil {
			return fmt.Errorf("attributes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		effects, err = s.loadEffects(gCtx, ids)
		if err != nil {
			return fmt.Errorf("effects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		actions, err = s.loadActions(gCtx, ids)
		if err != nil {
			return fmt.Errorf("actions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for _, item := range items {
		item.Attributes = attributes[item.ID]
		item.Effects = effects[item.ID]
		item.Actions = actions[item.ID]
	}

	return nil
}

func (s *Storage) loadAttributes(ctx context.Context, ids []int64) (map[int64][]storage.AttributeEntry, error) {
	stmt := s.rebind(`SELECT item_id, attribute_id, attr_value FROM item_attributes
		WHERE item_id IN (` + placeholders(len(ids)) + `) ORDER BY item_id, attr_pos`)

	rows, err := s.db.QueryContext(ctx, stmt, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]storage.AttributeEntry, len(ids))
	for rows.Next() {
		var itemID int64
		var a storage.AttributeEntry
		if err := rows.Scan(&itemID, &a.Attribute, &a.Value); err != nil {
			return nil, err
		}
		result[itemID] = append(result[itemID], a)
	}

	return result, rows.Err()
}

type groupRef struct {
	itemID int64
	pos    int
}

func (s *Storage) loadEffects(ctx context.Context, ids []int64) (map[int64][]storage.EffectGroup, error) {
	stmt := s.rebind(`SELECT item_id, group_pos, event_code FROM item_effect_groups
		WHERE item_id IN (` + placeholders(len(ids)) + `) ORDER BY item_id, group_pos`)

	rows, err := s.db.QueryContext(ctx, stmt, int64Args(ids)...)
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]storage.EffectGroup, len(ids))
	index := make(map[groupRef]int)
	for rows.Next() {
		var ref groupRef
		var event int
		if err := rows.Scan(&ref.itemID, &ref.pos, &event); err != nil {
			rows.Close()
			return nil, err
		}
		index[ref] = len(result[ref.itemID])
		result[ref.itemID] = append(result[ref.itemID], storage.EffectGroup{Event: event})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	stmt = s.rebind(`SELECT item_id, group_pos, effect_type, target, tick_count, tick_interval, params, requirements
		FROM item_effects WHERE item_id IN (` + placeholders(len(ids)) + `) ORDER BY item_id, group_pos, effect_pos`)

	rows, err = s.db.QueryContext(ctx, stmt, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref groupRef
		var e storage.Effect
		var paramsJSON, requirementsJSON string

		err := rows.Scan(&ref.itemID, &ref.pos, &e.Type, &e.Target, &e.TickCount, &e.TickInterval, &paramsJSON, &requirementsJSON)
		if err != nil {
			return nil, err
		}

		e.Params, err = storage.DecodeEffectParams(e.Type, []byte(paramsJSON))
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(requirementsJSON), &e.Requirements); err != nil {
			return nil, fmt.Errorf("effect requirements of item %d: %w", ref.itemID, err)
		}

		i, ok := index[ref]
		if !ok {
			return nil, fmt.Errorf("effect of item %d references missing group %d", ref.itemID, ref.pos)
		}
		group := &result[ref.itemID][i]
		group.Effects = append(group.Effects, e)
	}

	return result, rows.Err()
}

func (s *Storage) loadActions(ctx context.Context, ids []int64) (map[int64][]storage.Action, error) {
	stmt := s.rebind(`SELECT item_id, action_pos, action_type FROM item_actions
		WHERE item_id IN (` + placeholders(len(ids)) + `) ORDER BY item_id, action_pos`)

	rows, err := s.db.QueryContext(ctx, stmt, int64Args(ids)...)
	if err != nil {
		return nil, err
	}

	result := make(map[int64][]storage.Action, len(ids))
	index := make(map[groupRef]int)
	for rows.Next() {
		var ref groupRef
		var actionType int
		if err := rows.Scan(&ref.itemID, &ref.pos, &actionType); err != nil {
			rows.Close()
			return nil, err
		}
		index[ref] = len(result[ref.itemID])
		result[ref.itemID] = append(result[ref.itemID], storage.Action{Type: actionType})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	stmt = s.rebind(`SELECT item_id, action_pos, attribute_id, op_code, threshold FROM item_requirements
		WHERE item_id IN (` + placeholders(len(ids)) + `) ORDER BY item_id, action_pos, req_pos`)

	rows, err = s.db.QueryContext(ctx, stmt, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ref groupRef
		var r storage.Requirement
		if err := rows.Scan(&ref.itemID, &ref.pos, &r.Attribute, &r.Operator, &r.Value); err != nil {
			return nil, err
		}

		i, ok := index[ref]
		if !ok {
			return nil, fmt.Errorf("requirement of item %d references missing action %d", ref.itemID, ref.pos)
		}
		action := &result[ref.itemID][i]
		action.Requirements = append(action.Requirements, r)
	}

	return result, rows.Err()
}

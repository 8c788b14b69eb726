package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"

	"aoitems/internal/storage"
)

// SaveItem replaces one item and all of its nested rows in a single
// transaction.
func (s *Storage) SaveItem(ctx context.Context, item *storage.Item) (err error) {
	const op = "storage.sqlstore.SaveItem"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	exec := func(query string, args ...any) error {
		_, err := tx.ExecContext(ctx, s.rebind(query), args...)
		return err
	}

	for _, table := range itemTables {
		column := "item_id"
		if table == "items" {
			column = "id"
		}
		if err = exec(`DELETE FROM `+table+` WHERE `+column+` = ?`, item.ID); err != nil {
			return fmt.Errorf("%s: clear %s: %w", op, table, err)
		}
	}

	err = exec(`INSERT INTO items (id, name, description, ql, is_nano, item_class) VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Description, item.QL, item.IsNano, item.ItemClass)
	if err != nil {
		return fmt.Errorf("%s: insert item %d: %w", op, item.ID, err)
	}

	for pos, a := range item.Attributes {
		err = exec(`INSERT INTO item_attributes (item_id, attr_pos, attribute_id, attr_value) VALUES (?, ?, ?, ?)`,
			item.ID, pos, a.Attribute, a.Value)
		if err != nil {
			return fmt.Errorf("%s: insert attribute %d: %w", op, a.Attribute, err)
		}
	}

	for groupPos, g := range item.Effects {
		err = exec(`INSERT INTO item_effect_groups (item_id, group_pos, event_code) VALUES (?, ?, ?)`,
			item.ID, groupPos, g.Event)
		if err != nil {
			return fmt.Errorf("%s: insert effect group %d: %w", op, g.Event, err)
		}

		for effectPos, e := range g.Effects {
			paramsJSON, err := json.Marshal(storage.ParamsToMap(e.Params))
			if err != nil {
				return fmt.Errorf("%s: encode params: %w", op, err)
			}
			requirementsJSON, err := json.Marshal(e.Requirements)
			if err != nil {
				return fmt.Errorf("%s: encode effect requirements: %w", op, err)
			}

			err = exec(`INSERT INTO item_effects (item_id, group_pos, effect_pos, effect_type, target, tick_count, tick_interval, params, requirements)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				item.ID, groupPos, effectPos, e.Type, e.Target, e.TickCount, e.TickInterval, string(paramsJSON), string(requirementsJSON))
			if err != nil {
				return fmt.Errorf("%s: insert effect %d: %w", op, e.Type, err)
			}
		}
	}

	for actionPos, a := range item.Actions {
		err = exec(`INSERT INTO item_actions (item_id, action_pos, action_type) VALUES (?, ?, ?)`,
			item.ID, actionPos, a.Type)
		if err != nil {
			return fmt.Errorf("%s: insert action %d: %w", op, a.Type, err)
		}

		for reqPos, r := range a.Requirements {
			err = exec(`INSERT INTO item_requirements (item_id, action_pos, req_pos, attribute_id, op_code, threshold) VALUES (?, ?, ?, ?, ?, ?)`,
				item.ID, actionPos, reqPos, r.Attribute, r.Operator, r.Value)
			if err != nil {
				return fmt.Errorf("%s: insert requirement: %w", op, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

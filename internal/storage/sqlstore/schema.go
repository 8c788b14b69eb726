package sqlstore

import (
	"context"
	"fmt"
)

var schemaTables = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id BIGINT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		ql INTEGER NOT NULL,
		is_nano BOOLEAN NOT NULL DEFAULT FALSE,
		item_class INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS item_attributes (
		item_id BIGINT NOT NULL,
		attr_pos INTEGER NOT NULL,
		attribute_id INTEGER NOT NULL,
		attr_value INTEGER NOT NULL,
		PRIMARY KEY (item_id, attr_pos)
	)`,
	`CREATE TABLE IF NOT EXISTS item_effect_groups (
		item_id BIGINT NOT NULL,
		group_pos INTEGER NOT NULL,
		event_code INTEGER NOT NULL,
		PRIMARY KEY (item_id, group_pos)
	)`,
	`CREATE TABLE IF NOT EXISTS item_effects (
		item_id BIGINT NOT NULL,
		group_pos INTEGER NOT NULL,
		effect_pos INTEGER NOT NULL,
		effect_type INTEGER NOT NULL,
		target INTEGER NOT NULL DEFAULT 0,
		tick_count INTEGER NOT NULL DEFAULT 0,
		tick_interval INTEGER NOT NULL DEFAULT 0,
		params TEXT NOT NULL,
		requirements TEXT NOT NULL,
		PRIMARY KEY (item_id, group_pos, effect_pos)
	)`,
	`CREATE TABLE IF NOT EXISTS item_actions (
		item_id BIGINT NOT NULL,
		action_pos INTEGER NOT NULL,
		action_type INTEGER NOT NULL,
		PRIMARY KEY (item_id, action_pos)
	)`,
	`CREATE TABLE IF NOT EXISTS item_requirements (
		item_id BIGINT NOT NULL,
		action_pos INTEGER NOT NULL,
		req_pos INTEGER NOT NULL,
		attribute_id INTEGER NOT NULL,
		op_code INTEGER NOT NULL,
		threshold INTEGER NOT NULL,
		PRIMARY KEY (item_id, action_pos, req_pos)
	)`,
}

// mysql has no IF NOT EXISTS for indexes; there the import pipeline owns them.
var schemaIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_items_identity ON items (name, ql)`,
	`CREATE INDEX IF NOT EXISTS idx_item_attributes_attr ON item_attributes (attribute_id, attr_value)`,
}

var itemTables = []string{
	"item_requirements",
	"item_actions",
	"item_effects",
	"item_effect_groups",
	"item_attributes",
	"items",
}

func (s *Storage) EnsureSchema(ctx context.Context) error {
	const op = "storage.sqlstore.EnsureSchema"

	stmts := schemaTables
	if s.driver != DriverMySQL {
		stmts = append(append([]string{}, schemaTables...), schemaIndexes...)
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

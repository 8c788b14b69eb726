package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"aoitems/internal/constants"
	"aoitems/internal/storage"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// likeEscaper makes wildcards in user input match literally. '!' is used
// because backslash handling differs between the drivers.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// SearchItems returns one page of item summaries matching the filter.
func (s *Storage) SearchItems(ctx context.Context, filter storage.ItemFilter) (*storage.ItemPage, error) {
	const op = "storage.sqlstore.SearchItems"

	var where []string
	var args []any

	if search := strings.TrimSpace(filter.Search); search != "" {
		where = append(where, "LOWER(name) LIKE ? ESCAPE '!'")
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(search))+"%")
	}
	if filter.ItemClass != nil {
		where = append(where, "item_class = ?")
		args = append(args, *filter.ItemClass)
	}
	if filter.IsNano != nil {
		where = append(where, "is_nano = ?")
		args = append(args, *filter.IsNano)
	}
	if filter.MinQL > 0 {
		where = append(where, "ql >= ?")
		args = append(args, filter.MinQL)
	}
	if filter.MaxQL > 0 {
		where = append(where, "ql <= ?")
		args = append(args, filter.MaxQL)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	var total int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT COUNT(*) FROM items`+clause), args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	stmt := s.rebind(`SELECT ` + itemColumns + ` FROM items` + clause + ` ORDER BY name, ql, id LIMIT ? OFFSET ?`)
	pageArgs := append(append([]any{}, args...), pageSize, (page-1)*pageSize)

	items, err := s.querySummaries(ctx, stmt, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.ItemPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// GetSlotCandidates lists items whose equipment slot stat intersects mask.
func (s *Storage) GetSlotCandidates(ctx context.Context, mask int) ([]*storage.ItemSummary, error) {
	const op = "storage.sqlstore.GetSlotCandidates"

	stmt := s.rebind(`SELECT i.id, i.name, i.description, i.ql, i.is_nano, i.item_class
		FROM items i
		JOIN item_attributes a ON a.item_id = i.id
		WHERE a.attribute_id = ? AND (a.attr_value & ?) <> 0
		ORDER BY i.name, i.ql, i.id`)

	items, err := s.querySummaries(ctx, stmt, constants.StatEquipmentSlot, mask)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *Storage) querySummaries(ctx context.Context, stmt string, args ...any) ([]*storage.ItemSummary, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*storage.ItemSummary{}
	for rows.Next() {
		item := &storage.ItemSummary{}
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.QL, &item.IsNano, &item.ItemClass)
		if err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}

	return items, nil
}

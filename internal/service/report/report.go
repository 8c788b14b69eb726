// Package report renders spreadsheet exports of item data.
package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"aoitems/internal/constants"
	"aoitems/internal/service/interpolation"
)

const (
	DefaultStep = 10
	SheetName   = "QL table"
)

type GroupResolver interface {
	Resolve(ctx context.Context, id int64) (interpolation.VariantGroup, error)
}

type ReportService struct {
	resolver GroupResolver
}

func NewReportService(resolver GroupResolver) *ReportService {
	return &ReportService{resolver: resolver}
}

// ExportItemQLTable renders one row per QL between the item's overall min and
// max QL. Rows are taken every step QLs and at every stored variant.
func (s *ReportService) ExportItemQLTable(ctx context.Context, id int64, step int) ([]byte, error) {
	const op = "service.report.ExportItemQLTable"

	group, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if group.Empty() {
		return nil, fmt.Errorf("%s: item %d: %w", op, id, interpolation.ErrNotFound)
	}

	if step < 1 {
		step = DefaultStep
	}

	report := interpolation.BuildRangeReport(group)
	qls := tableQLs(group, report.MinQL, report.MaxQL, step)
	columns := attributeColumns(group)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", SheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: header style: %w", op, err)
	}

	headers := []string{"QL", "Interpolated"}
	for _, attr := range columns {
		headers = append(headers, constants.StatName(attr))
	}
	for i, name := range headers {
		f.SetCellValue(SheetName, cellName(i+1, 1), name)
	}
	f.SetCellStyle(SheetName, "A1", cellName(len(headers), 1), headerStyle)

	for rowIdx, ql := range qls {
		row := rowIdx + 2
		item := interpolation.InterpolateGroup(group, ql)

		f.SetCellValue(SheetName, cellName(1, row), ql)
		f.SetCellValue(SheetName, cellName(2, row), item.Interpolating && item.Delta != 0)

		for colIdx, attr := range columns {
			if v, ok := item.Attribute(attr); ok {
				f.SetCellValue(SheetName, cellName(colIdx+3, row), v)
			}
		}
	}

	f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(SheetName, "A", "B", 12)
	if len(columns) > 0 {
		f.SetColWidth(SheetName, "C", columnName(len(headers)), 18)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write: %w", op, err)
	}

	return buf.Bytes(), nil
}

func tableQLs(group interpolation.VariantGroup, minQL, maxQL, step int) []int {
	var qls []int
	for ql := minQL; ql <= maxQL; ql += step {
		qls = append(qls, ql)
	}
	qls = append(qls, maxQL)
	for _, v := range group.Variants {
		qls = append(qls, v.QL)
	}
	slices.Sort(qls)
	return slices.Compact(qls)
}

// attributeColumns lists the interpolatable attributes found on any variant,
// in first-seen order.
func attributeColumns(group interpolation.VariantGroup) []int {
	var columns []int
	seen := make(map[int]bool)
	for _, v := range group.Variants {
		for _, a := range v.Attributes {
			if seen[a.Attribute] || !constants.IsInterpolatableStat(a.Attribute) {
				continue
			}
			seen[a.Attribute] = true
			columns = append(columns, a.Attribute)
		}
	}
	return columns
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}

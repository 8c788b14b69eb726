package interpolation

import (
	"context"

	"aoitems/internal/storage"
)

// RangeReport summarizes where an item can be interpolated.
type RangeReport struct {
	Interpolatable bool              `json:"interpolatable"`
	MinQL          int               `json:"min_ql"`
	MaxQL          int               `json:"max_ql"`
	Ranges         []storage.QLRange `json:"ranges"`
}

// BuildRanges lists the contiguous QL ranges of a group: one interpolatable
// range per consecutive pair of variants, or a single fixed range for groups
// that do not interpolate.
func BuildRanges(group VariantGroup) []storage.QLRange {
	if group.Empty() {
		return nil
	}

	if !group.Interpolatable {
		rep := group.Representative
		return []storage.QLRange{{
			MinQL:            rep.QL,
			MaxQL:            rep.QL,
			Interpolatable:   false,
			RepresentativeID: rep.ID,
		}}
	}

	vs := group.Variants
	ranges := make([]storage.QLRange, 0, len(vs))
	for i := 0; i+1 < len(vs); i++ {
		ranges = append(ranges, storage.QLRange{
			MinQL:            vs[i].QL,
			MaxQL:            vs[i+1].QL,
			Interpolatable:   true,
			RepresentativeID: vs[i].ID,
		})
	}

	last := vs[len(vs)-1]
	if last.QL > ranges[len(ranges)-1].MaxQL {
		ranges = append(ranges, storage.QLRange{
			MinQL:            last.QL,
			MaxQL:            last.QL,
			Interpolatable:   false,
			RepresentativeID: last.ID,
		})
	}

	return ranges
}

func BuildRangeReport(group VariantGroup) RangeReport {
	ranges := BuildRanges(group)
	if len(ranges) == 0 {
		return RangeReport{}
	}
	return RangeReport{
		Interpolatable: group.Interpolatable,
		MinQL:          ranges[0].MinQL,
		MaxQL:          ranges[len(ranges)-1].MaxQL,
		Ranges:         ranges,
	}
}

func (e *Engine) Ranges(ctx context.Context, id int64) ([]storage.QLRange, error) {
	report, err := e.RangeReport(ctx, id)
	if err != nil {
		return nil, err
	}
	return report.Ranges, nil
}

func (e *Engine) OverallRange(ctx context.Context, id int64) (minQL, maxQL int, err error) {
	report, err := e.RangeReport(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	return report.MinQL, report.MaxQL, nil
}

// IsInterpolatable is false for unknown items.
func (e *Engine) IsInterpolatable(ctx context.Context, id int64) (bool, error) {
	group, err := e.Resolve(ctx, id)
	if err != nil {
		return false, err
	}
	return group.Interpolatable, nil
}

func (e *Engine) RangeReport(ctx context.Context, id int64) (RangeReport, error) {
	group, err := e.Resolve(ctx, id)
	if err != nil {
		return RangeReport{}, err
	}
	if group.Empty() {
		return RangeReport{}, ErrNotFound
	}
	return BuildRangeReport(group), nil
}

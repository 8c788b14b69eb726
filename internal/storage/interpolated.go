package storage

// InterpolatedItem is an item computed at an arbitrary QL. It is built per
// request and never persisted.
type InterpolatedItem struct {
	Item
	Interpolating bool `json:"interpolating"`
	LowQL         int  `json:"low_ql"`
	HighQL        int  `json:"high_ql"`
	TargetQL      int  `json:"target_ql"`
	Delta         int  `json:"delta"`
	DeltaFull     int  `json:"delta_full"`
}

// QLRange is a contiguous QL span of an item's variant group.
type QLRange struct {
	MinQL            int   `json:"min_ql"`
	MaxQL            int   `json:"max_ql"`
	Interpolatable   bool  `json:"interpolatable"`
	RepresentativeID int64 `json:"representative_id"`
}

package storage

type ItemSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	QL          int    `json:"ql"`
	IsNano      bool   `json:"is_nano"`
	ItemClass   int    `json:"item_class"`
}

func (s *ItemSummary) GroupKey() GroupKey {
	return GroupKey{Name: s.Name, Description: s.Description}
}

type ItemFilter struct {
	Search    string
	ItemClass *int
	IsNano    *bool
	MinQL     int
	MaxQL     int
	Page      int
	PageSize  int
}

type ItemPage struct {
	Items    []*ItemSummary `json:"items"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

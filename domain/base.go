package domain

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Pagination describes the window a list call returned relative to the total
// number of rows matching its filters.
type Pagination struct {
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

func NewPagination(offset, limit int, total int64) Pagination {
	return Pagination{
		Offset:  offset,
		Limit:   limit,
		Total:   total,
		HasMore: int64(offset+limit) < total,
	}
}

// ListQuery is the pagination/sorting contract shared by every list
// operation. Filters live on the per-entity query types embedding it.
type ListQuery struct {
	Offset int
	Limit  int
	SortBy string
	Order  string
}

// Normalize clamps the window to the shared contract: offset >= 0, limit
// defaulting to 50 and silently capped at 100. An order outside asc/desc
// falls back to the entity default.
func (q *ListQuery) Normalize(defaultOrder string) {
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Order != "asc" && q.Order != "desc" {
		q.Order = defaultOrder
	}
}

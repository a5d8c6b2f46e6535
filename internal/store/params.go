package store

// Sort orders accepted by list operations.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination defaults for list operations.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = OrderDesc
	DefaultLimit  = 10
	DefaultPage   = 1
)

// ListParams carries the query-driven filtering, sorting and pagination
// options for list operations. Zero values mean "use the default"; Author
// and Topic filters are applied only when non-empty.
type ListParams struct {
	SortBy string
	Order  string
	Author string
	Topic  string
	Limit  int
	Page   int
}

// DefaultListParams returns the parameters a list operation uses when the
// caller supplies nothing: newest first, ten per page.
func DefaultListParams() ListParams {
	return ListParams{
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
		Limit:  DefaultLimit,
		Page:   DefaultPage,
	}
}

// Normalize fills unset fields with their defaults.
func (p *ListParams) Normalize() {
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.Order == "" {
		p.Order = DefaultOrder
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Page == 0 {
		p.Page = DefaultPage
	}
}

// Offset returns the number of rows to skip for the requested page. Pages
// are 1-indexed.
func (p ListParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

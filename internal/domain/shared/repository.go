package shared

// Filter represents query filter options for listing operations.
// The CLI prints whole result sets, so there is no pagination; Limit
// caps the number of rows fetched and zero means the default.
type Filter struct {
	Limit    int
	OrderBy  string
	OrderDir string
	Filters  map[string]any
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Limit:    100,
		OrderBy:  "created_at",
		OrderDir: "asc",
		Filters:  make(map[string]any),
	}
}

// WithLimit returns a copy of the filter with the given limit applied.
func (f Filter) WithLimit(limit int) Filter {
	if limit > 0 {
		f.Limit = limit
	}
	return f
}

package store

// Sort fields accepted by ListTasks.
const (
	SortByName        = "name"
	SortByDescription = "description"
	SortByCompleted   = "completed"
)

const (
	MinPageSize = 1
	MaxPageSize = 100
)

// legacy field names used by the first deployment of this API
var sortAliases = map[string]string{
	"nome":      SortByName,
	"descricao": SortByDescription,
	"concluida": SortByCompleted,
}

// ListOptions selects the sort field and page window for ListTasks.
type ListOptions struct {
	SortBy   string
	Page     int
	PageSize int
}

// DefaultListOptions returns the options applied when a caller supplies none:
// the first full page, sorted by name.
func DefaultListOptions() ListOptions {
	return ListOptions{SortBy: SortByName, Page: 1, PageSize: MaxPageSize}
}

// Normalize maps legacy sort-field aliases onto their canonical names.
func (o ListOptions) Normalize() ListOptions {
	if canonical, ok := sortAliases[o.SortBy]; ok {
		o.SortBy = canonical
	}
	return o
}

// Validate checks the options against the allowed ranges. Callers should
// Normalize first; unknown sort fields fail with ErrInvalidSortField.
func (o ListOptions) Validate() error {
	switch o.SortBy {
	case SortByName, SortByDescription, SortByCompleted:
	default:
		return ErrInvalidSortField
	}

	if o.Page < 1 {
		return ErrInvalidPage
	}

	if o.PageSize < MinPageSize || o.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}

	return nil
}

// offset returns the index of the first record in the requested window.
func (o ListOptions) offset() int {
	return (o.Page - 1) * o.PageSize
}

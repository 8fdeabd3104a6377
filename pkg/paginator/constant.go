package paginator

const (
	// DefaultPage is the page number used when the caller omits one.
	DefaultPage = 1
	// DefaultLimit is the page size used when the caller omits one.
	DefaultLimit = 20
	// MaxLimit is the maximum allowed page size.
	MaxLimit = 100
)

package query

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page is an offset window over an insertion-ordered result set.
type Page struct {
	Skip  int
	Limit int
}

// Offset returns the number of records to skip, never negative.
func (p Page) Offset() int {
	if p.Skip < 0 {
		return 0
	}
	return p.Skip
}

// Size returns the window size clamped to [1, MaxLimit].
func (p Page) Size() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// DefaultPage returns the first window of DefaultLimit records.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

package domain

// Service represents a bookable service from the catalog.
// Services are immutable on this side; the catalog API owns them.
// Identity is the ID field only - selections must never be keyed by name,
// names are not guaranteed to be unique.
type Service struct {
	ID              int64
	Name            string
	Category        string
	Description     string
	Price           float64
	DurationMinutes int
}

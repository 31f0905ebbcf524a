package storage

// Pattern is a reusable named measurement template. Applying it to an order
// replaces the order's measurement set wholesale, it is never merged.
type Pattern struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Measurements Measurements `json:"measurements"`
}

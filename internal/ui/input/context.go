package input

import (
	"valuetracker/internal/domain"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Query   string
	Sort    domain.SortState
	Focused domain.SortKey
}

// SearchQuery returns the active search text
func (c *ModelContext) SearchQuery() string {
	return c.Query
}

// SortState returns the active sort key and direction
func (c *ModelContext) SortState() domain.SortState {
	return c.Sort
}

// FocusedColumn returns the header Enter would toggle
func (c *ModelContext) FocusedColumn() domain.SortKey {
	return c.Focused
}

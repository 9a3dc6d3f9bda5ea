package domain

import "fmt"

// Item is a single row of the tracker: a unique name and a free-form value string
type Item struct {
	Name  string `toml:"name" json:"name"`
	Value string `toml:"value" json:"value"` // e.g. "4k", "800-1k", "700k+"
}

// SortKey identifies the column the display sequence is ordered by
type SortKey int

const (
	SortByName SortKey = iota
	SortByValue
)

func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortByValue:
		return "value"
	default:
		return "unknown"
	}
}

// ParseSortKey converts a config/flag string into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "name", "":
		return SortByName, nil
	case "value":
		return SortByValue, nil
	default:
		return SortByName, fmt.Errorf("unknown sort key %q (want name or value)", s)
	}
}

// SortDirection is the order applied to the active SortKey
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction
func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// ParseSortDirection converts a config/flag string into a SortDirection
func ParseSortDirection(s string) (SortDirection, error) {
	switch s {
	case "asc", "ascending", "":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("unknown sort direction %q (want asc or desc)", s)
	}
}

// SortState is the active key and direction. There is no unsorted state.
type SortState struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSortState returns name ascending
func DefaultSortState() SortState {
	return SortState{Key: SortByName, Direction: Ascending}
}

// Toggle applies a click on the header for key: the active key flips
// direction, any other key becomes active in ascending order.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		return SortState{Key: key, Direction: s.Direction.Flip()}
	}
	return SortState{Key: key, Direction: Ascending}
}

func (s SortState) String() string {
	return s.Key.String() + " " + s.Direction.String()
}

package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsLoaded   EventType = "ItemsLoaded"
	EventSearchChanged EventType = "SearchChanged"
	EventSortChanged   EventType = "SortChanged"
	EventError         EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsLoadedEvent is emitted once the item list is available
type ItemsLoadedEvent struct {
	Source string // "embedded" or the file path
	Count  int
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// SearchChangedEvent is emitted when the search text changes
type SearchChangedEvent struct {
	Query   string
	Matches int
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// SortChangedEvent is emitted when a sort header is toggled
type SortChangedEvent struct {
	Old SortState
	New SortState
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

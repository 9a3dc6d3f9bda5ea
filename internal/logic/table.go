package logic

import (
	"golang.org/x/text/language"

	"valuetracker/internal/domain"
)

// ItemTable owns the source items plus the session's sort and search state,
// and keeps the display sequence (sorted, then filtered) up to date.
type ItemTable struct {
	store   ItemStore
	sorter  *Sorter
	sort    domain.SortState
	search  string
	display []domain.Item
}

// Option configures an ItemTable
type Option func(*ItemTable)

// WithSortState sets the initial sort state
func WithSortState(state domain.SortState) Option {
	return func(t *ItemTable) {
		t.sort = state
	}
}

// WithSearch sets the initial search text
func WithSearch(query string) Option {
	return func(t *ItemTable) {
		t.search = query
	}
}

// WithLanguage sets the collation language used for name sorting
func WithLanguage(tag language.Tag) Option {
	return func(t *ItemTable) {
		t.sorter = NewSorter(tag)
	}
}

// NewItemTable creates a table over a copy of items
func NewItemTable(items []domain.Item, opts ...Option) *ItemTable {
	t := &ItemTable{
		store: NewMemoryItemStore(items),
		sort:  domain.DefaultSortState(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.sorter == nil {
		t.sorter = NewSorter(language.English)
	}
	t.refresh()
	return t
}

// Toggle handles a click on the sort header for key and returns the new state
func (t *ItemTable) Toggle(key domain.SortKey) domain.SortState {
	t.sort = t.sort.Toggle(key)
	t.refresh()
	return t.sort
}

// SetSearch replaces the search text
func (t *ItemTable) SetSearch(query string) {
	if query == t.search {
		return
	}
	t.search = query
	t.refresh()
}

// Display returns a copy of the current display sequence
func (t *ItemTable) Display() []domain.Item {
	result := make([]domain.Item, len(t.display))
	copy(result, t.display)
	return result
}

// Count returns the number of items in the display sequence
func (t *ItemTable) Count() int {
	return len(t.display)
}

// Total returns the number of source items
func (t *ItemTable) Total() int {
	return t.store.Len()
}

// SortState returns the active sort key and direction
func (t *ItemTable) SortState() domain.SortState {
	return t.sort
}

// Search returns the current search text
func (t *ItemTable) Search() string {
	return t.search
}

func (t *ItemTable) refresh() {
	sorted := t.sorter.Sort(t.store.GetAllItems(), t.sort)
	t.display = FilterItems(sorted, t.search)
}

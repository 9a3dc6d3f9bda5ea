package logic

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"valuetracker/internal/domain"
)

// Sorter orders items according to a SortState.
// Names are compared with a locale-aware collator; a Sorter is not safe
// for concurrent use because the collator keeps internal buffers.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a sorter collating names for the given language
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{
		collator: collate.New(tag),
	}
}

// Sort returns a sorted copy of items. The input slice is left untouched.
// Items that compare equal keep their relative order.
func (s *Sorter) Sort(items []domain.Item, state domain.SortState) []domain.Item {
	sorted := slices.Clone(items)

	var compare func(a, b domain.Item) int
	switch state.Key {
	case domain.SortByValue:
		compare = func(a, b domain.Item) int {
			return cmp.Compare(ExtractNumber(a.Value), ExtractNumber(b.Value))
		}
	default:
		compare = func(a, b domain.Item) int {
			return s.collator.CompareString(a.Name, b.Name)
		}
	}

	if state.Direction == domain.Descending {
		asc := compare
		compare = func(a, b domain.Item) int {
			return asc(b, a)
		}
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

// SortItems sorts a copy of items using English collation for names
func SortItems(items []domain.Item, state domain.SortState) []domain.Item {
	return NewSorter(language.English).Sort(items, state)
}

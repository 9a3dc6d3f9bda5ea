package logic

import (
	"strings"

	"valuetracker/internal/domain"
)

// MatchesSearch reports whether name contains query, ignoring case.
// An empty query matches everything.
func MatchesSearch(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// FilterItems returns the items whose name matches query, in input order
func FilterItems(items []domain.Item, query string) []domain.Item {
	if query == "" {
		return append([]domain.Item(nil), items...)
	}

	lowerQuery := strings.ToLower(query)
	result := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), lowerQuery) {
			result = append(result, item)
		}
	}
	return result
}

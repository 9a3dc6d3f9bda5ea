package logic

import "valuetracker/internal/domain"

// ItemStore provides read-only access to the source item list
type ItemStore interface {
	GetItem(name string) (domain.Item, bool)
	GetAllItems() []domain.Item
	Len() int
}

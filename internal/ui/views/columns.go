package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"valuetracker/internal/domain"
)

const (
	// valueColumnWidth fits "250k-300k" plus the header arrow
	valueColumnWidth = 14
	minNameWidth     = 16
	// cellPadding is the horizontal padding the default table styles add per cell
	cellPadding = 2
)

// Sort indicators shown next to header labels
const (
	ArrowAscending  = "▲"
	ArrowDescending = "▼"
	ArrowInactive   = "↕"
	FocusMarker     = "›"
)

// HeaderTitle renders a column label with its sort indicator.
// The focused column (the one Enter toggles) gets a leading marker.
func HeaderTitle(label string, key domain.SortKey, state domain.SortState, focused bool) string {
	arrow := ArrowInactive
	if state.Key == key {
		arrow = ArrowAscending
		if state.Direction == domain.Descending {
			arrow = ArrowDescending
		}
	}
	title := fmt.Sprintf("%s %s", label, arrow)
	if focused {
		title = FocusMarker + " " + title
	}
	return title
}

// Columns builds the two table columns for the available width
func Columns(nameLabel, valueLabel string, state domain.SortState, focused domain.SortKey, width int) []table.Column {
	nameWidth := width - valueColumnWidth - 2*cellPadding
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	return []table.Column{
		{Title: HeaderTitle(nameLabel, domain.SortByName, state, focused == domain.SortByName), Width: nameWidth},
		{Title: HeaderTitle(valueLabel, domain.SortByValue, state, focused == domain.SortByValue), Width: valueColumnWidth},
	}
}

// Rows converts the display sequence into table rows, right-aligning values
func Rows(items []domain.Item) []table.Row {
	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = table.Row{item.Name, alignRight(item.Value, valueColumnWidth)}
	}
	return rows
}

func alignRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return fmt.Sprintf("%*s", width, s)
}

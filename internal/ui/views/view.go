package views

import (
	"fmt"
	"strings"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	SearchInput   string // rendered search field
	Searching     bool
	Table         string // rendered table
	Count         int
	Noun          string
	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{
		styles: styles,
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")

	searchStyle := r.styles.Search
	if state.Searching {
		searchStyle = r.styles.SearchFocus
	}
	if w := r.innerWidth(state.Width); w > 2 {
		// Border adds two columns
		searchStyle = searchStyle.Width(w - 2)
	}
	content.WriteString(searchStyle.Render(state.SearchInput))
	content.WriteString("\n")

	content.WriteString(state.Table)
	content.WriteString("\n")
	if state.Count == 0 {
		content.WriteString(r.styles.Empty.Render(fmt.Sprintf("No %s match the search.", state.Noun)))
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Count.Render(CountLine(state.Count, state.Noun)))
	content.WriteString("\n")

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// CountLine is the footer under the table, e.g. "10 characters found"
func CountLine(count int, noun string) string {
	return fmt.Sprintf("%d %s found", count, noun)
}

// TableHeight returns how many rows the table can use in a terminal of the
// given height once the title, search box, footer and help are laid out.
func TableHeight(termHeight int) int {
	// padding 2, title 2, search box 3, table header 2, footer 2, help 2
	const chrome = 13
	h := termHeight - chrome
	if h < 3 {
		h = 3
	}
	return h
}

// TableWidth returns the width available to the table columns
func (r *Renderer) TableWidth(termWidth int) int {
	return r.innerWidth(termWidth)
}

func (r *Renderer) innerWidth(termWidth int) int {
	if termWidth <= 0 {
		return 0
	}
	return termWidth - r.styles.Main.GetHorizontalPadding()
}

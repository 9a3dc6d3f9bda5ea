package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"valuetracker/internal/ui/input/types"
)

// SearchMode edits the search text; the table filters on every keystroke
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

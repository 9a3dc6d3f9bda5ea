package types

import "valuetracker/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Sort actions
type ToggleSortAction struct {
	Key domain.SortKey
}

func (a ToggleSortAction) Type() string { return "toggle_sort" }

// FocusColumnAction moves the header focus used by Enter
type FocusColumnAction struct {
	Key domain.SortKey
}

func (a FocusColumnAction) Type() string { return "focus_column" }

// Search actions
type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// UI actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

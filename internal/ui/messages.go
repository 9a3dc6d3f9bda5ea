package ui

// statusClearMsg clears the status line if it still shows the message with this id
type statusClearMsg struct {
	id int
}

package session

// submitMsg is sent when the Submit button is pressed.
type submitMsg struct{}

// advanceMsg is sent when the Next button is pressed.
type advanceMsg struct{}

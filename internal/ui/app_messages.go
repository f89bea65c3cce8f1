package ui

import "fitdash/internal/layout"

// EnterEditMsg starts customizing the layout (e or SPC l e).
type EnterEditMsg struct{}

// SaveLayoutMsg persists the edited layout and leaves edit mode (s).
type SaveLayoutMsg struct{}

// CancelEditMsg discards edits and leaves edit mode (esc).
type CancelEditMsg struct{}

// ToggleSelectedMsg flips visibility of the widget under the cursor (v).
type ToggleSelectedMsg struct{}

// MoveSelectedMsg moves the widget under the cursor one slot (K/J).
type MoveSelectedMsg struct {
	Dir layout.Direction
}

// CursorMsg moves the edit cursor by Delta rows (j/k).
type CursorMsg struct {
	Delta int
}

// SwitchAreaMsg moves the edit cursor to the other column (tab).
type SwitchAreaMsg struct{}

// ShowRestoreDefaultsMsg opens the restore-defaults confirmation (SPC l r).
type ShowRestoreDefaultsMsg struct{}

// RestoreDefaultsMsg is sent when the user confirms restoring defaults.
type RestoreDefaultsMsg struct{}

// DismissModalMsg is sent when the user dismisses a modal (Esc).
type DismissModalMsg struct{}

// DismissToastMsg hides the current toast (x).
type DismissToastMsg struct{}

// toastExpiredMsg hides toast id if it is still showing.
type toastExpiredMsg struct {
	id int
}

// LayoutChangedMsg is sent when the stored layout changed outside this session.
type LayoutChangedMsg struct{}

// LogWaterMsg records Ml of water for today (w).
type LogWaterMsg struct {
	Ml int
}

// CycleWorkoutFilterMsg narrows recent workouts to the next type (f).
type CycleWorkoutFilterMsg struct{}

// ShowComposeMsg opens the post editor (p).
type ShowComposeMsg struct{}

// AddPostMsg is sent when the user submits a post.
type AddPostMsg struct {
	Body string
}

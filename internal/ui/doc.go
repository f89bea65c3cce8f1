// Package ui is the fitdash terminal dashboard built on Bubble Tea.
//
// Core pieces:
//   - View: a screen or region with its own init, update and view (Elm-style)
//   - DashboardView: the two-column widget dashboard and its edit list
//   - FocusManager: tracks which column the edit cursor is in, skipping empty ones
//   - KeyHandler: single keys plus SPC-prefixed leader sequences, filtered by mode
//   - ConfirmModal: yes/no prompt used before restoring defaults
//   - ComposeModal: text input for a community feed post
package ui

package ui

import "slices"

// FocusManager tracks which dashboard column has the edit cursor.
type FocusManager struct {
	Current string   // ID of the focused column
	Order   []string // columns in tab order

	// Skip reports columns that cannot take focus, such as an empty one.
	// Nil means every column can.
	Skip func(id string) bool
}

func (f *FocusManager) focusable(id string) bool {
	return f.Skip == nil || !f.Skip(id)
}

// Next moves focus to the next column that can take it and returns the
// focused ID. Focus stays put when no other column qualifies.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	for step := 1; step < len(f.Order); step++ {
		id := f.Order[(idx+step+len(f.Order))%len(f.Order)]
		if id != f.Current && f.focusable(id) {
			f.Current = id
			break
		}
	}
	return f.Current
}

// SetFocus focuses id. Returns false if id is not a column or is skipped.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) || !f.focusable(id) {
		return false
	}
	f.Current = id
	return true
}

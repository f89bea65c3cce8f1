package ui

// AppMode is the dashboard's top-level mode: viewing, or customizing the layout.
type AppMode int

const (
	ModeView AppMode = iota
	ModeEdit
)

func (m AppMode) String() string {
	switch m {
	case ModeView:
		return "View"
	case ModeEdit:
		return "Edit"
	default:
		return "Unknown"
	}
}

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitdash/internal/layout"
	"fitdash/internal/ui/textutil"
	"fitdash/internal/widget"
)

const (
	defaultWidth    = 100
	minSidebarWidth = 28
)

// Column focus IDs used by the FocusManager in edit mode.
const (
	FocusMain    = string(widget.AreaMain)
	FocusSidebar = string(widget.AreaSidebar)
)

// DashboardView renders the two-column dashboard. In view mode it shows the
// visible widgets of each area; in edit mode it lists every widget with its
// visibility and a cursor for the focused column.
type DashboardView struct {
	Width   int
	Height  int
	Content ContentFunc
	Focus   *FocusManager

	widgets []layout.WidgetConfig
	areas   layout.Areas
	editing bool
	cursor  map[widget.Area]int
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard whose widget bodies come from content.
func NewDashboardView(content ContentFunc) *DashboardView {
	d := &DashboardView{
		Content: content,
		areas:   layout.Project(nil),
		cursor:  map[widget.Area]int{},
	}
	d.Focus = &FocusManager{
		Current: FocusMain,
		Order:   []string{FocusMain, FocusSidebar},
		Skip: func(id string) bool {
			return len(layout.InArea(d.widgets, widget.Area(id))) == 0
		},
	}
	return d
}

// SetLayout replaces the widgets being rendered.
func (d *DashboardView) SetLayout(widgets []layout.WidgetConfig, editing bool) {
	d.widgets = layout.Clone(widgets)
	d.areas = layout.Project(widgets)
	d.editing = editing
	for _, a := range []widget.Area{widget.AreaMain, widget.AreaSidebar} {
		d.clamp(a)
	}
	if d.Focus.Skip != nil && d.Focus.Skip(d.Focus.Current) {
		d.Focus.Next()
	}
}

// Editing reports whether the view renders the edit list.
func (d *DashboardView) Editing() bool { return d.editing }

// Areas returns the visible projection currently rendered.
func (d *DashboardView) Areas() layout.Areas { return d.areas }

func (d *DashboardView) focusedArea() widget.Area {
	return widget.Area(d.Focus.Current)
}

func (d *DashboardView) clamp(a widget.Area) {
	n := len(layout.InArea(d.widgets, a))
	switch {
	case n == 0:
		d.cursor[a] = 0
	case d.cursor[a] >= n:
		d.cursor[a] = n - 1
	case d.cursor[a] < 0:
		d.cursor[a] = 0
	}
}

// CursorDown moves the edit cursor down within the focused column.
func (d *DashboardView) CursorDown() {
	a := d.focusedArea()
	d.cursor[a]++
	d.clamp(a)
}

// CursorUp moves the edit cursor up within the focused column.
func (d *DashboardView) CursorUp() {
	a := d.focusedArea()
	d.cursor[a]--
	d.clamp(a)
}

// SwitchArea moves focus to the other column unless it has no widgets.
func (d *DashboardView) SwitchArea() {
	d.Focus.Next()
}

// SelectedID returns the widget under the cursor, or "" when the focused
// column is empty.
func (d *DashboardView) SelectedID() string {
	a := d.focusedArea()
	ws := layout.InArea(d.widgets, a)
	if len(ws) == 0 {
		return ""
	}
	return ws[d.cursor[a]].ID
}

// Select puts the cursor on id, focusing its column. Returns false for unknown ids.
func (d *DashboardView) Select(id string) bool {
	for _, a := range []widget.Area{widget.AreaMain, widget.AreaSidebar} {
		for i, w := range layout.InArea(d.widgets, a) {
			if w.ID == id {
				d.Focus.SetFocus(string(a))
				d.cursor[a] = i
				return true
			}
		}
	}
	return false
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		d.Width = msg.Width
		d.Height = msg.Height
	}
	return d, nil
}

func (d *DashboardView) columnWidths() (main, sidebar int) {
	width := d.Width
	if width <= 0 {
		width = defaultWidth
	}
	sidebar = max(width/3, minSidebarWidth)
	main = max(width-sidebar-1, minSidebarWidth)
	return main, sidebar
}

// View implements View.
func (d *DashboardView) View() string {
	mainW, sideW := d.columnWidths()
	var left, right string
	if d.editing {
		left = d.editColumn(widget.AreaMain, "Main", mainW)
		right = d.editColumn(widget.AreaSidebar, "Sidebar", sideW)
	} else {
		left = d.viewColumn(d.areas.Main, mainW)
		right = d.viewColumn(d.areas.Sidebar, sideW)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (d *DashboardView) viewColumn(ws []layout.WidgetConfig, width int) string {
	if len(ws) == 0 {
		return lipgloss.NewStyle().Width(width).Padding(1, 1).
			Render(Styles.Empty.Render("No widgets here. Press e to customize."))
	}
	inner := width - Styles.Card.GetHorizontalFrameSize()
	cards := make([]string, 0, len(ws))
	for _, w := range ws {
		body := ""
		if d.Content != nil {
			body = d.Content(w.ID, inner)
		}
		title := Styles.Title.Render(textutil.Truncate(w.Title, inner))
		cards = append(cards, Styles.Card.Width(width-Styles.Card.GetHorizontalBorderSize()).Render(title+"\n"+body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (d *DashboardView) editColumn(area widget.Area, heading string, width int) string {
	frame := Styles.CardEdit
	focused := d.focusedArea() == area
	if focused {
		frame = Styles.CardActive
	}
	inner := width - frame.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(Styles.Section.Render(heading))
	ws := layout.InArea(d.widgets, area)
	if len(ws) == 0 {
		b.WriteString("\n" + Styles.Empty.Render("No widgets"))
	}
	for i, w := range ws {
		marker := "  "
		if focused && i == d.cursor[area] {
			marker = "› "
		}
		check := "[ ]"
		if w.IsVisible {
			check = "[x]"
		}
		order := fmt.Sprintf(" #%d", w.CurrentOrder)
		title := textutil.PadRight(w.Title, max(inner-textutil.Width(marker+check+" "+order), 1))
		line := marker + check + " " + title + order
		switch {
		case focused && i == d.cursor[area]:
			line = Styles.Selected.Render(line)
		case !w.IsVisible:
			line = Styles.Hidden.Render(line)
		default:
			line = Styles.Normal.Render(line)
		}
		b.WriteString("\n" + line)
	}
	return frame.Width(width - frame.GetHorizontalBorderSize()).Render(b.String())
}

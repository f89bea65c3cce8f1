package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitdash/internal/layout"
	"fitdash/internal/widget"
)

func testRegistry() *widget.Registry {
	return widget.NewRegistry(
		widget.Definition{ID: "a", Title: "Alpha", Area: widget.AreaMain, DefaultOrder: 1, DefaultVisible: true},
		widget.Definition{ID: "b", Title: "Bravo", Area: widget.AreaMain, DefaultOrder: 2, DefaultVisible: true},
		widget.Definition{ID: "h", Title: "Hidden", Area: widget.AreaMain, DefaultOrder: 3, DefaultVisible: false},
		widget.Definition{ID: "s", Title: "Side", Area: widget.AreaSidebar, DefaultOrder: 1, DefaultVisible: true},
	)
}

func stubContent(id string, _ int) string { return "body-" + id }

func TestDashboardView_ViewModeShowsVisibleWidgets(t *testing.T) {
	d := NewDashboardView(stubContent)
	d.SetLayout(layout.Defaults(testRegistry()), false)

	out := d.View()
	for _, want := range []string{"Alpha", "body-a", "Bravo", "Side", "body-s"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Hidden")
	assert.Less(t, strings.Index(out, "Alpha"), strings.Index(out, "Bravo"))
}

func TestDashboardView_EmptyAreaShowsHint(t *testing.T) {
	ws := layout.Defaults(testRegistry())
	ws, _ = layout.ToggleVisibility(ws, "s")

	d := NewDashboardView(stubContent)
	d.SetLayout(ws, false)

	assert.Empty(t, d.Areas().Sidebar)
	assert.Contains(t, d.View(), "No widgets here")
}

func TestDashboardView_EditModeListsHiddenWidgets(t *testing.T) {
	d := NewDashboardView(stubContent)
	d.SetLayout(layout.Defaults(testRegistry()), true)

	out := d.View()
	assert.Contains(t, out, "Hidden")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "[x]")
	assert.NotContains(t, out, "body-a")
}

func TestDashboardView_CursorNavigation(t *testing.T) {
	d := NewDashboardView(stubContent)
	d.SetLayout(layout.Defaults(testRegistry()), true)

	require.Equal(t, "a", d.SelectedID())
	d.CursorDown()
	assert.Equal(t, "b", d.SelectedID())
	d.CursorDown()
	d.CursorDown()
	assert.Equal(t, "h", d.SelectedID(), "cursor stops at the last widget")
	d.CursorUp()
	d.CursorUp()
	d.CursorUp()
	assert.Equal(t, "a", d.SelectedID(), "cursor stops at the first widget")

	d.SwitchArea()
	assert.Equal(t, "s", d.SelectedID())
	d.SwitchArea()
	assert.Equal(t, "a", d.SelectedID(), "each column keeps its own cursor")
}

func TestDashboardView_Select(t *testing.T) {
	d := NewDashboardView(stubContent)
	d.SetLayout(layout.Defaults(testRegistry()), true)

	require.True(t, d.Select("s"))
	assert.Equal(t, FocusSidebar, d.Focus.Current)
	assert.Equal(t, "s", d.SelectedID())
	assert.False(t, d.Select("nope"))
}

func TestDashboardView_SwitchAreaSkipsEmptyColumn(t *testing.T) {
	reg := widget.NewRegistry(
		widget.Definition{ID: "a", Title: "Alpha", Area: widget.AreaMain, DefaultOrder: 1, DefaultVisible: true},
	)
	d := NewDashboardView(stubContent)
	d.SetLayout(layout.Defaults(reg), true)
	d.SwitchArea()

	assert.Equal(t, FocusMain, d.Focus.Current)
	assert.Equal(t, "a", d.SelectedID())
	assert.Contains(t, d.View(), "No widgets")
}

func TestDashboardView_FocusStartsOnNonEmptyColumn(t *testing.T) {
	reg := widget.NewRegistry(
		widget.Definition{ID: "s", Title: "Side", Area: widget.AreaSidebar, DefaultOrder: 1, DefaultVisible: true},
	)
	d := NewDashboardView(stubContent)
	d.SetLayout(layout.Defaults(reg), true)

	assert.Equal(t, FocusSidebar, d.Focus.Current)
	assert.Equal(t, "s", d.SelectedID())
}

func TestDashboardView_NoWidgetsNoSelection(t *testing.T) {
	d := NewDashboardView(stubContent)
	d.SetLayout(nil, true)
	d.SwitchArea()

	assert.Equal(t, "", d.SelectedID())
}

package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitdash/internal/widget"
)

// abcRegistry is A(main,1), B(main,2), C(sidebar,1).
func abcRegistry() *widget.Registry {
	return widget.NewRegistry(
		widget.Definition{ID: "A", Title: "A", Area: widget.AreaMain, DefaultOrder: 1, DefaultVisible: true},
		widget.Definition{ID: "B", Title: "B", Area: widget.AreaMain, DefaultOrder: 2, DefaultVisible: true},
		widget.Definition{ID: "C", Title: "C", Area: widget.AreaSidebar, DefaultOrder: 1, DefaultVisible: true},
	)
}

func ids(ws []WidgetConfig) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func areaIDs(ws []WidgetConfig, area widget.Area) []string {
	return ids(InArea(ws, area))
}

func TestLoad_NilUsesDefaults(t *testing.T) {
	reg := widget.DefaultRegistry()
	got := Load(reg, nil)
	require.Len(t, got, reg.Len())

	for _, w := range got {
		def, ok := reg.Lookup(w.ID)
		require.True(t, ok)
		assert.Equal(t, def.DefaultOrder, w.CurrentOrder, w.ID)
		assert.Equal(t, def.DefaultVisible, w.IsVisible, w.ID)
		assert.Equal(t, def.Area, w.Area, w.ID)
	}
}

func TestLoad_SortedStableByOrder(t *testing.T) {
	got := Load(abcRegistry(), nil)
	// A and C tie on order 1; registry order breaks the tie.
	assert.Equal(t, []string{"A", "C", "B"}, ids(got))
}

func TestLoad_SortsExtremeOrders(t *testing.T) {
	got := Load(abcRegistry(), []PersistedEntry{
		{ID: "A", IsVisible: true, CurrentOrder: math.MaxInt32, Area: widget.AreaMain},
		{ID: "B", IsVisible: true, CurrentOrder: -math.MaxInt32, Area: widget.AreaMain},
	})
	assert.Equal(t, []string{"B", "A"}, areaIDs(got, widget.AreaMain))
	assert.Equal(t, []string{"B", "C", "A"}, ids(got))
}

func TestLoad_OverlaysPersisted(t *testing.T) {
	got := Load(abcRegistry(), []PersistedEntry{
		{ID: "B", IsVisible: false, CurrentOrder: 0, Area: widget.AreaMain},
		{ID: "C", IsVisible: true, CurrentOrder: 7, Area: widget.AreaMain},
	})

	want := []WidgetConfig{
		{ID: "B", Title: "B", Area: widget.AreaMain, DefaultOrder: 2, DefaultVisible: true, CurrentOrder: 0, IsVisible: false},
		{ID: "A", Title: "A", Area: widget.AreaMain, DefaultOrder: 1, DefaultVisible: true, CurrentOrder: 1, IsVisible: true},
		{ID: "C", Title: "C", Area: widget.AreaMain, DefaultOrder: 1, DefaultVisible: true, CurrentOrder: 7, IsVisible: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_DropsUnknownIDs(t *testing.T) {
	got := Load(abcRegistry(), []PersistedEntry{
		{ID: "Z", IsVisible: true, CurrentOrder: -5, Area: widget.AreaMain},
	})
	assert.Equal(t, []string{"A", "C", "B"}, ids(got))
}

func TestLoad_NewRegistryWidgetsAppear(t *testing.T) {
	// Saved before "C" existed.
	got := Load(abcRegistry(), []PersistedEntry{
		{ID: "A", IsVisible: true, CurrentOrder: 2, Area: widget.AreaMain},
		{ID: "B", IsVisible: true, CurrentOrder: 1, Area: widget.AreaMain},
	})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"C"}, areaIDs(got, widget.AreaSidebar))
	assert.Equal(t, []string{"B", "A"}, areaIDs(got, widget.AreaMain))
}

func TestToggleVisibility(t *testing.T) {
	start := Load(abcRegistry(), nil)

	once, changed := ToggleVisibility(start, "B")
	require.True(t, changed)
	for _, w := range once {
		assert.Equal(t, w.ID != "B", w.IsVisible, w.ID)
	}
	// Input untouched.
	assert.True(t, start[2].IsVisible)

	twice, changed := ToggleVisibility(once, "B")
	require.True(t, changed)
	if diff := cmp.Diff(start, twice); diff != "" {
		t.Errorf("toggle twice should restore (-want +got):\n%s", diff)
	}
}

func TestToggleVisibility_UnknownIsNoop(t *testing.T) {
	start := Load(abcRegistry(), nil)
	got, changed := ToggleVisibility(start, "nope")
	assert.False(t, changed)
	assert.Equal(t, start, got)
}

func TestMoveWidget_Scenario(t *testing.T) {
	ws := Load(abcRegistry(), nil)

	ws, changed := MoveWidget(ws, "B", Up)
	require.True(t, changed)
	assert.Equal(t, []string{"B", "A"}, areaIDs(ws, widget.AreaMain))
	assert.Equal(t, []string{"C"}, areaIDs(ws, widget.AreaSidebar))

	byID := map[string]WidgetConfig{}
	for _, w := range ws {
		byID[w.ID] = w
	}
	assert.Equal(t, 1, byID["B"].CurrentOrder)
	assert.Equal(t, 2, byID["A"].CurrentOrder)
	assert.Equal(t, 1, byID["C"].CurrentOrder)

	// B is first in main now.
	_, changed = MoveWidget(ws, "B", Up)
	assert.False(t, changed)
	// A is last in main now.
	_, changed = MoveWidget(ws, "A", Down)
	assert.False(t, changed)
	// C is alone in the sidebar.
	_, changed = MoveWidget(ws, "C", Up)
	assert.False(t, changed)
	_, changed = MoveWidget(ws, "C", Down)
	assert.False(t, changed)
}

func TestMoveWidget_UnknownIsNoop(t *testing.T) {
	start := Load(abcRegistry(), nil)
	got, changed := MoveWidget(start, "Z", Up)
	assert.False(t, changed)
	assert.Equal(t, start, got)
}

func TestMoveWidget_SwapsOrderValuesWithGaps(t *testing.T) {
	reg := widget.NewRegistry(
		widget.Definition{ID: "x", Area: widget.AreaMain, DefaultOrder: 10, DefaultVisible: true},
		widget.Definition{ID: "s", Area: widget.AreaSidebar, DefaultOrder: 15, DefaultVisible: true},
		widget.Definition{ID: "y", Area: widget.AreaMain, DefaultOrder: 20, DefaultVisible: true},
	)
	ws, changed := MoveWidget(Load(reg, nil), "y", Up)
	require.True(t, changed)

	orders := map[string]int{}
	for _, w := range ws {
		orders[w.ID] = w.CurrentOrder
	}
	assert.Equal(t, map[string]int{"x": 20, "y": 10, "s": 15}, orders)
	assert.Equal(t, []string{"y", "s", "x"}, ids(ws))
}

func TestMoveWidget_RoundTrip(t *testing.T) {
	reg := widget.DefaultRegistry()
	for _, area := range []widget.Area{widget.AreaMain, widget.AreaSidebar} {
		start := Load(reg, nil)
		original := areaIDs(start, area)
		require.NotEmpty(t, original)

		for _, id := range original {
			ws := start
			steps := 0
			for {
				next, changed := MoveWidget(ws, id, Up)
				if !changed {
					break
				}
				ws = next
				steps++
			}
			assert.Equal(t, id, areaIDs(ws, area)[0], "%s should be first", id)

			for range steps {
				var changed bool
				ws, changed = MoveWidget(ws, id, Down)
				require.True(t, changed)
			}
			assert.Equal(t, original, areaIDs(ws, area), "round trip of %s in %s", id, area)
		}
	}
}

func TestMoveWidget_DuplicateOrdersAreInert(t *testing.T) {
	reg := widget.NewRegistry(
		widget.Definition{ID: "p", Area: widget.AreaMain, DefaultOrder: 3, DefaultVisible: true},
		widget.Definition{ID: "q", Area: widget.AreaMain, DefaultOrder: 3, DefaultVisible: true},
	)
	ws, changed := MoveWidget(Load(reg, nil), "q", Up)
	assert.True(t, changed)
	assert.Equal(t, []string{"p", "q"}, ids(ws))
}

func TestProject(t *testing.T) {
	ws := Load(widget.DefaultRegistry(), nil)
	ws, _ = MoveWidget(ws, widget.IDRecentWorkouts, Up)
	ws, _ = ToggleVisibility(ws, widget.IDUpcoming)

	areas := Project(ws)
	for _, w := range areas.Main {
		assert.Equal(t, widget.AreaMain, w.Area)
		assert.True(t, w.IsVisible)
	}
	for _, w := range areas.Sidebar {
		assert.Equal(t, widget.AreaSidebar, w.Area)
		assert.True(t, w.IsVisible)
	}
	assert.Equal(t, widget.IDRecentWorkouts, areas.Main[0].ID)
	assert.NotContains(t, ids(areas.Main), widget.IDBodyMeasurements)
	assert.NotContains(t, ids(areas.Sidebar), widget.IDUpcoming)
	assert.IsIncreasing(t, orders(areas.Main))
}

func TestProject_EmptyAreas(t *testing.T) {
	ws := Load(abcRegistry(), nil)
	ws, _ = ToggleVisibility(ws, "C")

	areas := Project(ws)
	assert.NotNil(t, areas.Sidebar)
	assert.Empty(t, areas.Sidebar)
	assert.Len(t, areas.Main, 2)

	empty := Project(nil)
	assert.NotNil(t, empty.Main)
	assert.Empty(t, empty.Main)
}

func orders(ws []WidgetConfig) []int {
	out := make([]int, len(ws))
	for i, w := range ws {
		out[i] = w.CurrentOrder
	}
	return out
}

func TestPersisted(t *testing.T) {
	ws := Load(abcRegistry(), nil)
	got := Persisted(ws)
	assert.Equal(t, []PersistedEntry{
		{ID: "A", IsVisible: true, CurrentOrder: 1, Area: widget.AreaMain},
		{ID: "C", IsVisible: true, CurrentOrder: 1, Area: widget.AreaSidebar},
		{ID: "B", IsVisible: true, CurrentOrder: 2, Area: widget.AreaMain},
	}, got)
}

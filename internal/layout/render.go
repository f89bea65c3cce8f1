package layout

import "fitdash/internal/widget"

// Areas is the render-ready projection of a layout.
type Areas struct {
	Main    []WidgetConfig
	Sidebar []WidgetConfig
}

// Project returns the visible widgets of each area, sorted by CurrentOrder.
// Empty areas yield empty, non-nil slices.
func Project(widgets []WidgetConfig) Areas {
	sorted := Clone(widgets)
	sortByOrder(sorted)

	areas := Areas{Main: []WidgetConfig{}, Sidebar: []WidgetConfig{}}
	for _, w := range sorted {
		if !w.IsVisible {
			continue
		}
		switch w.Area {
		case widget.AreaMain:
			areas.Main = append(areas.Main, w)
		case widget.AreaSidebar:
			areas.Sidebar = append(areas.Sidebar, w)
		}
	}
	return areas
}

// InArea returns every widget of area, hidden ones included, in order.
// The editor uses it to list what can be moved or toggled.
func InArea(widgets []WidgetConfig, area widget.Area) []WidgetConfig {
	sorted := Clone(widgets)
	sortByOrder(sorted)
	var out []WidgetConfig
	for _, w := range sorted {
		if w.Area == area {
			out = append(out, w)
		}
	}
	return out
}

// Package layout holds the dashboard's widget arrangement: merging saved
// settings over registry defaults, the edit operations (move, toggle, save,
// cancel, restore), the versioned persistence record, and the per-area
// projection the page renders.
//
// The operations on []WidgetConfig are pure: they never modify their input
// and return a new slice. Manager adds the edit-mode session on top.
package layout

import (
	"cmp"
	"slices"

	"fitdash/internal/widget"
)

// WidgetConfig is one widget's effective state for the current session.
type WidgetConfig struct {
	ID             string
	Title          string
	Area           widget.Area
	DefaultOrder   int
	DefaultVisible bool
	CurrentOrder   int
	IsVisible      bool
}

// PersistedEntry is the subset of WidgetConfig that is written to storage.
type PersistedEntry struct {
	ID           string      `json:"id"`
	IsVisible    bool        `json:"isVisible"`
	CurrentOrder int         `json:"currentOrder"`
	Area         widget.Area `json:"area"`
}

// Direction is a move direction within an area.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Defaults returns the registry's widgets at their built-in order and
// visibility, sorted by order.
func Defaults(reg *widget.Registry) []WidgetConfig {
	defs := reg.Definitions()
	out := make([]WidgetConfig, 0, len(defs))
	for _, d := range defs {
		out = append(out, WidgetConfig{
			ID:             d.ID,
			Title:          d.Title,
			Area:           d.Area,
			DefaultOrder:   d.DefaultOrder,
			DefaultVisible: d.DefaultVisible,
			CurrentOrder:   d.DefaultOrder,
			IsVisible:      d.DefaultVisible,
		})
	}
	sortByOrder(out)
	return out
}

// Load overlays persisted entries on the registry defaults. Entries are
// matched by id; widgets with no entry keep their defaults and entries for
// ids the registry no longer knows are dropped. A nil persisted slice means
// nothing was saved.
func Load(reg *widget.Registry, persisted []PersistedEntry) []WidgetConfig {
	saved := make(map[string]PersistedEntry, len(persisted))
	for _, p := range persisted {
		if _, ok := saved[p.ID]; !ok {
			saved[p.ID] = p
		}
	}

	out := Defaults(reg)
	for i := range out {
		p, ok := saved[out[i].ID]
		if !ok {
			continue
		}
		out[i].IsVisible = p.IsVisible
		out[i].CurrentOrder = p.CurrentOrder
		out[i].Area = p.Area
	}
	sortByOrder(out)
	return out
}

// Persisted projects widgets to the fields that cross the storage boundary.
func Persisted(widgets []WidgetConfig) []PersistedEntry {
	out := make([]PersistedEntry, len(widgets))
	for i, w := range widgets {
		out[i] = PersistedEntry{
			ID:           w.ID,
			IsVisible:    w.IsVisible,
			CurrentOrder: w.CurrentOrder,
			Area:         w.Area,
		}
	}
	return out
}

// Clone returns an independent copy of widgets.
func Clone(widgets []WidgetConfig) []WidgetConfig {
	if widgets == nil {
		return nil
	}
	return slices.Clone(widgets)
}

// sortByOrder sorts ascending by CurrentOrder, keeping list order for ties.
func sortByOrder(widgets []WidgetConfig) {
	slices.SortStableFunc(widgets, func(a, b WidgetConfig) int {
		return cmp.Compare(a.CurrentOrder, b.CurrentOrder)
	})
}

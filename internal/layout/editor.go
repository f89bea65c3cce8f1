package layout

import "fitdash/internal/widget"

// ToggleVisibility flips IsVisible for the widget with id.
// changed is false, and the result equals the input, when id is unknown.
func ToggleVisibility(widgets []WidgetConfig, id string) (out []WidgetConfig, changed bool) {
	out = Clone(widgets)
	for i := range out {
		if out[i].ID == id {
			out[i].IsVisible = !out[i].IsVisible
			return out, true
		}
	}
	return out, false
}

// MoveWidget swaps the CurrentOrder of the widget with id and its neighbour
// in the same area, then re-sorts the whole list. Moving the first widget of
// an area up, the last one down, or an unknown id is a no-op.
//
// Order values are swapped, not renumbered, so areas keep whatever gaps or
// duplicates they already had. Two neighbours sharing an order value swap to
// the same values and the move has no visible effect.
func MoveWidget(widgets []WidgetConfig, id string, dir Direction) (out []WidgetConfig, changed bool) {
	out = Clone(widgets)
	sortByOrder(out)

	var area widget.Area
	found := false
	for _, w := range out {
		if w.ID == id {
			area, found = w.Area, true
			break
		}
	}
	if !found {
		return out, false
	}

	var peers []int // indices into out, in presentation order
	pos := -1
	for i, w := range out {
		if w.Area != area {
			continue
		}
		if w.ID == id {
			pos = len(peers)
		}
		peers = append(peers, i)
	}

	neighbour := pos - 1
	if dir == Down {
		neighbour = pos + 1
	}
	if neighbour < 0 || neighbour >= len(peers) {
		return out, false
	}

	a, b := peers[pos], peers[neighbour]
	out[a].CurrentOrder, out[b].CurrentOrder = out[b].CurrentOrder, out[a].CurrentOrder
	sortByOrder(out)
	return out, true
}

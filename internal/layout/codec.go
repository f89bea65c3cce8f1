package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"fitdash/internal/jsonutil"
	"fitdash/internal/widget"
)

// ErrMalformedLayout is returned for a stored layout that does not parse or
// does not have the expected shape.
var ErrMalformedLayout = errors.New("malformed layout")

// Field names of a stored entry. Keys match exactly, including case.
const (
	fieldID           = "id"
	fieldIsVisible    = "isVisible"
	fieldCurrentOrder = "currentOrder"
	fieldArea         = "area"
)

var entryFields = []string{fieldID, fieldIsVisible, fieldCurrentOrder, fieldArea}

// wireEntry uses pointers so JSON nulls can be told apart from zero values.
type wireEntry struct {
	ID           *string
	IsVisible    *bool
	CurrentOrder *float64
	Area         *string
}

// Encode serializes entries as the stored JSON record.
func Encode(entries []PersistedEntry) (string, error) {
	if entries == nil {
		entries = []PersistedEntry{}
	}
	return jsonutil.MarshalCompact(entries, "encode layout")
}

// Decode parses and validates a stored layout. The payload must be a JSON
// array of objects carrying exactly id, isVisible, currentOrder and area,
// with a non-empty unique id, a known area and an integral order. Any
// violation rejects the whole payload with ErrMalformedLayout.
func Decode(raw string) ([]PersistedEntry, error) {
	elems, err := jsonutil.DecodeStrictArray[json.RawMessage]([]byte(raw), "decode layout")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}

	out := make([]PersistedEntry, 0, len(elems))
	seen := make(map[string]bool, len(elems))
	for i, elem := range elems {
		w, err := decodeWireEntry(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedLayout, i, err)
		}
		e, err := w.validate()
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedLayout, i, err)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: entry %d: duplicate id %q", ErrMalformedLayout, i, e.ID)
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out, nil
}

func decodeWireEntry(elem json.RawMessage) (wireEntry, error) {
	fields, err := jsonutil.DecodeExactObject(elem, entryFields, "entry")
	if err != nil {
		return wireEntry{}, err
	}
	var w wireEntry
	targets := map[string]any{
		fieldID:           &w.ID,
		fieldIsVisible:    &w.IsVisible,
		fieldCurrentOrder: &w.CurrentOrder,
		fieldArea:         &w.Area,
	}
	for _, name := range entryFields {
		if err := jsonutil.UnmarshalWithContext(fields[name], targets[name], name); err != nil {
			return wireEntry{}, err
		}
	}
	return w, nil
}

func (w wireEntry) validate() (PersistedEntry, error) {
	switch {
	case w.ID == nil || *w.ID == "":
		return PersistedEntry{}, errors.New("missing id")
	case w.IsVisible == nil:
		return PersistedEntry{}, errors.New("missing isVisible")
	case w.CurrentOrder == nil:
		return PersistedEntry{}, errors.New("missing currentOrder")
	case w.Area == nil:
		return PersistedEntry{}, errors.New("missing area")
	}
	order := *w.CurrentOrder
	if order != math.Trunc(order) || math.Abs(order) > math.MaxInt32 {
		return PersistedEntry{}, fmt.Errorf("currentOrder %v is not an integer", order)
	}
	area := widget.Area(*w.Area)
	if !area.Valid() {
		return PersistedEntry{}, fmt.Errorf("unknown area %q", *w.Area)
	}
	return PersistedEntry{
		ID:           *w.ID,
		IsVisible:    *w.IsVisible,
		CurrentOrder: int(order),
		Area:         area,
	}, nil
}

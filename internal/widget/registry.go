// Package widget declares the fixed set of dashboard widgets and their defaults.
package widget

// Area is the layout region a widget is placed in.
type Area string

const (
	AreaMain    Area = "main"
	AreaSidebar Area = "sidebar"
)

// Valid reports whether a is one of the known areas.
func (a Area) Valid() bool {
	return a == AreaMain || a == AreaSidebar
}

func (a Area) String() string { return string(a) }

// Definition is a registry entry: a placeable widget and its built-in placement.
type Definition struct {
	ID             string
	Title          string
	Area           Area
	DefaultOrder   int
	DefaultVisible bool
}

// Registry is an ordered, immutable list of widget definitions.
// Insertion order is the tie-breaker when orders collide.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// NewRegistry builds a registry from defs. Later duplicates of an id are ignored.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{index: make(map[string]int, len(defs))}
	for _, d := range defs {
		if _, dup := r.index[d.ID]; dup {
			continue
		}
		r.index[d.ID] = len(r.defs)
		r.defs = append(r.defs, d)
	}
	return r
}

// Definitions returns a copy of the registry entries in insertion order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	i, ok := r.index[id]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Len returns the number of widgets.
func (r *Registry) Len() int { return len(r.defs) }

// Widget ids of the fitness dashboard.
const (
	IDWeeklyStats      = "weekly-stats"
	IDRecentWorkouts   = "recent-workouts"
	IDTrainingPlan     = "training-plan"
	IDPersonalRecords  = "personal-records"
	IDBodyMeasurements = "body-measurements"
	IDCommunityFeed    = "community-feed"
	IDHydration        = "hydration"
	IDWellnessJournal  = "wellness-journal"
	IDUpcoming         = "upcoming-workouts"
)

var defaultRegistry = NewRegistry(
	Definition{ID: IDWeeklyStats, Title: "This Week", Area: AreaMain, DefaultOrder: 1, DefaultVisible: true},
	Definition{ID: IDRecentWorkouts, Title: "Recent Workouts", Area: AreaMain, DefaultOrder: 2, DefaultVisible: true},
	Definition{ID: IDTrainingPlan, Title: "Training Plan", Area: AreaMain, DefaultOrder: 3, DefaultVisible: true},
	Definition{ID: IDPersonalRecords, Title: "Personal Records", Area: AreaMain, DefaultOrder: 4, DefaultVisible: true},
	Definition{ID: IDBodyMeasurements, Title: "Body Measurements", Area: AreaMain, DefaultOrder: 5, DefaultVisible: false},
	Definition{ID: IDCommunityFeed, Title: "Community", Area: AreaMain, DefaultOrder: 6, DefaultVisible: true},
	Definition{ID: IDHydration, Title: "Hydration", Area: AreaSidebar, DefaultOrder: 1, DefaultVisible: true},
	Definition{ID: IDUpcoming, Title: "Up Next", Area: AreaSidebar, DefaultOrder: 2, DefaultVisible: true},
	Definition{ID: IDWellnessJournal, Title: "Wellness Journal", Area: AreaSidebar, DefaultOrder: 3, DefaultVisible: true},
)

// DefaultRegistry returns the dashboard's built-in widget set.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

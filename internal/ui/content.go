package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"fitdash/internal/fitness"
	"fitdash/internal/ui/textutil"
	"fitdash/internal/widget"
)

// ContentFunc renders the body of widget id for the given inner width.
type ContentFunc func(id string, width int) string

// workoutFilters is the cycle order for the recent workouts filter.
var workoutFilters = []fitness.WorkoutType{"", fitness.Strength, fitness.Cardio, fitness.Mobility, fitness.Conditioning}

// FitnessContent renders widget bodies from Store. Render is its ContentFunc.
type FitnessContent struct {
	Store *fitness.Store
	Now   func() time.Time // clock for week and day boundaries

	// Filter limits recent workouts to one type. Empty shows all.
	Filter fitness.WorkoutType
}

// NewFitnessContent renders widget bodies from store. A nil now uses time.Now.
func NewFitnessContent(store *fitness.Store, now func() time.Time) *FitnessContent {
	if now == nil {
		now = time.Now
	}
	return &FitnessContent{Store: store, Now: now}
}

// CycleFilter advances Filter to the next workout type, wrapping to all.
func (c *FitnessContent) CycleFilter() fitness.WorkoutType {
	i := slices.Index(workoutFilters, c.Filter)
	c.Filter = workoutFilters[(i+1)%len(workoutFilters)]
	return c.Filter
}

// Render implements ContentFunc.
func (c *FitnessContent) Render(id string, width int) string {
	store := c.Store
	if store == nil {
		return Styles.Empty.Render("No data")
	}
	switch id {
	case widget.IDWeeklyStats:
		return weeklyStats(store, c.Now())
	case widget.IDRecentWorkouts:
		return recentWorkouts(store, c.Filter, width)
	case widget.IDTrainingPlan:
		return trainingPlan(store)
	case widget.IDPersonalRecords:
		return personalRecords(store)
	case widget.IDBodyMeasurements:
		return bodyMeasurements(store)
	case widget.IDCommunityFeed:
		return communityFeed(store, width)
	case widget.IDHydration:
		return hydration(store, c.Now(), width)
	case widget.IDUpcoming:
		return upcoming(store, c.Now())
	case widget.IDWellnessJournal:
		return wellnessJournal(store, width)
	default:
		return Styles.Empty.Render("Nothing to show")
	}
}

func weeklyStats(store *fitness.Store, now time.Time) string {
	sum := store.WeeklySummary(now)
	return fmt.Sprintf("%s workouts  %s min  %s kcal",
		Styles.Status.Render(fmt.Sprint(sum.Workouts)),
		Styles.Status.Render(fmt.Sprint(sum.Minutes)),
		Styles.Status.Render(fmt.Sprint(sum.Calories)))
}

func recentWorkouts(store *fitness.Store, filter fitness.WorkoutType, width int) string {
	ws := store.FilterWorkouts(filter)
	if len(ws) > 4 {
		ws = ws[:4]
	}
	var lines []string
	if filter != "" {
		lines = append(lines, Styles.Muted.Render(textutil.Truncate(string(filter)+" only", width)))
	}
	if len(ws) == 0 {
		if filter != "" {
			return strings.Join(append(lines, Styles.Empty.Render("None logged")), "\n")
		}
		return Styles.Empty.Render("No workouts yet")
	}
	for _, w := range ws {
		line := fmt.Sprintf("%s  %s  %dm", w.Date.Format("Mon 02"), w.Name, int(w.Duration.Minutes()))
		lines = append(lines, textutil.Truncate(line, width))
	}
	return strings.Join(lines, "\n")
}

func trainingPlan(store *fitness.Store) string {
	p := store.ActivePlan()
	if p.Name == "" {
		return Styles.Empty.Render("No active plan")
	}
	return fmt.Sprintf("%s\n%s", Styles.Normal.Render(p.Name),
		Styles.Muted.Render(fmt.Sprintf("week %d of %d, %d sessions", p.Week, p.Weeks, len(p.Sessions))))
}

func personalRecords(store *fitness.Store) string {
	prs := store.PersonalRecords()
	if len(prs) == 0 {
		return Styles.Empty.Render("No records yet")
	}
	lines := make([]string, 0, len(prs))
	for _, pr := range prs {
		lines = append(lines, fmt.Sprintf("%s  %s", pr.Exercise, Styles.Status.Render(fmt.Sprintf("%g %s", pr.Value, pr.Unit))))
	}
	return strings.Join(lines, "\n")
}

func bodyMeasurements(store *fitness.Store) string {
	latest, prev, ok := store.LatestMeasurement()
	if !ok {
		return Styles.Empty.Render("No measurements")
	}
	return fmt.Sprintf("weight %.1f kg (%+.1f)\nbody fat %.1f%%  waist %.0f cm",
		latest.WeightKg, latest.WeightKg-prev.WeightKg, latest.BodyFat, latest.WaistCm)
}

func communityFeed(store *fitness.Store, width int) string {
	posts := store.Feed()
	if len(posts) == 0 {
		return Styles.Empty.Render("Quiet in here")
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}
	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, textutil.Truncate(p.Author+": "+p.Body, width))
	}
	return strings.Join(lines, "\n")
}

func hydration(store *fitness.Store, now time.Time, width int) string {
	total, goal := store.HydrationOn(now)
	label := fmt.Sprintf("%d / %d ml", total, goal)
	if goal > 0 && total >= goal {
		label = Styles.Good.Render(label)
	}
	return label + "\n" + progressBar(total, goal, max(width, 10))
}

func upcoming(store *fitness.Store, now time.Time) string {
	sessions := store.Upcoming(now, 3)
	if len(sessions) == 0 {
		return Styles.Empty.Render("Rest of the week is free")
	}
	lines := make([]string, 0, len(sessions))
	for _, s := range sessions {
		lines = append(lines, fmt.Sprintf("%s  %s", s.Day.String()[:3], s.Name))
	}
	return strings.Join(lines, "\n")
}

func wellnessJournal(store *fitness.Store, width int) string {
	entries := store.Journal(1)
	if len(entries) == 0 {
		return Styles.Empty.Render("No entries")
	}
	e := entries[0]
	return fmt.Sprintf("mood %d/5  sleep %.1fh\n%s", e.Mood, e.Sleep, textutil.Truncate(e.Note, width))
}

func progressBar(value, goal, width int) string {
	if goal <= 0 {
		return ""
	}
	filled := min(value*width/goal, width)
	return Styles.Status.Render(strings.Repeat("█", filled)) + Styles.Muted.Render(strings.Repeat("░", width-filled))
}

// Package fitness holds the dashboard's training data: workouts, plans,
// body measurements, hydration, journal entries, personal records and the
// community feed. Store is an explicit, lock-guarded object; every change
// goes through its methods.
package fitness

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"
)

// WorkoutType categorizes a workout.
type WorkoutType string

const (
	Strength     WorkoutType = "strength"
	Cardio       WorkoutType = "cardio"
	Mobility     WorkoutType = "mobility"
	Conditioning WorkoutType = "conditioning"
)

type Workout struct {
	ID       string
	Name     string
	Type     WorkoutType
	Date     time.Time
	Duration time.Duration
	Calories int
}

type PlannedSession struct {
	Day     time.Weekday
	Name    string
	Type    WorkoutType
	Minutes int
}

type TrainingPlan struct {
	Name     string
	Week     int
	Weeks    int
	Sessions []PlannedSession
}

type Measurement struct {
	Date     time.Time
	WeightKg float64
	BodyFat  float64
	WaistCm  float64
}

type HydrationEntry struct {
	At time.Time
	Ml int
}

type JournalEntry struct {
	Date  time.Time
	Mood  int // 1-5
	Sleep float64
	Note  string
}

type PersonalRecord struct {
	Exercise string
	Value    float64
	Unit     string
	Date     time.Time
}

type Post struct {
	Author string
	Body   string
	At     time.Time
	Likes  int
}

// Store is the in-process data store behind the dashboard widgets.
type Store struct {
	mu           sync.RWMutex
	workouts     []Workout
	plan         TrainingPlan
	measurements []Measurement
	hydration    []HydrationEntry
	journal      []JournalEntry
	records      []PersonalRecord
	feed         []Post
	waterGoalMl  int
}

// ErrInvalidAmount is returned for non-positive hydration amounts.
var ErrInvalidAmount = errors.New("amount must be positive")

// RecentWorkouts returns up to n workouts, newest first.
func (s *Store) RecentWorkouts(n int) []Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.workouts)
	slices.SortStableFunc(out, func(a, b Workout) int { return b.Date.Compare(a.Date) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FilterWorkouts returns workouts of type t, newest first. An empty type matches all.
func (s *Store) FilterWorkouts(t WorkoutType) []Workout {
	all := s.RecentWorkouts(-1)
	if t == "" {
		return all
	}
	out := all[:0]
	for _, w := range all {
		if w.Type == t {
			out = append(out, w)
		}
	}
	return out
}

// WeekSummary aggregates workouts in the ISO-style week (Monday start) containing now.
type WeekSummary struct {
	Workouts int
	Minutes  int
	Calories int
}

// WeeklySummary summarizes the week containing now.
func (s *Store) WeeklySummary(now time.Time) WeekSummary {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 7)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum WeekSummary
	for _, w := range s.workouts {
		if w.Date.Before(start) || !w.Date.Before(end) {
			continue
		}
		sum.Workouts++
		sum.Minutes += int(w.Duration / time.Minute)
		sum.Calories += w.Calories
	}
	return sum
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ActivePlan returns the current training plan.
func (s *Store) ActivePlan() TrainingPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.plan
	p.Sessions = slices.Clone(s.plan.Sessions)
	return p
}

// Upcoming returns the plan's sessions from now's weekday onward, up to n.
func (s *Store) Upcoming(now time.Time, n int) []PlannedSession {
	plan := s.ActivePlan()
	var out []PlannedSession
	for _, sess := range plan.Sessions {
		if sess.Day >= now.Weekday() {
			out = append(out, sess)
		}
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// LatestMeasurement returns the most recent measurement and the previous one
// for deltas. ok is false when nothing was recorded.
func (s *Store) LatestMeasurement() (latest, previous Measurement, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.measurements) == 0 {
		return Measurement{}, Measurement{}, false
	}
	sorted := slices.Clone(s.measurements)
	slices.SortFunc(sorted, func(a, b Measurement) int { return b.Date.Compare(a.Date) })
	latest = sorted[0]
	if len(sorted) > 1 {
		previous = sorted[1]
	} else {
		previous = latest
	}
	return latest, previous, true
}

// HydrationOn returns the total ml logged on day's calendar date and the daily goal.
func (s *Store) HydrationOn(day time.Time) (totalMl, goalMl int) {
	y, m, d := day.Date()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.hydration {
		hy, hm, hd := h.At.In(day.Location()).Date()
		if hy == y && hm == m && hd == d {
			totalMl += h.Ml
		}
	}
	return totalMl, s.waterGoalMl
}

// SetWaterGoal changes the daily hydration goal.
func (s *Store) SetWaterGoal(ml int) error {
	if ml <= 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waterGoalMl = ml
	return nil
}

// LogWater records ml of water at time at.
func (s *Store) LogWater(at time.Time, ml int) error {
	if ml <= 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydration = append(s.hydration, HydrationEntry{At: at, Ml: ml})
	return nil
}

// Journal returns up to n entries, newest first.
func (s *Store) Journal(n int) []JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.journal)
	slices.SortStableFunc(out, func(a, b JournalEntry) int { return b.Date.Compare(a.Date) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// PersonalRecords returns records sorted by exercise name.
func (s *Store) PersonalRecords() []PersonalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.records)
	slices.SortStableFunc(out, func(a, b PersonalRecord) int {
		return strings.Compare(strings.ToLower(a.Exercise), strings.ToLower(b.Exercise))
	})
	return out
}

// Feed returns community posts, newest first.
func (s *Store) Feed() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.feed)
	slices.SortStableFunc(out, func(a, b Post) int { return b.At.Compare(a.At) })
	return out
}

// AddPost appends a post to the community feed.
func (s *Store) AddPost(p Post) error {
	if strings.TrimSpace(p.Body) == "" {
		return errors.New("post body is empty")
	}
	if p.Author == "" {
		p.Author = "you"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = append(s.feed, p)
	return nil
}

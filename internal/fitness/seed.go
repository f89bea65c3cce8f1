package fitness

import (
	"fmt"
	"time"
)

// NewStore returns an empty store with the given daily water goal.
func NewStore(waterGoalMl int) *Store {
	return &Store{waterGoalMl: waterGoalMl}
}

// NewSeededStore returns a store filled with sample data placed relative to now,
// so the dashboard always has a current week to show.
func NewSeededStore(now time.Time) *Store {
	day := func(offset, hour int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
	}

	s := NewStore(2500)
	sample := []struct {
		offset   int
		name     string
		typ      WorkoutType
		minutes  int
		calories int
	}{
		{-13, "Lower body strength", Strength, 55, 410},
		{-11, "Easy run", Cardio, 35, 330},
		{-9, "Upper body push", Strength, 50, 360},
		{-6, "Tempo run", Cardio, 40, 450},
		{-4, "Full body circuit", Conditioning, 30, 390},
		{-2, "Hip and spine flow", Mobility, 25, 90},
		{-1, "Deadlift day", Strength, 60, 480},
		{0, "Recovery ride", Cardio, 45, 380},
	}
	for i, w := range sample {
		s.workouts = append(s.workouts, Workout{
			ID:       fmt.Sprintf("w%02d", i+1),
			Name:     w.name,
			Type:     w.typ,
			Date:     day(w.offset, 7),
			Duration: time.Duration(w.minutes) * time.Minute,
			Calories: w.calories,
		})
	}

	s.plan = TrainingPlan{
		Name:  "Strength Base",
		Week:  3,
		Weeks: 8,
		Sessions: []PlannedSession{
			{Day: time.Monday, Name: "Squat + accessories", Type: Strength, Minutes: 60},
			{Day: time.Tuesday, Name: "Zone 2 run", Type: Cardio, Minutes: 40},
			{Day: time.Wednesday, Name: "Bench + rows", Type: Strength, Minutes: 55},
			{Day: time.Thursday, Name: "Mobility", Type: Mobility, Minutes: 25},
			{Day: time.Friday, Name: "Deadlift + carries", Type: Strength, Minutes: 60},
			{Day: time.Saturday, Name: "Intervals", Type: Conditioning, Minutes: 30},
		},
	}

	s.measurements = []Measurement{
		{Date: day(-28, 8), WeightKg: 82.4, BodyFat: 19.1, WaistCm: 88},
		{Date: day(-14, 8), WeightKg: 81.6, BodyFat: 18.6, WaistCm: 87},
		{Date: day(0, 8), WeightKg: 80.9, BodyFat: 18.2, WaistCm: 86},
	}

	s.hydration = []HydrationEntry{
		{At: day(-1, 9), Ml: 750},
		{At: day(-1, 15), Ml: 1000},
		{At: day(0, 8), Ml: 500},
		{At: day(0, 12), Ml: 600},
	}

	s.journal = []JournalEntry{
		{Date: day(-2, 21), Mood: 3, Sleep: 6.5, Note: "Legs still sore from Monday."},
		{Date: day(-1, 21), Mood: 4, Sleep: 7.5, Note: "Deadlifts moved well."},
		{Date: day(0, 21), Mood: 4, Sleep: 8, Note: "Easy spin, felt recovered."},
	}

	s.records = []PersonalRecord{
		{Exercise: "Squat", Value: 140, Unit: "kg", Date: day(-20, 7)},
		{Exercise: "Deadlift", Value: 180, Unit: "kg", Date: day(-1, 7)},
		{Exercise: "Bench press", Value: 100, Unit: "kg", Date: day(-9, 7)},
		{Exercise: "5k run", Value: 23.4, Unit: "min", Date: day(-6, 7)},
	}

	s.feed = []Post{
		{Author: "maya", Body: "First unassisted pull-up today!", At: day(-1, 18), Likes: 24},
		{Author: "jon", Body: "Week 6 of the marathon block done.", At: day(-3, 19), Likes: 11},
		{Author: "priya", Body: "Anyone tried the new mobility plan?", At: day(0, 10), Likes: 3},
	}
	return s
}

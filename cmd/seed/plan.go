package main

import (
	"math"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/workouttracker/pkg"
)

type liftPlan struct {
	exercise  string
	start     float64 // starting working weight, 0 for bodyweight
	perWeek   float64 // weekly progression
	reps      int
	sets      int
	bodyLimit int // max reps for bodyweight lifts
}

type dayPlan struct {
	name  string
	lifts []liftPlan
}

var pushPullLegs = []dayPlan{
	{
		name: "Push Day",
		lifts: []liftPlan{
			{exercise: "Barbell Bench Press", start: 80, perWeek: 1.25, reps: 5, sets: 4},
			{exercise: "Overhead Press", start: 45, perWeek: 0.625, reps: 6, sets: 3},
			{exercise: "Incline Dumbbell Press", start: 24, perWeek: 0.5, reps: 10, sets: 3},
			{exercise: "Lateral Raise", start: 8, perWeek: 0.25, reps: 15, sets: 3},
			{exercise: "Tricep Pushdown", start: 25, perWeek: 0.5, reps: 12, sets: 3},
		},
	},
	{
		name: "Pull Day",
		lifts: []liftPlan{
			{exercise: "Deadlift", start: 120, perWeek: 2.5, reps: 5, sets: 3},
			{exercise: "Barbell Row", start: 60, perWeek: 1.25, reps: 8, sets: 3},
			{exercise: "Pull Ups", reps: 8, sets: 3, bodyLimit: 15},
			{exercise: "Face Pull", start: 20, perWeek: 0.5, reps: 15, sets: 3},
			{exercise: "Dumbbell Curl", start: 12, perWeek: 0.25, reps: 12, sets: 3},
		},
	},
	{
		name: "Leg Day",
		lifts: []liftPlan{
			{exercise: "Barbell Squat", start: 100, perWeek: 2.5, reps: 5, sets: 4},
			{exercise: "Romanian Deadlift", start: 80, perWeek: 1.25, reps: 8, sets: 3},
			{exercise: "Leg Press", start: 160, perWeek: 5, reps: 10, sets: 3},
			{exercise: "Leg Curl", start: 40, perWeek: 1, reps: 12, sets: 3},
			{exercise: "Calf Raise", start: 60, perWeek: 1.25, reps: 15, sets: 3},
		},
	},
}

type plannedSet struct {
	exercise  string
	setNumber int
	setType   string
	weight    *float64
	reps      int
	rpe       *float64
	rest      int
}

type plannedWorkout struct {
	date     pkg.Date
	name     string
	exertion int
	notes    string
	sets     []plannedSet
}

type plannedWeighIn struct {
	date   pkg.Date
	weight float64
}

// roundToPlate rounds a weight to the nearest 2.5 increment.
func roundToPlate(w float64) float64 {
	return math.Round(w/2.5) * 2.5
}

// buildPlan lays out weeks of push/pull/legs training ending the day before today,
// three or four sessions a week, with weights going up week over week.
func buildPlan(faker *gofakeit.Faker, weeks int, today pkg.Date) []plannedWorkout {
	var workouts []plannedWorkout
	start := today.AddDays(-weeks * 7)
	next := 0
	for week := 0; week < weeks; week++ {
		weekStart := start.AddDays(week * 7)
		sessions := 3
		if faker.Bool() {
			sessions = 4
		}
		// training days spread over the week: mon, wed, fri (+ sat)
		offsets := []int{0, 2, 4, 5}[:sessions]
		for _, off := range offsets {
			date := weekStart.AddDays(off)
			if !date.Before(today.Time) {
				continue
			}
			day := pushPullLegs[next%len(pushPullLegs)]
			next++
			workouts = append(workouts, planWorkout(faker, day, week, date))
		}
	}
	return workouts
}

func planWorkout(faker *gofakeit.Faker, day dayPlan, week int, date pkg.Date) plannedWorkout {
	w := plannedWorkout{
		date:     date,
		name:     day.name,
		exertion: faker.Number(6, 9),
	}
	if faker.Number(1, 5) == 1 {
		w.notes = faker.Sentence(6)
	}

	for _, lift := range day.lifts {
		setNumber := 1
		if lift.start == 0 {
			reps := min(lift.reps+week/3, lift.bodyLimit)
			for i := 0; i < lift.sets; i++ {
				w.sets = append(w.sets, plannedSet{
					exercise:  lift.exercise,
					setNumber: setNumber,
					setType:   "working",
					reps:      max(1, reps-faker.Number(0, 2)),
					rpe:       rpe(faker),
					rest:      faker.Number(60, 120),
				})
				setNumber++
			}
			continue
		}

		working := roundToPlate(lift.start + lift.perWeek*float64(week))
		if lift.reps <= 6 {
			warmup := roundToPlate(working * 0.5)
			w.sets = append(w.sets, plannedSet{
				exercise:  lift.exercise,
				setNumber: setNumber,
				setType:   "warmup",
				weight:    &warmup,
				reps:      lift.reps * 2,
				rest:      60,
			})
			setNumber++
		}
		for i := 0; i < lift.sets; i++ {
			weight := working
			reps := lift.reps
			if i == lift.sets-1 && faker.Number(1, 4) == 1 {
				// last set sometimes falls short
				reps = max(1, reps-faker.Number(1, 2))
			}
			w.sets = append(w.sets, plannedSet{
				exercise:  lift.exercise,
				setNumber: setNumber,
				setType:   "working",
				weight:    &weight,
				reps:      reps,
				rpe:       rpe(faker),
				rest:      faker.Number(90, 180),
			})
			setNumber++
		}
	}
	return w
}

func rpe(faker *gofakeit.Faker) *float64 {
	v := float64(faker.Number(14, 19)) / 2 // 7.0 .. 9.5
	return &v
}

// buildWeighIns logs body weight every two or three days with a slow drift.
func buildWeighIns(faker *gofakeit.Faker, weeks int, today pkg.Date, startWeight float64) []plannedWeighIn {
	var weighIns []plannedWeighIn
	weight := startWeight
	for date := today.AddDays(-weeks * 7); date.Before(today.Time); date = date.AddDays(faker.Number(2, 3)) {
		weight += faker.Float64Range(-0.4, 0.5)
		weighIns = append(weighIns, plannedWeighIn{
			date:   date,
			weight: math.Round(weight*10) / 10,
		})
	}
	return weighIns
}

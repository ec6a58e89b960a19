// Package main fills a tracker database with generated training history: a push/pull/legs
// program with progressive overload, a body weight log and a few goals. Everything is
// written through the regular repos, so personal records are maintained as usual.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/exercises"
	"github.com/2beens/workouttracker/internal/goals"
	"github.com/2beens/workouttracker/internal/logging"
	"github.com/2beens/workouttracker/internal/profile"
	"github.com/2beens/workouttracker/internal/workouts"
	"github.com/2beens/workouttracker/pkg"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	weeks := flag.Int("weeks", 12, "weeks of history to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	startWeight := flag.Float64("body-weight", 82, "starting body weight")
	withGoals := flag.Bool("goals", true, "also create a few goals")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	if *weeks < 1 {
		log.Fatalf("weeks must be positive, got %d", *weeks)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		MaxConns:       cfg.PostgresMaxConns,
		AcquireTimeout: cfg.PostgresAcquireTimeout,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("migrate: %s", err)
	}

	faker := gofakeit.New(*seed)
	today := pkg.Today()
	s := &seeder{
		exercises: exercises.NewRepo(dbPool),
		workouts:  workouts.NewRepo(dbPool),
		profile:   profile.NewRepo(dbPool),
		goals:     goals.NewRepo(dbPool),
	}

	exerciseIDs, err := s.exerciseIDs(ctx)
	if err != nil {
		log.Fatalf("load exercise catalog: %s", err)
	}

	plan := buildPlan(faker, *weeks, today)
	setsLogged, recordsSet := 0, 0
	for _, pw := range plan {
		added, records, err := s.addWorkout(ctx, pw, exerciseIDs)
		if err != nil {
			log.Fatalf("workout %s [%s]: %s", pw.date, pw.name, err)
		}
		setsLogged += added
		recordsSet += records
	}
	log.Infof("seeded %d workouts, %d sets, %d personal records", len(plan), setsLogged, recordsSet)

	weighIns := buildWeighIns(faker, *weeks, today, *startWeight)
	for _, wi := range weighIns {
		date, weight := wi.date, wi.weight
		if _, err := s.profile.LogBodyWeight(ctx, profile.BodyWeightInput{LogDate: &date, Weight: &weight}); err != nil {
			log.Fatalf("body weight %s: %s", date, err)
		}
	}
	log.Infof("seeded %d body weight entries", len(weighIns))

	if *withGoals {
		n, err := s.addGoals(ctx, exerciseIDs, today)
		if err != nil {
			log.Fatalf("goals: %s", err)
		}
		log.Infof("seeded %d goals", n)
	}
}

type seeder struct {
	exercises *exercises.Repo
	workouts  *workouts.Repo
	profile   *profile.Repo
	goals     *goals.Repo
}

func (s *seeder) exerciseIDs(ctx context.Context) (map[string]string, error) {
	list, err := s.exercises.List(ctx, url.Values{})
	if err != nil {
		return nil, err
	}
	ids := make(map[string]string, len(list))
	for _, ex := range list {
		ids[ex.Name] = ex.ID
	}
	return ids, nil
}

func (s *seeder) addWorkout(ctx context.Context, pw plannedWorkout, exerciseIDs map[string]string) (int, int, error) {
	in := workouts.WorkoutInput{
		WorkoutDate:       &pw.date,
		Name:              &pw.name,
		PerceivedExertion: &pw.exertion,
	}
	if pw.notes != "" {
		in.Notes = &pw.notes
	}
	if err := in.Validate(); err != nil {
		return 0, 0, err
	}
	w, err := s.workouts.Add(ctx, in)
	if err != nil {
		return 0, 0, fmt.Errorf("add workout: %w", err)
	}

	sets := make([]workouts.SetInput, 0, len(pw.sets))
	for _, ps := range pw.sets {
		exerciseID, ok := exerciseIDs[ps.exercise]
		if !ok {
			return 0, 0, fmt.Errorf("exercise [%s] not in catalog", ps.exercise)
		}
		setNumber, setType, reps, rest := ps.setNumber, ps.setType, ps.reps, ps.rest
		set := workouts.SetInput{
			ExerciseID:  &exerciseID,
			SetNumber:   &setNumber,
			Weight:      ps.weight,
			Reps:        &reps,
			SetType:     &setType,
			RPE:         ps.rpe,
			RestSeconds: &rest,
		}
		if err := set.ValidateNew(); err != nil {
			return 0, 0, fmt.Errorf("set %s #%d: %w", ps.exercise, ps.setNumber, err)
		}
		sets = append(sets, set)
	}

	result, err := s.workouts.AddSets(ctx, w.ID, sets)
	if err != nil {
		return 0, 0, fmt.Errorf("add sets: %w", err)
	}
	return len(result.Sets), len(result.Records), nil
}

func (s *seeder) addGoals(ctx context.Context, exerciseIDs map[string]string, today pkg.Date) (int, error) {
	strength := func(exercise string, target float64, inWeeks int) goals.GoalInput {
		id := exerciseIDs[exercise]
		goalType := "strength"
		date := today.AddDays(inWeeks * 7)
		return goals.GoalInput{ExerciseID: &id, GoalType: &goalType, TargetValue: &target, TargetDate: &date}
	}
	frequencyType, frequency := "frequency", 4.0
	inputs := []goals.GoalInput{
		strength("Barbell Bench Press", 110, 12),
		strength("Barbell Squat", 150, 16),
		strength("Deadlift", 180, 20),
		{GoalType: &frequencyType, TargetValue: &frequency},
	}

	for i := range inputs {
		if err := inputs[i].ValidateCreate(); err != nil {
			return i, err
		}
		if _, err := s.goals.Add(ctx, inputs[i]); err != nil {
			return i, err
		}
	}
	return len(inputs), nil
}

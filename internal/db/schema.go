package db

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Tables lists the tracker tables, in creation order.
var Tables = []string{
	"exercises",
	"workouts",
	"workout_sets",
	"personal_records",
	"body_weight_log",
	"user_profile",
	"goals",
}

const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS exercises (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          VARCHAR(100) NOT NULL UNIQUE,
	muscle_group  VARCHAR(50)  NOT NULL,
	movement_type VARCHAR(50),
	equipment     VARCHAR(50),
	is_compound   BOOLEAN      NOT NULL DEFAULT false,
	description   TEXT,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_exercises_muscle_group ON exercises (muscle_group);

CREATE TABLE IF NOT EXISTS workouts (
	id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	workout_date       DATE        NOT NULL DEFAULT CURRENT_DATE,
	name               VARCHAR(100),
	notes              TEXT,
	perceived_exertion INTEGER CHECK (perceived_exertion BETWEEN 1 AND 10),
	start_time         TIMESTAMPTZ,
	end_time           TIMESTAMPTZ,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_workouts_workout_date ON workouts (workout_date);

CREATE TABLE IF NOT EXISTS workout_sets (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	workout_id   UUID        NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
	exercise_id  UUID        NOT NULL REFERENCES exercises (id) ON DELETE RESTRICT,
	set_number   INTEGER     NOT NULL DEFAULT 1 CHECK (set_number > 0),
	weight       NUMERIC(7, 2) CHECK (weight >= 0),
	reps         INTEGER     NOT NULL CHECK (reps > 0),
	set_type     VARCHAR(20) NOT NULL DEFAULT 'working'
		CHECK (set_type IN ('warmup', 'working', 'dropset', 'failure')),
	rpe          NUMERIC(3, 1) CHECK (rpe BETWEEN 6 AND 10),
	rest_seconds INTEGER CHECK (rest_seconds >= 0),
	notes        TEXT,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
);
CREATE INDEX IF NOT EXISTS ix_workout_sets_workout_id ON workout_sets (workout_id);
CREATE INDEX IF NOT EXISTS ix_workout_sets_exercise_id ON workout_sets (exercise_id);

CREATE TABLE IF NOT EXISTS personal_records (
	id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	exercise_id    UUID        NOT NULL REFERENCES exercises (id) ON DELETE CASCADE,
	workout_set_id UUID REFERENCES workout_sets (id) ON DELETE SET NULL,
	record_type    VARCHAR(20) NOT NULL
		CHECK (record_type IN ('weight', 'reps', 'estimated_1rm', 'volume')),
	record_value   NUMERIC(10, 2) NOT NULL,
	record_date    DATE        NOT NULL,
	is_current     BOOLEAN     NOT NULL DEFAULT true,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_personal_records_current
	ON personal_records (exercise_id, record_type) WHERE is_current;

CREATE TABLE IF NOT EXISTS body_weight_log (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	log_date   DATE          NOT NULL UNIQUE DEFAULT CURRENT_DATE,
	weight     NUMERIC(5, 1) NOT NULL CHECK (weight > 0),
	notes      TEXT,
	created_at TIMESTAMPTZ   NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS user_profile (
	id                     INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	display_name           VARCHAR(100),
	weight_unit            VARCHAR(5) NOT NULL DEFAULT 'lbs' CHECK (weight_unit IN ('lbs', 'kg')),
	height_cm              NUMERIC(5, 1) CHECK (height_cm > 0),
	birth_date             DATE,
	sex                    VARCHAR(10),
	experience_level       VARCHAR(20)
		CHECK (experience_level IN ('beginner', 'intermediate', 'advanced')),
	training_days_per_week INTEGER CHECK (training_days_per_week BETWEEN 1 AND 7),
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);
INSERT INTO user_profile (id) VALUES (1) ON CONFLICT (id) DO NOTHING;

CREATE TABLE IF NOT EXISTS goals (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	exercise_id  UUID REFERENCES exercises (id) ON DELETE CASCADE,
	goal_type    VARCHAR(20) NOT NULL
		CHECK (goal_type IN ('strength', 'bodyweight', 'volume', 'frequency')),
	target_value NUMERIC(10, 2) NOT NULL CHECK (target_value > 0),
	target_date  DATE,
	status       VARCHAR(20) NOT NULL DEFAULT 'active'
		CHECK (status IN ('active', 'achieved', 'abandoned')),
	notes        TEXT,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	achieved_at  TIMESTAMPTZ
);
`

type catalogExercise struct {
	name         string
	muscleGroup  string
	movementType string
	equipment    string
	compound     bool
}

// exerciseCatalog is inserted on first migration so a fresh install has something
// to log against.
var exerciseCatalog = []catalogExercise{
	{"Barbell Bench Press", "chest", "push", "barbell", true},
	{"Incline Dumbbell Press", "chest", "push", "dumbbell", true},
	{"Dumbbell Bench Press", "chest", "push", "dumbbell", true},
	{"Cable Flys", "chest", "push", "cable", false},
	{"Dips", "chest", "push", "bodyweight", true},
	{"Deadlift", "back", "hinge", "barbell", true},
	{"Barbell Row", "back", "pull", "barbell", true},
	{"Lat Pulldown", "back", "pull", "cable", true},
	{"Seated Cable Row", "back", "pull", "cable", true},
	{"Pull Ups", "back", "pull", "bodyweight", true},
	{"Overhead Press", "shoulders", "push", "barbell", true},
	{"Lateral Raise", "shoulders", "isolation", "dumbbell", false},
	{"Face Pull", "shoulders", "pull", "cable", false},
	{"Barbell Squat", "legs", "squat", "barbell", true},
	{"Romanian Deadlift", "legs", "hinge", "barbell", true},
	{"Leg Press", "legs", "squat", "machine", true},
	{"Leg Curl", "legs", "isolation", "machine", false},
	{"Calf Raise", "legs", "isolation", "machine", false},
	{"Dumbbell Curl", "arms", "isolation", "dumbbell", false},
	{"Tricep Pushdown", "arms", "isolation", "cable", false},
	{"Hammer Curl", "arms", "isolation", "dumbbell", false},
	{"Plank", "core", "isometric", "bodyweight", false},
	{"Hanging Leg Raise", "core", "isolation", "bodyweight", false},
}

// Migrate creates the schema (idempotent) and seeds the exercise catalog.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	seeded := 0
	for _, ex := range exerciseCatalog {
		tag, err := q.Exec(
			ctx,
			`INSERT INTO exercises (name, muscle_group, movement_type, equipment, is_compound)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING;`,
			ex.name, ex.muscleGroup, ex.movementType, ex.equipment, ex.compound,
		)
		if err != nil {
			return fmt.Errorf("seed exercise [%s]: %w", ex.name, err)
		}
		seeded += int(tag.RowsAffected())
	}

	log.Debugf("schema migrated, %d catalog exercises added", seeded)
	return nil
}

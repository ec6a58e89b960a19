package trackermcp

import (
	"context"
	"fmt"

	"github.com/2beens/workouttracker/internal/db"
)

// SchemaRepo provides the tracker DB schema (information_schema) data.
type SchemaRepo interface {
	GetTrackerColumns(ctx context.Context) ([]SchemaColumn, error)
}

// SchemaColumn represents one row from information_schema.columns for tracker tables.
type SchemaColumn struct {
	TableSchema string
	TableName   string
	ColumnName  string
	DataType    string
	IsNullable  string
	ColumnDef   *string
}

var trackerTables = []string{
	"exercises",
	"workouts",
	"workout_sets",
	"personal_records",
	"user_profile",
	"body_weight_log",
	"goals",
}

type poolSchemaRepo struct {
	db db.Querier
}

// NewPoolSchemaRepo returns a SchemaRepo that reads through the given querier.
func NewPoolSchemaRepo(q db.Querier) SchemaRepo {
	return &poolSchemaRepo{db: q}
}

// GetTrackerColumns returns column metadata for the tracker tables.
func (r *poolSchemaRepo) GetTrackerColumns(ctx context.Context) ([]SchemaColumn, error) {
	query := `
		SELECT table_schema, table_name, column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = 'public'
		  AND table_name = ANY($1)
		ORDER BY table_name, ordinal_position`
	rows, err := r.db.Query(ctx, query, trackerTables)
	if err != nil {
		return nil, fmt.Errorf("query information_schema: %w", err)
	}
	defer rows.Close()

	var cols []SchemaColumn
	for rows.Next() {
		var c SchemaColumn
		if err := rows.Scan(&c.TableSchema, &c.TableName, &c.ColumnName, &c.DataType, &c.IsNullable, &c.ColumnDef); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating columns: %w", err)
	}

	return cols, nil
}

// Package query builds parameterized SQL for list endpoints with optional filters.
// Values never end up in the SQL text: every predicate carries its own args and
// placeholders are numbered ($1, $2, ...) in the order predicates were added.
package query

import (
	"fmt"
	"strings"
)

type predicate struct {
	expr string
	args []any
}

type Builder struct {
	base       string
	predicates []predicate
	groupBy    string
	orderBy    []string
	limit      *int
	offset     *int
}

// New starts a statement from a base SELECT ... FROM ... (no WHERE).
func New(base string) *Builder {
	return &Builder{base: strings.TrimSpace(base)}
}

// Where adds a predicate. Each "?" in expr is bound, in order, to args.
func (b *Builder) Where(expr string, args ...any) *Builder {
	if n := strings.Count(expr, "?"); n != len(args) {
		panic(fmt.Sprintf("query: predicate %q has %d placeholders, got %d args", expr, n, len(args)))
	}
	b.predicates = append(b.predicates, predicate{expr: expr, args: args})
	return b
}

func (b *Builder) Eq(column string, value any) *Builder {
	return b.Where(column+" = ?", value)
}

// EqFold compares case-insensitively: both sides are lower-cased.
func (b *Builder) EqFold(column, value string) *Builder {
	return b.Where("LOWER("+column+") = ?", strings.ToLower(value))
}

func (b *Builder) Gte(column string, value any) *Builder {
	return b.Where(column+" >= ?", value)
}

func (b *Builder) Lte(column string, value any) *Builder {
	return b.Where(column+" <= ?", value)
}

func (b *Builder) GroupBy(expr string) *Builder {
	b.groupBy = expr
	return b
}

func (b *Builder) OrderBy(exprs ...string) *Builder {
	b.orderBy = append(b.orderBy, exprs...)
	return b
}

func (b *Builder) Limit(n int) *Builder {
	b.limit = &n
	return b
}

func (b *Builder) Offset(n int) *Builder {
	b.offset = &n
	return b
}

// Len returns the number of predicates added so far.
func (b *Builder) Len() int {
	return len(b.predicates)
}

// Build renders the statement and its ordered args.
func (b *Builder) Build() (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(b.base)

	for i, p := range b.predicates {
		if i == 0 {
			sb.WriteString("\nWHERE ")
		} else {
			sb.WriteString("\n\tAND ")
		}
		expr := p.expr
		for _, arg := range p.args {
			args = append(args, arg)
			expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", len(args)), 1)
		}
		sb.WriteString(expr)
	}

	if b.groupBy != "" {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(b.groupBy)
	}
	if len(b.orderBy) > 0 {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit != nil {
		args = append(args, *b.limit)
		sb.WriteString(fmt.Sprintf("\nLIMIT $%d", len(args)))
	}
	if b.offset != nil {
		args = append(args, *b.offset)
		sb.WriteString(fmt.Sprintf("\nOFFSET $%d", len(args)))
	}

	return sb.String(), args
}

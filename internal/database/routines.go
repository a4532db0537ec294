package database

import (
	"context"
	"fmt"
	"strings"
)

// Row is one row of a routine's result set, keyed by column name.
type Row map[string]any

// Rows is a full result set. It serializes to a JSON array of objects,
// which is the uniform response body of every passthrough endpoint.
// A routine that matched nothing yields an empty, non-nil Rows.
type Rows []Row

// CallRows invokes a stored routine and returns its result set verbatim.
//
// routine must be a compile-time constant from the repository layer; only
// the arguments are caller data, and those travel as bind parameters.
func (db *Database) CallRows(ctx context.Context, routine string, args ...any) (Rows, error) {
	query := buildRoutineQuery(routine, len(args))

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := Rows{}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		row := make(Row, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = normalizeValue(values[i])
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// CallRow invokes a stored routine expected to produce exactly one row and
// scans its single column into dest. Used for scalar lookups such as the
// credential hash fetch.
func (db *Database) CallRow(ctx context.Context, routine string, dest any, args ...any) error {
	query := buildRoutineQuery(routine, len(args))
	return db.Pool.QueryRow(ctx, query, args...).Scan(dest)
}

// buildRoutineQuery renders "SELECT * FROM sp_x($1, $2, ...)".
func buildRoutineQuery(routine string, argc int) string {
	if argc == 0 {
		return fmt.Sprintf("SELECT * FROM %s()", routine)
	}

	placeholders := make([]string, argc)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	return fmt.Sprintf("SELECT * FROM %s(%s)", routine, strings.Join(placeholders, ", "))
}

// normalizeValue massages driver values so the JSON output matches what
// clients of the original API expect. Byte slices become strings; numeric
// and time types already marshal sensibly.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	default:
		return v
	}
}

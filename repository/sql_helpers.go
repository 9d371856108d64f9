package repository

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The SQL repositories run unchanged on PostgreSQL and SQLite: $n placeholders are
// numbered in order of first use and queries stay inside the shared dialect.

// whereBuilder collects AND-ed predicates with $n placeholders numbered in order of appearance.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

func (w *whereBuilder) add(format string, args ...interface{}) {
	placeholders := make([]interface{}, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", len(w.args)+i+1)
	}
	w.clauses = append(w.clauses, fmt.Sprintf(format, placeholders...))
	w.args = append(w.args, args...)
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func (w *whereBuilder) next() string {
	return fmt.Sprintf("$%d", len(w.args)+1)
}

// jsonText marshals v for a JSONB column. Sent as text so lib/pq does not encode it as bytea.
func jsonText(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

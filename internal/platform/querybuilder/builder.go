package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// sqlWriter accumulates a statement and its positional ($n) arguments.
type sqlWriter struct {
	strings.Builder
	args []any
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.WriteString("$" + strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) list(items []string) {
	w.WriteString(strings.Join(items, ", "))
}

type Condition interface {
	writeTo(w *sqlWriter)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) writeTo(w *sqlWriter) {
	w.WriteString(c.column + " = ")
	w.bind(c.value)
}

type anyCondition struct {
	column string
	array  any
}

// Any matches column against a driver array value, e.g. pq.Array(ids).
func Any(column string, array any) Condition {
	return anyCondition{column: column, array: array}
}

func (c anyCondition) writeTo(w *sqlWriter) {
	w.WriteString(c.column + " = ANY(")
	w.bind(c.array)
	w.WriteString(")")
}

func writeWhere(w *sqlWriter, conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.WriteString(" WHERE ")
		} else {
			w.WriteString(" AND ")
		}
		c.writeTo(w)
	}
}

type SelectBuilder struct {
	columns   []string
	table     string
	leftJoins []string
	where     []Condition
	orderBy   []string
	limit     int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// LeftJoin adds a LEFT JOIN; on is written verbatim and must not carry args.
func (b *SelectBuilder) LeftJoin(table, on string) *SelectBuilder {
	b.leftJoins = append(b.leftJoins, table+" ON "+on)
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("select columns are required")
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &sqlWriter{}
	w.WriteString("SELECT ")
	w.list(b.columns)
	w.WriteString(" FROM " + b.table)
	for _, j := range b.leftJoins {
		w.WriteString(" LEFT JOIN " + j)
	}
	writeWhere(w, b.where)
	if len(b.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		w.list(b.orderBy)
	}
	if b.limit > 0 {
		w.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}

	return w.String(), w.args, nil
}

// InsertBuilder writes a single-row INSERT.
type InsertBuilder struct {
	table   string
	columns []string
	values  []any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = append([]any(nil), values...)
	return b
}

// Suffix is appended verbatim, e.g. ON CONFLICT or RETURNING clauses.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.values) != len(b.columns):
		return "", nil, fmt.Errorf("insert has %d values for %d columns", len(b.values), len(b.columns))
	}

	w := &sqlWriter{}
	w.WriteString("INSERT INTO " + b.table + " (")
	w.list(b.columns)
	w.WriteString(") VALUES (")
	for i, value := range b.values {
		if i > 0 {
			w.WriteString(", ")
		}
		w.bind(value)
	}
	w.WriteString(")")
	if b.suffix != "" {
		w.WriteString(" " + b.suffix)
	}

	return w.String(), w.args, nil
}

type assignment struct {
	column string
	value  any
	raw    string
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression such as NOW().
func (b *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, raw: expr})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("update table is required")
	case len(b.sets) == 0:
		return "", nil, fmt.Errorf("update sets are required")
	}

	w := &sqlWriter{}
	w.WriteString("UPDATE " + b.table + " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(s.column + " = ")
		if s.raw != "" {
			w.WriteString(s.raw)
			continue
		}
		w.bind(s.value)
	}
	writeWhere(w, b.where)

	return w.String(), w.args, nil
}

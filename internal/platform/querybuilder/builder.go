// Package querybuilder assembles parameterized Postgres queries without
// string concatenation at call sites. Only the clauses the repositories
// actually need are implemented.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type Condition interface {
	appendSQL(buf *strings.Builder, args *[]any, argIndex *int)
}

type cmpCondition struct {
	column string
	op     string
	value  any
}

func (c cmpCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(c.column)
	buf.WriteString(" ")
	buf.WriteString(c.op)
	buf.WriteString(" ")
	buf.WriteString(placeholder(*argIndex))
	*args = append(*args, c.value)
	*argIndex = *argIndex + 1
}

func Eq(column string, value any) Condition  { return cmpCondition{column: column, op: "=", value: value} }
func Gte(column string, value any) Condition { return cmpCondition{column: column, op: ">=", value: value} }
func Lte(column string, value any) Condition { return cmpCondition{column: column, op: "<=", value: value} }

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	if len(c.values) == 0 {
		buf.WriteString("1=0")
		return
	}

	buf.WriteString(c.column)
	buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(placeholder(*argIndex))
		*args = append(*args, v)
		*argIndex = *argIndex + 1
	}
	buf.WriteString(")")
}

type nullCondition struct {
	column  string
	negated bool
}

func IsNull(column string) Condition    { return nullCondition{column: column} }
func IsNotNull(column string) Condition { return nullCondition{column: column, negated: true} }

func (c nullCondition) appendSQL(buf *strings.Builder, _ *[]any, _ *int) {
	buf.WriteString(c.column)
	if c.negated {
		buf.WriteString(" IS NOT NULL")
		return
	}
	buf.WriteString(" IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr injects a raw SQL fragment with ? placeholders.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(buf *strings.Builder, args *[]any, argIndex *int) {
	buf.WriteString(rewritePlaceholders(c.expr, c.args, args, argIndex))
}

type SelectBuilder struct {
	columns    []string
	table      string
	conditions []Condition
	orderBy    []string
	limit      int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.conditions = append(b.conditions, conditions...)
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
	if b.table == "" {
		return "", nil, fmt.Errorf("select: table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select: at least one column is required")
	}

	var buf strings.Builder
	var args []any
	argIndex := 1

	buf.WriteString("SELECT ")
	buf.WriteString(strings.Join(b.columns, ", "))
	buf.WriteString(" FROM ")
	buf.WriteString(b.table)
	appendWhereClause(&buf, b.conditions, &args, &argIndex)
	appendOrderByClause(&buf, b.orderBy)
	if b.limit > 0 {
		buf.WriteString(" LIMIT ")
		buf.WriteString(strconv.Itoa(b.limit))
	}

	return buf.String(), args, nil
}

type UpdateBuilder struct {
	table      string
	columns    []string
	values     []any
	conditions []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.conditions = append(b.conditions, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if b.table == "" {
		return "", nil, fmt.Errorf("update: table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("update: at least one assignment is required")
	}
	if len(b.conditions) == 0 {
		return "", nil, fmt.Errorf("update: refusing to build without WHERE")
	}

	var buf strings.Builder
	var args []any
	argIndex := 1

	buf.WriteString("UPDATE ")
	buf.WriteString(b.table)
	buf.WriteString(" SET ")
	for i, column := range b.columns {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(column)
		buf.WriteString(" = ")
		buf.WriteString(placeholder(argIndex))
		args = append(args, b.values[i])
		argIndex++
	}
	appendWhereClause(&buf, b.conditions, &args, &argIndex)

	return buf.String(), args, nil
}

func appendWhereClause(buf *strings.Builder, conditions []Condition, args *[]any, argIndex *int) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	for i, condition := range conditions {
		if i > 0 {
			buf.WriteString(" AND ")
		}
		condition.appendSQL(buf, args, argIndex)
	}
}

func appendOrderByClause(buf *strings.Builder, orderBy []string) {
	if len(orderBy) == 0 {
		return
	}
	buf.WriteString(" ORDER BY ")
	buf.WriteString(strings.Join(orderBy, ", "))
}

func rewritePlaceholders(expr string, exprArgs []any, args *[]any, argIndex *int) string {
	var buf strings.Builder
	used := 0
	for _, r := range expr {
		if r != '?' {
			buf.WriteRune(r)
			continue
		}
		if used < len(exprArgs) {
			buf.WriteString(placeholder(*argIndex))
			*args = append(*args, exprArgs[used])
			*argIndex = *argIndex + 1
			used++
		}
	}
	return buf.String()
}

func placeholder(index int) string {
	return "$" + strconv.Itoa(index)
}

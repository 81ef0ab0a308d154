package ads

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDateRange is the date range applied to metric queries when the
// caller does not pass one.
const DefaultDateRange = "LAST_30_DAYS"

// Query assembles a GAQL statement from a fixed SELECT list and
// AND-composed conditions. It exists to keep the composition rules in
// one place: every added condition is joined with AND, and ORDER BY and
// LIMIT always render last.
type Query struct {
	fields     []string
	from       string
	conditions []string
	orderBy    string
	limit      int
}

// NewQuery starts a query over the given resource with a fixed field
// list.
func NewQuery(from string, fields ...string) *Query {
	return &Query{from: from, fields: fields}
}

// Where adds a condition, AND-composed with any previous ones.
func (q *Query) Where(condition string) *Query {
	q.conditions = append(q.conditions, condition)
	return q
}

// Wheref adds a formatted condition.
func (q *Query) Wheref(format string, args ...any) *Query {
	return q.Where(fmt.Sprintf(format, args...))
}

// During restricts the query to a segments.date range. The range name is
// sanitized to the GAQL enum character set before interpolation.
func (q *Query) During(dateRange string) *Query {
	return q.Where("segments.date DURING " + SanitizeDateRange(dateRange))
}

// OrderBy sets the ORDER BY field for stable output.
func (q *Query) OrderBy(field string) *Query {
	q.orderBy = field
	return q
}

// Limit caps the number of rows.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// String renders the GAQL statement.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(q.fields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(q.from)
	for i, cond := range q.conditions {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(cond)
	}
	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.orderBy)
	}
	if q.limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit))
	}
	return b.String()
}

// SanitizeDateRange reduces a date range name to the GAQL enum character
// set. Anything that does not survive sanitization intact falls back to
// the default range rather than reaching the query string.
func SanitizeDateRange(dateRange string) string {
	if dateRange == "" {
		return DefaultDateRange
	}
	upper := strings.ToUpper(dateRange)
	for _, r := range upper {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return DefaultDateRange
		}
	}
	return upper
}

// SanitizeDate reduces a YYYY-MM-DD date to digits and dashes so it can
// be interpolated into a GAQL condition.
func SanitizeDate(date string) string {
	var b strings.Builder
	b.Grow(len(date))
	for _, r := range date {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// QuoteLiteral renders a GAQL string literal with single quotes escaped.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}

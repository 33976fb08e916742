package querybuilder

import (
	"strconv"
	"strings"
)

// sqlWriter accumulates SQL text and its positional arguments ($1, $2, ...).
type sqlWriter struct {
	sb   strings.Builder
	args []any
}

func (w *sqlWriter) raw(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.sb.WriteByte('$')
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) list(keyword string, items []string) {
	if len(items) == 0 {
		return
	}
	w.raw(" ", keyword, " ", strings.Join(items, ", "))
}

func (w *sqlWriter) number(keyword string, n int) {
	if n <= 0 {
		return
	}
	w.raw(" ", keyword, " ", strconv.Itoa(n))
}

func (w *sqlWriter) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.raw(" WHERE ")
		} else {
			w.raw(" AND ")
		}
		c.render(w)
	}
}

// expr copies fragment into the output, binding one argument per '?'.
// Surplus '?' are written verbatim.
func (w *sqlWriter) expr(fragment string, args []any) {
	if len(args) == 0 {
		w.raw(fragment)
		return
	}
	next := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sb.WriteByte(fragment[i])
	}
}

func (w *sqlWriter) result() (string, []any, error) {
	return w.sb.String(), w.args, nil
}

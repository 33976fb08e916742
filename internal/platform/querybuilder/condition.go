package querybuilder

import "strings"

type Condition interface {
	render(w *sqlWriter)
}

type conditionFunc func(w *sqlWriter)

func (f conditionFunc) render(w *sqlWriter) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.raw(column, " = ")
		w.bind(value)
	})
}

// In renders "column IN (...)"; an empty set matches nothing.
func In(column string, values []any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		if len(values) == 0 {
			w.raw("1=0")
			return
		}
		w.raw(column, " IN (")
		for i, v := range values {
			if i > 0 {
				w.raw(", ")
			}
			w.bind(v)
		}
		w.raw(")")
	})
}

// ILike matches column case-insensitively against %value%.
func ILike(column, value string) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.raw(column, " ILIKE ")
		w.bind("%" + likeEscaper.Replace(value) + "%")
	})
}

// Expr is a raw fragment using '?' as argument markers.
func Expr(fragment string, args ...any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.expr(fragment, args)
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

package pgsql

import (
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// whereClause accumulates AND-ed conditions with positional arguments.
// A "?" in a condition is replaced by the placeholder of the argument it was added with.
type whereClause struct {
	conds []string
	args  []any
}

func (w *whereClause) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(w.args))))
}

// raw adds a condition that takes no argument.
func (w *whereClause) raw(cond string) {
	w.conds = append(w.conds, cond)
}

// anyOf restricts column to ids; an empty list leaves the column unrestricted.
func (w *whereClause) anyOf(column string, ids []string) {
	if len(ids) == 0 {
		return
	}
	w.add(column+" = ANY(?)", ids)
}

// dateBound adds op against a date argument unless t is zero.
func (w *whereClause) dateBound(expr, op string, t time.Time) {
	if t.IsZero() {
		return
	}
	w.add(expr+" "+op+" ?::date", t.Format("2006-01-02"))
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

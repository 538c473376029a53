package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWhereClause(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var w whereClause
		w.anyOf("tl.unit_id", nil)
		w.dateBound("tl.date", "<=", time.Time{})
		assert.Equal(t, "", w.String())
		assert.Empty(t, w.args)
	})

	t.Run("placeholders follow argument order", func(t *testing.T) {
		var w whereClause
		w.anyOf("tl.property_id", []string{"p1"})
		w.raw("ga.exclude_from_cash_balances = false")
		w.dateBound("tl.date", "<=", time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC))
		w.add("tl.account_entity_type = ?", "Rental")

		assert.Equal(t,
			"WHERE tl.property_id = ANY($1) AND ga.exclude_from_cash_balances = false AND tl.date <= $2::date AND tl.account_entity_type = $3",
			w.String())
		assert.Equal(t, []any{[]string{"p1"}, "2024-03-31", "Rental"}, w.args)
	})
}

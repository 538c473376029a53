package pgsql

import (
	"database/sql"
	"testing"

	"github.com/SscSPs/property_finance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachLines(t *testing.T) {
	txs := []models.Transaction{{TransactionID: "t1"}, {TransactionID: "t2"}}
	lines := []models.TransactionLine{
		{LineID: "l1", TransactionID: sql.NullString{String: "t2", Valid: true}},
		{LineID: "l2", TransactionID: sql.NullString{String: "t1", Valid: true}},
		{LineID: "l3", TransactionID: sql.NullString{String: "t2", Valid: true}},
		{LineID: "orphan"},
		{LineID: "other", TransactionID: sql.NullString{String: "t9", Valid: true}},
	}

	attachLines(txs, lines)

	require.Len(t, txs[0].Lines, 1)
	assert.Equal(t, "l2", txs[0].Lines[0].LineID)
	require.Len(t, txs[1].Lines, 2)
	assert.Equal(t, "l1", txs[1].Lines[0].LineID)
	assert.Equal(t, "l3", txs[1].Lines[1].LineID)
}

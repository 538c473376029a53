package finance

import (
	"sort"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
)

// ResolveLeaseBalances prefers the remote balances. When the remote balance is exactly
// zero and local transactions exist, the balance is recomputed from them instead.
// Prepayments and deposits held are always taken from the remote side.
func ResolveLeaseBalances(remote domain.RemoteLeaseBalances, transactions []domain.Transaction) domain.LeaseBalances {
	out := domain.LeaseBalances{
		Balance:      remote.Balance,
		Prepayments:  remote.Prepayments,
		DepositsHeld: remote.DepositsHeld,
	}
	if remote.Balance.IsZero() && len(transactions) > 0 {
		out.Balance = accounting.NetSignedAmount(transactions)
		out.ComputedLocally = true
	}
	return out
}

// LeaseLedgerRows lists transactions newest first. The first row shows the current
// balance; each following row shows the balance before the newer transaction above it.
func LeaseLedgerRows(lb domain.LeaseBalances, transactions []domain.Transaction) []domain.LeaseLedgerRow {
	txs := make([]domain.Transaction, len(transactions))
	copy(txs, transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})

	rows := make([]domain.LeaseLedgerRow, 0, len(txs))
	running := lb.Balance
	for _, tx := range txs {
		signed := accounting.SignedAmountFromTransaction(tx)
		var account string
		if len(tx.Lines) > 0 && tx.Lines[0].Account != nil {
			account = tx.Lines[0].Account.Name
		}
		rows = append(rows, domain.LeaseLedgerRow{
			TransactionID:  tx.ID,
			Date:           tx.Date,
			Type:           tx.Type,
			Account:        account,
			Memo:           tx.Memo,
			Reference:      tx.Reference,
			Amount:         tx.HeaderTotal,
			SignedAmount:   signed,
			RunningBalance: running,
		})
		running = running.Sub(signed)
	}
	return rows
}

package dto

import (
	"fmt"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	"github.com/SscSPs/property_finance/internal/utils/mapping"
)

// RollupRequest carries caller-supplied rows in any of the accepted upstream shapes.
type RollupRequest struct {
	Lines        []mapping.Record `json:"lines" yaml:"lines"`
	Transactions []mapping.Record `json:"transactions" yaml:"transactions"`
	UnitBalances mapping.Record   `json:"unitBalances" yaml:"unitBalances"`
	// Reserve may be a number or a numeric string.
	Reserve            any    `json:"reserve" yaml:"reserve" swaggertype:"number"`
	EntityType         string `json:"entityType" yaml:"entityType" binding:"omitempty,oneof=Rental Company"`
	AsOf               string `json:"asOf" yaml:"asOf" binding:"omitempty,isodate"`
	ReceivableFallback bool   `json:"receivableFallback" yaml:"receivableFallback"`
}

// ToRollupParams normalizes the raw rows into rollup inputs.
func (r RollupRequest) ToRollupParams() (finance.RollupParams, error) {
	asOf, err := ParseDate(r.AsOf)
	if err != nil {
		return finance.RollupParams{}, err
	}
	return finance.RollupParams{
		Lines:        mapping.ToDomainTransactionLines(r.Lines),
		Transactions: mapping.ToDomainTransactions(r.Transactions),
		UnitBalances: mapping.ToDomainUnitBalances(r.UnitBalances),
		Reserve:      mapping.ToDecimal(r.Reserve),
		EntityType:   domain.EntityType(r.EntityType),
		AsOf:         asOf,
		Options:      finance.RollupOptions{ReceivableFallback: r.ReceivableFallback},
	}, nil
}

// SignTransactionsRequest lists raw transactions to sign.
type SignTransactionsRequest struct {
	Transactions []mapping.Record `json:"transactions" yaml:"transactions" binding:"required"`
}

// LeaseBalancesRequest pairs a raw remote balance response with local transactions.
type LeaseBalancesRequest struct {
	Remote       mapping.Record   `json:"remote" yaml:"remote"`
	Transactions []mapping.Record `json:"transactions" yaml:"transactions"`
}

// ComputeLedgerRequest groups caller-supplied ledger rows for a period.
type ComputeLedgerRequest struct {
	Lines []mapping.Record `json:"lines" yaml:"lines"`
	From  string           `json:"from" yaml:"from" binding:"omitempty,isodate"`
	To    string           `json:"to" yaml:"to" binding:"omitempty,isodate"`
	Basis string           `json:"basis" yaml:"basis"`
}

// ToLedgerQuery parses the period and basis of the request.
func (r ComputeLedgerRequest) ToLedgerQuery() (domain.LedgerQuery, error) {
	from, err := ParseDate(r.From)
	if err != nil {
		return domain.LedgerQuery{}, err
	}
	to, err := ParseDate(r.To)
	if err != nil {
		return domain.LedgerQuery{}, err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return domain.LedgerQuery{}, fmt.Errorf("from %s is after to %s", r.From, r.To)
	}
	q := domain.LedgerQuery{From: from, To: to}
	if r.Basis != "" {
		q.Basis = domain.ParseBasis(r.Basis)
	}
	return q, nil
}

// FinancialsParams are the query parameters of the stored-data rollup endpoints.
type FinancialsParams struct {
	AsOf string `form:"asOf" binding:"omitempty,isodate"`
}

// LedgerParams are the query parameters of the general-ledger endpoint.
// Id lists accept repeated parameters, comma-separated values or both.
type LedgerParams struct {
	From         string   `form:"from" binding:"omitempty,isodate"`
	To           string   `form:"to" binding:"omitempty,isodate"`
	Basis        string   `form:"basis"`
	PropertyIDs  []string `form:"propertyIds"`
	UnitIDs      []string `form:"unitIds"`
	GLAccountIDs []string `form:"glAccountIds"`
}

// ToLedgerQuery converts the parameters. An empty basis is left for the service default.
func (p LedgerParams) ToLedgerQuery() (domain.LedgerQuery, error) {
	from, err := ParseDate(p.From)
	if err != nil {
		return domain.LedgerQuery{}, err
	}
	to, err := ParseDate(p.To)
	if err != nil {
		return domain.LedgerQuery{}, err
	}
	q := domain.LedgerQuery{
		From:         from,
		To:           to,
		PropertyIDs:  splitIDs(p.PropertyIDs),
		UnitIDs:      splitIDs(p.UnitIDs),
		GLAccountIDs: splitIDs(p.GLAccountIDs),
	}
	if p.Basis != "" {
		q.Basis = domain.ParseBasis(p.Basis)
	}
	return q, nil
}

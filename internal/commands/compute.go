package commands

import (
	"github.com/SscSPs/property_finance/internal/dto"
	"github.com/SscSPs/property_finance/internal/utils/mapping"
	"github.com/spf13/cobra"
)

func newRollupCommand(opts *rootOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Roll up lines and transactions into a financial snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.RollupRequest
			if err := readInput(cmd, input, &req); err != nil {
				return err
			}
			params, err := req.ToRollupParams()
			if err != nil {
				return err
			}
			result := opts.computeService().Rollup(opts.commandContext(cmd), params)
			return writeJSON(cmd, dto.ToRollupResponse(result))
		},
	}
	inputFlag(cmd, &input)

	return cmd
}

func newSignCommand(opts *rootOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign transactions by their effect on a lease balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.SignTransactionsRequest
			if err := readInput(cmd, input, &req); err != nil {
				return err
			}
			signed, net := opts.computeService().SignTransactions(opts.commandContext(cmd), mapping.ToDomainTransactions(req.Transactions))
			return writeJSON(cmd, dto.SignedTransactionsResponse{Transactions: signed, Net: net})
		},
	}
	inputFlag(cmd, &input)

	return cmd
}

func newLeaseCommand(opts *rootOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "lease-balances",
		Short: "Resolve remote lease balances against local transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.LeaseBalancesRequest
			if err := readInput(cmd, input, &req); err != nil {
				return err
			}
			report := opts.computeService().ResolveLeaseBalances(
				opts.commandContext(cmd),
				mapping.ToRemoteLeaseBalances(req.Remote),
				mapping.ToDomainTransactions(req.Transactions),
			)
			return writeJSON(cmd, dto.ToLeaseBalanceResponse(report))
		},
	}
	inputFlag(cmd, &input)

	return cmd
}

func newLedgerCommand(opts *rootOptions) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Group ledger rows by GL account with running balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req dto.ComputeLedgerRequest
			if err := readInput(cmd, input, &req); err != nil {
				return err
			}
			query, err := req.ToLedgerQuery()
			if err != nil {
				return err
			}
			gl := opts.computeService().GeneralLedger(opts.commandContext(cmd), query, mapping.LedgerLinesFromRecords(req.Lines))
			return writeJSON(cmd, dto.ToGeneralLedgerResponse(gl))
		},
	}
	inputFlag(cmd, &input)

	return cmd
}

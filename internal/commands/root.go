// Package commands implements the finance_cli command tree. Every command reads a JSON or
// YAML document, runs the finance engine over it and prints the result as JSON.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/core/services"
	"github.com/SscSPs/property_finance/internal/dto"
	"github.com/SscSPs/property_finance/internal/middleware"
	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type rootOptions struct {
	receivableFallback bool
	diagnostics        bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "finance_cli",
		Short: "Property finance rollups and ledgers from JSON or YAML files",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return dto.RegisterValidators()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.receivableFallback, "receivable-fallback", false, "use the receivable total when no cash signal exists")
	rootCmd.PersistentFlags().BoolVar(&opts.diagnostics, "diagnostics", false, "log rollup diagnostics to stderr")

	rootCmd.AddCommand(
		newRollupCommand(opts),
		newSignCommand(opts),
		newLeaseCommand(opts),
		newLedgerCommand(opts),
	)

	return rootCmd
}

func (o *rootOptions) computeService() portssvc.ComputeSvc {
	return services.NewComputeService(
		services.WithComputeReceivableFallback(o.receivableFallback),
		services.WithComputeDiagnosticsLogging(o.diagnostics),
	)
}

// commandContext carries a stderr logger so service logs never mix with the JSON output.
func (o *rootOptions) commandContext(cmd *cobra.Command) context.Context {
	level := slog.LevelWarn
	if o.diagnostics {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return middleware.WithLogger(cmd.Context(), logger)
}

// readInput decodes path into v. Files ending in .yaml or .yml are YAML, anything else JSON;
// "-" reads JSON from stdin.
func readInput(cmd *cobra.Command, path string, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := binding.Validator.ValidateStruct(v); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func inputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "input", "i", "", "input file (.json, .yaml or .yml; - for JSON on stdin)")
	_ = cmd.MarkFlagRequired("input")
}

package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// DiagnosticsLogging logs the full rollup diagnostics of every computation.
	DiagnosticsLogging bool
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// LogRollup reports a rollup. Incomplete bank lines are always logged as a warning;
// the full diagnostics only when DiagnosticsLogging is set.
func (s *BaseService) LogRollup(ctx context.Context, msg string, result domain.RollupResult, keyvals ...any) {
	d := result.Diagnostics
	if d.IncompleteBankLines {
		args := append([]any{
			slog.String("bank_total", d.Totals.Bank.String()),
			slog.String("payments_total", d.Totals.Payments.String()),
			slog.Int("bank_line_count", d.BankLineCount),
		}, keyvals...)
		s.LogWarn(ctx, "Incomplete bank lines detected", args...)
	}
	if !s.DiagnosticsLogging {
		return
	}
	args := append([]any{
		slog.String("as_of", result.Snapshot.AsOfDate()),
		slog.String("cash_balance", result.Snapshot.CashBalance.String()),
		slog.Bool("used_bank_balance", d.UsedBankBalance),
		slog.Bool("used_payment_fallback", d.UsedPaymentFallback),
		slog.Bool("used_ar_fallback", d.UsedARFallback),
		slog.Bool("bank_sign_corrected", d.BankSignCorrected),
		slog.String("bank_total", d.Totals.Bank.String()),
		slog.String("payments_total", d.Totals.Payments.String()),
		slog.String("deposits_total", d.Totals.Deposits.String()),
		slog.String("prepayments_total", d.Totals.Prepayments.String()),
		slog.String("ar_total", d.Totals.ARFallback.String()),
		slog.Int("bank_line_count", d.BankLineCount),
		slog.Int("line_count", d.LineCount),
		slog.Int("transaction_count", d.TransactionCount),
	}, keyvals...)
	s.LogInfo(ctx, msg, args...)
}

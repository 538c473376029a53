package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/dto"
	"github.com/SscSPs/property_finance/internal/middleware"
	"github.com/SscSPs/property_finance/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// computeHandler runs the finance engine over data supplied in the request body.
type computeHandler struct {
	computeService portssvc.ComputeSvc
}

func newComputeHandler(cs portssvc.ComputeSvc) *computeHandler {
	return &computeHandler{computeService: cs}
}

// registerComputeRoutes registers the stateless /finance routes.
func registerComputeRoutes(rg *gin.RouterGroup, computeService portssvc.ComputeSvc, mw ...gin.HandlerFunc) {
	h := newComputeHandler(computeService)

	financeGroup := rg.Group("/finance", mw...)
	{
		financeGroup.POST("/rollup", h.rollup)
		financeGroup.POST("/transactions/signed-amount", h.signedAmounts)
		financeGroup.POST("/lease-balances", h.leaseBalances)
		financeGroup.POST("/general-ledger", h.generalLedger)
	}
}

// rollup godoc
// @Summary Roll up supplied lines and transactions
// @Description Computes cash, security deposits, prepayments and available balance from raw rows
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.RollupRequest true "Raw lines, transactions and baselines"
// @Success 200 {object} dto.RollupResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /finance/rollup [post]
func (h *computeHandler) rollup(c *gin.Context) {
	var req dto.RollupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	params, err := req.ToRollupParams()
	if err != nil {
		badRequest(c, err)
		return
	}

	result := h.computeService.Rollup(c.Request.Context(), params)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Rollup computed",
		slog.Int("line_count", len(params.Lines)),
		slog.Int("transaction_count", len(params.Transactions)))
	c.JSON(http.StatusOK, dto.ToRollupResponse(result))
}

// signedAmounts godoc
// @Summary Sign transactions
// @Description Returns each transaction's signed effect on a lease balance and the net sum
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.SignTransactionsRequest true "Raw transactions"
// @Success 200 {object} dto.SignedTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /finance/transactions/signed-amount [post]
func (h *computeHandler) signedAmounts(c *gin.Context) {
	var req dto.SignTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	signed, net := h.computeService.SignTransactions(c.Request.Context(), mapping.ToDomainTransactions(req.Transactions))
	c.JSON(http.StatusOK, dto.SignedTransactionsResponse{Transactions: signed, Net: net})
}

// leaseBalances godoc
// @Summary Resolve lease balances
// @Description Resolves a supplied remote balance response against local transactions
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.LeaseBalancesRequest true "Remote balances and transactions"
// @Success 200 {object} dto.LeaseBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /finance/lease-balances [post]
func (h *computeHandler) leaseBalances(c *gin.Context) {
	var req dto.LeaseBalancesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report := h.computeService.ResolveLeaseBalances(
		c.Request.Context(),
		mapping.ToRemoteLeaseBalances(req.Remote),
		mapping.ToDomainTransactions(req.Transactions),
	)
	c.JSON(http.StatusOK, dto.ToLeaseBalanceResponse(report))
}

// generalLedger godoc
// @Summary Group supplied ledger rows
// @Description Groups raw ledger rows by GL account with prior, net and running balances
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.ComputeLedgerRequest true "Raw ledger rows and period"
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /finance/general-ledger [post]
func (h *computeHandler) generalLedger(c *gin.Context) {
	var req dto.ComputeLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	query, err := req.ToLedgerQuery()
	if err != nil {
		badRequest(c, err)
		return
	}

	gl := h.computeService.GeneralLedger(c.Request.Context(), query, mapping.LedgerLinesFromRecords(req.Lines))
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(gl))
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/dto"
	"github.com/SscSPs/property_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves general-ledger reports.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)
	rg.GET("/ledger", h.getGeneralLedger)
}

// getGeneralLedger godoc
// @Summary General ledger report
// @Description Groups lines by GL account with the balance carried in, the period net and running balances
// @Tags ledger
// @Produce json
// @Param from query string false "Period start (YYYY-MM-DD)" default(first day of current month)
// @Param to query string false "Period end (YYYY-MM-DD)" default(last day of the start month)
// @Param basis query string false "cash or accrual"
// @Param propertyIds query []string false "Property IDs" collectionFormat(csv)
// @Param unitIds query []string false "Unit IDs" collectionFormat(csv)
// @Param glAccountIds query []string false "GL account IDs" collectionFormat(csv)
// @Success 200 {object} dto.GeneralLedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /ledger [get]
func (h *ledgerHandler) getGeneralLedger(c *gin.Context) {
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	query, err := params.ToLedgerQuery()
	if err != nil {
		badRequest(c, err)
		return
	}

	gl, err := h.ledgerService.GeneralLedger(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Failed to generate general ledger")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("General ledger generated",
		slog.String("basis", string(gl.Basis)),
		slog.Int("group_count", len(gl.Groups)))
	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(*gl))
}

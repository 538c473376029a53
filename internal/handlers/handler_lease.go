package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/dto"
	"github.com/gin-gonic/gin"
)

type leaseHandler struct {
	leaseBalanceService portssvc.LeaseBalanceSvc
}

func newLeaseHandler(ls portssvc.LeaseBalanceSvc) *leaseHandler {
	return &leaseHandler{leaseBalanceService: ls}
}

func registerLeaseRoutes(rg *gin.RouterGroup, leaseBalanceService portssvc.LeaseBalanceSvc) {
	h := newLeaseHandler(leaseBalanceService)
	rg.GET("/leases/:lease_id/balances", h.getLeaseBalances)
}

// getLeaseBalances godoc
// @Summary Lease balances
// @Description Resolves a lease's balance against the remote system of record and lists its ledger
// @Tags leases
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} dto.LeaseBalanceResponse
// @Failure 404 {object} map[string]string "Lease not found"
// @Failure 500 {object} map[string]string "Failed to resolve balances"
// @Router /leases/{lease_id}/balances [get]
func (h *leaseHandler) getLeaseBalances(c *gin.Context) {
	report, err := h.leaseBalanceService.LeaseBalances(c.Request.Context(), c.Param("lease_id"))
	if err != nil {
		respondError(c, err, "Failed to resolve lease balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaseBalanceResponse(*report))
}

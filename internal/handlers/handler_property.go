package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/dto"
	"github.com/SscSPs/property_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// propertyFinanceHandler serves rollups computed from stored data.
type propertyFinanceHandler struct {
	propertyFinanceService portssvc.PropertyFinanceSvc
}

func newPropertyFinanceHandler(ps portssvc.PropertyFinanceSvc) *propertyFinanceHandler {
	return &propertyFinanceHandler{propertyFinanceService: ps}
}

// registerPropertyFinanceRoutes registers the property and unit financials routes.
func registerPropertyFinanceRoutes(rg *gin.RouterGroup, propertyFinanceService portssvc.PropertyFinanceSvc) {
	h := newPropertyFinanceHandler(propertyFinanceService)

	rg.GET("/properties/:property_id/financials", h.getPropertyFinancials)
	rg.GET("/units/:unit_id/financials", h.getUnitFinancials)
}

// asOfParam binds the optional asOf query parameter. Zero means today.
func asOfParam(c *gin.Context) (time.Time, bool) {
	var params dto.FinancialsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return time.Time{}, false
	}
	asOf, err := dto.ParseDate(params.AsOf)
	if err != nil {
		badRequest(c, err)
		return time.Time{}, false
	}
	return asOf, true
}

// getPropertyFinancials godoc
// @Summary Property financial snapshot
// @Description Rolls up every line and transaction of a property up to a date
// @Tags financials
// @Produce json
// @Param property_id path string true "Property ID"
// @Param asOf query string false "Snapshot date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.PropertyFinancialsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Property not found"
// @Failure 500 {object} map[string]string "Failed to compute financials"
// @Router /properties/{property_id}/financials [get]
func (h *propertyFinanceHandler) getPropertyFinancials(c *gin.Context) {
	propertyID := c.Param("property_id")
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("property_id", propertyID))
	logger.Info("Received request for property financials")

	pf, err := h.propertyFinanceService.PropertyFinancials(c.Request.Context(), propertyID, asOf)
	if err != nil {
		respondError(c, err, "Failed to compute property financials")
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyFinancialsResponse(pf))
}

// getUnitFinancials godoc
// @Summary Unit financial snapshot
// @Description Rolls up a unit's rental lines on top of its stored balances
// @Tags financials
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Param asOf query string false "Snapshot date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.UnitFinancialsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 500 {object} map[string]string "Failed to compute financials"
// @Router /units/{unit_id}/financials [get]
func (h *propertyFinanceHandler) getUnitFinancials(c *gin.Context) {
	unitID := c.Param("unit_id")
	asOf, ok := asOfParam(c)
	if !ok {
		return
	}

	result, err := h.propertyFinanceService.UnitFinancials(c.Request.Context(), unitID, asOf)
	if err != nil {
		respondError(c, err, "Failed to compute unit financials")
		return
	}

	c.JSON(http.StatusOK, dto.UnitFinancialsResponse{
		UnitID:         unitID,
		RollupResponse: dto.ToRollupResponse(*result),
	})
}

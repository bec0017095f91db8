package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	portssvc "github.com/retailbooks/retail_accounting_app/internal/core/ports/services"
	"github.com/retailbooks/retail_accounting_app/internal/dto"
	"github.com/retailbooks/retail_accounting_app/internal/middleware"
)

// outletHandler handles HTTP requests related to outlets.
type outletHandler struct {
	outletService portssvc.OutletSvcFacade
}

// newOutletHandler creates a new outletHandler.
func newOutletHandler(os portssvc.OutletSvcFacade) *outletHandler {
	return &outletHandler{
		outletService: os,
	}
}

// registerOutletRoutes registers routes related to outlets.
func registerOutletRoutes(rg *gin.RouterGroup, outletService portssvc.OutletSvcFacade) {
	h := newOutletHandler(outletService)

	outlets := rg.Group("/outlets")
	{
		outlets.GET("", h.listOutlets)
		outlets.GET("/:outlet_id", h.getOutlet)
	}
}

// getOutlet godoc
// @Summary Get an outlet by ID
// @Description Retrieves details for a specific outlet
// @Tags outlets
// @Produce  json
// @Param   outlet_id path string true "Outlet ID"
// @Success 200 {object} dto.OutletResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Outlet not found"
// @Failure 500 {object} map[string]string "Failed to retrieve outlet"
// @Security BearerAuth
// @Router /outlets/{outlet_id} [get]
func (h *outletHandler) getOutlet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	outletID := c.Param("outlet_id")

	logger = logger.With(slog.String("outlet_id", outletID))
	logger.Info("Received request to get outlet")

	outlet, err := h.outletService.GetOutletByID(c.Request.Context(), outletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Outlet not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Outlet not found"})
		} else {
			logger.Error("Failed to get outlet from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve outlet"})
		}
		return
	}

	logger.Info("Outlet retrieved successfully")
	c.JSON(http.StatusOK, dto.ToOutletResponse(outlet))
}

// listOutlets godoc
// @Summary List outlets
// @Description Retrieves a paginated list of outlets
// @Tags outlets
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.OutletResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list outlets"
// @Security BearerAuth
// @Router /outlets [get]
func (h *outletHandler) listOutlets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListOutletsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListOutlets", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger.Info("Received request to list outlets", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))

	outlets, err := h.outletService.ListOutlets(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list outlets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list outlets"})
		return
	}

	logger.Info("Outlets listed successfully", slog.Int("count", len(outlets)))
	c.JSON(http.StatusOK, dto.ToListOutletResponse(outlets))
}

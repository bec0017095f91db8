package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portssvc "github.com/retailbooks/retail_accounting_app/internal/core/ports/services"
	"github.com/retailbooks/retail_accounting_app/internal/dto"
	"github.com/retailbooks/retail_accounting_app/internal/middleware"
)

// closingHandler handles HTTP requests related to period closings.
type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
}

// newClosingHandler creates a new closingHandler.
func newClosingHandler(cs portssvc.ClosingSvcFacade) *closingHandler {
	return &closingHandler{
		closingService: cs,
	}
}

// registerClosingRoutes registers routes related to period closings.
func registerClosingRoutes(rg *gin.RouterGroup, closingService portssvc.ClosingSvcFacade) {
	h := newClosingHandler(closingService)

	closings := rg.Group("/outlets/:outlet_id/closings")
	{
		closings.POST("", h.createClosing)
		closings.GET("", h.listClosings)
		closings.GET("/latest", h.getLatestClosing)
		closings.GET("/:closing_id", h.getClosing)
	}
}

// createClosing godoc
// @Summary Close an accounting period
// @Description Locks one accounting day or month for the outlet and persists an immutable closing snapshot
// @Tags closings
// @Accept  json
// @Produce  json
// @Param   outlet_id path string true "Outlet ID"
// @Param   closing body dto.CreateClosingRequest true "Closing details"
// @Success 201 {object} dto.ClosingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Period already closed or preceding period missing"
// @Failure 500 {object} map[string]string "Failed to close period"
// @Security BearerAuth
// @Router /outlets/{outlet_id}/closings [post]
func (h *closingHandler) createClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	outletID := c.Param("outlet_id")

	var req dto.CreateClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	closerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Closer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("outlet_id", outletID), slog.String("closer_user_id", closerUserID))
	logger.Info("Received request to close period", slog.String("closing_type", req.ClosingType), slog.String("closing_date", req.ClosingDate))

	closing, err := h.closingService.ClosePeriod(c.Request.Context(), outletID, req, closerUserID)
	if err != nil {
		var seqErr *apperrors.SequenceViolationError
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error closing period", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.As(err, &seqErr) {
			logger.Warn("Sequence violation closing period", slog.String("error", seqErr.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": seqErr.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Period already closed", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to close period in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close period"})
		}
		return
	}

	logger.Info("Period closed successfully", slog.String("closing_id", closing.ClosingID))
	c.JSON(http.StatusCreated, dto.ToClosingResponse(closing))
}

// getClosing godoc
// @Summary Get a closing record by ID
// @Description Retrieves a specific closing record scoped to the outlet
// @Tags closings
// @Produce  json
// @Param   outlet_id path string true "Outlet ID"
// @Param   closing_id path string true "Closing ID"
// @Success 200 {object} dto.ClosingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Closing not found"
// @Failure 500 {object} map[string]string "Failed to retrieve closing"
// @Security BearerAuth
// @Router /outlets/{outlet_id}/closings/{closing_id} [get]
func (h *closingHandler) getClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	outletID := c.Param("outlet_id")
	closingID := c.Param("closing_id")

	logger = logger.With(slog.String("outlet_id", outletID), slog.String("closing_id", closingID))
	logger.Info("Received request to get closing")

	closing, err := h.closingService.GetClosingByID(c.Request.Context(), outletID, closingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Closing not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Closing not found"})
		} else {
			logger.Error("Failed to get closing from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve closing"})
		}
		return
	}

	logger.Info("Closing retrieved successfully")
	c.JSON(http.StatusOK, dto.ToClosingResponse(closing))
}

// getLatestClosing godoc
// @Summary Get the latest closing of a type
// @Description Retrieves the outlet's most recent closing for the given closing type
// @Tags closings
// @Produce  json
// @Param   outlet_id path string true "Outlet ID"
// @Param   closingType query string true "Closing type (DAY or MONTH)"
// @Success 200 {object} dto.ClosingResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No closing exists yet"
// @Failure 500 {object} map[string]string "Failed to retrieve closing"
// @Security BearerAuth
// @Router /outlets/{outlet_id}/closings/latest [get]
func (h *closingHandler) getLatestClosing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	outletID := c.Param("outlet_id")

	var params dto.LatestClosingParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetLatestClosing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("outlet_id", outletID), slog.String("closing_type", params.ClosingType))
	logger.Info("Received request to get latest closing")

	closing, err := h.closingService.GetLatestClosing(c.Request.Context(), outletID, domain.ClosingType(params.ClosingType))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No closing found for type")
			c.JSON(http.StatusNotFound, gin.H{"error": "No closing found"})
		} else {
			logger.Error("Failed to get latest closing from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve closing"})
		}
		return
	}

	logger.Info("Latest closing retrieved successfully", slog.String("closing_id", closing.ClosingID))
	c.JSON(http.StatusOK, dto.ToClosingResponse(closing))
}

// listClosings godoc
// @Summary List closings for an outlet
// @Description Retrieves the outlet's closing records, most recent first
// @Tags closings
// @Produce  json
// @Param   outlet_id path string true "Outlet ID"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListClosingsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list closings"
// @Security BearerAuth
// @Router /outlets/{outlet_id}/closings [get]
func (h *closingHandler) listClosings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	outletID := c.Param("outlet_id")

	var params dto.ListClosingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListClosings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("outlet_id", outletID))
	logger.Info("Received request to list closings", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))

	closings, err := h.closingService.ListClosings(c.Request.Context(), outletID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list closings from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list closings"})
		return
	}

	logger.Info("Closings listed successfully", slog.Int("count", len(closings)))
	c.JSON(http.StatusOK, dto.ListClosingsResponse{Closings: dto.ToListClosingResponse(closings)})
}

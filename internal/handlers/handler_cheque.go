package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopbooks/shopbooks_backend/internal/apperrors"
	portssvc "github.com/shopbooks/shopbooks_backend/internal/core/ports/services"
	"github.com/shopbooks/shopbooks_backend/internal/dto"
	"github.com/shopbooks/shopbooks_backend/internal/middleware"
)

// chequeHandler handles HTTP requests for the cheque register.
type chequeHandler struct {
	chequeService portssvc.ChequeSvcFacade
}

// newChequeHandler creates a new chequeHandler.
func newChequeHandler(cs portssvc.ChequeSvcFacade) *chequeHandler {
	return &chequeHandler{
		chequeService: cs,
	}
}

// registerChequeRoutes registers routes for cheques and their details.
func registerChequeRoutes(rg *gin.RouterGroup, chequeService portssvc.ChequeSvcFacade) {
	h := newChequeHandler(chequeService)

	cheques := rg.Group("/cheques")
	{
		cheques.GET("", h.listCheques)
		cheques.POST("", h.createCheque)
		cheques.GET("/:chequeNumber", h.getCheque)
		cheques.DELETE("/:chequeNumber", h.deleteCheque)
		cheques.PUT("/:chequeNumber/status", h.setStatus)
		cheques.GET("/:chequeNumber/details", h.getDetails)
		cheques.PUT("/:chequeNumber/details", h.upsertDetails)
	}
}

// listCheques godoc
// @Summary List cheques
// @Description Retrieves every cheque in the register, most recently posted first
// @Tags cheques
// @Produce json
// @Success 200 {array} dto.ChequeResponse
// @Failure 500 {object} map[string]string "Failed to list cheques"
// @Router /cheques [get]
func (h *chequeHandler) listCheques(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cheques, err := h.chequeService.ListCheques(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list cheques in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cheques"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListChequesResponse(cheques))
}

// createCheque godoc
// @Summary Register a cheque
// @Description Registers a cheque; net to payee defaults to amount minus admin charge
// @Tags cheques
// @Accept json
// @Produce json
// @Param cheque body dto.CreateChequeRequest true "Cheque details"
// @Success 201 {object} dto.ChequeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Cheque number already registered"
// @Failure 500 {object} map[string]string "Failed to register cheque"
// @Router /cheques [post]
func (h *chequeHandler) createCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChequeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCheque", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cheque, err := h.chequeService.CreateCheque(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate cheque", slog.String("cheque_number", req.ChequeNumber))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register cheque in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register cheque"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChequeResponse(cheque))
}

// getCheque godoc
// @Summary Get a cheque
// @Description Retrieves a single cheque by its number
// @Tags cheques
// @Produce json
// @Param chequeNumber path string true "Cheque number"
// @Success 200 {object} dto.ChequeResponse
// @Failure 404 {object} map[string]string "Cheque not found"
// @Failure 500 {object} map[string]string "Failed to retrieve cheque"
// @Router /cheques/{chequeNumber} [get]
func (h *chequeHandler) getCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeNumber := c.Param("chequeNumber")

	cheque, err := h.chequeService.GetCheque(c.Request.Context(), chequeNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cheque not found"})
		} else {
			logger.Error("Failed to get cheque in service", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cheque"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}

// deleteCheque godoc
// @Summary Delete a cheque
// @Description Removes a cheque and its payer identification record, if any
// @Tags cheques
// @Param chequeNumber path string true "Cheque number"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Cheque not found"
// @Failure 500 {object} map[string]string "Failed to delete cheque"
// @Router /cheques/{chequeNumber} [delete]
func (h *chequeHandler) deleteCheque(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeNumber := c.Param("chequeNumber")

	if err := h.chequeService.DeleteCheque(c.Request.Context(), chequeNumber); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cheque not found"})
		} else {
			logger.Error("Failed to delete cheque in service", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cheque"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// setStatus godoc
// @Summary Set a cheque's status
// @Description Moves a cheque to any lifecycle status; re-setting the current status is a no-op
// @Tags cheques
// @Accept json
// @Produce json
// @Param chequeNumber path string true "Cheque number"
// @Param status body dto.UpdateChequeStatusRequest true "New status"
// @Success 200 {object} dto.ChequeResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Cheque not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /cheques/{chequeNumber}/status [put]
func (h *chequeHandler) setStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeNumber := c.Param("chequeNumber")

	var req dto.UpdateChequeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cheque, err := h.chequeService.SetStatus(c.Request.Context(), chequeNumber, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cheque not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set cheque status in service", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}

// getDetails godoc
// @Summary Get a cheque's payer details
// @Description Retrieves the payer identification record attached to a cheque
// @Tags cheques
// @Produce json
// @Param chequeNumber path string true "Cheque number"
// @Success 200 {object} dto.ChequeDetailResponse
// @Failure 404 {object} map[string]string "Cheque or details not found"
// @Failure 500 {object} map[string]string "Failed to retrieve details"
// @Router /cheques/{chequeNumber}/details [get]
func (h *chequeHandler) getDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeNumber := c.Param("chequeNumber")

	detail, err := h.chequeService.GetDetails(c.Request.Context(), chequeNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cheque details not found"})
		} else {
			logger.Error("Failed to get cheque details in service", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve details"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChequeDetailResponse(detail))
}

// upsertDetails godoc
// @Summary Save a cheque's payer details
// @Description Creates the record on first save; later saves apply only the changed fields. A no-change save succeeds with changed=false
// @Tags cheques
// @Accept json
// @Produce json
// @Param chequeNumber path string true "Cheque number"
// @Param details body dto.UpsertChequeDetailsRequest true "Payer identification fields"
// @Success 200 {object} dto.ChequeDetailResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Cheque not found"
// @Failure 500 {object} map[string]string "Failed to save details"
// @Router /cheques/{chequeNumber}/details [put]
func (h *chequeHandler) upsertDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeNumber := c.Param("chequeNumber")

	var req dto.UpsertChequeDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertDetails", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	detail, changed, err := h.chequeService.UpsertDetails(c.Request.Context(), chequeNumber, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cheque not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert cheque details in service", slog.String("error", err.Error()), slog.String("cheque_number", chequeNumber))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save details"})
		}
		return
	}

	res := dto.ToChequeDetailResponse(detail)
	res.Changed = &changed
	c.JSON(http.StatusOK, res)
}

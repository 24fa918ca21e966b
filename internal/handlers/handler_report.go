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
	"github.com/shopbooks/shopbooks_backend/internal/utils/bookkeeping"
)

// reportHandler handles HTTP requests for daily receivables reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers routes for daily receivables reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/daily-receivables")
	{
		reports.GET("", h.listReports)
		reports.POST("", h.upsertReport)
		reports.GET("/:reportDate", h.getReport)
		reports.PUT("/:reportDate", h.upsertReportByDate)
		reports.POST("/:reportDate/line-items", h.addLineItem)
		reports.PUT("/:reportDate/finish", h.finishReport)
		reports.DELETE("/:reportDate", h.deleteReport)
	}
}

// listReports godoc
// @Summary List daily reports
// @Description Retrieves the date and status of every saved report, most recent first
// @Tags daily-receivables
// @Produce json
// @Success 200 {array} dto.ReportSummaryResponse
// @Failure 500 {object} map[string]string "Failed to list reports"
// @Router /daily-receivables [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list reports in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReportsResponse(summaries))
}

// upsertReport godoc
// @Summary Save a daily report
// @Description Creates the report for a date as a draft, or replaces the balances and line items of the existing draft
// @Tags daily-receivables
// @Accept json
// @Produce json
// @Param report body dto.UpsertReportRequest true "Report content"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input or report is finished"
// @Failure 500 {object} map[string]string "Failed to save report"
// @Router /daily-receivables [post]
func (h *reportHandler) upsertReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.doUpsert(c, req)
}

// upsertReportByDate godoc
// @Summary Save the report for a date
// @Description Same semantics as the collection upsert; the path date wins over any date in the body
// @Tags daily-receivables
// @Accept json
// @Produce json
// @Param reportDate path string true "Report date (YYYY-MM-DD)"
// @Param report body dto.UpsertReportRequest true "Report content"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input or report is finished"
// @Failure 500 {object} map[string]string "Failed to save report"
// @Router /daily-receivables/{reportDate} [put]
func (h *reportHandler) upsertReportByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.ReportDate = c.Param("reportDate")

	h.doUpsert(c, req)
}

func (h *reportHandler) doUpsert(c *gin.Context, req dto.UpsertReportRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportService.UpsertReport(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert report in service", slog.String("error", err.Error()), slog.String("report_date", req.ReportDate))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report, bookkeeping.ReportTotals(*report)))
}

// getReport godoc
// @Summary Get the report for a date
// @Description Retrieves a report with every derived total included
// @Tags daily-receivables
// @Produce json
// @Param reportDate path string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "No report for date"
// @Failure 500 {object} map[string]string "Failed to retrieve report"
// @Router /daily-receivables/{reportDate} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportDate := c.Param("reportDate")

	report, err := h.reportService.GetReportByDate(c.Request.Context(), reportDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No report for date"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get report in service", slog.String("error", err.Error()), slog.String("report_date", reportDate))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report, bookkeeping.ReportTotals(*report)))
}

// addLineItem godoc
// @Summary Add an empty line item
// @Description Appends an empty row to one of the four sections of a draft report
// @Tags daily-receivables
// @Accept json
// @Produce json
// @Param reportDate path string true "Report date (YYYY-MM-DD)"
// @Param lineItem body dto.AddLineItemRequest true "Target section"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Unknown section or report is finished"
// @Failure 404 {object} map[string]string "No report for date"
// @Failure 500 {object} map[string]string "Failed to add line item"
// @Router /daily-receivables/{reportDate}/line-items [post]
func (h *reportHandler) addLineItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportDate := c.Param("reportDate")

	var req dto.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddLineItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.reportService.AddLineItem(c.Request.Context(), reportDate, req.Section)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No report for date"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add line item in service", slog.String("error", err.Error()), slog.String("report_date", reportDate))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add line item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report, bookkeeping.ReportTotals(*report)))
}

// finishReport godoc
// @Summary Finish a report
// @Description Moves a report from draft to finished, after which it is read-only. Finishing again is a no-op
// @Tags daily-receivables
// @Produce json
// @Param reportDate path string true "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "No report for date"
// @Failure 500 {object} map[string]string "Failed to finish report"
// @Router /daily-receivables/{reportDate}/finish [put]
func (h *reportHandler) finishReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportDate := c.Param("reportDate")

	report, err := h.reportService.FinishReport(c.Request.Context(), reportDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No report for date"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to finish report in service", slog.String("error", err.Error()), slog.String("report_date", reportDate))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finish report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report, bookkeeping.ReportTotals(*report)))
}

// deleteReport godoc
// @Summary Delete a report
// @Description Removes the report for a date regardless of its status
// @Tags daily-receivables
// @Param reportDate path string true "Report date (YYYY-MM-DD)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "No report for date"
// @Failure 500 {object} map[string]string "Failed to delete report"
// @Router /daily-receivables/{reportDate} [delete]
func (h *reportHandler) deleteReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportDate := c.Param("reportDate")

	if err := h.reportService.DeleteReport(c.Request.Context(), reportDate); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No report for date"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete report in service", slog.String("error", err.Error()), slog.String("report_date", reportDate))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

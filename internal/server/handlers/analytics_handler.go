package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/analytics"
	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/i18n"
	"github.com/mamadbah2/khamar/internal/service/reporting"
)

// maxTrendWindow bounds ?size= on the trend endpoint.
const maxTrendWindow = 120

// ReportingService exposes the monthly rollup and trend series.
type ReportingService interface {
	MonthlySummary(ctx context.Context, period models.Period, lang models.Language) (models.MonthlySummary, bool, error)
	Trend(ctx context.Context, end models.Period, windowSize int, lang models.Language) ([]models.MonthlySummary, error)
}

// AnalyticsHandler serves monthly summaries, trends and CSV exports.
type AnalyticsHandler struct {
	svc      ReportingService
	lang     models.Language
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewAnalyticsHandler constructs the handler. Missing month parameters
// default to the current month in loc.
func NewAnalyticsHandler(svc ReportingService, lang models.Language, loc *time.Location, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsHandler{svc: svc, lang: lang, location: loc, now: time.Now, logger: logger}
}

// Monthly returns the summary of ?month=YYYY-MM.
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	lang := language(c, h.lang)
	period, ok := h.period(c, "month")
	if !ok {
		return
	}

	summary, found, err := h.svc.MonthlySummary(c.Request.Context(), period, lang)
	if err != nil {
		h.loadFailed(c, err, lang)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"summary": nil, "message": reporting.NoDataMessage(period, lang)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Trend returns ?size= months (default 12) ending at ?end=YYYY-MM.
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	lang := language(c, h.lang)
	end, ok := h.period(c, "end")
	if !ok {
		return
	}

	size := analytics.DefaultTrendWindow
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxTrendWindow {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("size must be an integer between 0 and %d", maxTrendWindow)})
			return
		}
		size = n
	}

	trend, err := h.svc.Trend(c.Request.Context(), end, size, lang)
	if err != nil {
		h.loadFailed(c, err, lang)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

// Export downloads the summary of ?month=YYYY-MM as CSV.
func (h *AnalyticsHandler) Export(c *gin.Context) {
	lang := language(c, h.lang)
	period, ok := h.period(c, "month")
	if !ok {
		return
	}

	summary, found, err := h.svc.MonthlySummary(c.Request.Context(), period, lang)
	if err != nil {
		h.loadFailed(c, err, lang)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"summary": nil, "message": reporting.NoDataMessage(period, lang)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, reporting.ExportFilename(period)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(reporting.SummaryCSV(summary, lang)))
}

func (h *AnalyticsHandler) period(c *gin.Context, param string) (models.Period, bool) {
	raw := c.Query(param)
	if raw == "" {
		return models.PeriodOf(h.now().In(h.location)), true
	}
	p, err := models.ParsePeriod(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be in YYYY-MM format", param)})
		return models.Period{}, false
	}
	return p, true
}

func (h *AnalyticsHandler) loadFailed(c *gin.Context, err error, lang models.Language) {
	h.logger.Error("failed loading records for analytics", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.For(lang).T(i18n.LoadRecordsFailed)})
}

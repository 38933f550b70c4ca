package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/i18n"
	"github.com/mamadbah2/khamar/internal/service/narrative"
)

// MarketAnalyst answers market price questions for a period.
type MarketAnalyst interface {
	MarketInsights(ctx context.Context, period models.Period, lang models.Language) (models.Insight, error)
}

// Board holds the latest result of each narrative pipeline.
type Board interface {
	Publish(result models.PipelineResult)
	Snapshot() []models.PipelineResult
}

// InsightHandler serves the insight board and the market pipeline.
type InsightHandler struct {
	analyst  MarketAnalyst
	board    Board
	lang     models.Language
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewInsightHandler constructs the handler.
func NewInsightHandler(analyst MarketAnalyst, board Board, lang models.Language, loc *time.Location, logger *zap.Logger) *InsightHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &InsightHandler{analyst: analyst, board: board, lang: lang, location: loc, now: time.Now, logger: logger}
}

// List returns the latest result per pipeline.
func (h *InsightHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"results": h.board.Snapshot()})
}

// Market requests grounded market insights for ?month=YYYY-MM.
func (h *InsightHandler) Market(c *gin.Context) {
	lang := language(c, h.lang)
	tr := i18n.For(lang)

	period := models.PeriodOf(h.now().In(h.location))
	if raw := c.Query("month"); raw != "" {
		p, err := models.ParsePeriod(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be in YYYY-MM format"})
			return
		}
		period = p
	}

	result := models.PipelineResult{Pipeline: models.PipelineMarket}
	insight, err := h.analyst.MarketInsights(c.Request.Context(), period, lang)
	if err != nil {
		result.Error = fmt.Sprintf("%s: %s", tr.T(i18n.MarketFailed), err.Error())
	} else {
		result.Insight = &insight
	}
	result.CompletedAt = h.now().UTC()
	h.board.Publish(result)

	switch {
	case errors.Is(err, narrative.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": result.Error})
	case err != nil:
		h.logger.Warn("market insights failed", zap.String("period", period.Key()), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": result.Error})
	default:
		c.JSON(http.StatusOK, result)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/i18n"
	"github.com/mamadbah2/khamar/internal/service/records"
)

// RecordService is the record mutation flow used by the HTTP layer.
type RecordService interface {
	List(ctx context.Context) ([]models.DailyRecord, error)
	Create(ctx context.Context, record models.DailyRecord, lang models.Language) (records.SaveResult, error)
	Update(ctx context.Context, record models.DailyRecord, lang models.Language) (records.SaveResult, error)
	Delete(ctx context.Context, id string) error
}

// RecordHandler serves the daily record API.
type RecordHandler struct {
	svc    RecordService
	lang   models.Language
	logger *zap.Logger
}

// NewRecordHandler constructs the HTTP handler adapter.
func NewRecordHandler(svc RecordService, lang models.Language, logger *zap.Logger) *RecordHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordHandler{svc: svc, lang: lang, logger: logger}
}

// saveResponse carries the stored record fields at the top level, so store
// clients can decode it as a plain record, plus the pipeline results.
type saveResponse struct {
	models.DailyRecord
	Message  string                `json:"message"`
	Analysis models.PipelineResult `json:"analysis"`
	Anomaly  records.AnomalyResult `json:"anomaly"`
}

// List returns all records, newest date first.
func (h *RecordHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing records", zap.Error(err))
		tr := i18n.For(language(c, h.lang))
		c.JSON(http.StatusInternalServerError, gin.H{"error": tr.T(i18n.LoadRecordsFailed)})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create stores a new record and runs the post-save pipelines.
func (h *RecordHandler) Create(c *gin.Context) {
	lang := language(c, h.lang)

	var record models.DailyRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.svc.Create(c.Request.Context(), record, lang)
	if err != nil {
		h.writeError(c, err, lang, i18n.SaveFailed)
		return
	}
	c.JSON(http.StatusCreated, toSaveResponse(res))
}

// Update replaces the record named by the path id.
func (h *RecordHandler) Update(c *gin.Context) {
	lang := language(c, h.lang)

	var record models.DailyRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		h.logger.Warn("invalid record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record.ID = c.Param("id")

	res, err := h.svc.Update(c.Request.Context(), record, lang)
	if err != nil {
		h.writeError(c, err, lang, i18n.UpdateFailed)
		return
	}
	c.JSON(http.StatusOK, toSaveResponse(res))
}

// Delete removes the record named by the path id.
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, language(c, h.lang), i18n.DeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecordHandler) writeError(c *gin.Context, err error, lang models.Language, failure i18n.Key) {
	tr := i18n.For(lang)

	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  tr.T(i18n.CorrectFormErrors),
			"fields": localizeValidation(verrs, tr),
		})
	case errors.Is(err, models.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrRecordNotFound.Error()})
	case errors.Is(err, models.ErrDuplicateRecord):
		c.JSON(http.StatusConflict, gin.H{"error": models.ErrDuplicateRecord.Error()})
	default:
		h.logger.Error("record store call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": tr.T(failure) + ": " + err.Error()})
	}
}

func toSaveResponse(res records.SaveResult) saveResponse {
	return saveResponse{
		DailyRecord: res.Record,
		Message:     res.Message,
		Analysis:    res.Analysis,
		Anomaly:     res.Anomaly,
	}
}

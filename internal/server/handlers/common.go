package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/khamar/internal/domain/models"
	"github.com/mamadbah2/khamar/internal/i18n"
)

// language resolves the ?lang= query parameter, falling back to the
// configured default.
func language(c *gin.Context, fallback models.Language) models.Language {
	return models.ParseLanguage(c.Query("lang"), fallback)
}

// localizeValidation maps each rejected field to its message in tr.
func localizeValidation(errs models.ValidationErrors, tr i18n.Translator) map[string]string {
	out := make(map[string]string, len(errs))
	for field, code := range errs {
		out[field] = tr.T(i18n.ValidationMessage(code))
	}
	return out
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"encuestas/internal/domain"
	"encuestas/internal/service"
)

// AnalyticsHandler expone los reportes agregados por encuesta.
type AnalyticsHandler struct {
	logger *zap.Logger
	svc    *service.ResponseService
}

func NewAnalyticsHandler(logger *zap.Logger, svc *service.ResponseService) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logger, svc: svc}
}

// GetAnalytics maneja GET /surveys/:id/analytics.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	report, err := h.svc.AnalyzeSurvey(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return
		}
		h.logger.Error("analyze survey failed", zap.Error(err), zap.String("survey_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

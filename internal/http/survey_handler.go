package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"encuestas/internal/domain"
	"encuestas/internal/repository"
)

// SurveyHandler expone las definiciones de encuesta.
type SurveyHandler struct {
	logger  *zap.Logger
	surveys repository.SurveyRepository
}

func NewSurveyHandler(logger *zap.Logger, surveys repository.SurveyRepository) *SurveyHandler {
	return &SurveyHandler{logger: logger, surveys: surveys}
}

// ListSurveys maneja GET /surveys.
func (h *SurveyHandler) ListSurveys(c *gin.Context) {
	surveys, err := h.surveys.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Error("list surveys failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list surveys"})
		return
	}
	if surveys == nil {
		surveys = []domain.Survey{}
	}
	c.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

// GetSurvey maneja GET /surveys/:id.
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	survey, err := h.surveys.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return
		}
		h.logger.Error("get survey failed", zap.Error(err), zap.String("survey_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load survey"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"encuestas/internal/domain"
	"encuestas/internal/service"
)

// ResponseHandler recibe entregas de encuestas y las pasa al motor.
type ResponseHandler struct {
	logger *zap.Logger
	svc    *service.ResponseService
}

func NewResponseHandler(logger *zap.Logger, svc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{logger: logger, svc: svc}
}

type submitRequest struct {
	UserID    string           `json:"user_id" binding:"required"`
	Answers   domain.AnswerSet `json:"answers" binding:"required"`
	StartTime time.Time        `json:"start_time"`
}

// SubmitResponse maneja POST /surveys/:id/responses.
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}
	if req.StartTime.IsZero() {
		req.StartTime = time.Now().UTC()
	}

	record, err := h.svc.Submit(c.Request.Context(), req.UserID, c.Param("id"), req.Answers, req.StartTime)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrSurveyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Encuesta no encontrada"})
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success":    false,
				"message":    "Errores en las respuestas",
				"violations": verr.Violations,
			})
		default:
			h.logger.Error("submit response failed", zap.Error(err), zap.String("survey_id", c.Param("id")))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not save response"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Respuesta guardada exitosamente",
		"response": record,
	})
}

type validateRequest struct {
	Answers domain.AnswerSet `json:"answers" binding:"required"`
}

// ValidateAnswers maneja POST /surveys/:id/validate (validación sin persistir).
func (h *ResponseHandler) ValidateAnswers(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid validate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	violations, err := h.svc.ValidateAnswers(c.Request.Context(), c.Param("id"), req.Answers)
	if err != nil {
		if errors.Is(err, domain.ErrSurveyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "survey not found"})
			return
		}
		h.logger.Error("validate answers failed", zap.Error(err), zap.String("survey_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not validate answers"})
		return
	}
	if violations == nil {
		violations = []domain.Violation{}
	}
	c.JSON(http.StatusOK, gin.H{"valid": len(violations) == 0, "violations": violations})
}

// UserResponses maneja GET /users/:id/responses.
func (h *ResponseHandler) UserResponses(c *gin.Context) {
	records, err := h.svc.UserResponses(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("list user responses failed", zap.Error(err), zap.String("user_id", c.Param("id")))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list responses"})
		return
	}
	if records == nil {
		records = []domain.ResponseRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"responses": records})
}

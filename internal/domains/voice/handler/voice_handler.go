package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recitation-backend/internal/domains/voice"
	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/logger"
)

type VoiceHandler struct {
	service voice.Service
}

func NewVoiceHandler(service voice.Service) *VoiceHandler {
	return &VoiceHandler{service: service}
}

// Create handles POST /voices.
func (h *VoiceHandler) Create(c *gin.Context) {
	var req voice.CreateVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	v, err := h.service.CreateVoice(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Voice created", v)
}

// List handles GET /voices.
func (h *VoiceHandler) List(c *gin.Context) {
	voices, err := h.service.ListVoices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", voices)
}

func (h *VoiceHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, voice.ErrVoiceNameTaken):
		response.BadRequest(c, "Voice name already exists!")
	case errors.Is(err, voice.ErrVoiceNotFound):
		response.NotFound(c, "Voice not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		logger.Error("voice operation failed", err)
		response.InternalServerError(c, "Server error occurred.")
	}
}

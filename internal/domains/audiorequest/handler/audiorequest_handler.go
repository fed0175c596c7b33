package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recitation-backend/internal/domains/audiorequest"
	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/shared/middleware"
	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/logger"
)

// AudioRequestHandler serves the per-project audio request surface. Every
// route nests under /projects/:project_id, and the owner half of each key
// is always the verified caller.
type AudioRequestHandler struct {
	service audiorequest.Service
}

func NewAudioRequestHandler(service audiorequest.Service) *AudioRequestHandler {
	return &AudioRequestHandler{service: service}
}

// Create handles POST /projects/:project_id/audio_requests.
func (h *AudioRequestHandler) Create(c *gin.Context) {
	projectKey, ok := callerProjectKey(c)
	if !ok {
		return
	}

	var req audiorequest.CreateAudioRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), projectKey, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Audio request created", gin.H{"audio_request": created})
}

// List handles GET /projects/:project_id/audio_requests.
func (h *AudioRequestHandler) List(c *gin.Context) {
	projectKey, ok := callerProjectKey(c)
	if !ok {
		return
	}

	requests, err := h.service.ListRequests(c.Request.Context(), projectKey)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"audio_requests": requests})
}

// Get handles GET /projects/:project_id/audio_requests/:request_id.
func (h *AudioRequestHandler) Get(c *gin.Context) {
	key, ok := callerRequestKey(c)
	if !ok {
		return
	}

	req, err := h.service.GetRequest(c.Request.Context(), key)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"audio_request": req})
}

// UpdateStatus handles PATCH /projects/:project_id/audio_requests/:request_id/status.
func (h *AudioRequestHandler) UpdateStatus(c *gin.Context) {
	key, ok := callerRequestKey(c)
	if !ok {
		return
	}

	var req audiorequest.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), key, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Status updated", gin.H{"audio_request": updated})
}

func (h *AudioRequestHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, audiorequest.ErrRequestNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, audiorequest.ErrInvalidTransition):
		response.ErrorResponse(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, audiorequest.ErrInvalidStatus),
		errors.Is(err, audiorequest.ErrInvalidVerseRange),
		isValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("audio request operation failed", err)
		response.InternalServerError(c, "audio request operation failed")
	}
}

// callerProjectKey builds the parent key from the verified identity and the
// project_id path segment.
func callerProjectKey(c *gin.Context) (project.ProjectKey, bool) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return project.ProjectKey{}, false
	}

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil || projectID < 1 {
		response.BadRequest(c, "invalid project id")
		return project.ProjectKey{}, false
	}

	return project.ProjectKey{ProjectID: projectID, OwnerID: ident.UserID}, true
}

func callerRequestKey(c *gin.Context) (audiorequest.RequestKey, bool) {
	projectKey, ok := callerProjectKey(c)
	if !ok {
		return audiorequest.RequestKey{}, false
	}

	requestID, err := strconv.ParseInt(c.Param("request_id"), 10, 64)
	if err != nil || requestID < 1 {
		response.BadRequest(c, "invalid request id")
		return audiorequest.RequestKey{}, false
	}

	return audiorequest.RequestKey{
		RequestID: requestID,
		ProjectID: projectKey.ProjectID,
		OwnerID:   projectKey.OwnerID,
	}, true
}

func isValidationError(err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return true
	}
	var obj validation.ErrorObject
	return errors.As(err, &obj)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/domains/versetag"
	"recitation-backend/internal/shared/middleware"
	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/logger"
)

// VerseTagHandler serves the per-project verse annotation surface.
type VerseTagHandler struct {
	service versetag.Service
}

func NewVerseTagHandler(service versetag.Service) *VerseTagHandler {
	return &VerseTagHandler{service: service}
}

// Create handles POST /projects/:project_id/verse_tags.
func (h *VerseTagHandler) Create(c *gin.Context) {
	projectKey, ok := callerProjectKey(c)
	if !ok {
		return
	}

	var req versetag.CreateVerseTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.CreateVerseTag(c.Request.Context(), projectKey, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Verse tag created", gin.H{"verse_tag": created})
}

// List handles GET /projects/:project_id/verse_tags.
func (h *VerseTagHandler) List(c *gin.Context) {
	projectKey, ok := callerProjectKey(c)
	if !ok {
		return
	}

	tags, err := h.service.ListVerseTags(c.Request.Context(), projectKey)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"verse_tags": tags})
}

func (h *VerseTagHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, versetag.ErrInvalidReference),
		errors.Is(err, versetag.ErrInvalidWordRange),
		isValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("verse tag operation failed", err)
		response.InternalServerError(c, "verse tag operation failed")
	}
}

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

func isValidationError(err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return true
	}
	var obj validation.ErrorObject
	return errors.As(err, &obj)
}

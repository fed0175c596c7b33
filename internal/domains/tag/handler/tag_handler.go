package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recitation-backend/internal/domains/tag"
	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/logger"
)

type TagHandler struct {
	service tag.Service
}

func NewTagHandler(service tag.Service) *TagHandler {
	return &TagHandler{service: service}
}

// Create handles POST /tags.
func (h *TagHandler) Create(c *gin.Context) {
	var req tag.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.service.CreateTag(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Tag created", t)
}

// List handles GET /tags.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", tags)
}

func (h *TagHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, tag.ErrTagNameTaken):
		response.BadRequest(c, "Tag name already exists!")
	case errors.Is(err, tag.ErrTagNotFound):
		response.NotFound(c, "Tag not found")
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		logger.Error("tag operation failed", err)
		response.InternalServerError(c, "Server error occurred.")
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recitation-backend/internal/domains/project"
	"recitation-backend/internal/shared/middleware"
	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/logger"
)

// ProjectHandler serves the home listing and project creation.
type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ========================================
// HOME
// ========================================

// Home handles GET /: the signed-in user's projects, each resolved against
// its voice and quran version. Unresolvable references render as "Unknown".
func (h *ProjectHandler) Home(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/sign_in")
		return
	}

	views, err := h.service.ListProjectsForUser(c.Request.Context(), ident.UserID)
	if err != nil {
		logger.Error("project listing failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error occurred."})
		return
	}

	projectData := make([]map[string]string, 0, len(views))
	for _, v := range views {
		projectData = append(projectData, v.Legacy())
	}

	c.JSON(http.StatusOK, gin.H{
		"username":     ident.Username,
		"project_data": projectData,
	})
}

// ========================================
// CREATE PROJECT
// ========================================

// CreateProject handles POST /create_project. Accepts a JSON body or the
// legacy form-encoded fields.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.Redirect(http.StatusFound, "/sign_in")
		return
	}

	req := parseCreateProjectRequest(c)
	if req.Name == "" || req.VersionID == 0 || req.Language == "" || req.VoiceID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required!"})
		return
	}

	p, err := h.service.CreateProject(c.Request.Context(), ident.UserID, req)
	if err != nil {
		h.handleCreateError(c, err)
		return
	}

	response.SuccessWithRedirect(c, http.StatusCreated, "Project created successfully!", "/", gin.H{"project": p})
}

func parseCreateProjectRequest(c *gin.Context) project.CreateProjectRequest {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req project.CreateProjectRequest
		_ = c.ShouldBindJSON(&req)
		return req
	}

	versionID, _ := strconv.ParseInt(c.PostForm("version_id"), 10, 64)
	voiceID, _ := strconv.ParseInt(c.PostForm("voice_id"), 10, 64)
	return project.CreateProjectRequest{
		Name:      c.PostForm("Project_name"),
		VersionID: versionID,
		VoiceID:   voiceID,
		Language:  c.PostForm("language"),
	}
}

func (h *ProjectHandler) handleCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, project.ErrProjectNameTaken):
		// Duplicates are 400 on this surface, like the sign-up duplicates.
		c.JSON(http.StatusBadRequest, gin.H{"message": "Project name already exists!"})
	case errors.Is(err, project.ErrInvalidReference):
		response.BadRequest(c, err.Error())
	case isValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("project creation failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error occurred."})
	}
}

// ========================================
// PROJECT API
// ========================================

// ListProjects handles GET /projects for API clients: the raw views with
// resolution flags, not the legacy home shape.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	views, err := h.service.ListProjectsForUser(c.Request.Context(), ident.UserID)
	if err != nil {
		logger.Error("project listing failed", err)
		response.InternalServerError(c, "failed to list projects")
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"projects": views})
}

// GetProject handles GET /projects/:project_id. The owner half of the key
// comes from the verified identity, so one user's project ids never resolve
// under another user.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil || projectID < 1 {
		response.BadRequest(c, "invalid project id")
		return
	}

	key := project.ProjectKey{ProjectID: projectID, OwnerID: ident.UserID}
	p, err := h.service.GetProject(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("project lookup failed", err)
		response.InternalServerError(c, "failed to load project")
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"project": p})
}

func isValidationError(err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return true
	}
	var obj validation.ErrorObject
	return errors.As(err, &obj)
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recitation-backend/internal/domains/corpus"
	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/logger"
)

type CorpusHandler struct {
	service corpus.Service
}

func NewCorpusHandler(service corpus.Service) *CorpusHandler {
	return &CorpusHandler{service: service}
}

// CreateVersion handles POST /versions.
func (h *CorpusHandler) CreateVersion(c *gin.Context) {
	var req corpus.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	v, err := h.service.CreateVersion(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Version created", v)
}

// ListVersions handles GET /versions.
func (h *CorpusHandler) ListVersions(c *gin.Context) {
	versions, err := h.service.ListVersions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", versions)
}

// AddSurah handles POST /versions/:version_id/surahs.
func (h *CorpusHandler) AddSurah(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}

	var req corpus.AddSurahRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	s, err := h.service.AddSurah(c.Request.Context(), versionID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Surah created", s)
}

// ListSurahs handles GET /versions/:version_id/surahs.
func (h *CorpusHandler) ListSurahs(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}

	surahs, err := h.service.ListSurahs(c.Request.Context(), versionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", surahs)
}

// AddVerse handles POST /versions/:version_id/surahs/:surah_id/verses.
func (h *CorpusHandler) AddVerse(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}
	surahID, ok := pathID(c, "surah_id")
	if !ok {
		return
	}

	var req corpus.AddVerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	v, err := h.service.AddVerse(c.Request.Context(), versionID, surahID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Verse created", v)
}

// ListVerses handles GET /versions/:version_id/surahs/:surah_id/verses.
func (h *CorpusHandler) ListVerses(c *gin.Context) {
	versionID, ok := pathID(c, "version_id")
	if !ok {
		return
	}
	surahID, ok := pathID(c, "surah_id")
	if !ok {
		return
	}

	verses, err := h.service.ListVerses(c.Request.Context(), versionID, surahID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", verses)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *CorpusHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, corpus.ErrVersionNameTaken):
		response.BadRequest(c, "Version name already exists!")
	case errors.Is(err, corpus.ErrSurahNumberTaken):
		response.BadRequest(c, "Surah number already exists in this version!")
	case errors.Is(err, corpus.ErrVerseNumberTaken):
		response.BadRequest(c, "Verse number already exists in this surah!")
	case errors.Is(err, corpus.ErrVersionNotFound),
		errors.Is(err, corpus.ErrSurahNotFound),
		errors.Is(err, corpus.ErrVerseNotFound):
		response.NotFound(c, err.Error())
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
	default:
		logger.Error("corpus operation failed", err)
		response.InternalServerError(c, "Server error occurred.")
	}
}

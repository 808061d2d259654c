package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"plaindoc/internal/config"
	"plaindoc/internal/domain"
	"plaindoc/internal/service"
)

// UploadHandler handles image upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
	cfg           *config.UploadConfig
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService, cfg *config.UploadConfig) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, cfg: cfg}
}

// Upload handles POST /api/v1/uploads. It accepts a multipart form with a
// single "file" field, materializes the body, and routes it to the
// configured storage backend.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read file body")
		return
	}

	result, err := h.uploadService.Upload(c.Request.Context(), h.cfg, domain.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

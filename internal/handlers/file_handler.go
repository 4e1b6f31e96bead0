package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/logger"
	"contratando_backend/internal/storage"
	"contratando_backend/pkg/apperrors"
)

// FileHandler serves stored documents when the local backend is in use.
// Object-storage deployments serve files straight from the bucket URL.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

// GET /api/v1/files/*path
func (h *FileHandler) Serve(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Caminho inválido"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.store.Exists(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Arquivo não encontrado"})
		return
	}

	reader, err := h.store.Get(ctx, path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing left to do but log.
		logger.CtxWithError(ctx, "failed to stream file", err, "path", path)
	}
}

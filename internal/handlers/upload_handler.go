package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/config"
	"tarokatalog_backend/internal/logger"
	"tarokatalog_backend/internal/middleware"
	"tarokatalog_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler - загрузка фотографий тарологов в хранилище
type UploadHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewUploadHandler(base *BaseHandler, store storage.Storage) *UploadHandler {
	return &UploadHandler{
		BaseHandler: base,
		storage:     store,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/uploads")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission("uploads:write"))
	{
		admin.POST("/photo", h.UploadPhoto)
	}
}

func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	cfg := config.GetConfig()

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Файл не передан"))
		return
	}

	if fileHeader.Size > cfg.Upload.MaxSize {
		h.HandleServiceError(c, appErrors.ErrFileTooLarge)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}
	defer file.Close()

	contentType, err := sniffContentType(file)
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}
	if !isAllowedType(contentType, cfg.Upload.AllowedTypes) {
		h.HandleServiceError(c, appErrors.ErrInvalidFileType)
		return
	}

	// Имя файла не доверяем клиенту, оставляем только расширение
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	path := fmt.Sprintf("photos/%s%s", uuid.New().String(), ext)

	ctx := c.Request.Context()
	if err := h.storage.Save(ctx, path, file, contentType); err != nil {
		logger.CtxWithError(ctx, "Failed to save photo", err, "path", path)
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}

	url, err := h.storage.GetURL(ctx, path)
	if err != nil {
		h.HandleServiceError(c, appErrors.InternalError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": path,
		"url":  url,
	})
}

// sniffContentType определяет MIME по первым 512 байтам и
// возвращает reader в начало файла
func sniffContentType(file multipart.File) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return "", err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

func isAllowedType(contentType string, allowed []string) bool {
	for _, t := range allowed {
		if t == contentType {
			return true
		}
	}
	return false
}

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitpulse/internal/service"
)

// MediaHandler mantiene dependencias para endpoints de imagen de perfil.
type MediaHandler struct {
	logger    *zap.Logger
	mediaServ *service.MediaService
}

func NewMediaHandler(logger *zap.Logger, mediaServ *service.MediaService) *MediaHandler {
	return &MediaHandler{
		logger:    logger,
		mediaServ: mediaServ,
	}
}

// UploadProfilePic maneja POST /profile/picture (multipart, campo "image").
func (h *MediaHandler) UploadProfilePic(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid Token"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid Inputs provided"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("open uploaded file failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("read uploaded file failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
		return
	}

	if err := h.mediaServ.UploadProfilePic(c.Request.Context(), userID, fileHeader.Filename, data); err != nil {
		h.logger.Error("upload profile pic failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile Picture successfully uploaded"})
}

// RemoveProfilePic maneja DELETE /profile/picture.
func (h *MediaHandler) RemoveProfilePic(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid Token"})
		return
	}

	if err := h.mediaServ.RemoveProfilePic(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Image does not Exist"})
			return
		}
		h.logger.Error("remove profile pic failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile Picture removed successfully"})
}

// GetProfilePic maneja GET /profile/picture/:email.
func (h *MediaHandler) GetProfilePic(c *gin.Context) {
	url, err := h.mediaServ.GetProfilePicURL(c.Request.Context(), c.Param("email"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User Not Found"})
		case errors.Is(err, service.ErrImageNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Image does not Exist"})
		default:
			h.logger.Error("get profile pic failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

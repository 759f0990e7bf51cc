package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitpulse/internal/service"
)

// WorkoutHandler mantiene dependencias para endpoints de workouts favoritos.
type WorkoutHandler struct {
	logger  *zap.Logger
	favServ *service.FavoritesService
}

func NewWorkoutHandler(logger *zap.Logger, favServ *service.FavoritesService) *WorkoutHandler {
	return &WorkoutHandler{
		logger:  logger,
		favServ: favServ,
	}
}

// AddFavorite maneja POST /workouts/favorite/:id.
func (h *WorkoutHandler) AddFavorite(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid Token"})
		return
	}

	if err := h.favServ.AddFavorite(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.respondFavoriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorite Workout added"})
}

// RemoveFavorite maneja DELETE /workouts/favorite/:id.
func (h *WorkoutHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid Token"})
		return
	}

	if err := h.favServ.RemoveFavorite(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.respondFavoriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Favorite Workout removed"})
}

// ListFavorites maneja GET /workouts/favorites.
func (h *WorkoutHandler) ListFavorites(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid Token"})
		return
	}

	ids, err := h.favServ.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list favorites failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workouts": ids})
}

// ListUserWorkouts maneja GET /workouts/user/:email (lookup público por email).
func (h *WorkoutHandler) ListUserWorkouts(c *gin.Context) {
	workouts, err := h.favServ.ListUserWorkouts(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User Not Found"})
			return
		}
		h.logger.Error("list user workouts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "workouts": workouts})
}

func (h *WorkoutHandler) respondFavoriteError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrWorkoutNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Workout Not Found"})
		return
	}
	h.logger.Error("favorite operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Side Error"})
}

package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitpulse/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	workoutH *WorkoutHandler,
	mediaH *MediaHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := JWTAuthMiddleware(jwtSvc)

	user := r.Group("/user")
	user.POST("/signup", userH.Signup)
	user.POST("/login", userH.Login)
	user.GET("/:token", userH.GetUser)

	workouts := r.Group("/workouts")
	workouts.POST("/favorite/:id", auth, workoutH.AddFavorite)
	workouts.DELETE("/favorite/:id", auth, workoutH.RemoveFavorite)
	workouts.GET("/favorites", auth, workoutH.ListFavorites)
	workouts.GET("/user/:email", workoutH.ListUserWorkouts)

	profile := r.Group("/profile")
	profile.POST("/picture", auth, mediaH.UploadProfilePic)
	profile.DELETE("/picture", auth, mediaH.RemoveProfilePic)
	profile.GET("/picture/:email", mediaH.GetProfilePic)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

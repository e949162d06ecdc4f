package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "techtospeak/docs" // registers the OpenAPI spec
	"techtospeak/internal/handler"
	"techtospeak/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Health *handler.HealthHandler
	Audio  *handler.AudioHandler
	Jargon *handler.JargonHandler
	File   *handler.FileHandler
	Image  *handler.ImageHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger.Named("http")))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/", h.Health.Root)
	r.GET("/healthz", h.Health.Liveness)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	audio := v1.Group("/audio")
	audio.POST("/stt", h.Audio.Transcribe)
	audio.POST("/explicar", h.Audio.Explain)

	v1.POST("/jargon/traducir", h.Jargon.Translate)
	v1.POST("/file/traducir", h.File.Translate)
	v1.POST("/image/traducir", h.Image.Translate)

	return r
}

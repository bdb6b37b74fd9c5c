package v1

import (
	"net/http"

	"aleb-backend/config"
	"aleb-backend/internal/delivery/http/middleware"
	"aleb-backend/internal/delivery/http/response"
	"aleb-backend/internal/domain"
	"aleb-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	ApplicationUC domain.ApplicationUsecase
	UploadSink    *upload.Sink
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ALEB Backend is Running Successfully")
	})
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public form routes
	public := r.Group("")
	NewContactHandler(public, deps.ContactUC)
	NewApplicationHandler(public, deps.ApplicationUC, deps.UploadSink)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/UmerAzizGujjar/portfolio/pkg/auth"
	"github.com/UmerAzizGujjar/portfolio/pkg/logger"
)

type RouterDeps struct {
	AuthHandler    *AuthHandler
	BioHandler     *BioHandler
	ProjectHandler *ProjectHandler
	ContactHandler *ContactHandler
	JWTService     *auth.JWTService
	Redis          *redis.Client
	Logger         logger.Logger
}

// NewRouter wires every route. Mutating routes sit behind the auth middleware;
// the contact form is additionally rate limited per IP.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(deps.Logger))

	authMiddleware := AuthMiddleware(deps.JWTService)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Umer Aziz Portfolio API"})
	})

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", deps.AuthHandler.Register)
			authRoutes.POST("/login", deps.AuthHandler.Login)
			authRoutes.GET("/profile", authMiddleware, deps.AuthHandler.Profile)
			authRoutes.PUT("/change-password", authMiddleware, deps.AuthHandler.ChangePassword)
		}

		bioRoutes := api.Group("/bio")
		{
			bioRoutes.GET("", deps.BioHandler.GetBio)
			bioRoutes.PUT("", authMiddleware, deps.BioHandler.UpdateBio)
			bioRoutes.POST("/upload-image", authMiddleware, deps.BioHandler.UploadImage)
		}

		projectRoutes := api.Group("/projects")
		{
			projectRoutes.GET("", deps.ProjectHandler.ListProjects)
			projectRoutes.GET("/:id", deps.ProjectHandler.GetProject)
			projectRoutes.POST("", authMiddleware, deps.ProjectHandler.CreateProject)
			projectRoutes.PUT("/:id", authMiddleware, deps.ProjectHandler.UpdateProject)
			projectRoutes.DELETE("/:id", authMiddleware, deps.ProjectHandler.DeleteProject)
		}

		contactRoutes := api.Group("/contact")
		{
			contactRoutes.POST("", RateLimit(deps.Redis, "contact", 5, time.Minute), deps.ContactHandler.SubmitContact)
			contactRoutes.GET("", authMiddleware, deps.ContactHandler.ListContacts)
			contactRoutes.PUT("/:id/read", authMiddleware, deps.ContactHandler.MarkAsRead)
			contactRoutes.DELETE("/:id", authMiddleware, deps.ContactHandler.DeleteContact)
		}
	}

	return router
}

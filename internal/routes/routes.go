package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hirehub/backend/internal/auth"
	"github.com/hirehub/backend/internal/handlers"
	"github.com/hirehub/backend/internal/middleware"
	"gorm.io/gorm"
)

// Options bundles everything the route table needs.
type Options struct {
	DB             *gorm.DB
	CompanyHandler *handlers.CompanyHandler
	JobHandler     *handlers.JobHandler
	UserHandler    *handlers.UserHandler
	WebhookHandler *handlers.WebhookHandler
	RateLimiter    *middleware.RateLimiter

	JWTSecret         string
	IdentityJWTSecret string

	// Serve UPLOAD_DIR at /uploads when the local uploader is active.
	StaticUploadDir string
}

func SetupRoutes(opts Options) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "token"}
	router.Use(cors.New(corsConfig))

	router.GET("/", handlers.Welcome)
	router.GET("/health", handlers.HealthCheck)

	if opts.StaticUploadDir != "" {
		router.Static("/uploads", opts.StaticUploadDir)
	}

	router.POST("/webhooks", opts.WebhookHandler.Handle)

	protectCompany := auth.ProtectCompany(opts.DB, opts.JWTSecret)
	protectUser := auth.ProtectUser(opts.IdentityJWTSecret)
	limit := opts.RateLimiter.Limit()

	company := router.Group("/api/company")
	{
		company.POST("/register", limit, opts.CompanyHandler.Register)
		company.POST("/login", limit, opts.CompanyHandler.Login)
		company.GET("/company", protectCompany, opts.CompanyHandler.GetCompany)
		company.POST("/post-job", protectCompany, opts.CompanyHandler.PostJob)
		company.GET("/applicants", protectCompany, opts.CompanyHandler.GetApplicants)
		company.GET("/list-jobs", protectCompany, opts.CompanyHandler.ListJobs)
		company.POST("/change-status", protectCompany, opts.CompanyHandler.ChangeStatus)
		company.POST("/change-visibility", protectCompany, opts.CompanyHandler.ChangeVisibility)
	}

	jobs := router.Group("/api/jobs")
	{
		jobs.GET("", opts.JobHandler.ListJobs)
		jobs.GET("/:id", opts.JobHandler.GetJob)
	}

	users := router.Group("/api/users")
	{
		users.GET("/user", protectUser, opts.UserHandler.GetUser)
		users.POST("/apply-job", protectUser, opts.UserHandler.ApplyJob)
		users.GET("/applications", protectUser, opts.UserHandler.GetApplications)
		users.PUT("/update-profile", protectUser, opts.UserHandler.UpdateProfile)
		users.POST("/update-resume", protectUser, opts.UserHandler.UpdateResume)
	}

	return router
}

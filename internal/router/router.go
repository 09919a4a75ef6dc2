package router

import (
	"artshare-go/internal/config"
	"artshare-go/internal/handler"
	"artshare-go/internal/middleware"
	"artshare-go/internal/repository"
	"artshare-go/internal/service"
	"artshare-go/internal/session"
	"artshare-go/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	sessions session.Store,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "个人作品分享站 API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	workRepo := repository.NewWorkRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, sessions, jwtManager, cfg)
	profileService := service.NewProfileService(userRepo, workRepo, commentRepo, sessions)
	workService := service.NewWorkService(workRepo)
	commentService := service.NewCommentService(commentRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	workHandler := handler.NewWorkHandler(workService)
	commentHandler := handler.NewCommentHandler(commentService)

	// API路由组
	api := r.Group("/api")
	{
		// 公开路由
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/search", profileHandler.Search)

		api.GET("/users/:id", profileHandler.GetProfile)
		api.GET("/users/:id/avatar", profileHandler.GetAvatar)
		api.GET("/users/:id/works", profileHandler.GetUserWorks)

		api.GET("/works/:kind", workHandler.List)
		api.GET("/works/:kind/:id", workHandler.Get)
		api.GET("/works/:kind/:id/blob", workHandler.GetBlob)
		api.GET("/works/:kind/:id/comments", commentHandler.List)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager, sessions))
		{
			// 当前用户
			authorized.POST("/logout", authHandler.Logout)
			authorized.GET("/me", authHandler.GetMe)
			authorized.PUT("/me", profileHandler.EditProfile)
			authorized.DELETE("/me", profileHandler.DeleteAccount)

			// 作品
			authorized.POST("/works/:kind", workHandler.Create)
			authorized.DELETE("/works/:kind/:id", workHandler.Delete)

			// 评论
			authorized.POST("/works/:kind/:id/comments", commentHandler.Add)
			authorized.DELETE("/comments/:id", commentHandler.Delete)
		}
	}

	return r
}

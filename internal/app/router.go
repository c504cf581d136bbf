package app

import (
	"skill_assistant_backend/docs"
	"skill_assistant_backend/internal/config"
	"skill_assistant_backend/internal/middleware"

	"skill_assistant_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/", c.health.Root)
		public.GET("/health", c.health.HealthCheck)
		public.POST("/status", c.health.CreateStatusCheck)
		public.GET("/status", c.health.ListStatusChecks)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.student))
	{
		// 静态段 /tests/levels 与参数段 /tests/:track 并存，gin 优先匹配静态段
		authGroup.GET("/tests/levels", c.test.GetLevels)
		authGroup.GET("/tests/:track", c.test.GetQuestions)
		authGroup.POST("/tests/:track", c.test.SubmitTest)

		authGroup.GET("/recommendations", c.recommendation.GetRecommendations)
		authGroup.GET("/docs", c.docs.GetDocs)
		authGroup.POST("/chat", c.chat.Chat)
	}
}

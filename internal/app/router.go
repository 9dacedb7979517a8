package app

import (
	"planner_backend/docs"
	"planner_backend/internal/config"
	"planner_backend/internal/middleware"
	"planner_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerUserRoutes(authGroup, c)
		a.registerTrackingRoutes(authGroup, c)
		a.registerPlannerRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/badges/milestones", c.badge.ListMilestones)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.user.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.POST("/profile/avatar", c.user.UploadAvatar)

	rg.GET("/preferences", c.preferences.GetPreferences)
	rg.PUT("/preferences", c.preferences.SavePreferences)

	rg.GET("/dashboard", c.dashboard.GetDashboard)
}

// 活动打卡、连续天数与徽章
func (a *App) registerTrackingRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/activities/:kind", c.activity.LogActivity)
	rg.GET("/activities/:kind", c.activity.GetHistory)
	rg.GET("/activities/:kind/streak", c.activity.GetStreak)

	rg.GET("/badges", c.badge.ListBadges)

	rg.GET("/wellness", c.wellness.ListWellness)
	rg.GET("/wellness/:date", c.wellness.GetWellness)
	rg.PUT("/wellness/:date", c.wellness.SaveWellness)
}

func (a *App) registerPlannerRoutes(rg *gin.RouterGroup, c *controllers) {
	habits := rg.Group("/habits")
	{
		habits.POST("", c.habit.CreateHabit)
		habits.GET("", c.habit.ListHabits)
		habits.GET("/:id", c.habit.GetHabit)
		habits.PATCH("/:id", c.habit.UpdateHabit)
		habits.DELETE("/:id", c.habit.DeleteHabit)
	}

	events := rg.Group("/events")
	{
		events.POST("", c.event.CreateEvent)
		events.GET("", c.event.ListEvents)
		events.GET("/:id", c.event.GetEvent)
		events.PATCH("/:id", c.event.UpdateEvent)
		events.DELETE("/:id", c.event.DeleteEvent)
	}

	journal := rg.Group("/journal")
	{
		journal.POST("", c.journal.CreateEntry)
		journal.GET("", c.journal.ListEntries)
		journal.GET("/:id", c.journal.GetEntry)
		journal.PATCH("/:id", c.journal.UpdateEntry)
		journal.DELETE("/:id", c.journal.DeleteEntry)
	}

	visionBoard := rg.Group("/vision-board")
	{
		visionBoard.POST("", c.visionBoard.AddItem)
		visionBoard.GET("", c.visionBoard.ListItems)
		visionBoard.PATCH("/:id", c.visionBoard.UpdateItem)
		visionBoard.DELETE("/:id", c.visionBoard.DeleteItem)
	}
}

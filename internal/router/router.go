package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/trackboard/trackboard/docs"
	"github.com/trackboard/trackboard/internal/config"
	"github.com/trackboard/trackboard/internal/middleware"
	"github.com/trackboard/trackboard/internal/modules/handler"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	Users            service.UserService
	AuthHandler      *handler.AuthHandler
	ProjectHandler   *handler.ProjectHandler
	ActivityHandler  *handler.ActivityHandler
	IndicatorHandler *handler.IndicatorHandler
	ReportHandler    *handler.ReportHandler
	UserHandler      *handler.UserHandler
	DashboardHandler *handler.DashboardHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.AuthHandler.Login)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.GET("/:id", d.ProjectHandler.GetProject)
			projects.PATCH("/:id", d.ProjectHandler.UpdateProject)
			projects.DELETE("/:id", d.ProjectHandler.DeleteProject)
		}

		activities := v1.Group("/activities")
		{
			activities.GET("", d.ActivityHandler.ListActivities)
			activities.POST("", d.ActivityHandler.CreateActivity)
			activities.GET("/:id", d.ActivityHandler.GetActivity)
			activities.PATCH("/:id", d.ActivityHandler.UpdateActivity)
			activities.DELETE("/:id", d.ActivityHandler.DeleteActivity)
		}

		indicators := v1.Group("/indicators")
		{
			indicators.GET("", d.IndicatorHandler.ListIndicators)
			indicators.POST("", d.IndicatorHandler.CreateIndicator)
			indicators.GET("/:id", d.IndicatorHandler.GetIndicator)
			indicators.PATCH("/:id", d.IndicatorHandler.UpdateIndicator)
			indicators.DELETE("/:id", d.IndicatorHandler.DeleteIndicator)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("", d.ReportHandler.ListReports)
			reports.POST("", d.ReportHandler.CreateReport)
			reports.GET("/:id", d.ReportHandler.GetReport)
			reports.PATCH("/:id", d.ReportHandler.UpdateReport)
			reports.DELETE("/:id", d.ReportHandler.DeleteReport)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/summary", d.DashboardHandler.GetSummary)
		}

		users := v1.Group("/users")
		{
			users.Use(middleware.UserAuth(d.Config, d.Users))

			users.GET("", d.UserHandler.ListUsers)
			users.POST("", d.UserHandler.CreateUser)
			users.GET("/:id", d.UserHandler.GetUser)
			users.PATCH("/:id", d.UserHandler.UpdateUser)
			users.DELETE("/:id", d.UserHandler.DeleteUser)
		}
	}
	return r
}

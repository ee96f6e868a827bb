package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/williampettit/scholarsphere-sub001/config"
	"github.com/williampettit/scholarsphere-sub001/internal/api/handler"
	"github.com/williampettit/scholarsphere-sub001/internal/api/middleware"
	"github.com/williampettit/scholarsphere-sub001/pkg/jwt"
	"github.com/williampettit/scholarsphere-sub001/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
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

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录/注册额外限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 学期模块
			semesters := authorized.Group("/semesters")
			{
				semesters.GET("", h.Semester.ListSemesters)
				semesters.GET("/:id", h.Semester.GetSemester)
				semesters.POST("", h.Semester.CreateSemester)
				semesters.PUT("/:id", h.Semester.UpdateSemester)
				semesters.DELETE("/:id", h.Semester.DeleteSemester)
			}

			// 课程模块
			courses := authorized.Group("/courses")
			{
				courses.GET("", h.Course.ListCourses)
				courses.GET("/:id", h.Course.GetCourse)
				courses.GET("/:id/assignments", h.Assignment.ListCourseAssignments)
				courses.POST("", h.Course.CreateCourse)
				courses.PUT("/:id", h.Course.UpdateCourse)
				courses.DELETE("/:id", h.Course.DeleteCourse)
			}

			// 作业模块
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", h.Assignment.ListAssignments)
				assignments.GET("/:id", h.Assignment.GetAssignment)
				assignments.POST("", h.Assignment.CreateAssignment)
				assignments.PUT("/:id", h.Assignment.UpdateAssignment)
				assignments.DELETE("/:id", h.Assignment.DeleteAssignment)
			}

			// 仪表盘模块（只读）
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/summary", h.Dashboard.GetSummary)
				dashboard.GET("/gpa", h.Dashboard.GetGPA)
				dashboard.GET("/credits", h.Dashboard.GetCredits)
				dashboard.GET("/assignments", h.Dashboard.GetUpcomingAssignments)
				dashboard.GET("/courses/active", h.Dashboard.GetActiveCourses)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/courses", h.Export.ExportCourses)
				export.GET("/assignments.ics", h.Export.ExportAssignmentsICS)
			}
		}
	}

	return r
}

package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/internal/api/handler"
	"github.com/Rogerszheng0724/my-lab-website/internal/api/middleware"
	"github.com/Rogerszheng0724/my-lab-website/internal/session"
	"github.com/Rogerszheng0724/my-lab-website/pkg/redis"
	"github.com/Rogerszheng0724/my-lab-website/pkg/token"
)

// Setup 初始化並回傳 Gin 路由引擎
//
// 路由分三層：
//   - 公開讀取：前台各頁資料，無需認證
//   - /auth：登入、登出、工作階段查詢
//   - /admin：後台寫入操作，經 AdminAuth 驗證 Token 與工作階段
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	tokenMgr *token.Manager,
	gate *session.Gate,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全域中間件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康檢查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 公開讀取（前台頁面資料）
		v1.GET("/home", h.Home.Home)
		v1.GET("/teachers", h.Teacher.ListTeachers)
		v1.GET("/teachers/:id", h.Teacher.GetTeacher)
		v1.GET("/members", h.Member.ListMembers)
		v1.GET("/members/:id", h.Member.GetMember)
		v1.GET("/publications", h.Publication.ListPublications)
		v1.GET("/publications/:id", h.Publication.GetPublication)
		v1.GET("/research", h.Research.ListResearch)
		v1.GET("/research/:id", h.Research.GetResearch)
		v1.GET("/courses", h.Course.ListCourses)
		v1.GET("/courses/:id", h.Course.GetCourse)
		v1.GET("/awards", h.Award.ListAwards)
		v1.GET("/awards/:id", h.Award.GetAward)
		v1.GET("/galleries", h.Gallery.ListGalleries)
		v1.GET("/galleries/:id", h.Gallery.GetGallery)
		v1.GET("/contact", h.Contact.GetContact)
		v1.GET("/calendar/events.ics", h.Calendar.EventsICS)

		// 認證模組（登入端點掛登入限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/session", h.Auth.Session)
		}

		// 後台管理（需要認證）
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(tokenMgr, gate))
		{
			admin.GET("/stats", h.Home.Stats)
			admin.GET("/export/:entity", h.Export.Export)

			admin.POST("/teachers", h.Teacher.CreateTeacher)
			admin.PUT("/teachers/:id", h.Teacher.UpdateTeacher)
			admin.DELETE("/teachers/:id", h.Teacher.DeleteTeacher)

			admin.POST("/members", h.Member.CreateMember)
			admin.PUT("/members/:id", h.Member.UpdateMember)
			admin.DELETE("/members/:id", h.Member.DeleteMember)

			admin.POST("/publications", h.Publication.CreatePublication)
			admin.PUT("/publications/:id", h.Publication.UpdatePublication)
			admin.DELETE("/publications/:id", h.Publication.DeletePublication)

			admin.POST("/research", h.Research.CreateResearch)
			admin.PUT("/research/:id", h.Research.UpdateResearch)
			admin.DELETE("/research/:id", h.Research.DeleteResearch)

			admin.POST("/courses", h.Course.CreateCourse)
			admin.PUT("/courses/:id", h.Course.UpdateCourse)
			admin.DELETE("/courses/:id", h.Course.DeleteCourse)

			admin.POST("/awards", h.Award.CreateAward)
			admin.PUT("/awards/:id", h.Award.UpdateAward)
			admin.DELETE("/awards/:id", h.Award.DeleteAward)

			admin.POST("/galleries", h.Gallery.CreateGallery)
			admin.PUT("/galleries/:id", h.Gallery.UpdateGallery)
			admin.DELETE("/galleries/:id", h.Gallery.DeleteGallery)

			admin.PUT("/contact", h.Contact.UpdateContact)
		}
	}

	return r
}

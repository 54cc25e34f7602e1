package router

import (
	"net/http"
	"time"

	"discuss/internal/config"
	_ "discuss/internal/docs" // Swagger docs
	"discuss/internal/handlers"
	"discuss/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// sessionMaxAge 会话有效期（7 天）
const sessionMaxAge = 7 * 24 * 60 * 60

type Handlers struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Posts    *handlers.PostHandler
	Likes    *handlers.LikeHandler
	Comments *handlers.CommentHandler
}

// New builds the engine with CORS, cookie sessions and rate limiting in front
// of the route table. A nil redisClient disables rate limiting.
func New(cfg *config.Config, h Handlers, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(sessions.Sessions(cfg.SessionName, newSessionStore(cfg)))
	r.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))

	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	// 公共路由 (Public Routes)
	r.GET("/ping", handlers.Ping)                                        // 健康检查
	r.GET("/docs", handlers.Docs)                                        // OpenAPI 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler)) // Swagger UI

	// 认证路由 (Auth Routes)
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.Auth.SignUp)        // 注册
		auth.POST("/log-in", h.Auth.LogIn)          // 登录
		auth.POST("/log-out", h.Auth.LogOut)        // 退出登录
		auth.GET("/get-session", h.Auth.GetSession) // 当前会话
	}

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/users/me", h.Users.Me) // 当前用户
		authorized.GET("/users", h.Users.List)  // 用户列表

		authorized.GET("/posts", h.Posts.List)              // 文章列表
		authorized.GET("/posts/me", h.Posts.ListMine)       // 我的文章
		authorized.POST("/posts", h.Posts.Create)           // 发布文章
		authorized.DELETE("/posts/:postId", h.Posts.Delete) // 删除文章

		authorized.GET("/likes/on/:postId", h.Likes.List)      // 点赞列表
		authorized.POST("/likes/on/:postId", h.Likes.Create)   // 点赞
		authorized.DELETE("/likes/on/:postId", h.Likes.Delete) // 取消点赞

		authorized.GET("/comments/on/:postId", h.Comments.List)      // 评论列表
		authorized.POST("/comments/on/:postId", h.Comments.Create)   // 发表评论
		authorized.PATCH("/comments/:commentId", h.Comments.Update)  // 编辑评论
		authorized.DELETE("/comments/:commentId", h.Comments.Delete) // 删除评论
	}
}

func newSessionStore(cfg *config.Config) sessions.Store {
	store := cookie.NewStore([]byte(cfg.SessionSecret))

	// 跨站前端需要 SameSite=None，浏览器要求同时带 Secure
	sameSite := http.SameSiteLaxMode
	if cfg.CookieSecure {
		sameSite = http.SameSiteNoneMode
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: sameSite,
	})
	return store
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = nil
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}

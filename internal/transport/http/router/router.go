package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"imovel-api/internal/core/auth"
	"imovel-api/internal/core/server"
	"imovel-api/internal/transport/http/handler"
	mdw "imovel-api/internal/transport/http/middleware"
)

// New 单引擎承载两个面：/api/v1 公共只读 + /api/v1/admin 管理 CRUD
func New(l *zap.Logger, jwter *auth.JWTer,
	authH *handler.AuthHandler, pubH *handler.PropertyHandler, adminH *handler.AdminHandler,
) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(4<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 认证；登录单独再加每 IP 限速
	api.POST("/auth/login", mdw.RateLimitPerIP(5, 10), authH.Login)
	me := api.Group("")
	me.Use(mdw.AuthJWT(jwter, ""))
	me.GET("/auth/me", authH.Me)

	// 公共目录（仅 available）
	api.GET("/properties", pubH.List)
	api.GET("/properties/:id", pubH.Get)

	// 管理面（统一要求 admin 角色，鉴权先于任何存储访问）
	admin := api.Group("/admin")
	admin.Use(mdw.AuthJWT(jwter, "admin"))
	admin.GET("/properties", adminH.List)
	admin.GET("/properties/:id", adminH.Get)
	admin.POST("/properties", adminH.Create)
	admin.PUT("/properties/:id", adminH.Update)
	admin.PATCH("/properties/:id/status", adminH.UpdateStatus)
	admin.DELETE("/properties/:id", adminH.Delete)

	return r
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "imovel-api/internal/transport/http/response"
)

// ConcurrencyLimit 限制同时在处理的请求数（保护下游存储）
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			resp.AbortErr(c, resp.CodeServerError, "server busy")
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}

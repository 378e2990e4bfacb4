package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"imovel-api/internal/core/auth"
	resp "imovel-api/internal/transport/http/response"
)

const KeyClaims = "claims"

// AuthJWT 在进任何存储访问之前拦截：缺失/无效/过期 → 401，角色不符 → 403
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortErr(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortErr(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			resp.AbortErr(c, resp.CodeForbidden, "forbidden")
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}

// ClaimsFrom handler 里取当前会话；仅在 AuthJWT 之后有值
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(KeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

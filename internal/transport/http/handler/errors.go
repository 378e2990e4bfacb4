package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"imovel-api/internal/domain"
	resp "imovel-api/internal/transport/http/response"
)

// writeErr 业务错误 → HTTP 状态码的唯一出口；
// 存储层细节不外泄，只给短消息，详情走服务端日志
func writeErr(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.Err(c, resp.CodeBadRequest, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		resp.Err(c, resp.CodeNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		resp.Err(c, resp.CodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrInvalidToken):
		resp.Err(c, resp.CodeUnauthorized, "invalid token")
	case errors.Is(err, domain.ErrNotConfigured):
		resp.Err(c, resp.CodeNotConfigured, "store not configured")
	default:
		_ = c.Error(err)
		resp.Err(c, resp.CodeServerError, "store error")
	}
}

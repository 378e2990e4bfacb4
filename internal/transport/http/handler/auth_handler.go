package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"imovel-api/internal/service"
	mdw "imovel-api/internal/transport/http/middleware"
	resp "imovel-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginOut struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, resp.CodeBadRequest, err.Error())
		return
	}
	token, u, err := h.svc.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, loginOut{Token: token, User: u})
}

// Me GET /auth/me（鉴权分组）：回显当前会话声明
func (h *AuthHandler) Me(c *gin.Context) {
	claims := mdw.ClaimsFrom(c)
	if claims == nil {
		resp.Err(c, resp.CodeUnauthorized, "unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":       claims.UID,
		"username": claims.Username,
		"role":     claims.Role,
	}})
}

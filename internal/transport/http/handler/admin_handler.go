package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"imovel-api/internal/domain"
	"imovel-api/internal/service"
	resp "imovel-api/internal/transport/http/response"
)

// AdminHandler 管理面 CRUD；分组级 AuthJWT 已拦掉未授权请求
type AdminHandler struct {
	svc *service.PropertyService
}

func NewAdminHandler(svc *service.PropertyService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// List GET /admin/properties：不受 status 限制
func (h *AdminHandler) List(c *gin.Context) {
	list, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get GET /admin/properties/:id
func (h *AdminHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create POST /admin/properties
func (h *AdminHandler) Create(c *gin.Context) {
	var draft domain.Property
	if err := c.ShouldBindJSON(&draft); err != nil {
		resp.Err(c, resp.CodeBadRequest, err.Error())
		return
	}
	p, err := h.svc.Create(c.Request.Context(), &draft)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update PUT /admin/properties/:id：全量替换可变字段
func (h *AdminHandler) Update(c *gin.Context) {
	var full domain.Property
	if err := c.ShouldBindJSON(&full); err != nil {
		resp.Err(c, resp.CodeBadRequest, err.Error())
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), &full)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type statusIn struct {
	Status domain.Status `json:"status" binding:"required"`
}

// UpdateStatus PATCH /admin/properties/:id/status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var in statusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, resp.CodeBadRequest, err.Error())
		return
	}
	p, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete DELETE /admin/properties/:id：硬删除，不存在报 404
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"imovel-api/internal/feature/property"
	"imovel-api/internal/service"
	resp "imovel-api/internal/transport/http/response"
)

// PropertyHandler 公共只读面：只见 available
type PropertyHandler struct {
	svc *service.PropertyService
}

func NewPropertyHandler(svc *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

// List GET /properties?type=&operation=&city=&minPrice=&maxPrice=&minBedrooms=&minArea=
func (h *PropertyHandler) List(c *gin.Context) {
	var f property.Filters
	if err := c.ShouldBindQuery(&f); err != nil {
		resp.Err(c, resp.CodeBadRequest, err.Error())
		return
	}
	list, err := h.svc.ListAvailable(c.Request.Context(), f)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.svc.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

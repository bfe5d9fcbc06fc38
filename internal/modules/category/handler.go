package category

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/notepod/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	cats := rg.Group("/categories")

	cats.GET("", h.list)
	cats.GET("/:id", h.get)
	cats.POST("", h.create)
	cats.PUT("/:id", h.update)
	cats.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "无效的分类ID")
		return
	}
	cat, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFoundMsg(c, "未找到指定分类")
		return
	}
	response.OK(c, cat)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "分类名称是必填项")
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.Conflict(c, "分类已存在")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "无效的分类ID")
		return
	}
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "分类名称是必填项")
		return
	}
	cat, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFoundMsg(c, "未找到指定分类")
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.BadRequest(c, "无效的分类ID")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "分类已删除"})
}

func parseID(raw string) (uint, bool) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

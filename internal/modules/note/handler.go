package note

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
	notes := rg.Group("/notes")

	notes.POST("", h.create)
	notes.GET("/user/:userId", h.list)
	notes.GET("/user/:userId/category/:categoryId", h.listByCategory)
	notes.GET("/trash/:userId", h.listTrashed)
	notes.GET("/:id", h.get)
	notes.PUT("/:id", h.update)
	notes.DELETE("/:id", h.softDelete)
	notes.PUT("/:id/restore", h.restore)
	notes.DELETE("/:id/force", h.purge)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "用户ID、标题和内容是必填项")
		return
	}
	note, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(note))
}

func (h *Handler) list(c *gin.Context) {
	userID, ok := parseID(c.Param("userId"))
	if !ok {
		response.BadRequest(c, "用户ID是必填项")
		return
	}
	notes, err := h.svc.List(userID, nil)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]noteResponse, len(notes))
	for i, n := range notes {
		items[i] = toResponse(&n)
	}
	response.OK(c, items)
}

func (h *Handler) listByCategory(c *gin.Context) {
	userID, ok := parseID(c.Param("userId"))
	if !ok {
		response.BadRequest(c, "用户ID是必填项")
		return
	}
	categoryID, ok := parseID(c.Param("categoryId"))
	if !ok {
		response.BadRequest(c, "分类ID是必填项")
		return
	}
	notes, err := h.svc.List(userID, &categoryID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]noteResponse, len(notes))
	for i, n := range notes {
		items[i] = toResponse(&n)
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFoundMsg(c, "未找到指定笔记")
		return
	}
	note, err := h.svc.Get(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if note == nil {
		response.NotFoundMsg(c, "未找到指定笔记")
		return
	}
	response.OK(c, toResponse(note))
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFoundMsg(c, "未找到指定笔记")
		return
	}
	var dto UpdateNoteDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "用户ID、标题和内容是必填项")
		return
	}
	note, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if note == nil {
		response.NotFoundMsg(c, "笔记未找到或更新失败")
		return
	}
	response.OK(c, toResponse(note))
}

func (h *Handler) softDelete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFoundMsg(c, "未找到指定笔记")
		return
	}
	var dto OwnerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "用户ID是必填项")
		return
	}
	if err := h.svc.SoftDelete(id, dto.UserID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFoundMsg(c, "未找到指定笔记")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "笔记已移入回收站"})
}

func (h *Handler) listTrashed(c *gin.Context) {
	userID, ok := parseID(c.Param("userId"))
	if !ok {
		response.BadRequest(c, "用户ID是必填项")
		return
	}
	rows, err := h.svc.ListTrashed(userID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	items := make([]trashedNoteResponse, len(rows))
	for i, r := range rows {
		items[i] = trashedNoteResponse{ID: r.ID, Title: r.Title, Deleted: r.DeletedAt}
	}
	response.OK(c, items)
}

func (h *Handler) restore(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFoundMsg(c, "未找到指定笔记")
		return
	}
	var dto OwnerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "用户ID是必填项")
		return
	}
	if err := h.svc.Restore(id, dto.UserID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFoundMsg(c, "回收站中没有这条笔记")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "笔记已恢复"})
}

func (h *Handler) purge(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		response.NotFoundMsg(c, "未找到指定笔记")
		return
	}
	var dto OwnerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "用户ID是必填项")
		return
	}
	if err := h.svc.Purge(id, dto.UserID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFoundMsg(c, "回收站中没有这条笔记")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "笔记已彻底删除"})
}

func parseID(raw string) (uint, bool) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

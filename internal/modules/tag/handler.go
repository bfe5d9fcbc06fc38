package tag

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/notepod/core/internal/models"
	"github.com/notepod/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")

	tags.GET("", h.list)
	tags.GET("/:tagId", h.getByID)
	tags.GET("/name/:tagName/notes", h.listNotesByName)
}

func (h *Handler) list(c *gin.Context) {
	tags, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tags)
}

func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("tagId"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "无效的标签ID")
		return
	}
	t, err := h.svc.GetByID(uint(id))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if t == nil {
		response.NotFoundMsg(c, "未找到指定ID的标签")
		return
	}
	response.OK(c, t)
}

func (h *Handler) listNotesByName(c *gin.Context) {
	name := c.Param("tagName")
	t, err := h.svc.GetByName(name)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if t == nil {
		response.NotFoundMsg(c, "未找到标签: "+name)
		return
	}

	notes, err := h.svc.ListNotesByTag(t.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]taggedNote, len(notes))
	for i, n := range notes {
		out[i] = toTaggedNote(&n)
	}
	response.OK(c, out)
}

// taggedNote mirrors the note module's response shape for cross-module reads.
type taggedNote struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"userId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID *uint     `json:"categoryId"`
	Tags       []string  `json:"tags"`
	Status     string    `json:"status"`
	Created    time.Time `json:"created"`
	Modified   time.Time `json:"modified"`
}

func toTaggedNote(n *models.NoteModel) taggedNote {
	return taggedNote{
		ID:         n.ID,
		UserID:     n.UserID,
		Title:      n.Title,
		Content:    n.Content,
		CategoryID: n.CategoryID,
		Tags:       n.TagNames(),
		Status:     n.Status(),
		Created:    n.CreatedAt,
		Modified:   n.UpdatedAt,
	}
}

package note

import (
	"time"

	"github.com/notepod/core/internal/models"
)

type CreateNoteDTO struct {
	UserID     uint     `json:"userId"  binding:"required"`
	Title      string   `json:"title"   binding:"required"`
	Content    string   `json:"content" binding:"required"`
	CategoryID *uint    `json:"categoryId"`
	Tags       []string `json:"tags"`
}

type UpdateNoteDTO struct {
	UserID     uint     `json:"userId"  binding:"required"`
	Title      string   `json:"title"   binding:"required"`
	Content    string   `json:"content" binding:"required"`
	CategoryID *uint    `json:"categoryId"`
	Tags       []string `json:"tags"`
}

// OwnerDTO carries the owner id for lifecycle transitions.
type OwnerDTO struct {
	UserID uint `json:"userId" binding:"required"`
}

type noteResponse struct {
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

func toResponse(n *models.NoteModel) noteResponse {
	return noteResponse{
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

type trashedNoteResponse struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	Deleted time.Time `json:"deleted"`
}

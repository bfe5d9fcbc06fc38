package note

import (
	"errors"
	"time"

	"github.com/notepod/core/internal/database"
	"github.com/notepod/core/internal/models"
	"github.com/notepod/core/internal/modules/tag"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound covers an absent note, a wrong owner, and a transition-
// incompatible lifecycle state alike; callers cannot tell them apart.
var ErrNotFound = errors.New("note not found")

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Create inserts the note and its tag links in one transaction. The returned
// note carries the tags actually linked.
func (s *Service) Create(dto *CreateNoteDTO) (*models.NoteModel, error) {
	note := models.NoteModel{
		UserID:     dto.UserID,
		Title:      dto.Title,
		Content:    dto.Content,
		CategoryID: dto.CategoryID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&note).Error; err != nil {
			return err
		}
		tags, err := tag.Resolve(tx, dto.Tags)
		if err != nil {
			return err
		}
		if err := s.linkTags(tx, note.ID, tags); err != nil {
			return err
		}
		note.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// linkTags inserts one association row per resolved tag. A duplicate link is
// a harmless re-insert of an already-correct association: logged and skipped,
// never aborting the transaction.
func (s *Service) linkTags(tx *gorm.DB, noteID uint, tags []models.TagModel) error {
	for _, t := range tags {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.NoteTagModel{NoteID: noteID, TagID: t.ID})
		if res.Error != nil {
			if database.IsDuplicateKeyError(res.Error) {
				s.log.Warn("duplicate note-tag link skipped",
					zap.Uint("note_id", noteID), zap.Uint("tag_id", t.ID))
				continue
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			s.log.Warn("note-tag link already exists, skipped",
				zap.Uint("note_id", noteID), zap.Uint("tag_id", t.ID))
		}
	}
	return nil
}

// Get returns an active note with its tags, or nil if it is absent or in the
// trash.
func (s *Service) Get(id uint) (*models.NoteModel, error) {
	var note models.NoteModel
	if err := s.db.Preload("Tags").First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// List returns the owner's active notes, optionally filtered by category,
// most recently touched first.
func (s *Service) List(userID uint, categoryID *uint) ([]models.NoteModel, error) {
	tx := s.db.Preload("Tags").Where("user_id = ?", userID)
	if categoryID != nil {
		tx = tx.Where("category_id = ?", *categoryID)
	}

	var notes []models.NoteModel
	err := tx.Order("updated_at DESC").Find(&notes).Error
	return notes, err
}

// Update rewrites the note's mutable fields and replaces its tag links from
// scratch, all in one transaction. Returns nil if the note is absent, owned
// by someone else, or trashed — an update never resurrects a trashed note.
func (s *Service) Update(id uint, dto *UpdateNoteDTO) (*models.NoteModel, error) {
	var note models.NoteModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Both the precondition read and the UPDATE below carry the full
		// ownership/active guard, so a soft delete racing in between still
		// reads as not found.
		if err := tx.First(&note, "id = ? AND user_id = ?", id, dto.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		res := tx.Model(&models.NoteModel{}).
			Where("id = ? AND user_id = ?", id, dto.UserID).
			Updates(map[string]interface{}{
				"title":       dto.Title,
				"content":     dto.Content,
				"category_id": dto.CategoryID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		// Full replace of the tag links, not a diff.
		if err := tx.Where("note_id = ?", id).Delete(&models.NoteTagModel{}).Error; err != nil {
			return err
		}
		tags, err := tag.Resolve(tx, dto.Tags)
		if err != nil {
			return err
		}
		if err := s.linkTags(tx, id, tags); err != nil {
			return err
		}

		if err := tx.First(&note, "id = ?", id).Error; err != nil {
			return err
		}
		note.Tags = tags
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// SoftDelete moves an active owned note to the trash. One atomic statement:
// the deleted_at IS NULL guard linearizes concurrent calls, the loser
// observes zero affected rows.
func (s *Service) SoftDelete(id, userID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.NoteModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TrashedNote is the minimal trash-listing projection.
type TrashedNote struct {
	ID        uint
	Title     string
	DeletedAt time.Time
}

// ListTrashed returns the owner's trashed notes, most recently deleted first.
func (s *Service) ListTrashed(userID uint) ([]TrashedNote, error) {
	var rows []TrashedNote
	err := s.db.Unscoped().Model(&models.NoteModel{}).
		Select("id, title, deleted_at").
		Where("user_id = ? AND deleted_at IS NOT NULL", userID).
		Order("deleted_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Restore brings a trashed owned note back to active and touches updated_at,
// as one guarded statement.
func (s *Service) Restore(id, userID uint) error {
	res := s.db.Unscoped().Model(&models.NoteModel{}).
		Where("id = ? AND user_id = ? AND deleted_at IS NOT NULL", id, userID).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Purge permanently removes a trashed owned note and all its tag links.
// Active notes cannot be purged directly. If the note row delete affects zero
// rows (e.g. concurrently restored) the whole transaction rolls back,
// including the link deletion.
func (s *Service) Purge(id, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var note models.NoteModel
		err := tx.Unscoped().
			First(&note, "id = ? AND user_id = ? AND deleted_at IS NOT NULL", id, userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("note_id = ?", id).Delete(&models.NoteTagModel{}).Error; err != nil {
			return err
		}

		res := tx.Unscoped().
			Where("id = ? AND user_id = ? AND deleted_at IS NOT NULL", id, userID).
			Delete(&models.NoteModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

package tag

import (
	"errors"
	"strings"

	"github.com/notepod/core/internal/database"
	"github.com/notepod/core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Resolve maps free-text tag names to tag rows, creating missing ones, inside
// the caller's transaction. Inputs are trimmed; empties are dropped;
// duplicates within the batch collapse to the first occurrence. The write
// path is insert-first: INSERT ... ON CONFLICT DO NOTHING under the unique
// index on name, then re-select on conflict, so two requests racing on the
// same new name both resolve to the surviving row.
func Resolve(tx *gorm.DB, names []string) ([]models.TagModel, error) {
	seen := make(map[string]struct{}, len(names))
	resolved := make([]models.TagModel, 0, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		t := models.TagModel{Name: name}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&t).Error
		if err != nil && !database.IsDuplicateKeyError(err) {
			return nil, err
		}

		// Conflict (or dialect without ON CONFLICT support): the row
		// already exists, reuse it.
		if t.ID == 0 {
			if err := tx.Where("name = ?", name).First(&t).Error; err != nil {
				return nil, err
			}
		}
		resolved = append(resolved, t)
	}

	return resolved, nil
}

func (s *Service) List() ([]models.TagModel, error) {
	var tags []models.TagModel
	return tags, s.db.Order("name ASC").Find(&tags).Error
}

func (s *Service) GetByID(id uint) (*models.TagModel, error) {
	var t models.TagModel
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) GetByName(name string) (*models.TagModel, error) {
	var t models.TagModel
	if err := s.db.First(&t, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// ListNotesByTag returns the active notes carrying the given tag, newest
// touched first, each with its full tag list loaded.
func (s *Service) ListNotesByTag(tagID uint) ([]models.NoteModel, error) {
	var notes []models.NoteModel
	err := s.db.
		Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Where("note_tags.tag_id = ?", tagID).
		Preload("Tags").
		Order("notes.updated_at DESC").
		Find(&notes).Error
	return notes, err
}

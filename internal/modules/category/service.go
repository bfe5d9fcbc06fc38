package category

import (
	"errors"

	"github.com/notepod/core/internal/models"
	"gorm.io/gorm"
)

// ErrAlreadyExists signals a duplicate category name on create.
var ErrAlreadyExists = errors.New("category already exists")

type CreateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryDTO struct {
	Name string `json:"name" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.CategoryModel, error) {
	var cats []models.CategoryModel
	return cats, s.db.Order("created_at ASC").Find(&cats).Error
}

func (s *Service) GetByID(id uint) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).Where("name = ?", dto.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	cat := models.CategoryModel{Name: dto.Name}
	return &cat, s.db.Create(&cat).Error
}

func (s *Service) Update(id uint, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil || cat == nil {
		return cat, err
	}
	if err := s.db.Model(cat).Update("name", dto.Name).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes the category and detaches it from any notes referencing it,
// trashed ones included, so no note ever points at a dead category.
func (s *Service) Delete(id uint) error {
	if err := s.db.Unscoped().Model(&models.NoteModel{}).
		Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.CategoryModel{}, "id = ?", id).Error
}

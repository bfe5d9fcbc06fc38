package user

import (
	"errors"
	"time"

	"github.com/notepod/core/internal/models"
	"github.com/notepod/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyExists signals a duplicate username or email on register.
	ErrAlreadyExists = errors.New("username or email already exists")
	// ErrInvalidCredentials covers unknown username and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 7 * 24 * time.Hour

type RegisterDTO struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).
		Where("username = ? OR email = ?", dto.Username, dto.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{Username: dto.Username, Email: dto.Email, Password: string(hash)}
	return &u, s.db.Create(&u).Error
}

// Login verifies the credentials and issues a signed token.
func (s *Service) Login(username, password string) (*models.UserModel, string, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := jwt.Sign(u.ID, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

func (s *Service) GetByID(id uint) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

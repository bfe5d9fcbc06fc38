package models

// UserModel is a registered account. It only matters here as the owner id
// referenced by notes.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email"    gorm:"uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"` // bcrypt, never exposed
}

func (UserModel) TableName() string { return "users" }

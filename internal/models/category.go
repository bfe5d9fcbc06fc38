package models

// CategoryModel groups notes. A note references at most one category.
type CategoryModel struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	Notes []NoteModel `json:"notes,omitempty" gorm:"foreignKey:CategoryID"`
}

func (CategoryModel) TableName() string { return "categories" }

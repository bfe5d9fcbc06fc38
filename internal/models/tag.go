package models

// TagModel is a free-text label, created lazily on first use by any note and
// never deleted here. Names are matched exactly (trimmed, case-sensitive).
type TagModel struct {
	ID   uint   `json:"id"   gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (TagModel) TableName() string { return "tags" }

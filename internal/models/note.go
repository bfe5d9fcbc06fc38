package models

import "gorm.io/gorm"

// Note lifecycle states derived from DeletedAt.
const (
	NoteStatusActive  = "active"
	NoteStatusTrashed = "trashed"
)

// NoteModel is a user-owned note. A note with a set DeletedAt sits in the
// trash bin: excluded from all normal reads but still addressable by id for
// restore and purge.
type NoteModel struct {
	Base
	UserID     uint           `json:"userId"     gorm:"index;not null"`
	Title      string         `json:"title"      gorm:"not null"`
	Content    string         `json:"content"    gorm:"type:longtext"`
	CategoryID *uint          `json:"categoryId" gorm:"index"`
	DeletedAt  gorm.DeletedAt `json:"-"          gorm:"index"`

	Tags []TagModel `json:"-" gorm:"many2many:note_tags;joinForeignKey:NoteID;joinReferences:TagID"`
}

func (NoteModel) TableName() string { return "notes" }

// Status reports the lifecycle state of the note.
func (n *NoteModel) Status() string {
	if n.DeletedAt.Valid {
		return NoteStatusTrashed
	}
	return NoteStatusActive
}

// TagNames returns the names of the loaded tag associations.
func (n *NoteModel) TagNames() []string {
	names := make([]string, len(n.Tags))
	for i, t := range n.Tags {
		names[i] = t.Name
	}
	return names
}

// NoteTagModel is the note↔tag association row. The composite primary key
// doubles as the unique constraint preventing duplicate links. Rows are
// created and destroyed only as a side effect of note create/update/purge.
type NoteTagModel struct {
	NoteID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}

func (NoteTagModel) TableName() string { return "note_tags" }

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PRD is a saved Product Requirements Document owned by a single user.
// Every read and write of a PRD is filtered by both record id and owner id
// at the query layer.
type PRD struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Idea      string    `gorm:"type:text" json:"idea"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate assigns an opaque id before the row is inserted.
func (p *PRD) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Info struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Info) TableName() string { return "info" }

func (i *Info) RecordID() uuid.UUID { return i.ID }
func (i *Info) OwnerID() uuid.UUID  { return i.UserID }

func (i *Info) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type InfoWithUser struct {
	Info
	Username string `json:"username"`
}

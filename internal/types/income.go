package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Income struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user"`
	Amount      float64   `gorm:"not null;column:amount" json:"amount"`
	Title       string    `gorm:"uniqueIndex;not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Income) TableName() string { return "income" }

func (i *Income) RecordID() uuid.UUID { return i.ID }
func (i *Income) OwnerID() uuid.UUID  { return i.UserID }

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type IncomeWithUser struct {
	Income
	Username string `json:"username"`
}

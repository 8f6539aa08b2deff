package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Phone       string    `gorm:"not null;column:phone" json:"phone"`
	Email       string    `gorm:"not null;column:email" json:"email"`
	Description string    `gorm:"not null;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string { return "contact" }

func (c *Contact) RecordID() uuid.UUID { return c.ID }
func (c *Contact) OwnerID() uuid.UUID  { return c.UserID }

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ContactWithUser is the list view: the stored record plus the resolved
// owner username.
type ContactWithUser struct {
	Contact
	Username string `json:"username"`
}

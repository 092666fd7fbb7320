package model

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string    `gorm:"type:text;not null" json:"name"`
	Email   string    `gorm:"type:text;not null" json:"email"`
	Phone   string    `gorm:"type:text" json:"phone"`
	Subject string    `gorm:"type:text" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Contact) TableName() string { return "contacts" }

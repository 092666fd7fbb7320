package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const DefaultServiceColor = "from-blue-500 to-purple-600"

// Service is an offering listed on the public services page.
type Service struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string                      `gorm:"type:text;not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Features    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"features"`
	Icon        string                      `gorm:"type:text;not null" json:"icon"`
	Color       string                      `gorm:"type:text;not null" json:"color"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string { return "services" }

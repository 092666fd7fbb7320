package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Career struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string                      `gorm:"type:text;not null" json:"title"`
	Location    string                      `gorm:"type:text;not null" json:"location"`
	Type        string                      `gorm:"type:text;not null" json:"type"`
	Level       string                      `gorm:"type:text;not null" json:"level"`
	Salary      string                      `gorm:"type:text" json:"salary"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"tags"`
	Description string                      `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Career) TableName() string { return "careers" }

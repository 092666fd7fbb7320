package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ShowcaseStatusActive    = "Active"
	ShowcaseStatusCompleted = "Completed"
	ShowcaseStatusDraft     = "Draft"

	DefaultShowcaseColor = "from-green-500 to-emerald-600"
)

var (
	ShowcaseCategories = []string{"Web", "Mobile", "Cloud"}
	ShowcaseStatuses   = []string{ShowcaseStatusActive, ShowcaseStatusCompleted, ShowcaseStatusDraft}
)

// ShowcaseProject is a portfolio entry on the public site. It has no
// financial fields and no relation to clients.
type ShowcaseProject struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string                      `gorm:"type:text;not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Features    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"features"`
	TechStack   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string" json:"tech_stack"`
	Category    string                      `gorm:"type:varchar(16);not null" json:"category"`
	Icon        string                      `gorm:"type:text;not null" json:"icon"`
	Color       string                      `gorm:"type:text;not null" json:"color"`
	LiveURL     string                      `gorm:"type:text" json:"live_url"`
	Status      string                      `gorm:"type:varchar(16);not null;default:Active;index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ShowcaseProject) TableName() string { return "projects" }

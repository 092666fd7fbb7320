package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ProjectStatusActive     = "Active"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusOnHold     = "On Hold"

	DefaultProjectCategory = "Web App"
)

var ProjectStatuses = []string{
	ProjectStatusActive,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusOnHold,
}

type Requirement struct {
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
	Files     []Attachment `json:"files"`
}

// ClientProject is a billable engagement owned by exactly one Client.
// RemainingAmount always equals TotalAmount - AdvancePaid after a write.
type ClientProject struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	Category string    `gorm:"type:text;not null;default:'Web App'" json:"category"`
	Status   string    `gorm:"type:varchar(16);not null;default:Active" json:"status"`

	TotalAmount     float64 `gorm:"type:numeric(14,2);not null;default:0" json:"total_amount"`
	AdvancePaid     float64 `gorm:"type:numeric(14,2);not null;default:0" json:"advance_paid"`
	RemainingAmount float64 `gorm:"type:numeric(14,2);not null;default:0" json:"remaining_amount"`

	LiveURL      string                          `gorm:"type:text" json:"live_url"`
	Description  string                          `gorm:"type:text" json:"description"`
	StartDate    *time.Time                      `json:"start_date"`
	Deadline     *time.Time                      `json:"deadline"`
	Requirements datatypes.JSONSlice[Requirement] `gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,object" json:"requirements"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// ClientProject <-> Client
	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"client,omitempty"`
}

func (ClientProject) TableName() string { return "client_projects" }

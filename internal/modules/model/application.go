package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const ApplicationStatusPending = "pending"

// Any status may follow any other; there is no enforced transition order.
var ApplicationStatuses = []string{"pending", "reviewed", "interview", "rejected", "hired"}

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	JobTitle    string    `gorm:"type:text;not null" json:"job_title"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Email       string    `gorm:"type:text;not null" json:"email"`
	Phone       string    `gorm:"type:text" json:"phone"`
	CoverLetter string    `gorm:"type:text;not null" json:"cover_letter"`
	Status      string    `gorm:"type:varchar(16);not null;default:pending" json:"status"`

	Resume datatypes.JSONType[*Attachment] `gorm:"type:jsonb;not null;default:'null'" swaggertype:"object" json:"resume"`

	AppliedAt time.Time `gorm:"autoCreateTime;index" json:"applied_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

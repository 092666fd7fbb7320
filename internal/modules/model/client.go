package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClientStatusActive   = "Active"
	ClientStatusInactive = "Inactive"
)

type Client struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string    `gorm:"type:text;not null" json:"name"`
	Email   string    `gorm:"type:text" json:"email"`
	Phone   string    `gorm:"type:text" json:"phone"`
	Address string    `gorm:"type:text" json:"address"`
	Status  string    `gorm:"type:varchar(16);not null;default:Active" json:"status"`
	Advance float64   `gorm:"type:numeric(14,2);not null;default:0" json:"advance"`

	// TotalEarnings is the running sum of TotalAmount over the client's
	// projects, adjusted by the ledger on every project write.
	TotalEarnings float64 `gorm:"type:numeric(14,2);not null;default:0" json:"total_earnings"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Client <-> ClientProject
	Projects []ClientProject `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Client <-> Payment
	Payments []Payment `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Client) TableName() string { return "clients" }

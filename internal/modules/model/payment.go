package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const DefaultPaymentMethod = "Bank Transfer"

var PaymentMethods = []string{"Bank Transfer", "UPI", "Cash", "Cheque", "PayPal"}

// Payment belongs to a Client and optionally to one of its projects. A
// payment without a project is an unallocated payment and never touches a
// project balance.
type Payment struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"client_id"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	Amount      float64    `gorm:"type:numeric(14,2);not null" json:"amount"`
	PaymentDate time.Time  `gorm:"not null;index" json:"payment_date"`
	Method      string     `gorm:"column:payment_method;type:varchar(32);not null;default:'Bank Transfer'" json:"payment_method"`
	Notes       string     `gorm:"type:text" json:"notes"`

	Receipt datatypes.JSONType[*Attachment] `gorm:"type:jsonb;not null;default:'null'" swaggertype:"object" json:"receipt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Payment <-> Client
	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Payment <-> ClientProject
	Project *ClientProject `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (Payment) TableName() string { return "payments" }

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice bills a client for a fixed amount. Shoot and package links are
// optional so ad hoc work can be invoiced too. Status is a free label
// ("draft", "sent", ...) and is separate from the payment status derived
// from recorded payments.
type Invoice struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	ClientID   uint            `json:"client_id" gorm:"index;not null"`
	ShootID    *uint           `json:"shoot_id,omitempty" gorm:"index"`
	PackageID  *uint           `json:"package_id,omitempty" gorm:"index"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status     string          `json:"status" gorm:"size:20;not null;default:'draft'"`
	IssuedDate time.Time       `json:"issued_date" gorm:"type:date;not null;index"`
	DueDate    *time.Time      `json:"due_date,omitempty" gorm:"type:date"`

	Payments []Payment `json:"-" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

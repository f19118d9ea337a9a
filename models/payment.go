package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	InvoiceID uint            `json:"invoice_id" gorm:"index;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Method    *string         `json:"method,omitempty" gorm:"size:50"` // card, bank, cash
	PaidAt    time.Time       `json:"paid_at" gorm:"not null"`
}

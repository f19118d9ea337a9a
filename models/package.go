package models

import "github.com/shopspring/decimal"

// Package is a priced offering an invoice can reference. Name is unique so
// quoting stays consistent; retire a package by flipping IsActive off.
type Package struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description *string         `json:"description,omitempty" gorm:"size:255"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	IsActive    bool            `json:"is_active" gorm:"not null"`

	Invoices []Invoice `json:"-" gorm:"foreignKey:PackageID;constraint:OnDelete:SET NULL"`
}

package models

type Client struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"size:120;not null"`
	Email string  `json:"email" gorm:"size:255;not null;uniqueIndex"` // stored normalized: trimmed, lowercase
	Phone *string `json:"phone,omitempty" gorm:"size:50"`

	Shoots   []Shoot   `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Invoices []Invoice `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

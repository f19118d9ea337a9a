package models

import "time"

type Shoot struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ClientID  uint      `json:"client_id" gorm:"index;not null"`
	ShootDate time.Time `json:"shoot_date" gorm:"type:date;not null"`
	Location  *string   `json:"location,omitempty" gorm:"size:255"`

	Invoices []Invoice `json:"-" gorm:"foreignKey:ShootID;constraint:OnDelete:SET NULL"`
}

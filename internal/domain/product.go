package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a bouquet or arrangement in the catalog. Price is kept as a
// display string ("Rp 85.000") because the shop never computes with it;
// checkout happens over a messaging handoff, not a payment flow.
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string         `json:"name" gorm:"not null"`
	Price       string         `json:"price" gorm:"not null"`
	Description string         `json:"description"`
	Image       *string        `json:"image"`
	Items       datatypes.JSON `json:"items"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"reviewCount"`
	CategoryID  uint           `json:"categoryId" gorm:"not null"`
	Category    *Category      `json:"category,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

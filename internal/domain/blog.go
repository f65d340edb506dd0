package domain

import "time"

type Blog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Excerpt   *string   `json:"excerpt"`
	Content   string    `json:"content" gorm:"not null"`
	Category  *string   `json:"category"`
	ReadTime  int       `json:"readTime" gorm:"default:5"`
	Author    *string   `json:"author"`
	Image     *string   `json:"image"`
	Published bool      `json:"published" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

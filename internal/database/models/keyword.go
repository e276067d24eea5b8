package models

import (
	"time"
)

// Keyword is a watch term matched against discovered deal posts
type Keyword struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Keyword   string    `json:"keyword" gorm:"not null;size:500;uniqueIndex" validate:"required,min=1,max=500"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Keyword
func (Keyword) TableName() string {
	return "keywords"
}

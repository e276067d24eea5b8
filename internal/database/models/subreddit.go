package models

import (
	"time"
)

// Subreddit is a monitored source. Name is stored normalized: lowercase,
// trimmed, without the leading "r/" prefix.
type Subreddit struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:500;uniqueIndex" validate:"required,min=1,max=500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Subreddit
func (Subreddit) TableName() string {
	return "subreddits"
}

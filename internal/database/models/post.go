package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const previewLength = 150

// LinkList is an ordered list of URLs persisted as a JSON array in a single
// text column. Stored values that are not valid JSON fall back to a
// comma-split parse; anything else scans as an empty list.
type LinkList []string

// Value serializes the list to its JSON text representation
func (l LinkList) Value() (driver.Value, error) {
	if l == nil {
		l = LinkList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal links: %w", err)
	}
	return string(b), nil
}

// Scan parses the stored text back into a list
func (l *LinkList) Scan(value interface{}) error {
	if value == nil {
		*l = LinkList{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported links column type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = LinkList{}
		return nil
	}

	var links []string
	if err := json.Unmarshal([]byte(raw), &links); err == nil {
		if links == nil {
			links = []string{}
		}
		*l = links
		return nil
	}

	// Legacy rows may hold a plain comma-separated list
	links = []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			links = append(links, trimmed)
		}
	}
	*l = links
	return nil
}

// Post is a deal post captured from a monitored source
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:500;uniqueIndex" validate:"required,min=1,max=500"`
	Description *string   `json:"description" gorm:"type:text" validate:"omitempty,max=10000"`
	Links       LinkList  `json:"links" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for Post
func (Post) TableName() string {
	return "posts"
}

// HasLinks reports whether the post carries at least one link
func (p *Post) HasLinks() bool {
	return len(p.Links) > 0
}

// LinkCount returns the number of links on the post
func (p *Post) LinkCount() int {
	return len(p.Links)
}

// Preview returns the description (or the title when the description is
// empty) truncated to 150 characters with an ellipsis
func (p *Post) Preview() string {
	text := p.Title
	if p.Description != nil && strings.TrimSpace(*p.Description) != "" {
		text = *p.Description
	}
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PostStatus is the publication lifecycle state of a post
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

// ValidStatus reports whether s is a known publication status
func ValidStatus(s PostStatus) bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ReviewStatus is the moderation outcome, independent of PostStatus
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// StringList stores a string slice as a JSON text column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into StringList", value)
}

// Post represents one social-media post in the pipeline
type Post struct {
	ID                  string       `gorm:"primaryKey;type:varchar(32);column:id" json:"id"`
	ImageURL            string       `gorm:"type:varchar(512);column:image_url" json:"imageUrl,omitempty"`
	Images              StringList   `gorm:"type:text;column:images" json:"images,omitempty"`
	Content             string       `gorm:"type:text;not null;column:content" json:"content"`
	Hashtags            string       `gorm:"type:text;column:hashtags" json:"hashtags,omitempty"`
	Status              PostStatus   `gorm:"type:varchar(16);not null;index;column:status" json:"status"`
	ReviewStatus        ReviewStatus `gorm:"type:varchar(16);not null;column:review_status" json:"reviewStatus"`
	CreatedAt           time.Time    `gorm:"not null;column:created_at" json:"createdAt"`
	ScheduledAt         *time.Time   `gorm:"column:scheduled_at" json:"scheduledAt,omitempty"`
	Likes               *int         `gorm:"column:likes" json:"likes,omitempty"`
	Comments            *int         `gorm:"column:comments" json:"comments,omitempty"`
	Views               *int         `gorm:"column:views" json:"views,omitempty"`
	IsGenerating        bool         `gorm:"not null;default:false;column:is_generating" json:"isGenerating,omitempty"`
	OriginalDescription string       `gorm:"type:text;column:original_description" json:"originalDescription,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "pilot_posts"
}

package models

import "time"

// Platform identifies a connected social network
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// Integration is one social-platform connection for the business account
type Integration struct {
	ID              string     `gorm:"primaryKey;type:varchar(36);column:id" json:"id"`
	Name            string     `gorm:"type:varchar(64);not null;column:name" json:"name"`
	Title           string     `gorm:"type:varchar(128);not null;column:title" json:"title"`
	Description     string     `gorm:"type:text;column:description" json:"description"`
	Platform        Platform   `gorm:"type:varchar(16);not null;column:platform" json:"platform"`
	IsConnected     bool       `gorm:"not null;default:false;column:is_connected" json:"isConnected"`
	ConnectedAt     *time.Time `gorm:"column:connected_at" json:"connectedAt,omitempty"`
	FollowerCount   *int       `gorm:"column:follower_count" json:"followerCount,omitempty"`
	AccountUsername string     `gorm:"type:varchar(64);column:account_username" json:"accountUsername,omitempty"`
}

// TableName specifies the table name for Integration
func (Integration) TableName() string {
	return "pilot_integrations"
}

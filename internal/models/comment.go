package models

import "time"

// CustomerComment is a customer comment paired with its AI-drafted reply,
// surfaced in the review feed
type CustomerComment struct {
	ID                string    `gorm:"primaryKey;type:varchar(36);column:id" json:"id"`
	CustomerName      string    `gorm:"type:varchar(64);not null;column:customer_name" json:"customerName"`
	CustomerComment   string    `gorm:"type:text;not null;column:customer_comment" json:"customerComment"`
	AIResponse        string    `gorm:"type:text;not null;column:ai_response" json:"aiResponse"`
	CreatedAt         time.Time `gorm:"not null;column:created_at" json:"timestamp"`
	IsBookingInterest bool      `gorm:"not null;default:false;index;column:is_booking_interest" json:"isBookingInterest"`
}

// TableName specifies the table name for CustomerComment
func (CustomerComment) TableName() string {
	return "pilot_customer_comments"
}

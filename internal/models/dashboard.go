package models

// DashboardStats holds the headline numbers for the stats dashboard.
// A single row per deployment.
type DashboardStats struct {
	ID               int64  `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	PotentialLeads   int    `gorm:"not null;default:0;column:potential_leads" json:"potentialLeads"`
	PostsPublished   int    `gorm:"not null;default:0;column:posts_published" json:"postsPublished"`
	CommentsAnswered int    `gorm:"not null;default:0;column:comments_answered" json:"commentsAnswered"`
	AvgResponseTime  string `gorm:"type:varchar(16);column:avg_response_time" json:"avgResponseTime"`
}

// TableName specifies the table name for DashboardStats
func (DashboardStats) TableName() string {
	return "pilot_dashboard_stats"
}

// EngagementDay is one bar of the daily activity chart
type EngagementDay struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	Day        string `gorm:"type:varchar(8);not null;column:day" json:"day"`
	Posts      int    `gorm:"not null;default:0;column:posts" json:"posts"`
	Engagement int    `gorm:"not null;default:0;column:engagement" json:"engagement"`
}

// TableName specifies the table name for EngagementDay
func (EngagementDay) TableName() string {
	return "pilot_engagement_days"
}

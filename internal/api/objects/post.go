package objects

import (
	"time"

	"github.com/jinzhu/copier"

	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/internal/text"
)

// PostView is the client-facing shape of a post. Timestamps go out both as
// RFC 3339 and pre-humanized, so list rows render without date math on the
// device.
type PostView struct {
	ID                  string              `json:"id"`
	ImageURL            string              `json:"imageUrl,omitempty"`
	Images              []string            `json:"images,omitempty"`
	Content             string              `json:"content"`
	Hashtags            string              `json:"hashtags,omitempty"`
	Status              models.PostStatus   `json:"status"`
	ReviewStatus        models.ReviewStatus `json:"reviewStatus"`
	CreatedAt           string              `json:"createdAt"`
	CreatedAgo          string              `json:"createdAgo"`
	ScheduledAt         string              `json:"scheduledAt,omitempty"`
	ScheduledAgo        string              `json:"scheduledAgo,omitempty"`
	Likes               *int                `json:"likes,omitempty"`
	Comments            *int                `json:"comments,omitempty"`
	Views               *int                `json:"views,omitempty"`
	IsGenerating        bool                `json:"isGenerating,omitempty"`
	OriginalDescription string              `json:"originalDescription,omitempty"`
	Preview             *text.Truncation    `json:"preview,omitempty"`
}

// FromPost builds a post view. A positive previewLimit attaches the display
// truncation for list rendering; pass 0 for detail views that show the full
// caption.
func FromPost(post models.Post, previewLimit int, expanded bool) PostView {
	now := time.Now().UTC()
	return fromPostAt(post, previewLimit, expanded, now)
}

func fromPostAt(post models.Post, previewLimit int, expanded bool, now time.Time) PostView {
	var view PostView
	// Field-for-field copy of the matching names; times and preview below
	_ = copier.Copy(&view, &post)

	view.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	view.CreatedAgo = text.RelativeDate(post.CreatedAt, now)
	if post.ScheduledAt != nil {
		view.ScheduledAt = post.ScheduledAt.Format(time.RFC3339)
		view.ScheduledAgo = text.RelativeDateWithTime(*post.ScheduledAt, now)
	}

	if previewLimit > 0 {
		preview := text.ProcessForDisplay(post.Content, post.Hashtags, previewLimit, expanded)
		view.Preview = &preview
	}

	return view
}

// FromPosts builds views for a list of posts, sharing one clock reading
func FromPosts(posts []models.Post, previewLimit int, expanded bool) []PostView {
	now := time.Now().UTC()
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, fromPostAt(p, previewLimit, expanded, now))
	}
	return views
}

// CommentView is the client-facing shape of a reviewed customer comment
type CommentView struct {
	ID                string `json:"id"`
	CustomerName      string `json:"customerName"`
	CustomerComment   string `json:"customerComment"`
	AIResponse        string `json:"aiResponse"`
	Timestamp         string `json:"timestamp"`
	TimestampAgo      string `json:"timestampAgo"`
	IsBookingInterest bool   `json:"isBookingInterest"`
}

// FromComments builds comment views
func FromComments(comments []models.CustomerComment) []CommentView {
	now := time.Now().UTC()
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		var view CommentView
		_ = copier.Copy(&view, &c)
		view.Timestamp = c.CreatedAt.Format(time.RFC3339)
		view.TimestampAgo = text.RelativeDate(c.CreatedAt, now)
		views = append(views, view)
	}
	return views
}

// IntegrationView is the client-facing shape of a platform integration
type IntegrationView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Platform        models.Platform `json:"platform"`
	IsConnected     bool            `json:"isConnected"`
	ConnectedAt     string          `json:"connectedAt,omitempty"`
	ConnectedAgo    string          `json:"connectedAgo,omitempty"`
	FollowerCount   *int            `json:"followerCount,omitempty"`
	AccountUsername string          `json:"accountUsername,omitempty"`
}

// FromIntegrations builds integration views
func FromIntegrations(integrations []models.Integration) []IntegrationView {
	now := time.Now().UTC()
	views := make([]IntegrationView, 0, len(integrations))
	for _, i := range integrations {
		var view IntegrationView
		_ = copier.Copy(&view, &i)
		if i.ConnectedAt != nil {
			view.ConnectedAt = i.ConnectedAt.Format(time.RFC3339)
			view.ConnectedAgo = text.RelativeDate(*i.ConnectedAt, now)
		}
		views = append(views, view)
	}
	return views
}

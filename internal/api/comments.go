package api

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/postpilot/postpilot/internal/api/objects"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/models"
)

// CommentsAPI serves the AI comment review feed. Reads hit the database
// when one is configured, the embedded seed otherwise.
type CommentsAPI struct {
	repo   *db.CommentRepository
	seeded []models.CustomerComment
}

// NewCommentsAPI creates the comments method group
func NewCommentsAPI(repo *db.CommentRepository, seeded []models.CustomerComment) *CommentsAPI {
	return &CommentsAPI{repo: repo, seeded: seeded}
}

type listCommentsParams struct {
	BookingOnly bool `json:"bookingOnly"`
}

// List returns reviewed comments, newest first
func (a *CommentsAPI) List(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p listCommentsParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, InvalidParamsError("malformed params")
		}
	}

	comments, err := a.load(c, p.BookingOnly)
	if err != nil {
		return nil, err
	}
	return gin.H{"comments": objects.FromComments(comments)}, nil
}

// Counts returns the total and booking-interest comment counts
func (a *CommentsAPI) Counts(c *gin.Context, _ json.RawMessage) (interface{}, error) {
	comments, err := a.load(c, false)
	if err != nil {
		return nil, err
	}

	booking := 0
	for _, comment := range comments {
		if comment.IsBookingInterest {
			booking++
		}
	}
	return gin.H{
		"total":           len(comments),
		"bookingInterest": booking,
	}, nil
}

func (a *CommentsAPI) load(c *gin.Context, bookingOnly bool) ([]models.CustomerComment, error) {
	if a.repo != nil {
		return a.repo.List(c.Request.Context(), bookingOnly)
	}

	if !bookingOnly {
		return a.seeded, nil
	}
	out := make([]models.CustomerComment, 0)
	for _, comment := range a.seeded {
		if comment.IsBookingInterest {
			out = append(out, comment)
		}
	}
	return out, nil
}

package api

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/api/objects"
	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/internal/store"
	"github.com/postpilot/postpilot/pkg/logging"
)

// PostsAPI exposes the post store over JSON-RPC
type PostsAPI struct {
	store        *store.PostStore
	previewLimit int
	sanitizer    *bluemonday.Policy
	logger       *zap.Logger
}

// NewPostsAPI creates the posts method group
func NewPostsAPI(postStore *store.PostStore, previewLimit int) *PostsAPI {
	return &PostsAPI{
		store:        postStore,
		previewLimit: previewLimit,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logging.WithComponent("posts-api"),
	}
}

type listPostsParams struct {
	Status   string `json:"status"`
	Expanded bool   `json:"expanded"`
	Limit    *int   `json:"limit"`
}

// List returns the filtered post views. Without a status it serves the
// active filter; with one it switches the filter first, like tapping a tab.
func (a *PostsAPI) List(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	var p listPostsParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, InvalidParamsError("malformed params")
		}
	}

	if p.Status != "" {
		status := models.PostStatus(p.Status)
		if !models.ValidStatus(status) {
			return nil, InvalidParamsError("unknown status " + p.Status)
		}
		a.store.SetActiveFilter(status)
	}

	limit := a.previewLimit
	if p.Limit != nil {
		limit = *p.Limit
	}

	posts := a.store.FilteredPosts()
	return gin.H{
		"posts":        objects.FromPosts(posts, limit, p.Expanded),
		"activeFilter": a.store.ActiveFilter(),
		"counts":       a.store.PostCounts(),
	}, nil
}

type postIDParams struct {
	ID string `json:"id"`
}

// Get returns one post in full, no preview truncation
func (a *PostsAPI) Get(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	p, err := bindID(params)
	if err != nil {
		return nil, err
	}

	post, ok := a.store.Get(p.ID)
	if !ok {
		return nil, NotFoundError("post", p.ID)
	}
	return objects.FromPost(post, 0, true), nil
}

type createDraftParams struct {
	Images      []string `json:"images"`
	Description string   `json:"description"`
}

// CreateDraft creates a generating draft and returns its id right away;
// the caption arrives through the generation pipeline
func (a *PostsAPI) CreateDraft(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	var p createDraftParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, InvalidParamsError("malformed params")
		}
	}

	description := a.sanitizer.Sanitize(p.Description)
	id := a.store.AddDraftPost(p.Images, description)

	a.logger.Info("Draft created via API", zap.String("post_id", id))
	return gin.H{"id": id}, nil
}

type updatePostParams struct {
	ID    string          `json:"id"`
	Patch postPatchParams `json:"patch"`
}

type postPatchParams struct {
	ImageURL     *string    `json:"imageUrl"`
	Images       *[]string  `json:"images"`
	Content      *string    `json:"content"`
	Hashtags     *string    `json:"hashtags"`
	Status       *string    `json:"status"`
	ReviewStatus *string    `json:"reviewStatus"`
	ScheduledAt  *time.Time `json:"scheduledAt"`
	Likes        *int       `json:"likes"`
	Comments     *int       `json:"comments"`
	Views        *int       `json:"views"`
}

// Update applies a partial patch. The store treats unknown ids as a no-op;
// remote callers get an explicit not-found instead.
func (a *PostsAPI) Update(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	var p updatePostParams
	if err := json.Unmarshal(params, &p); err != nil || p.ID == "" {
		return nil, InvalidParamsError("id is required")
	}

	patch, err := a.toPatch(p.Patch)
	if err != nil {
		return nil, err
	}

	if !a.store.UpdatePost(p.ID, patch) {
		return nil, NotFoundError("post", p.ID)
	}

	post, _ := a.store.Get(p.ID)
	return objects.FromPost(post, 0, true), nil
}

// Approve publishes the post and stamps its publish time
func (a *PostsAPI) Approve(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	p, err := bindID(params)
	if err != nil {
		return nil, err
	}

	if !a.store.Approve(p.ID) {
		return nil, NotFoundError("post", p.ID)
	}

	post, _ := a.store.Get(p.ID)
	return objects.FromPost(post, 0, true), nil
}

// Reject records the rejection without changing publication status
func (a *PostsAPI) Reject(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	p, err := bindID(params)
	if err != nil {
		return nil, err
	}

	if !a.store.Reject(p.ID) {
		return nil, NotFoundError("post", p.ID)
	}

	post, _ := a.store.Get(p.ID)
	return objects.FromPost(post, 0, true), nil
}

// Remove deletes the post and cancels any pending generation
func (a *PostsAPI) Remove(_ *gin.Context, params json.RawMessage) (interface{}, error) {
	p, err := bindID(params)
	if err != nil {
		return nil, err
	}

	if !a.store.RemovePost(p.ID) {
		return nil, NotFoundError("post", p.ID)
	}
	return gin.H{"removed": p.ID}, nil
}

// Counts returns the per-status counts and the active filter
func (a *PostsAPI) Counts(_ *gin.Context, _ json.RawMessage) (interface{}, error) {
	return gin.H{
		"counts":       a.store.PostCounts(),
		"activeFilter": a.store.ActiveFilter(),
		"isGenerating": a.store.HasGeneratingDraft(),
	}, nil
}

type setFilterParams struct {
	Status string `json:"status"`
}

// SetFilter selects the list tab and returns the resulting view
func (a *PostsAPI) SetFilter(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p setFilterParams
	if err := json.Unmarshal(params, &p); err != nil || p.Status == "" {
		return nil, InvalidParamsError("status is required")
	}

	status := models.PostStatus(p.Status)
	if !models.ValidStatus(status) {
		return nil, InvalidParamsError("unknown status " + p.Status)
	}

	a.store.SetActiveFilter(status)
	return a.List(c, nil)
}

func (a *PostsAPI) toPatch(p postPatchParams) (store.PostPatch, error) {
	patch := store.PostPatch{
		ImageURL:    p.ImageURL,
		Content:     p.Content,
		Hashtags:    p.Hashtags,
		ScheduledAt: p.ScheduledAt,
		Likes:       p.Likes,
		Comments:    p.Comments,
		Views:       p.Views,
	}
	if p.Images != nil {
		images := models.StringList(*p.Images)
		patch.Images = &images
	}
	if p.Status != nil {
		status := models.PostStatus(*p.Status)
		if !models.ValidStatus(status) {
			return store.PostPatch{}, InvalidParamsError("unknown status " + *p.Status)
		}
		patch.Status = &status
	}
	if p.ReviewStatus != nil {
		review := models.ReviewStatus(*p.ReviewStatus)
		switch review {
		case models.ReviewPending, models.ReviewApproved, models.ReviewRejected:
		default:
			return store.PostPatch{}, InvalidParamsError("unknown reviewStatus " + *p.ReviewStatus)
		}
		patch.ReviewStatus = &review
	}
	if p.Content != nil {
		clean := a.sanitizer.Sanitize(*p.Content)
		patch.Content = &clean
	}
	return patch, nil
}

func bindID(params json.RawMessage) (postIDParams, error) {
	var p postIDParams
	if err := json.Unmarshal(params, &p); err != nil || p.ID == "" {
		return p, InvalidParamsError("id is required")
	}
	return p, nil
}

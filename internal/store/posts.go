package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/pkg/logging"
)

// Scheduler queues one deferred caption-generation completion per post.
// Scheduling an id that already has a pending completion replaces it.
type Scheduler interface {
	Schedule(id, description string)
	Cancel(id string)
}

// PersistFunc receives a snapshot of a post after every mutation. Failures
// are the implementation's problem; the store never waits on or surfaces
// persistence errors.
type PersistFunc func(models.Post)

// RemoveFunc receives the id of a removed post
type RemoveFunc func(id string)

// Counts maps the user-facing statuses to post counts. Scheduled posts are
// not separately counted.
type Counts struct {
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Archived  int `json:"archived"`
}

// PostPatch is a field-level patch for UpdatePost. Nil fields are left
// untouched on the target; set fields overwrite.
type PostPatch struct {
	ImageURL            *string
	Images              *models.StringList
	Content             *string
	Hashtags            *string
	Status              *models.PostStatus
	ReviewStatus        *models.ReviewStatus
	ScheduledAt         *time.Time
	Likes               *int
	Comments            *int
	Views               *int
	IsGenerating        *bool
	OriginalDescription *string
}

// PostStore owns the canonical ordered post collection. Newest drafts sit
// first. All reads hand out copies; consumers never see canonical slices.
type PostStore struct {
	mu           sync.RWMutex
	posts        []models.Post
	activeFilter models.PostStatus
	lastID       int64

	scheduler Scheduler
	persist   PersistFunc
	remove    RemoveFunc
	now       func() time.Time
	logger    *zap.Logger
}

// Option configures a PostStore
type Option func(*PostStore)

// WithPersist sets the write-through hook called after each mutation
func WithPersist(fn PersistFunc) Option {
	return func(s *PostStore) { s.persist = fn }
}

// WithRemover sets the hook called after a post is removed
func WithRemover(fn RemoveFunc) Option {
	return func(s *PostStore) { s.remove = fn }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *PostStore) { s.now = now }
}

// WithLogger sets the store logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *PostStore) { s.logger = logger }
}

// New creates a post store seeded with the initial snapshot. The active
// filter is computed once from that snapshot: draft when any drafts exist,
// published otherwise.
func New(initial []models.Post, opts ...Option) *PostStore {
	s := &PostStore{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.WithComponent("store")
	}

	s.posts = make([]models.Post, 0, len(initial))
	for _, p := range initial {
		s.posts = append(s.posts, s.clone(p))
	}

	s.activeFilter = models.StatusPublished
	for _, p := range s.posts {
		if p.Status == models.StatusDraft {
			s.activeFilter = models.StatusDraft
			break
		}
	}

	return s
}

// SetScheduler attaches the generation scheduler. Wired after construction
// because the scheduler completes back into the store.
func (s *PostStore) SetScheduler(sched Scheduler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduler = sched
}

// AddDraftPost creates a pending draft and returns its id immediately. The
// caption is filled in later by the scheduled generation completion; until
// then the post carries empty content and IsGenerating. The active filter
// switches to draft so the new post is visible.
func (s *PostStore) AddDraftPost(images []string, description string) string {
	s.mu.Lock()

	id := s.nextID()
	post := models.Post{
		ID:                  id,
		Images:              models.StringList(images),
		Content:             "",
		Hashtags:            "",
		Status:              models.StatusDraft,
		ReviewStatus:        models.ReviewPending,
		CreatedAt:           s.now().UTC(),
		IsGenerating:        true,
		OriginalDescription: description,
	}

	// Newest drafts render first
	s.posts = append([]models.Post{post}, s.posts...)

	if s.activeFilter != models.StatusDraft {
		s.activeFilter = models.StatusDraft
	}

	sched := s.scheduler
	snapshot := s.clone(post)
	s.mu.Unlock()

	s.logger.Info("Draft post created",
		zap.String("post_id", id),
		zap.Int("images", len(images)))

	if s.persist != nil {
		s.persist(snapshot)
	}
	if sched != nil {
		sched.Schedule(id, description)
	}

	return id
}

// UpdatePost merges the patch into the matching post and reports whether a
// post matched. An unknown id is a no-op, not an error; nothing else is
// touched either way.
func (s *PostStore) UpdatePost(id string, patch PostPatch) bool {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Debug("Update ignored for unknown post", zap.String("post_id", id))
		return false
	}

	applyPatch(&s.posts[idx], patch)
	snapshot := s.clone(s.posts[idx])
	s.mu.Unlock()

	if s.persist != nil {
		s.persist(snapshot)
	}
	return true
}

// Approve publishes the post: status published, review approved, publish
// time stamped now.
func (s *PostStore) Approve(id string) bool {
	status := models.StatusPublished
	review := models.ReviewApproved
	at := s.now().UTC()
	ok := s.UpdatePost(id, PostPatch{
		Status:       &status,
		ReviewStatus: &review,
		ScheduledAt:  &at,
	})
	if ok {
		s.logger.Info("Post approved", zap.String("post_id", id))
	}
	return ok
}

// Reject records the moderation outcome without touching the publication
// status; a rejected draft stays a draft.
func (s *PostStore) Reject(id string) bool {
	review := models.ReviewRejected
	ok := s.UpdatePost(id, PostPatch{ReviewStatus: &review})
	if ok {
		s.logger.Info("Post rejected", zap.String("post_id", id))
	}
	return ok
}

// CompleteGeneration fills in the generated caption and clears the
// generating flag. No-op when the post has been removed in the meantime.
func (s *PostStore) CompleteGeneration(id, content, hashtags string) {
	generating := false
	if !s.UpdatePost(id, PostPatch{
		Content:      &content,
		Hashtags:     &hashtags,
		IsGenerating: &generating,
	}) {
		s.logger.Debug("Generation completed for vanished post", zap.String("post_id", id))
	}
}

// RemovePost deletes the post and cancels any pending generation for it
func (s *PostStore) RemovePost(id string) bool {
	s.mu.Lock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)
	sched := s.scheduler
	s.mu.Unlock()

	if sched != nil {
		sched.Cancel(id)
	}
	if s.remove != nil {
		s.remove(id)
	}

	s.logger.Info("Post removed", zap.String("post_id", id))
	return true
}

// SetActiveFilter selects the status shown by FilteredPosts
func (s *PostStore) SetActiveFilter(filter models.PostStatus) {
	if !models.ValidStatus(filter) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeFilter = filter
}

// ActiveFilter returns the currently selected status
func (s *PostStore) ActiveFilter() models.PostStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeFilter
}

// FilteredPosts returns copies of the posts matching the active filter, in
// canonical order
func (s *PostStore) FilteredPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(s.activeFilter)
}

// PostsByStatus returns copies of the posts with the given status
func (s *PostStore) PostsByStatus(status models.PostStatus) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterLocked(status)
}

// Posts returns a copy of the full canonical collection
func (s *PostStore) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, s.clone(p))
	}
	return out
}

// Get returns a copy of one post
func (s *PostStore) Get(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Post{}, false
	}
	return s.clone(s.posts[idx]), true
}

// PostCounts returns per-status counts for the tracked statuses
func (s *PostStore) PostCounts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Counts
	for _, p := range s.posts {
		switch p.Status {
		case models.StatusPublished:
			c.Published++
		case models.StatusDraft:
			c.Draft++
		case models.StatusArchived:
			c.Archived++
		}
	}
	return c
}

// HasGeneratingDraft reports whether any draft is still awaiting its caption
func (s *PostStore) HasGeneratingDraft() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.IsGenerating && p.Status == models.StatusDraft {
			return true
		}
	}
	return false
}

func (s *PostStore) filterLocked(status models.PostStatus) []models.Post {
	out := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, s.clone(p))
		}
	}
	return out
}

func (s *PostStore) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives a millisecond-timestamp id, bumped when two posts land in
// the same millisecond. Caller holds the lock.
func (s *PostStore) nextID() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *PostStore) clone(p models.Post) models.Post {
	var out models.Post
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		s.logger.Warn("Post copy failed, returning shallow copy", zap.Error(err))
		return p
	}
	return out
}

func applyPatch(p *models.Post, patch PostPatch) {
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Hashtags != nil {
		p.Hashtags = *patch.Hashtags
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.ReviewStatus != nil {
		p.ReviewStatus = *patch.ReviewStatus
	}
	if patch.ScheduledAt != nil {
		at := *patch.ScheduledAt
		p.ScheduledAt = &at
	}
	if patch.Likes != nil {
		v := *patch.Likes
		p.Likes = &v
	}
	if patch.Comments != nil {
		v := *patch.Comments
		p.Comments = &v
	}
	if patch.Views != nil {
		v := *patch.Views
		p.Views = &v
	}
	if patch.IsGenerating != nil {
		p.IsGenerating = *patch.IsGenerating
	}
	if patch.OriginalDescription != nil {
		p.OriginalDescription = *patch.OriginalDescription
	}
}

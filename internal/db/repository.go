package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/postpilot/postpilot/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by id; nil when not found
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List retrieves all posts, newest first
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Save upserts a post snapshot
func (r *PostRepository) Save(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(post).Error
}

// Delete removes a post by id
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{}).Error
}

// CommentRepository provides customer-comment database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// List retrieves comments, newest first, optionally only booking interest
func (r *CommentRepository) List(ctx context.Context, bookingOnly bool) ([]models.CustomerComment, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if bookingOnly {
		q = q.Where("is_booking_interest = ?", true)
	}

	var comments []models.CustomerComment
	if err := q.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Save upserts a comment
func (r *CommentRepository) Save(ctx context.Context, comment *models.CustomerComment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(comment).Error
}

// IntegrationRepository provides integration database operations
type IntegrationRepository struct {
	*Repository
}

// NewIntegrationRepository creates a new integration repository
func NewIntegrationRepository(repo *Repository) *IntegrationRepository {
	return &IntegrationRepository{Repository: repo}
}

// List retrieves all integrations
func (r *IntegrationRepository) List(ctx context.Context) ([]models.Integration, error) {
	var integrations []models.Integration
	if err := r.db.WithContext(ctx).Order("name").Find(&integrations).Error; err != nil {
		return nil, err
	}
	return integrations, nil
}

// GetByID retrieves an integration by id; nil when not found
func (r *IntegrationRepository) GetByID(ctx context.Context, id string) (*models.Integration, error) {
	var integration models.Integration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&integration).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &integration, nil
}

// Save upserts an integration
func (r *IntegrationRepository) Save(ctx context.Context, integration *models.Integration) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(integration).Error
}

// DashboardRepository provides dashboard database operations
type DashboardRepository struct {
	*Repository
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(repo *Repository) *DashboardRepository {
	return &DashboardRepository{Repository: repo}
}

// GetStats retrieves the dashboard headline numbers; nil when unseeded
func (r *DashboardRepository) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := r.db.WithContext(ctx).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

// ListEngagement retrieves the daily activity series in chart order
func (r *DashboardRepository) ListEngagement(ctx context.Context) ([]models.EngagementDay, error) {
	var days []models.EngagementDay
	if err := r.db.WithContext(ctx).Order("id").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// SaveStats replaces the dashboard headline numbers
func (r *DashboardRepository) SaveStats(ctx context.Context, stats *models.DashboardStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

// SaveEngagement appends one day of the activity series
func (r *DashboardRepository) SaveEngagement(ctx context.Context, day *models.EngagementDay) error {
	return r.db.WithContext(ctx).Create(day).Error
}

// ServiceRepository provides business-service database operations
type ServiceRepository struct {
	*Repository
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(repo *Repository) *ServiceRepository {
	return &ServiceRepository{Repository: repo}
}

// List retrieves all business services
func (r *ServiceRepository) List(ctx context.Context) ([]models.BusinessService, error) {
	var services []models.BusinessService
	if err := r.db.WithContext(ctx).Order("name").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Save upserts a business service
func (r *ServiceRepository) Save(ctx context.Context, service *models.BusinessService) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(service).Error
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/cache"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/internal/store"
	"github.com/postpilot/postpilot/pkg/logging"
)

// SeedData carries the embedded datasets the method groups fall back to
// when no database is configured
type SeedData struct {
	Comments     []models.CustomerComment
	Integrations []models.Integration
	Services     []models.BusinessService
	Stats        models.DashboardStats
	Engagement   []models.EngagementDay
}

// Router sets up API routes
type Router struct {
	handler *JSONRPCHandler
	db      *db.DB
	cache   *cache.Cache
	logger  *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(postStore *store.PostStore, database *db.DB, redisCache *cache.Cache, seeds SeedData, previewLimit int) *Router {
	router := &Router{
		handler: NewJSONRPCHandler(),
		db:      database,
		cache:   redisCache,
		logger:  logging.WithComponent("api-router"),
	}

	router.registerMethods(postStore, seeds, previewLimit)

	return router
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	// JSON-RPC endpoint
	engine.POST("/", r.handler.Handle)
}

// registerMethods registers all API methods
func (r *Router) registerMethods(postStore *store.PostStore, seeds SeedData, previewLimit int) {
	var (
		commentRepo     *db.CommentRepository
		integrationRepo *db.IntegrationRepository
		dashboardRepo   *db.DashboardRepository
		serviceRepo     *db.ServiceRepository
	)
	if r.db != nil {
		repo := db.NewRepository(r.db.DB)
		commentRepo = db.NewCommentRepository(repo)
		integrationRepo = db.NewIntegrationRepository(repo)
		dashboardRepo = db.NewDashboardRepository(repo)
		serviceRepo = db.NewServiceRepository(repo)
	}

	// Posts
	posts := NewPostsAPI(postStore, previewLimit)
	r.handler.RegisterMethod("posts.list", posts.List)
	r.handler.RegisterMethod("posts.get", posts.Get)
	r.handler.RegisterMethod("posts.create_draft", posts.CreateDraft)
	r.handler.RegisterMethod("posts.update", posts.Update)
	r.handler.RegisterMethod("posts.approve", posts.Approve)
	r.handler.RegisterMethod("posts.reject", posts.Reject)
	r.handler.RegisterMethod("posts.remove", posts.Remove)
	r.handler.RegisterMethod("posts.counts", posts.Counts)
	r.handler.RegisterMethod("posts.set_filter", posts.SetFilter)

	// Caption preview
	preview := NewPreviewAPI(previewLimit)
	r.handler.RegisterMethod("posts.preview", preview.Process)

	// Comment review feed
	comments := NewCommentsAPI(commentRepo, seeds.Comments)
	r.handler.RegisterMethod("comments.list", comments.List)
	r.handler.RegisterMethod("comments.counts", comments.Counts)

	// Integrations panel
	integrations := NewIntegrationsAPI(integrationRepo, seeds.Integrations)
	r.handler.RegisterMethod("integrations.list", integrations.List)
	r.handler.RegisterMethod("integrations.connect", integrations.Connect)
	r.handler.RegisterMethod("integrations.disconnect", integrations.Disconnect)

	// Stats dashboard
	dashboard := NewDashboardAPI(dashboardRepo, r.cache, seeds.Stats, seeds.Engagement)
	r.handler.RegisterMethod("dashboard.stats", dashboard.Stats)

	// Settings: business services
	services := NewServicesAPI(serviceRepo, seeds.Services)
	r.handler.RegisterMethod("services.list", services.List)
	r.handler.RegisterMethod("services.add", services.Add)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "postpilot-api",
	})
}

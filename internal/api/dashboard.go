package api

import (
	"encoding/json"
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/cache"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/pkg/logging"
)

const (
	dashboardCacheTTL = 60 * time.Second

	// Derived-metric assumptions shown on the stats screen
	timeSavedFactor = 0.5 // hours credited per handled comment
	revenuePerLead  = 850 // average commission per booked lead
)

// DashboardSummary is the stats screen payload
type DashboardSummary struct {
	Stats              models.DashboardStats  `json:"stats"`
	TimeSavedHours     int                    `json:"timeSavedHours"`
	EstimatedRevenue   int                    `json:"estimatedRevenue"`
	AvgDailyEngagement int                    `json:"avgDailyEngagement"`
	Engagement         []models.EngagementDay `json:"engagement"`
}

// DashboardAPI serves the stats dashboard, cached briefly in Redis when one
// is configured
type DashboardAPI struct {
	repo       *db.DashboardRepository
	cache      *cache.Cache
	seedStats  models.DashboardStats
	seedSeries []models.EngagementDay
	logger     *zap.Logger
}

// NewDashboardAPI creates the dashboard method group
func NewDashboardAPI(repo *db.DashboardRepository, redisCache *cache.Cache, seedStats models.DashboardStats, seedSeries []models.EngagementDay) *DashboardAPI {
	return &DashboardAPI{
		repo:       repo,
		cache:      redisCache,
		seedStats:  seedStats,
		seedSeries: seedSeries,
		logger:     logging.WithComponent("dashboard-api"),
	}
}

// Stats returns the dashboard summary
func (a *DashboardAPI) Stats(c *gin.Context, _ json.RawMessage) (interface{}, error) {
	cacheKey := "dashboard:" + cache.HashKey("summary", "v1")

	var cached DashboardSummary
	if err := a.cache.GetJSON(cacheKey, &cached); err == nil {
		return cached, nil
	}

	stats := a.seedStats
	series := a.seedSeries
	if a.repo != nil {
		ctx := c.Request.Context()
		dbStats, err := a.repo.GetStats(ctx)
		if err != nil {
			return nil, err
		}
		if dbStats != nil {
			stats = *dbStats
		}
		dbSeries, err := a.repo.ListEngagement(ctx)
		if err != nil {
			return nil, err
		}
		if len(dbSeries) > 0 {
			series = dbSeries
		}
	}

	summary := buildSummary(stats, series)

	if err := a.cache.SetJSON(cacheKey, summary, dashboardCacheTTL); err != nil && err != cache.ErrCacheDisabled {
		a.logger.Warn("Failed to cache dashboard summary", zap.Error(err))
	}

	return summary, nil
}

func buildSummary(stats models.DashboardStats, series []models.EngagementDay) DashboardSummary {
	totalEngagement := 0
	for _, day := range series {
		totalEngagement += day.Engagement
	}

	avgDaily := 0
	if len(series) > 0 {
		avgDaily = totalEngagement / len(series)
	}

	return DashboardSummary{
		Stats:              stats,
		TimeSavedHours:     int(math.Round(float64(stats.CommentsAnswered) * timeSavedFactor)),
		EstimatedRevenue:   stats.PotentialLeads * revenuePerLead,
		AvgDailyEngagement: avgDaily,
		Engagement:         series,
	}
}

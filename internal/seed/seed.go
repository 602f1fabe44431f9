// Package seed carries the embedded demo datasets the product ships with.
// They stand in for a connected social account until one is linked, and are
// the initial snapshot the post store boots from when no database is
// configured.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/postpilot/postpilot/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// Posts returns the seed post collection, newest first
func Posts() ([]models.Post, error) {
	var posts []models.Post
	if err := load("data/posts.json", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Comments returns the seed customer comments
func Comments() ([]models.CustomerComment, error) {
	var comments []models.CustomerComment
	if err := load("data/comments.json", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Integrations returns the seed platform integrations
func Integrations() ([]models.Integration, error) {
	var integrations []models.Integration
	if err := load("data/integrations.json", &integrations); err != nil {
		return nil, err
	}
	return integrations, nil
}

// Services returns the seed business services
func Services() ([]models.BusinessService, error) {
	var services []models.BusinessService
	if err := load("data/services.json", &services); err != nil {
		return nil, err
	}
	return services, nil
}

type dashboardFile struct {
	Stats      models.DashboardStats  `json:"stats"`
	Engagement []models.EngagementDay `json:"engagement"`
}

// Dashboard returns the seed dashboard stats and daily activity series
func Dashboard() (models.DashboardStats, []models.EngagementDay, error) {
	var file dashboardFile
	if err := load("data/dashboard.json", &file); err != nil {
		return models.DashboardStats{}, nil, err
	}
	return file.Stats, file.Engagement, nil
}

func load(name string, dest interface{}) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}
	return nil
}

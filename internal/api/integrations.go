package api

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/api/objects"
	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/pkg/logging"
)

// IntegrationsAPI serves the social-platform integrations panel. Without a
// database it works on an in-memory copy of the seed, so connect and
// disconnect still behave during demos.
type IntegrationsAPI struct {
	repo   *db.IntegrationRepository
	logger *zap.Logger

	mu     sync.Mutex
	memory []models.Integration
}

// NewIntegrationsAPI creates the integrations method group
func NewIntegrationsAPI(repo *db.IntegrationRepository, seeded []models.Integration) *IntegrationsAPI {
	return &IntegrationsAPI{
		repo:   repo,
		logger: logging.WithComponent("integrations-api"),
		memory: append([]models.Integration(nil), seeded...),
	}
}

// List returns all integrations
func (a *IntegrationsAPI) List(c *gin.Context, _ json.RawMessage) (interface{}, error) {
	integrations, err := a.loadAll(c)
	if err != nil {
		return nil, err
	}
	return gin.H{"integrations": objects.FromIntegrations(integrations)}, nil
}

type connectParams struct {
	ID              string `json:"id"`
	AccountUsername string `json:"accountUsername"`
}

// Connect marks the integration connected. The actual OAuth exchange
// happens on the device; this records the result.
func (a *IntegrationsAPI) Connect(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p connectParams
	if err := json.Unmarshal(params, &p); err != nil || p.ID == "" {
		return nil, InvalidParamsError("id is required")
	}

	now := time.Now().UTC()
	integration, err := a.mutate(c, p.ID, func(i *models.Integration) {
		i.IsConnected = true
		i.ConnectedAt = &now
		if p.AccountUsername != "" {
			i.AccountUsername = p.AccountUsername
		}
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Integration connected",
		zap.String("integration_id", p.ID),
		zap.String("platform", string(integration.Platform)))
	return objects.FromIntegrations([]models.Integration{*integration})[0], nil
}

// Disconnect clears the integration's connection state
func (a *IntegrationsAPI) Disconnect(c *gin.Context, params json.RawMessage) (interface{}, error) {
	p, err := bindID(params)
	if err != nil {
		return nil, err
	}

	integration, err := a.mutate(c, p.ID, func(i *models.Integration) {
		i.IsConnected = false
		i.ConnectedAt = nil
		i.FollowerCount = nil
		i.AccountUsername = ""
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Integration disconnected", zap.String("integration_id", p.ID))
	return objects.FromIntegrations([]models.Integration{*integration})[0], nil
}

func (a *IntegrationsAPI) loadAll(c *gin.Context) ([]models.Integration, error) {
	if a.repo != nil {
		return a.repo.List(c.Request.Context())
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.Integration(nil), a.memory...), nil
}

func (a *IntegrationsAPI) mutate(c *gin.Context, id string, apply func(*models.Integration)) (*models.Integration, error) {
	if a.repo != nil {
		ctx := c.Request.Context()
		integration, err := a.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if integration == nil {
			return nil, NotFoundError("integration", id)
		}
		apply(integration)
		if err := a.repo.Save(ctx, integration); err != nil {
			return nil, err
		}
		return integration, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.memory {
		if a.memory[i].ID == id {
			apply(&a.memory[i])
			out := a.memory[i]
			return &out, nil
		}
	}
	return nil, NotFoundError("integration", id)
}

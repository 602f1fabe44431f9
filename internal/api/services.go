package api

import (
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/db"
	"github.com/postpilot/postpilot/internal/models"
	"github.com/postpilot/postpilot/pkg/logging"
)

// ServicesAPI manages the business-service list edited from settings
type ServicesAPI struct {
	repo      *db.ServiceRepository
	sanitizer *bluemonday.Policy
	logger    *zap.Logger

	mu     sync.Mutex
	memory []models.BusinessService
}

// NewServicesAPI creates the services method group
func NewServicesAPI(repo *db.ServiceRepository, seeded []models.BusinessService) *ServicesAPI {
	return &ServicesAPI{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logging.WithComponent("services-api"),
		memory:    append([]models.BusinessService(nil), seeded...),
	}
}

// List returns all business services
func (a *ServicesAPI) List(c *gin.Context, _ json.RawMessage) (interface{}, error) {
	if a.repo != nil {
		services, err := a.repo.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return gin.H{"services": services}, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return gin.H{"services": append([]models.BusinessService(nil), a.memory...)}, nil
}

type addServiceParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
}

// Add creates a new business service
func (a *ServicesAPI) Add(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p addServiceParams
	if err := json.Unmarshal(params, &p); err != nil || p.Name == "" {
		return nil, InvalidParamsError("name is required")
	}

	service := models.BusinessService{
		ID:          uuid.NewString(),
		Name:        a.sanitizer.Sanitize(p.Name),
		Description: a.sanitizer.Sanitize(p.Description),
		Price:       p.Price,
		Duration:    p.Duration,
	}

	if a.repo != nil {
		if err := a.repo.Save(c.Request.Context(), &service); err != nil {
			return nil, err
		}
	} else {
		a.mu.Lock()
		a.memory = append(a.memory, service)
		a.mu.Unlock()
	}

	a.logger.Info("Business service added",
		zap.String("service_id", service.ID),
		zap.String("name", service.Name))
	return service, nil
}

// api/handlers/integration_handlers.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"borapassageiro/api/models"
)

type integrationStore interface {
	ListConfigs(ctx context.Context) (map[models.Platform]json.RawMessage, error)
	UpsertConfig(ctx context.Context, key models.Platform, data json.RawMessage) (*models.IntegrationConfig, error)
}

type IntegrationHandlers struct {
	Store integrationStore
}

func NewIntegrationHandlers(store integrationStore) *IntegrationHandlers {
	return &IntegrationHandlers{Store: store}
}

// GetIntegrations returns the stored credential blobs keyed by platform.
// Platforms without stored credentials are simply absent.
func (h *IntegrationHandlers) GetIntegrations(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	configs, err := h.Store.ListConfigs(ctx)
	if err != nil {
		log.Printf("Error listing integration configs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, configs)
}

// UpsertIntegration stores credentials for one of the three known platforms.
// The blob must carry the platform's required fields as non-empty strings;
// anything else is rejected before touching the store.
func (h *IntegrationHandlers) UpsertIntegration(c *gin.Context) {
	var req models.IntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	platform, ok := models.ParsePlatform(req.Key)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid integration key"})
		return
	}

	if err := validateCredentials(platform, req.Data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	cfg, err := h.Store.UpsertConfig(ctx, platform, req.Data)
	if err != nil {
		log.Printf("Error upserting integration config %q: %v", platform, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func validateCredentials(platform models.Platform, data json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("credentials must be a JSON object")
	}

	for _, field := range platform.RequiredFields() {
		raw, ok := fields[field]
		if !ok {
			return fmt.Errorf("missing required field %q for %s", field, platform)
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil || value == "" {
			return fmt.Errorf("field %q for %s must be a non-empty string", field, platform)
		}
	}

	return nil
}

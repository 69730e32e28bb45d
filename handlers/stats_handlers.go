// api/handlers/stats_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"borapassageiro/api/models"
	"borapassageiro/api/services"
)

const defaultStatsDays = 30

// eventWindow fetches all events at or after a cutoff, ordered ascending.
type eventWindow interface {
	EventsSince(ctx context.Context, cutoff time.Time) ([]models.AnalyticsEvent, error)
}

type StatsHandlers struct {
	Events eventWindow
	Stats  *services.StatsService
}

func NewStatsHandlers(events eventWindow, stats *services.StatsService) *StatsHandlers {
	return &StatsHandlers{
		Events: events,
		Stats:  stats,
	}
}

// GetStats computes the dashboard aggregation over the last N days
// (default 30; invalid or non-positive values fall back to the default).
func (h *StatsHandlers) GetStats(c *gin.Context) {
	days := defaultStatsDays
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -days)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	events, err := h.Events.EventsSince(ctx, cutoff)
	if err != nil {
		log.Printf("Error fetching events for stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, h.Stats.Aggregate(events, days, cutoff, now))
}

// api/handlers/track_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"borapassageiro/api/models"
	"borapassageiro/api/services"
	"borapassageiro/api/utils"
)

// eventInserter persists one event row per tracked request.
type eventInserter interface {
	InsertEvent(ctx context.Context, event models.AnalyticsEvent) error
}

// geoResolver resolves coarse location data for a public IP.
type geoResolver interface {
	Lookup(ctx context.Context, ip string) (*services.GeoLocation, error)
}

// conversionQueue accepts conversion events for background ad-platform
// dispatch.
type conversionQueue interface {
	Enqueue(ev services.ConversionEvent)
}

type TrackHandlers struct {
	Events     eventInserter
	Geo        geoResolver
	Dispatcher conversionQueue
}

func NewTrackHandlers(events eventInserter, geo geoResolver, dispatcher conversionQueue) *TrackHandlers {
	return &TrackHandlers{
		Events:     events,
		Geo:        geo,
		Dispatcher: dispatcher,
	}
}

// TrackEvent records one visit or click. Geolocation is best-effort and
// never fails the request; ad-platform dispatch is queued after persistence
// and never observed by the response. The only failure that reaches the
// client is a failed insert.
func (h *TrackHandlers) TrackEvent(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type"})
		return
	}

	eventType, ok := models.ParseEventType(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type"})
		return
	}

	userAgent := c.GetHeader("User-Agent")
	referer := c.GetHeader("Referer")
	ip := utils.ClientIP(c.Request.Header)

	var location *services.GeoLocation
	if !utils.IsPrivateIP(ip) {
		loc, err := h.Geo.Lookup(c.Request.Context(), ip)
		if err != nil {
			log.Printf("Geolocation lookup failed for %s: %v", ip, err)
		} else {
			location = loc
		}
	}

	event := models.AnalyticsEvent{
		EventID:     uuid.New().String(),
		Type:        eventType,
		Date:        time.Now().UTC(),
		UserAgent:   userAgent,
		Referer:     referer,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	}
	if location != nil {
		event.City = location.City
		event.Region = location.Region
		event.Country = location.Country
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := h.Events.InsertEvent(ctx, event); err != nil {
		log.Printf("Error inserting analytics event: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Dispatcher.Enqueue(services.ConversionEvent{
		Type:        eventType,
		OccurredAt:  event.Date,
		IP:          ip,
		UserAgent:   userAgent,
		FBC:         c.GetHeader("fbc"),
		FBP:         c.GetHeader("fbp"),
		TTCLID:      c.GetHeader("ttclid"),
		GAClientID:  c.GetHeader("x-ga-client-id"),
		City:        event.City,
		Region:      event.Region,
		Country:     event.Country,
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	})

	response := gin.H{"success": true}
	if event.City != "" {
		response["city"] = event.City
	}
	c.JSON(http.StatusOK, response)
}

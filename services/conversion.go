package services

import (
	"time"

	"borapassageiro/api/models"
)

// ConversionEvent is the normalized form handed to the ad-platform
// dispatchers: the internal event type plus everything the platforms accept
// for attribution matching.
type ConversionEvent struct {
	Type       models.EventType
	OccurredAt time.Time

	IP        string
	UserAgent string

	// Platform click / client identifiers forwarded from request headers.
	FBC        string
	FBP        string
	TTCLID     string
	GAClientID string

	// Contextual fields included in each platform's custom payload.
	City        string
	Region      string
	Country     string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// customProperties builds the shared contextual payload sent as custom event
// data to every platform. Empty fields are omitted.
func (e ConversionEvent) customProperties() map[string]string {
	props := make(map[string]string)
	if e.City != "" {
		props["city"] = e.City
	}
	if e.Region != "" {
		props["region"] = e.Region
	}
	if e.Country != "" {
		props["country"] = e.Country
	}
	if e.UTMSource != "" {
		props["utm_source"] = e.UTMSource
	}
	if e.UTMMedium != "" {
		props["utm_medium"] = e.UTMMedium
	}
	if e.UTMCampaign != "" {
		props["utm_campaign"] = e.UTMCampaign
	}
	return props
}

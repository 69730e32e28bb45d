package models

import (
	"encoding/json"
	"time"
)

// SiteContent is one editable section of the landing page. Order defines the
// display sequence; duplicate orders are allowed.
type SiteContent struct {
	ID        int64     `json:"id"`
	Section   string    `json:"section"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContentRequest is the upsert body for POST /api/content. A present ID
// updates the existing record, a zero ID creates a new one.
type ContentRequest struct {
	ID       int64  `json:"id"`
	Section  string `json:"section" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Content  string `json:"content"`
	IsActive *bool  `json:"isActive"`
	Order    int    `json:"order"`
}

// Platform identifies one of the supported advertising platforms.
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
)

// ParsePlatform validates an integration key against the closed set of
// supported platforms.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case PlatformFacebook, PlatformGoogle, PlatformTikTok:
		return Platform(s), true
	default:
		return "", false
	}
}

// RequiredFields lists the credential fields each platform needs before any
// dispatch is attempted. Writes are validated against the same list.
func (p Platform) RequiredFields() []string {
	switch p {
	case PlatformGoogle:
		return []string{"measurement_id", "api_secret"}
	default:
		return []string{"pixel_id", "access_token"}
	}
}

// IntegrationConfig holds one platform's stored credentials. At most one row
// exists per key.
type IntegrationConfig struct {
	Key       Platform        `json:"key"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// IntegrationRequest is the upsert body for POST /api/integrations.
type IntegrationRequest struct {
	Key  string          `json:"key" binding:"required"`
	Data json.RawMessage `json:"data" binding:"required"`
}

// FacebookCredentials configures the Meta Conversions API dispatcher.
type FacebookCredentials struct {
	PixelID     string `json:"pixel_id"`
	AccessToken string `json:"access_token"`
}

// GoogleCredentials configures the GA4 Measurement Protocol dispatcher.
type GoogleCredentials struct {
	MeasurementID string `json:"measurement_id"`
	APISecret     string `json:"api_secret"`
}

// TikTokCredentials configures the TikTok Events API dispatcher.
type TikTokCredentials struct {
	PixelID     string `json:"pixel_id"`
	AccessToken string `json:"access_token"`
}

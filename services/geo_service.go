// api/services/geo_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// geoLookupTimeout bounds the synchronous lookup inside the request path. A
// hung geolocation service must never stall /api/track; a timeout is treated
// exactly like any other lookup failure.
const geoLookupTimeout = 3 * time.Second

// GeoLocation is the subset of the ip-api.com response the event record
// keeps.
type GeoLocation struct {
	City    string `json:"city"`
	Region  string `json:"regionName"`
	Country string `json:"country"`
}

type geoAPIResponse struct {
	Status  string `json:"status"`
	City    string `json:"city"`
	Region  string `json:"regionName"`
	Country string `json:"country"`
}

type GeoService struct {
	baseURL string
	client  *http.Client
}

// NewGeoService builds a client for the public ip-api.com JSON endpoint.
// baseURL is overridable for tests and self-hosted mirrors.
func NewGeoService(baseURL string) *GeoService {
	return &GeoService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: geoLookupTimeout},
	}
}

// Lookup resolves coarse location data for a public IP address. Callers are
// expected to have filtered private and loopback addresses already; any
// failure here is absorbed by the caller, leaving the location fields empty.
func (s *GeoService) Lookup(ctx context.Context, ip string) (*GeoLocation, error) {
	endpoint := fmt.Sprintf("%s/json/%s?fields=status,country,regionName,city", s.baseURL, url.PathEscape(ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geolocation request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation service returned status %d", resp.StatusCode)
	}

	var body geoAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if body.Status != "success" {
		return nil, fmt.Errorf("geolocation lookup unsuccessful for %s", ip)
	}

	return &GeoLocation{
		City:    body.City,
		Region:  body.Region,
		Country: body.Country,
	}, nil
}

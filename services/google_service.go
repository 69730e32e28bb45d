// api/services/google_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"borapassageiro/api/models"
)

// GoogleService sends events to the GA4 Measurement Protocol collection
// endpoint.
type GoogleService struct {
	baseURL string
	client  *http.Client
}

func NewGoogleService() *GoogleService {
	return &GoogleService{
		baseURL: "https://www.google-analytics.com",
		client:  &http.Client{Timeout: dispatchTimeout},
	}
}

// WithBaseURL overrides the collection endpoint, used in tests.
func (s *GoogleService) WithBaseURL(baseURL string) *GoogleService {
	s.baseURL = baseURL
	return s
}

type gaEvent struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

type gaPayload struct {
	ClientID string    `json:"client_id"`
	Events   []gaEvent `json:"events"`
}

// Send forwards one conversion event to the configured measurement id.
// Incomplete credentials skip the dispatch without error.
func (s *GoogleService) Send(ctx context.Context, ev ConversionEvent, raw json.RawMessage) error {
	var creds models.GoogleCredentials
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &creds); err != nil {
			return fmt.Errorf("invalid google credentials: %w", err)
		}
	}
	if creds.MeasurementID == "" || creds.APISecret == "" {
		return nil
	}

	clientID := ev.GAClientID
	if clientID == "" {
		// Ideally supplied by the frontend from the _ga cookie.
		clientID = "backend-client"
	}

	params := ev.customProperties()
	params["engagement_time_msec"] = "100"

	payload := gaPayload{
		ClientID: clientID,
		Events: []gaEvent{{
			Name:   gaEventName(ev.Type),
			Params: params,
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal GA4 payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/mp/collect?measurement_id=%s&api_secret=%s",
		s.baseURL, url.QueryEscape(creds.MeasurementID), url.QueryEscape(creds.APISecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build GA4 request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("GA4 request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("GA4 returned status %d", resp.StatusCode)
	}

	return nil
}

// api/services/tiktok_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"borapassageiro/api/models"
)

// TikTokService sends events to the TikTok Events API.
type TikTokService struct {
	baseURL string
	client  *http.Client
}

func NewTikTokService() *TikTokService {
	return &TikTokService{
		baseURL: "https://business-api.tiktok.com",
		client:  &http.Client{Timeout: dispatchTimeout},
	}
}

// WithBaseURL overrides the Events API endpoint, used in tests.
func (s *TikTokService) WithBaseURL(baseURL string) *TikTokService {
	s.baseURL = baseURL
	return s
}

type ttAd struct {
	Callback string `json:"callback,omitempty"`
}

type ttContext struct {
	UserAgent string `json:"user_agent,omitempty"`
	IP        string `json:"ip,omitempty"`
	Ad        ttAd   `json:"ad"`
}

type ttPayload struct {
	PixelCode  string            `json:"pixel_code"`
	Event      string            `json:"event"`
	EventTime  int64             `json:"event_time"`
	Context    ttContext         `json:"context"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Send forwards one conversion event to the configured pixel. Incomplete
// credentials skip the dispatch without error.
func (s *TikTokService) Send(ctx context.Context, ev ConversionEvent, raw json.RawMessage) error {
	var creds models.TikTokCredentials
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &creds); err != nil {
			return fmt.Errorf("invalid tiktok credentials: %w", err)
		}
	}
	if creds.PixelID == "" || creds.AccessToken == "" {
		return nil
	}

	payload := ttPayload{
		PixelCode: creds.PixelID,
		Event:     ttEventName(ev.Type),
		EventTime: ev.OccurredAt.Unix(),
		Context: ttContext{
			UserAgent: ev.UserAgent,
			IP:        ev.IP,
			Ad:        ttAd{Callback: ev.TTCLID},
		},
		Properties: ev.customProperties(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal tiktok payload: %w", err)
	}

	endpoint := s.baseURL + "/open_api/v1.3/pixel/track/"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build tiktok request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Access-Token", creds.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("tiktok events request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tiktok events API returned status %d", resp.StatusCode)
	}

	return nil
}

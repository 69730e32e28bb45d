// api/services/facebook_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"borapassageiro/api/models"
)

const dispatchTimeout = 5 * time.Second

// FacebookService sends server events to Meta's Conversions API.
type FacebookService struct {
	baseURL string
	client  *http.Client
}

func NewFacebookService() *FacebookService {
	return &FacebookService{
		baseURL: "https://graph.facebook.com/v18.0",
		client:  &http.Client{Timeout: dispatchTimeout},
	}
}

// WithBaseURL overrides the Graph API endpoint, used in tests.
func (s *FacebookService) WithBaseURL(baseURL string) *FacebookService {
	s.baseURL = baseURL
	return s
}

type fbUserData struct {
	ClientIPAddress string `json:"client_ip_address,omitempty"`
	ClientUserAgent string `json:"client_user_agent,omitempty"`
	FBC             string `json:"fbc,omitempty"`
	FBP             string `json:"fbp,omitempty"`
}

type fbServerEvent struct {
	EventName    string            `json:"event_name"`
	EventTime    int64             `json:"event_time"`
	ActionSource string            `json:"action_source"`
	UserData     fbUserData        `json:"user_data"`
	CustomData   map[string]string `json:"custom_data,omitempty"`
}

type fbEventRequest struct {
	Data []fbServerEvent `json:"data"`
}

// Send forwards one conversion event to the pixel configured in the stored
// credentials. Incomplete credentials skip the dispatch without error.
func (s *FacebookService) Send(ctx context.Context, ev ConversionEvent, raw json.RawMessage) error {
	var creds models.FacebookCredentials
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &creds); err != nil {
			return fmt.Errorf("invalid facebook credentials: %w", err)
		}
	}
	if creds.PixelID == "" || creds.AccessToken == "" {
		return nil
	}

	payload := fbEventRequest{
		Data: []fbServerEvent{{
			EventName:    fbEventName(ev.Type),
			EventTime:    ev.OccurredAt.Unix(),
			ActionSource: "website",
			UserData: fbUserData{
				ClientIPAddress: ev.IP,
				ClientUserAgent: ev.UserAgent,
				FBC:             ev.FBC,
				FBP:             ev.FBP,
			},
			CustomData: ev.customProperties(),
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal facebook payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/events?access_token=%s",
		s.baseURL, url.PathEscape(creds.PixelID), url.QueryEscape(creds.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build facebook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("facebook CAPI request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("facebook CAPI returned status %d", resp.StatusCode)
	}

	return nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"borapassageiro/api/models"
)

type fakeConfigSource struct {
	configs map[models.Platform]json.RawMessage
	err     error
}

func (f *fakeConfigSource) ListConfigs(ctx context.Context) (map[models.Platform]json.RawMessage, error) {
	return f.configs, f.err
}

type fakeSender struct {
	mu    sync.Mutex
	calls []ConversionEvent
	creds []json.RawMessage
	err   error
}

func (f *fakeSender) Send(ctx context.Context, ev ConversionEvent, creds json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, ev)
	f.creds = append(f.creds, creds)
	return f.err
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestDispatcher_FansOutClicks(t *testing.T) {
	configs := &fakeConfigSource{configs: map[models.Platform]json.RawMessage{
		models.PlatformFacebook: json.RawMessage(`{"pixel_id":"px","access_token":"tok"}`),
		models.PlatformGoogle:   json.RawMessage(`{"measurement_id":"G-1","api_secret":"s"}`),
		models.PlatformTikTok:   json.RawMessage(`{"pixel_id":"tt","access_token":"tok"}`),
	}}

	fb, ga, tt := &fakeSender{}, &fakeSender{}, &fakeSender{}
	d := NewDispatcher(configs, fb, ga, tt)

	d.Enqueue(ConversionEvent{Type: models.EventClickWhatsApp})
	d.Stop()

	assert.Equal(t, 1, fb.callCount())
	assert.Equal(t, 1, ga.callCount())
	assert.Equal(t, 1, tt.callCount())
	assert.JSONEq(t, `{"pixel_id":"px","access_token":"tok"}`, string(fb.creds[0]))
}

func TestDispatcher_SkipsVisits(t *testing.T) {
	configs := &fakeConfigSource{configs: map[models.Platform]json.RawMessage{
		models.PlatformFacebook: json.RawMessage(`{}`),
	}}

	fb, ga, tt := &fakeSender{}, &fakeSender{}, &fakeSender{}
	d := NewDispatcher(configs, fb, ga, tt)

	d.Enqueue(ConversionEvent{Type: models.EventVisit})
	d.Stop()

	assert.Zero(t, fb.callCount())
	assert.Zero(t, ga.callCount())
	assert.Zero(t, tt.callCount())
}

func TestDispatcher_SkipsPlatformsWithoutConfig(t *testing.T) {
	configs := &fakeConfigSource{configs: map[models.Platform]json.RawMessage{
		models.PlatformGoogle: json.RawMessage(`{"measurement_id":"G-1","api_secret":"s"}`),
	}}

	fb, ga, tt := &fakeSender{}, &fakeSender{}, &fakeSender{}
	d := NewDispatcher(configs, fb, ga, tt)

	d.Enqueue(ConversionEvent{Type: models.EventClickPlayStore})
	d.Stop()

	assert.Zero(t, fb.callCount())
	assert.Equal(t, 1, ga.callCount())
	assert.Zero(t, tt.callCount())
}

func TestDispatcher_SenderErrorsAreIsolated(t *testing.T) {
	configs := &fakeConfigSource{configs: map[models.Platform]json.RawMessage{
		models.PlatformFacebook: json.RawMessage(`{}`),
		models.PlatformGoogle:   json.RawMessage(`{}`),
		models.PlatformTikTok:   json.RawMessage(`{}`),
	}}

	fb := &fakeSender{err: errors.New("capi down")}
	ga, tt := &fakeSender{}, &fakeSender{}
	d := NewDispatcher(configs, fb, ga, tt)

	d.Enqueue(ConversionEvent{Type: models.EventClickAppStore})
	d.Stop()

	// A failing platform never blocks the others.
	assert.Equal(t, 1, fb.callCount())
	assert.Equal(t, 1, ga.callCount())
	assert.Equal(t, 1, tt.callCount())
}

func TestDispatcher_ConfigErrorSkipsDispatch(t *testing.T) {
	configs := &fakeConfigSource{err: errors.New("db down")}

	fb, ga, tt := &fakeSender{}, &fakeSender{}, &fakeSender{}
	d := NewDispatcher(configs, fb, ga, tt)

	d.Enqueue(ConversionEvent{Type: models.EventClickWhatsApp})
	d.Stop()

	assert.Zero(t, fb.callCount())
	assert.Zero(t, ga.callCount())
	assert.Zero(t, tt.callCount())
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	configs := &fakeConfigSource{configs: map[models.Platform]json.RawMessage{}}
	d := NewDispatcher(configs, &fakeSender{}, &fakeSender{}, &fakeSender{})

	done := make(chan struct{})
	go func() {
		d.Stop()
		d.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Stop did not return")
	}
}

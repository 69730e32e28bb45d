package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventType(t *testing.T) {
	for _, valid := range []string{"visit", "click_playstore", "click_appstore", "click_whatsapp"} {
		parsed, ok := ParseEventType(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, EventType(valid), parsed)
	}

	for _, invalid := range []string{"", "VISIT", "click", "click_banner", "pageview"} {
		_, ok := ParseEventType(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestEventTypeIsClick(t *testing.T) {
	assert.False(t, EventVisit.IsClick())
	assert.True(t, EventClickPlayStore.IsClick())
	assert.True(t, EventClickAppStore.IsClick())
	assert.True(t, EventClickWhatsApp.IsClick())
}

func TestParsePlatform(t *testing.T) {
	for _, valid := range []string{"facebook", "google", "tiktok"} {
		parsed, ok := ParsePlatform(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Platform(valid), parsed)
	}

	for _, invalid := range []string{"", "twitter", "Facebook", "meta"} {
		_, ok := ParsePlatform(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestPlatformRequiredFields(t *testing.T) {
	assert.Equal(t, []string{"pixel_id", "access_token"}, PlatformFacebook.RequiredFields())
	assert.Equal(t, []string{"measurement_id", "api_secret"}, PlatformGoogle.RequiredFields())
	assert.Equal(t, []string{"pixel_id", "access_token"}, PlatformTikTok.RequiredFields())
}

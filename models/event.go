// api/models/event.go
package models

import "time"

// EventType is the closed set of actions tracked on the landing page.
type EventType string

const (
	EventVisit          EventType = "visit"
	EventClickPlayStore EventType = "click_playstore"
	EventClickAppStore  EventType = "click_appstore"
	EventClickWhatsApp  EventType = "click_whatsapp"
)

// ParseEventType validates a client-supplied type string against the closed
// enumeration. This is the single validation point for event types.
func ParseEventType(s string) (EventType, bool) {
	switch EventType(s) {
	case EventVisit, EventClickPlayStore, EventClickAppStore, EventClickWhatsApp:
		return EventType(s), true
	default:
		return "", false
	}
}

// IsClick reports whether the event is a conversion-relevant click, i.e.
// anything other than a plain visit. Only clicks are forwarded to the ad
// platforms.
func (t EventType) IsClick() bool {
	return t != EventVisit
}

// AnalyticsEvent is one recorded visit or click. Rows are immutable once
// written; enrichment fields stay empty when geolocation or the client did
// not provide them.
type AnalyticsEvent struct {
	EventID     string    `json:"-"`
	Type        EventType `json:"type"`
	Date        time.Time `json:"date"`
	UserAgent   string    `json:"userAgent,omitempty"`
	Referer     string    `json:"referer,omitempty"`
	City        string    `json:"city,omitempty"`
	Region      string    `json:"region,omitempty"`
	Country     string    `json:"country,omitempty"`
	UTMSource   string    `json:"utm_source,omitempty"`
	UTMMedium   string    `json:"utm_medium,omitempty"`
	UTMCampaign string    `json:"utm_campaign,omitempty"`
}

// TrackRequest is the body accepted by POST /api/track.
type TrackRequest struct {
	Type        string `json:"type" binding:"required"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}

// DailyClicks breaks the click counts of one calendar day down by target.
type DailyClicks struct {
	PlayStore uint64 `json:"playStore"`
	AppStore  uint64 `json:"appStore"`
	Whatsapp  uint64 `json:"whatsapp"`
}

// DailyStat is one row of the per-day dashboard breakdown.
type DailyStat struct {
	Date   string      `json:"date"`
	Visits uint64      `json:"visits"`
	Clicks DailyClicks `json:"clicks"`
}

// StatTotals sums each event type across the whole requested window.
type StatTotals struct {
	Visits    uint64 `json:"visits"`
	PlayStore uint64 `json:"playStore"`
	AppStore  uint64 `json:"appStore"`
	Whatsapp  uint64 `json:"whatsapp"`
}

// CityCount is a "city, region" bucket with its visit count.
type CityCount struct {
	City  string `json:"city"`
	Count uint64 `json:"count"`
}

// SourceCount is a utm_source bucket with its visit count.
type SourceCount struct {
	Source string `json:"source"`
	Count  uint64 `json:"count"`
}

// StatsPeriod echoes the resolved aggregation window.
type StatsPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// StatsResponse is the full payload of GET /api/stats.
type StatsResponse struct {
	Daily      []DailyStat   `json:"daily"`
	Totals     StatTotals    `json:"totals"`
	TopCities  []CityCount   `json:"topCities"`
	TopSources []SourceCount `json:"topSources"`
	Period     StatsPeriod   `json:"period"`
}

// api/store/analytics_store.go
package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"borapassageiro/api/database"
	"borapassageiro/api/models"
)

type AnalyticsStore struct {
	DB *database.ClickHouseClient
}

func NewAnalyticsStore(chClient *database.ClickHouseClient) *AnalyticsStore {
	return &AnalyticsStore{
		DB: chClient,
	}
}

// InsertEvent writes exactly one row per tracked request. Enrichment fields
// left empty by geolocation or the client are stored as empty strings.
func (s *AnalyticsStore) InsertEvent(ctx context.Context, event models.AnalyticsEvent) error {
	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO analytics_events (
			event_id, type, date, user_agent, referer,
			city, region, country, utm_source, utm_medium, utm_campaign
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare event insert: %w", err)
	}

	err = batch.Append(
		event.EventID,
		string(event.Type),
		event.Date,
		event.UserAgent,
		event.Referer,
		event.City,
		event.Region,
		event.Country,
		event.UTMSource,
		event.UTMMedium,
		event.UTMCampaign,
	)
	if err != nil {
		return fmt.Errorf("failed to append event to batch: %w", err)
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send event batch: %w", err)
	}

	return nil
}

// EventsSince returns every event with a timestamp at or after the cutoff,
// ordered ascending. The dashboard reduction happens in-process on this
// slice.
func (s *AnalyticsStore) EventsSince(ctx context.Context, cutoff time.Time) ([]models.AnalyticsEvent, error) {
	query := `
		SELECT event_id, type, date, user_agent, referer,
		       city, region, country, utm_source, utm_medium, utm_campaign
		FROM analytics_events
		WHERE date >= ?
		ORDER BY date ASC
	`

	rows, err := s.DB.Conn.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query events since %s: %w", cutoff.Format(time.RFC3339), err)
	}
	defer rows.Close()

	var events []models.AnalyticsEvent
	for rows.Next() {
		var (
			event     models.AnalyticsEvent
			eventType string
		)
		if err := rows.Scan(
			&event.EventID,
			&eventType,
			&event.Date,
			&event.UserAgent,
			&event.Referer,
			&event.City,
			&event.Region,
			&event.Country,
			&event.UTMSource,
			&event.UTMMedium,
			&event.UTMCampaign,
		); err != nil {
			log.Printf("Error scanning analytics event row: %v", err)
			continue
		}
		event.Type = models.EventType(eventType)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during events query: %w", err)
	}

	return events, nil
}

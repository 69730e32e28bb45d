// api/services/stats_service.go
package services

import (
	"sort"
	"time"

	"borapassageiro/api/models"
)

const topCitiesLimit = 5

// directSource buckets visits that arrived without any utm_source.
const directSource = "direct"

// StatsService reduces a window of stored events into the dashboard payload.
// The reduction is a single in-process pass: grouping maps keyed by date,
// city, and source, sorted once for output.
type StatsService struct{}

func NewStatsService() *StatsService {
	return &StatsService{}
}

// Aggregate reduces events (expected sorted ascending by date, all within
// the window) into daily counts, totals, top cities, and attribution
// sources. Ranking ties keep first-seen order.
func (s *StatsService) Aggregate(events []models.AnalyticsEvent, days int, start, end time.Time) models.StatsResponse {
	dailyByDate := make(map[string]*models.DailyStat)
	var dailyOrder []string

	cityCounts := make(map[string]uint64)
	var cityOrder []string

	sourceCounts := make(map[string]uint64)
	var sourceOrder []string

	var totals models.StatTotals

	for _, event := range events {
		dateKey := event.Date.UTC().Format("2006-01-02")

		day, ok := dailyByDate[dateKey]
		if !ok {
			day = &models.DailyStat{Date: dateKey}
			dailyByDate[dateKey] = day
			dailyOrder = append(dailyOrder, dateKey)
		}

		switch event.Type {
		case models.EventVisit:
			day.Visits++
			totals.Visits++
		case models.EventClickPlayStore:
			day.Clicks.PlayStore++
			totals.PlayStore++
		case models.EventClickAppStore:
			day.Clicks.AppStore++
			totals.AppStore++
		case models.EventClickWhatsApp:
			day.Clicks.Whatsapp++
			totals.Whatsapp++
		}

		if event.Type != models.EventVisit {
			continue
		}

		// Location and attribution tallies count visits only.
		if event.City != "" {
			cityKey := event.City + ", " + event.Region
			if _, seen := cityCounts[cityKey]; !seen {
				cityOrder = append(cityOrder, cityKey)
			}
			cityCounts[cityKey]++
		}

		sourceKey := event.UTMSource
		if sourceKey == "" {
			sourceKey = directSource
		}
		if _, seen := sourceCounts[sourceKey]; !seen {
			sourceOrder = append(sourceOrder, sourceKey)
		}
		sourceCounts[sourceKey]++
	}

	sort.Strings(dailyOrder)
	daily := make([]models.DailyStat, 0, len(dailyOrder))
	for _, dateKey := range dailyOrder {
		daily = append(daily, *dailyByDate[dateKey])
	}

	topCities := make([]models.CityCount, 0, len(cityOrder))
	for _, cityKey := range cityOrder {
		topCities = append(topCities, models.CityCount{City: cityKey, Count: cityCounts[cityKey]})
	}
	sort.SliceStable(topCities, func(i, j int) bool {
		return topCities[i].Count > topCities[j].Count
	})
	if len(topCities) > topCitiesLimit {
		topCities = topCities[:topCitiesLimit]
	}

	topSources := make([]models.SourceCount, 0, len(sourceOrder))
	for _, sourceKey := range sourceOrder {
		topSources = append(topSources, models.SourceCount{Source: sourceKey, Count: sourceCounts[sourceKey]})
	}
	sort.SliceStable(topSources, func(i, j int) bool {
		return topSources[i].Count > topSources[j].Count
	})

	return models.StatsResponse{
		Daily:      daily,
		Totals:     totals,
		TopCities:  topCities,
		TopSources: topSources,
		Period: models.StatsPeriod{
			Start: start.UTC().Format("2006-01-02"),
			End:   end.UTC().Format("2006-01-02"),
			Days:  days,
		},
	}
}

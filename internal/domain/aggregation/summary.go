package aggregation

import (
	"fmt"
	"math"

	"tempo/internal/domain/entity"

	"github.com/google/uuid"
)

// TopAppsLimit caps Result.TopApps.
const TopAppsLimit = 10

// Categories is the fixed order of CategoryDistribution.
var Categories = []entity.Category{
	entity.CategoryProductive,
	entity.CategoryDistracting,
	entity.CategoryNeutral,
	entity.CategoryUncategorized,
}

// Summary condenses the window into a productivity score.
type Summary struct {
	TotalTimeMs       int64 `json:"total_time_ms"`
	ProductiveMs      int64 `json:"productive_ms"`
	ProductivityScore int   `json:"productivity_score"` // Percent of time spent in productive apps, rounded.
}

// CategoryTotal is the time attributed to one category.
type CategoryTotal struct {
	Category    entity.Category `json:"category"`
	TotalTimeMs int64           `json:"total_time_ms"`
}

// HourProfile is the minutes per category inside one local hour.
type HourProfile struct {
	Hour          int     `json:"hour"`
	Label         string  `json:"label"`
	Productive    float64 `json:"productive"`
	Distracting   float64 `json:"distracting"`
	Neutral       float64 `json:"neutral"`
	Uncategorized float64 `json:"uncategorized"`
}

// Summarize recomputes Summary, CategoryDistribution, ActivityProfile and TopApps from
// Hourly and Daily. categories maps app ids to their category; apps missing from it count
// as uncategorized. Daily must already be in canonical order.
func (r *Result) Summarize(categories map[uuid.UUID]entity.Category) {
	categoryOf := func(appID uuid.UUID) entity.Category {
		if c, ok := categories[appID]; ok && c.IsValid() {
			return c
		}

		return entity.CategoryUncategorized
	}

	byCategory := make(map[entity.Category]int64, len(Categories))
	var summary Summary
	for _, total := range r.Daily {
		category := categoryOf(total.AppID)
		byCategory[category] += total.TotalTimeMs
		summary.TotalTimeMs += total.TotalTimeMs
	}
	summary.ProductiveMs = byCategory[entity.CategoryProductive]
	if summary.TotalTimeMs > 0 {
		summary.ProductivityScore = int(math.Round(float64(summary.ProductiveMs) * 100 / float64(summary.TotalTimeMs)))
	}
	r.Summary = summary

	r.CategoryDistribution = make([]CategoryTotal, 0, len(Categories))
	for _, category := range Categories {
		r.CategoryDistribution = append(r.CategoryDistribution, CategoryTotal{
			Category:    category,
			TotalTimeMs: byCategory[category],
		})
	}

	r.ActivityProfile = make([]HourProfile, 24)
	for hour := range r.ActivityProfile {
		perCategory := make(map[entity.Category]int64, len(Categories))
		for _, entry := range r.Hourly[hour] {
			perCategory[categoryOf(entry.AppID)] += entry.TotalTimeMs
		}
		r.ActivityProfile[hour] = HourProfile{
			Hour:          hour,
			Label:         fmt.Sprintf("%02d:00", hour),
			Productive:    minutes(perCategory[entity.CategoryProductive]),
			Distracting:   minutes(perCategory[entity.CategoryDistracting]),
			Neutral:       minutes(perCategory[entity.CategoryNeutral]),
			Uncategorized: minutes(perCategory[entity.CategoryUncategorized]),
		}
	}

	limit := min(len(r.Daily), TopAppsLimit)
	r.TopApps = make([]DailyTotal, limit)
	copy(r.TopApps, r.Daily[:limit])
}

// Categories returns the category of every app in r.Apps.
func (r *Result) Categories() map[uuid.UUID]entity.Category {
	categories := make(map[uuid.UUID]entity.Category, len(r.Apps))
	for id, meta := range r.Apps {
		categories[id] = meta.Category
	}

	return categories
}

func minutes(ms int64) float64 {
	return float64(ms) / float64(60*1000)
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the productivity classification of an app.
type Category string

const (
	CategoryProductive    Category = "productive"
	CategoryDistracting   Category = "distracting"
	CategoryNeutral       Category = "neutral"
	CategoryUncategorized Category = "uncategorized"
)

// ParseCategory normalizes s and reports whether it names a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))

	return c, c.IsValid()
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryProductive, CategoryDistracting, CategoryNeutral, CategoryUncategorized:
		return true
	default:
		return false
	}
}

// App is a globally shared dictionary entry for a reported application name.
type App struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`           // Unique, as reported by the agent.
	Category      Category  `json:"category"`       // Defaults to uncategorized.
	AutoSuggested bool      `json:"auto_suggested"` // True when Category came from the suggestion rules.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewApp returns an uncategorized app for name.
func NewApp(name string) *App {
	return &App{
		Name:     name,
		Category: CategoryUncategorized,
	}
}

// IsManuallyCategorized reports whether a user picked the category.
func (a *App) IsManuallyCategorized() bool {
	return a.Category != CategoryUncategorized && !a.AutoSuggested
}

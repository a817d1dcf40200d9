package categorize

import (
	"testing"

	"tempo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		app        string
		url        string
		want       entity.Category
		confidence float64
	}{
		{"editor", "Visual Studio Code", "", entity.CategoryProductive, 0.9},
		{"productive site", "Google Chrome", "https://github.com/org/repo", entity.CategoryProductive, 0.9},
		{"distracting site", "youtube.com", "", entity.CategoryDistracting, 0.9},
		{"game launcher", "Steam", "", entity.CategoryDistracting, 0.9},
		{"plain browser", "Firefox", "", entity.CategoryNeutral, 0.8},
		{"education domain", "Kiosk", "https://www.coursera.org/learn/go", entity.CategoryProductive, 0.7},
		{"news domain", "Kiosk", "https://news.ycombinator.com", entity.CategoryNeutral, 0.6},
		{"unknown", "Mystery", "", entity.CategoryUncategorized, 0},
		{"bad url is ignored", "Mystery", "://nope", entity.CategoryUncategorized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.app, tt.url)
			assert.Equal(t, tt.want, got.Category)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

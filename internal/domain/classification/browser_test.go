package classification

import (
	"testing"

	"tempo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestBrowserTable_DefaultsWhenEmpty(t *testing.T) {
	table := NewBrowserTable(nil)

	assert.Equal(t, DefaultBrowserApps, table.Names())
}

func TestBrowserTable_NormalizesConfiguredNames(t *testing.T) {
	table := NewBrowserTable([]string{" Chrome ", "chrome", "", "Zen"})

	assert.Equal(t, []string{"chrome", "zen"}, table.Names())
	assert.True(t, table.MatchesApp("Zen Browser"))
	assert.False(t, table.MatchesApp("Firefox"))
}

func TestBrowserTable_IsBrowserLike(t *testing.T) {
	table := NewBrowserTable(nil)

	tests := []struct {
		name     string
		platform entity.Platform
		app      string
		want     bool
	}{
		{"web platform is always browser-like", entity.PlatformWeb, "github.com", true},
		{"native chrome", entity.PlatformWindows, "Google Chrome", true},
		{"native msedge process", entity.PlatformWindows, "msedge.exe", true},
		{"case insensitive", entity.PlatformMacOS, "SAFARI", true},
		{"native editor", entity.PlatformLinux, "Visual Studio Code", false},
		{"mobile app", entity.PlatformAndroid, "Spotify", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.IsBrowserLike(tt.platform, tt.app))
		})
	}
}

// Package classification decides whether a report comes from a browser.
package classification

import (
	"slices"
	"strings"

	"tempo/internal/domain/entity"
)

// DefaultBrowserApps are process-name fragments that identify web browsers.
var DefaultBrowserApps = []string{
	"chrome",
	"edge",
	"msedge",
	"firefox",
	"opera",
	"brave",
	"arc",
	"vivaldi",
	"safari",
}

// BrowserTable matches app names against known browser process names.
// Matching is a case-insensitive substring test.
type BrowserTable struct {
	names []string
}

// NewBrowserTable builds a table from names. An empty list falls back to DefaultBrowserApps.
func NewBrowserTable(names []string) *BrowserTable {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || slices.Contains(normalized, name) {
			continue
		}
		normalized = append(normalized, name)
	}

	if len(normalized) == 0 {
		normalized = slices.Clone(DefaultBrowserApps)
	}

	return &BrowserTable{names: normalized}
}

// Names returns a copy of the configured browser names.
func (t *BrowserTable) Names() []string {
	return slices.Clone(t.names)
}

// MatchesApp reports whether appName looks like a browser process.
func (t *BrowserTable) MatchesApp(appName string) bool {
	lower := strings.ToLower(appName)
	for _, name := range t.names {
		if strings.Contains(lower, name) {
			return true
		}
	}

	return false
}

// IsBrowserLike is true for web devices and for native reports of a browser process.
func (t *BrowserTable) IsBrowserLike(platform entity.Platform, appName string) bool {
	return platform.IsWeb() || t.MatchesApp(appName)
}

// Package categorize suggests a productivity category from an app name or URL.
package categorize

import (
	"net/url"
	"strings"

	"tempo/internal/domain/entity"
)

// Suggestion is a proposed category with a confidence in [0, 1].
type Suggestion struct {
	Category   entity.Category `json:"category"`
	Confidence float64         `json:"confidence"`
}

type rule struct {
	category   entity.Category
	confidence float64
	keywords   []string
}

// Rules are evaluated in order; the first keyword hit wins.
var rules = []rule{
	{
		category:   entity.CategoryProductive,
		confidence: 0.9,
		keywords: []string{
			"visual studio code", "vscode", "code", "vim", "neovim", "sublime",
			"intellij", "pycharm", "webstorm", "android studio",
			"github.com", "gitlab.com", "bitbucket.org", "stackoverflow.com",
			"chat.openai.com", "claude.ai", "gemini.google.com",
			"notion.so", "obsidian", "evernote", "onenote",
			"slack", "discord", "teams", "zoom", "meet.google.com",
			"gmail", "outlook", "mail.google.com",
			"figma.com", "canva.com", "sketch",
			"docs.google.com", "office.com", "excel", "word", "powerpoint",
			"trello.com", "asana.com", "jira", "linear.app",
			"terminal", "cmd", "powershell", "iterm", "warp",
		},
	},
	{
		category:   entity.CategoryDistracting,
		confidence: 0.9,
		keywords: []string{
			"facebook.com", "instagram.com", "twitter.com", "x.com", "tiktok.com",
			"reddit.com", "pinterest.com", "snapchat",
			"youtube.com", "netflix.com", "hulu.com", "twitch.tv", "spotify.com",
			"steam", "epic games", "battle.net", "league of legends", "valorant",
			"whatsapp", "telegram", "wechat", "line",
		},
	},
	{
		category:   entity.CategoryNeutral,
		confidence: 0.8,
		keywords: []string{
			"chrome", "firefox", "safari", "edge", "brave", "arc", "vivaldi", "opera", "msedge",
			"explorer", "finder", "file explorer",
			"settings", "preferences", "system preferences",
		},
	},
}

var (
	educationHosts = []string{"edu", "coursera", "udemy", "edx"}
	newsHosts      = []string{"news", "bbc.co", "cnn.com"}
)

// Suggest classifies appName, optionally helped by the URL the app was showing.
func Suggest(appName, rawURL string) Suggestion {
	name := strings.ToLower(appName)
	lowerURL := strings.ToLower(rawURL)

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(name, keyword) || (lowerURL != "" && strings.Contains(lowerURL, keyword)) {
				return Suggestion{Category: r.category, Confidence: r.confidence}
			}
		}
	}

	if host := hostOf(rawURL); host != "" {
		if containsAny(host, educationHosts) {
			return Suggestion{Category: entity.CategoryProductive, Confidence: 0.7}
		}
		if containsAny(host, newsHosts) {
			return Suggestion{Category: entity.CategoryNeutral, Confidence: 0.6}
		}
	}

	return Suggestion{Category: entity.CategoryUncategorized, Confidence: 0}
}

func hostOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return strings.ToLower(parsed.Hostname())
}

func containsAny(s string, fragments []string) bool {
	for _, fragment := range fragments {
		if strings.Contains(s, fragment) {
			return true
		}
	}

	return false
}

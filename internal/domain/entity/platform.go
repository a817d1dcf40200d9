package entity

import "strings"

// Platform classifies the kind of agent that produced a report.
type Platform string

const (
	PlatformWeb     Platform = "web"
	PlatformWindows Platform = "windows"
	PlatformMacOS   Platform = "macos"
	PlatformLinux   Platform = "linux"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformWeb, PlatformWindows, PlatformMacOS, PlatformLinux, PlatformIOS, PlatformAndroid}

// ParsePlatform normalizes s and reports whether it names a supported platform.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))

	return p, p.IsValid()
}

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform is a valid value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWeb, PlatformWindows, PlatformMacOS, PlatformLinux, PlatformIOS, PlatformAndroid:
		return true
	default:
		return false
	}
}

// IsWeb reports whether the platform is a browser extension.
func (p Platform) IsWeb() bool {
	return p == PlatformWeb
}

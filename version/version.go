// Package version holds the webpilot build version.
package version

// Version is stamped at release time via -ldflags.
var Version = "0.4.0"

// Package version holds the build version reported by the service and CLI.
package version

// Version is overridden at build time with
// -ldflags "-X github.com/sevigo/coderadar/internal/version.Version=...".
var Version = "1.0.0"

// Package version records build metadata for the rob CLI.
package version

import "github.com/fatih/color"

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var releaseColor = color.New(color.FgCyan, color.Bold)

// Pretty returns the version string with the release highlighted when color
// output is enabled.
func Pretty() string {
	return releaseColor.Sprint(Version)
}

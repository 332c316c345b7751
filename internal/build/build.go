// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit and Date are stamped by the release build.
var (
	Commit = "none"
	Date   = "unknown"
)

// UserAgent identifies getlicense in outbound HTTP requests.
func UserAgent() string {
	return "getlicense/" + Version
}

// Package version exposes the build version of the semlist binary.
package version

// version is overridden at build time via
// -ldflags "-X github.com/dutykh/semlist/pkg/version.version=v1.2.3".
var version = "dev"

// GetVersion returns the version string baked into the binary.
func GetVersion() string {
	return version
}

// Values in this file are injected at build time through -ldflags "-X".
// Renaming the variables breaks the build scripts.

package bininfo

const Name = "roadwatch"

var (
	// Version is the SemVer version of the binary, optionally suffixed with +<git commit>.
	Version = "v0.0.0"

	// BuildTime is the time at which the application was built.
	BuildTime = "1970-01-01T00:00:00Z"
)

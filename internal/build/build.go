// Package build provides build information that is linked into the application. Other
// packages within this project can use this information in logs etc..
package build

var (
	// Version is the build version of the application. Set with
	// -ldflags "-X github.com/openfga/cinq/internal/build.Version=<version>".
	Version = "dev"

	// Commit is the sha of the git commit the application was built from.
	Commit = "none"

	// Date is the date when the application was built.
	Date = "unknown"

	// ProjectName is used by the CLI and by metric names.
	ProjectName = "cinq"
)

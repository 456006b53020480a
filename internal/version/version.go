package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/outstanding/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/outstanding/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/outstanding/internal/version.Date={{.Date}}
)

// String returns the version line printed by the version command.
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}

package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/carimus/metrolink/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/carimus/metrolink/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/carimus/metrolink/internal/version.Date={{.Date}}
)

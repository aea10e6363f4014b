package buildinfo

// set at build time with -ldflags "-X wpcomics/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

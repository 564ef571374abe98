// Package settings provides build metadata, runtime configuration, and
// context helpers used across the tplc CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "tplc"

// CatalogFileName is the catalog looked up in the user config directory.
const CatalogFileName = "catalog.yaml"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the application.
type Run struct {
	MinLogLevel int8
	// CatalogPath is the catalog file merged over the embedded default.
	// Empty means the user config directory is searched.
	CatalogPath string
	IsQuiet     bool // drop summary lines from command output
	NoColor     bool
}

// NewCliParams initializes and returns a pointer to a Run struct with default CLI parameters.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
	}
}

// LogLevel maps the --debug flag to a zap level: -1 (debug) or 0 (info).
func LogLevel(debug bool) int8 {
	if debug {
		return -1
	}
	return 0
}

// Package app wires configuration, strategies and output together for the
// fibbench command and owns its lifecycle.
package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibbench/internal/sysinfo"
)

// Build-time variables set via -ldflags, e.g.
//
//	go build -ldflags="-X github.com/agbru/fibbench/internal/app.Version=v1.2.3 -X github.com/agbru/fibbench/internal/app.Commit=abc123"
var (
	// Version is the semantic version of the application.
	Version = "dev"
	// Commit is the short Git commit hash.
	Commit = "unknown"
	// BuildDate is the ISO 8601 timestamp of the build.
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args contain a version flag in any position.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes version, build and host information to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fibbench %s\n", Version)
	fmt.Fprintf(out, "  Commit:     %s\n", Commit)
	fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  Host:       %s\n", sysinfo.Detect())
}

// VersionData is the version information in structured form.
type VersionData struct {
	Version   string       `json:"version"`
	Commit    string       `json:"commit"`
	BuildDate string       `json:"build_date"`
	GoVersion string       `json:"go_version"`
	Host      sysinfo.Info `json:"host"`
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionData {
	return VersionData{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Host:      sysinfo.Detect(),
	}
}

// ============================================================================
// bstr - Byte String Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its libraries
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version constants
const (
	// Toolkit version
	Toolkit = "1.0.0"

	// Component versions
	Stringx = "0.3.0"
	Numx    = "0.1.0"
	Utf8x   = "0.1.0"
	Charx   = "0.1.0"
	Slicex  = "0.2.0"
)

// Set at build time via -ldflags "-X github.com/msto63/bstr/pkg/core/version.Commit=..."
var (
	Commit    = ""
	BuildDate = ""
)

// Info describes the running binary
type Info struct {
	Version    string            `json:"version"`
	Commit     string            `json:"commit,omitempty"`
	BuildDate  string            `json:"build_date,omitempty"`
	GoVersion  string            `json:"go_version"`
	Platform   string            `json:"platform"`
	Components map[string]string `json:"components"`
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "numx":
		return Numx
	case "utf8x":
		return Utf8x
	case "charx":
		return Charx
	case "slicex":
		return Slicex
	default:
		return Toolkit
	}
}

// Get returns the version information of the running binary. A missing
// commit falls back to the VCS revision recorded by the Go toolchain.
func Get() Info {
	info := Info{
		Version:   Toolkit,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Components: map[string]string{
			"stringx": Stringx,
			"numx":    Numx,
			"utf8x":   Utf8x,
			"charx":   Charx,
			"slicex":  Slicex,
		},
	}

	if info.Commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}
	return info
}

// String returns a one-line summary
func (i Info) String() string {
	s := "bstr " + i.Version
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		s += " (" + commit + ")"
	}
	return s + " " + i.GoVersion + " " + i.Platform
}

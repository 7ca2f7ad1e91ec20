package main

import (
	"fmt"
	"runtime"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	Execute()
}

// buildType is "release" for tagged builds and "debug" otherwise.
func buildType() string {
	if version == "dev" {
		return "debug"
	}
	return "release"
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("maestro %s (%s, %s, %s, %s)", version, buildType(), commit[:min(7, len(commit))], date, runtime.Version())
}

// versionInfo is the --version-json payload.
type versionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
}

func currentVersion() versionInfo {
	return versionInfo{Version: version, Build: buildType()}
}

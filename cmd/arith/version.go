package main

import (
	"fmt"

	"github.com/maloquacious/semver"
)

// Set via -ldflags at build time.
var (
	commit = "unknown"
	date   = "unknown"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

func versionString() string {
	return fmt.Sprintf("%s (commit=%s, built=%s)", version.Core(), commit, date)
}

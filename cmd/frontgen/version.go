package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the frontgen version.
// Release installs report the module version. Other builds report the
// embedded version with a "devel-" prefix, plus the VCS revision and a
// "-dirty" suffix when the build info carries them.
func Version() string {
	base := strings.TrimSpace(embeddedVersion)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return base
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	version := "devel-" + base
	if rev := settings["vcs.revision"]; len(rev) >= 7 {
		version += "+" + rev[:7]
		if settings["vcs.modified"] == "true" {
			version += "-dirty"
		}
	}
	return version
}

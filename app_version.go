package main

import (
	"runtime/debug"
)

// set with -ldflags "-X main.app_ver=..."
var app_ver string = ""

// app_version reports the module version when installed with go install,
// the ldflags-injected version otherwise, and falls back to the vcs revision
// of a local build.
func app_version() string {
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	if app_ver != "" {
		return app_ver
	}
	if ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return "devel-" + s.Value[:7]
			}
		}
	}
	return "#UNAVAILABLE"
}

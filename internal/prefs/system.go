package prefs

import (
	"runtime"
	"runtime/debug"
	"slices"
)

const toolkitModule = "github.com/charmbracelet/bubbletea"

// SystemInfo returns the values of the System options.
func SystemInfo(packagePaths []string, settingsPath string) map[string]any {
	return map[string]any{
		KeyGoVersion:      runtime.Version(),
		KeyToolkitVersion: moduleVersion(toolkitModule),
		KeyPackagePaths:   slices.Clone(packagePaths),
		KeySettingsPath:   settingsPath,
	}
}

func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version
			}
			return dep.Version
		}
	}
	return "unknown"
}

package config

// LaunchConfig is the top-level configuration structure for launchapp.
type LaunchConfig struct {
	GlobalSettings GlobalSettings      `yaml:"globalSettings"`
	PackagePaths   []string            `yaml:"packagePaths,omitempty"`
	Projects       []ProjectDefinition `yaml:"projects,omitempty"`
}

// GlobalSettings holds window-wide settings.
type GlobalSettings struct {
	WindowTitle     string `yaml:"windowTitle,omitempty"`     // Title shown in the header, e.g. "Launch App 2.0"
	PreferencesFile string `yaml:"preferencesFile,omitempty"` // Optional: override the location of preferences.yaml
	LogLevel        string `yaml:"logLevel,omitempty"`        // debug, info, warn or error
}

// ProjectDefinition describes a project and the applications it offers.
type ProjectDefinition struct {
	Name         string                  `yaml:"name"`
	Versions     []string                `yaml:"versions,omitempty"` // Newest first
	Applications []ApplicationDefinition `yaml:"applications,omitempty"`
}

// ApplicationDefinition defines how to launch one application of a project.
type ApplicationDefinition struct {
	Name     string            `yaml:"name"`               // Unique within the project, e.g. "maya"
	Label    string            `yaml:"label,omitempty"`    // Optional display name, e.g. "Autodesk Maya"
	Icon     string            `yaml:"icon,omitempty"`     // Optional: an icon/emoji for display in the TUI
	Command  []string          `yaml:"command"`            // Command and its arguments
	Requires []string          `yaml:"requires,omitempty"` // Package requests, "name" or "name-version"
	Env      map[string]string `yaml:"env,omitempty"`      // Extra environment variables
}

// Project returns the project with the given name.
func (c LaunchConfig) Project(name string) (ProjectDefinition, bool) {
	for _, p := range c.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return ProjectDefinition{}, false
}

// ProjectNames lists the configured projects in configuration order.
func (c LaunchConfig) ProjectNames() []string {
	names := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		names = append(names, p.Name)
	}
	return names
}

// DisplayName returns the label when set and the name otherwise.
func (a ApplicationDefinition) DisplayName() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Name
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/launchapp"
	projectConfigDir = ".launchapp"
	configFileName   = "config.yaml"
)

// LoadConfig loads the launchapp configuration by layering default, user, and project settings.
func LoadConfig() (LaunchConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return LaunchConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return LaunchConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	config.PackagePaths = expandPaths(config.PackagePaths)
	if err := validate(config); err != nil {
		return LaunchConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath loads a single configuration file on top of the
// defaults, skipping the user and project layers.
func LoadConfigFromPath(path string) (LaunchConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return LaunchConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), fileConfig)
	config.PackagePaths = expandPaths(config.PackagePaths)
	if err := validate(config); err != nil {
		return LaunchConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a LaunchConfig from a YAML file.
func loadConfigFromFile(filePath string) (LaunchConfig, error) {
	var config LaunchConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return LaunchConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return LaunchConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Projects are
// matched by name; an overlay project replaces the base one in place and new
// projects are appended, so the configured order survives.
func mergeConfigs(base, overlay LaunchConfig) LaunchConfig {
	merged := base

	if overlay.GlobalSettings.WindowTitle != "" {
		merged.GlobalSettings.WindowTitle = overlay.GlobalSettings.WindowTitle
	}
	if overlay.GlobalSettings.PreferencesFile != "" {
		merged.GlobalSettings.PreferencesFile = overlay.GlobalSettings.PreferencesFile
	}
	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}

	if len(overlay.PackagePaths) > 0 {
		merged.PackagePaths = append([]string(nil), overlay.PackagePaths...)
	}

	merged.Projects = append([]ProjectDefinition(nil), base.Projects...)
	for _, p := range overlay.Projects {
		replaced := false
		for i := range merged.Projects {
			if merged.Projects[i].Name == p.Name {
				merged.Projects[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			merged.Projects = append(merged.Projects, p)
		}
	}

	return merged
}

// expandPaths resolves ${VAR} references and a leading ~ in package paths.
func expandPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = os.ExpandEnv(p)
		if len(p) > 1 && p[0] == '~' && p[1] == '/' {
			if home, err := osUserHomeDir(); err == nil {
				p = filepath.Join(home, p[2:])
			}
		}
		out = append(out, p)
	}
	return out
}

func validate(c LaunchConfig) error {
	seen := make(map[string]bool)
	for _, p := range c.Projects {
		if p.Name == "" {
			return fmt.Errorf("project without name")
		}
		if seen[p.Name] {
			return fmt.Errorf("project %q defined twice", p.Name)
		}
		seen[p.Name] = true

		apps := make(map[string]bool)
		for _, a := range p.Applications {
			if a.Name == "" {
				return fmt.Errorf("project %q: application without name", p.Name)
			}
			if apps[a.Name] {
				return fmt.Errorf("project %q: application %q defined twice", p.Name, a.Name)
			}
			apps[a.Name] = true
		}
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

package prefs

// Preference keys.
const (
	KeyStartupProject       = "startupProject"
	KeyStartupApplication   = "startupApplication"
	KeyPrimaryColor         = "primaryColor"
	KeySecondaryColor       = "secondaryColor"
	KeyResetLayout          = "resetLayout"
	KeySmallIcons           = "smallIcons"
	KeyAllowMultipleDocks   = "allowMultipleDocks"
	KeyShowAdvancedControls = "showAdvancedControls"
	KeyLayout               = "layout"
	KeyDefaultLayout        = "defaultLayout"

	KeyGoVersion      = "goVersion"
	KeyToolkitVersion = "toolkitVersion"
	KeyPackagePaths   = "packagePaths"
	KeySettingsPath   = "settingsPath"
)

// Kind tells the preferences dock how to present an option.
type Kind int

const (
	KindInfo Kind = iota
	KindBoolean
	KindButton
	KindSeparator
)

// Option describes one entry of the preferences dock.
type Option struct {
	Name    string
	Kind    Kind
	Help    string
	Default any
	// Disabled options are listed but cannot be edited.
	Disabled bool
	// System options describe the running program and are never stored.
	System bool
}

// Options lists every user-facing preference in display order.
func Options() []Option {
	return []Option{
		{Name: KeyStartupProject, Kind: KindInfo, Help: "Load this project on startup"},
		{Name: KeyStartupApplication, Kind: KindInfo, Help: "Load this application on startup"},

		{Name: "Theme", Kind: KindSeparator},
		{Name: KeyPrimaryColor, Kind: KindInfo, Default: "white", Help: "Main color of the GUI"},
		{Name: KeySecondaryColor, Kind: KindInfo, Default: "steelblue", Help: "Secondary color of the GUI"},
		{Name: KeyResetLayout, Kind: KindButton, Help: "Reset stored layout to their defaults"},

		{Name: "Settings", Kind: KindSeparator},
		{Name: KeySmallIcons, Kind: KindBoolean, Default: false, Disabled: true, Help: "Draw small icons"},
		{Name: KeyAllowMultipleDocks, Kind: KindBoolean, Default: false, Help: "Allow more than one dock to exist at a time"},
		{Name: KeyShowAdvancedControls, Kind: KindBoolean, Default: false, Help: "Show developer-centric controls"},

		{Name: "System", Kind: KindSeparator},
		{Name: KeyGoVersion, Kind: KindInfo, System: true, Help: "Go runtime the launcher was built with"},
		{Name: KeyToolkitVersion, Kind: KindInfo, System: true, Help: "Version of the terminal UI toolkit"},
		{Name: KeyPackagePaths, Kind: KindInfo, System: true, Help: "Directories searched for packages"},
		{Name: KeySettingsPath, Kind: KindInfo, System: true, Help: "Where these preferences are stored"},
	}
}

// Editable reports whether the option can be changed by the user.
func (o Option) Editable() bool {
	return !o.Disabled && (o.Kind == KindBoolean || o.Kind == KindButton)
}

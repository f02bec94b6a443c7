package window

// Preferences are the user settings the window consults. They are passed
// into every decision instead of being read from a global store.
type Preferences struct {
	AllowMultipleDocks   bool
	ShowAdvancedControls bool
}

// Input describes the circumstances of a single activation.
type Input struct {
	// Modifier is true when the exclusive-show modifier key was held.
	Modifier bool
	Prefs    Preferences
}

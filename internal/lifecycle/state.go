// Package lifecycle defines the phases the launcher moves through while it
// boots, resolves and launches applications.
package lifecycle

// State is the name of a lifecycle phase. It is a plain string so that
// controllers can introduce new phases without breaking older views.
type State string

const (
	Booting     State = "booting"
	Home        State = "home"
	Errored     State = "errored"
	NoApps      State = "noapps"
	PkgNotFound State = "pkgnotfound"
	NotResolved State = "notresolved"
	Loading     State = "loading"
	Launching   State = "launching"
	Ready       State = "ready"
)

// Known returns every state the window knows how to present.
func Known() []State {
	return []State{Booting, Home, Errored, NoApps, PkgNotFound, NotResolved, Loading, Launching, Ready}
}

// IsKnown reports whether s is one of the predefined states.
func (s State) IsKnown() bool {
	for _, k := range Known() {
		if s == k {
			return true
		}
	}
	return false
}

// String makes State satisfy the fmt.Stringer interface.
func (s State) String() string {
	return string(s)
}

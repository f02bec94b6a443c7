package window

import (
	"iter"
	"slices"

	"launchapp/pkg/logging"
)

// TabGroup is one tab strip as currently rendered by the host: an
// identifier that is only meaningful until the next regroup, and the titles
// of its tabs in display order.
type TabGroup struct {
	ID     string
	Titles []string
}

// Contains reports whether a tab with exactly this title is in the group.
func (g TabGroup) Contains(title string) bool {
	return slices.Contains(g.Titles, title)
}

// TabHost is the part of the host toolkit the window needs. Groups are
// created, regrouped and destroyed by the host at any time, so callers must
// not keep the result of TabGroups beyond a single decision.
type TabHost interface {
	TabGroups() iter.Seq[TabGroup]
	SelectTab(groupID, title string) bool
}

// TabGroupResolver finds the tab strip a dock lives in by its title.
type TabGroupResolver struct {
	host TabHost
}

// NewTabGroupResolver returns a resolver reading from host.
func NewTabGroupResolver(host TabHost) *TabGroupResolver {
	return &TabGroupResolver{host: host}
}

// FindGroupContaining returns the first group holding a tab titled like d.
// The boolean is false when d is not tabbed with anything, for example when
// it floats or has not been rendered yet.
func (r *TabGroupResolver) FindGroupContaining(d *Dock) (TabGroup, bool) {
	var (
		found TabGroup
		ok    bool
	)
	for g := range r.host.TabGroups() {
		if !g.Contains(d.Title) {
			continue
		}
		if ok {
			// Titles are unique among visible docks; keep the first match.
			logging.Warn(subsystem, "dock title %q appears in tab groups %q and %q", d.Title, found.ID, g.ID)
			continue
		}
		found, ok = g, true
	}
	return found, ok
}

package dockarea

import (
	"fmt"
	"iter"
	"slices"

	"launchapp/internal/window"
)

// group is a set of docks sharing one slot of the screen. Only visible,
// docked members are shown; with two or more of them the slot renders a
// tab strip.
type group struct {
	id      string
	members []*window.Dock
	current *window.Dock
}

// Area arranges docks into groups and floating panels. It is the host side
// of the window: the coordinator reads its tab strips and selects tabs, and
// every visibility change reaches it through the dispatcher.
type Area struct {
	docks    *window.Registry
	events   *window.Dispatcher
	groups   []*group
	floating map[string]bool
	focus    *window.Dock
	seq      int
}

// New places every dock of docks in a group of its own and subscribes to
// visibility changes.
func New(docks *window.Registry, events *window.Dispatcher) *Area {
	a := &Area{
		docks:    docks,
		events:   events,
		floating: make(map[string]bool),
	}
	for d := range docks.All() {
		a.groups = append(a.groups, a.newGroup(d))
	}
	events.Subscribe(a.onVisibilityChanged)
	return a
}

func (a *Area) newGroup(members ...*window.Dock) *group {
	a.seq++
	g := &group{id: fmt.Sprintf("g%d", a.seq), members: members}
	g.current = a.firstShown(g)
	return g
}

func (a *Area) docked(d *window.Dock) bool {
	return d.IsVisible() && !a.floating[d.ID]
}

func (a *Area) firstShown(g *group) *window.Dock {
	for _, d := range g.members {
		if a.docked(d) {
			return d
		}
	}
	return nil
}

func (a *Area) shown(g *group) []*window.Dock {
	var out []*window.Dock
	for _, d := range g.members {
		if a.docked(d) {
			out = append(out, d)
		}
	}
	return out
}

func (a *Area) groupOf(d *window.Dock) (*group, int) {
	for i, g := range a.groups {
		if slices.Contains(g.members, d) {
			return g, i
		}
	}
	return nil, -1
}

func (a *Area) groupByID(id string) *group {
	for _, g := range a.groups {
		if g.id == id {
			return g
		}
	}
	return nil
}

func (a *Area) onVisibilityChanged(d *window.Dock, visible bool) {
	g, _ := a.groupOf(d)
	if g == nil {
		return
	}
	if visible {
		if g.current == nil || !a.docked(g.current) {
			g.current = d
		}
		if a.focus == nil || !a.focus.IsVisible() {
			a.focus = d
		}
		return
	}
	if g.current == d {
		g.current = a.firstShown(g)
	}
	if a.focus == d {
		a.focus = a.Active()
	}
}

// TabifyAll stacks every dock into one group in registration order and
// docks floating panels again.
func (a *Area) TabifyAll() {
	var all []*window.Dock
	for d := range a.docks.All() {
		all = append(all, d)
	}
	a.floating = make(map[string]bool)
	a.groups = []*group{a.newGroup(all...)}
}

// TabGroups yields the tab strips currently on screen. A group with fewer
// than two visible docked members has no strip and is skipped.
func (a *Area) TabGroups() iter.Seq[window.TabGroup] {
	return func(yield func(window.TabGroup) bool) {
		for _, g := range a.groups {
			shown := a.shown(g)
			if len(shown) < 2 {
				continue
			}
			titles := make([]string, len(shown))
			for i, d := range shown {
				titles[i] = d.Title
			}
			if !yield(window.TabGroup{ID: g.id, Titles: titles}) {
				return
			}
		}
	}
}

// SelectTab brings the tab titled title of group groupID to the front. It
// returns false when the group or tab no longer exists.
func (a *Area) SelectTab(groupID, title string) bool {
	g := a.groupByID(groupID)
	if g == nil {
		return false
	}
	for _, d := range a.shown(g) {
		if d.Title == title {
			g.current = d
			a.focus = d
			return true
		}
	}
	return false
}

// Pane is one slot of the screen as it should be drawn.
type Pane struct {
	GroupID  string
	Tabs     []*window.Dock // Empty unless the pane renders a tab strip
	Current  *window.Dock
	Floating bool
}

// Panes lists what is on screen: docked groups first, then floating docks,
// both in order.
func (a *Area) Panes() []Pane {
	var panes []Pane
	for _, g := range a.groups {
		shown := a.shown(g)
		if len(shown) == 0 {
			continue
		}
		current := g.current
		if current == nil || !a.docked(current) {
			current = shown[0]
		}
		p := Pane{GroupID: g.id, Current: current}
		if len(shown) > 1 {
			p.Tabs = shown
		}
		panes = append(panes, p)
	}
	for d := range a.docks.All() {
		if d.IsVisible() && a.floating[d.ID] {
			panes = append(panes, Pane{Current: d, Floating: true})
		}
	}
	return panes
}

// Active returns the dock that has the keyboard focus, or nil when nothing
// is visible.
func (a *Area) Active() *window.Dock {
	if a.focus != nil && a.focus.IsVisible() {
		return a.focus
	}
	for _, p := range a.Panes() {
		return p.Current
	}
	return nil
}

// Focus moves the keyboard focus to d and raises it in its group.
func (a *Area) Focus(d *window.Dock) {
	if d == nil || !d.IsVisible() {
		return
	}
	a.focus = d
	if g, _ := a.groupOf(d); g != nil && a.docked(d) {
		g.current = d
	}
}

// FocusNextPane cycles the focus between panes by delta.
func (a *Area) FocusNextPane(delta int) {
	panes := a.Panes()
	if len(panes) == 0 {
		return
	}
	active := a.Active()
	idx := 0
	for i, p := range panes {
		if p.Current == active {
			idx = i
			break
		}
	}
	next := (idx + delta%len(panes) + len(panes)) % len(panes)
	a.focus = panes[next].Current
}

// CycleTab moves the front tab of the focused group by delta, wrapping
// around.
func (a *Area) CycleTab(delta int) {
	active := a.Active()
	if active == nil || a.floating[active.ID] {
		return
	}
	g, _ := a.groupOf(active)
	shown := a.shown(g)
	if len(shown) < 2 {
		return
	}
	idx := slices.Index(shown, active)
	next := (idx + delta%len(shown) + len(shown)) % len(shown)
	g.current = shown[next]
	a.focus = shown[next]
}

// MoveToNextGroup takes d out of its group and appends it to the following
// group, or to a new group when d's group is the last one. It reports
// whether the arrangement changed.
func (a *Area) MoveToNextGroup(d *window.Dock) bool {
	g, idx := a.groupOf(d)
	if g == nil {
		return false
	}
	if idx == len(a.groups)-1 && len(g.members) == 1 {
		return false
	}

	g.members = slices.DeleteFunc(g.members, func(m *window.Dock) bool { return m == d })
	if g.current == d {
		g.current = a.firstShown(g)
	}

	targetIdx := idx + 1
	if len(g.members) == 0 {
		a.groups = slices.Delete(a.groups, idx, idx+1)
		targetIdx = idx
	}

	if targetIdx < len(a.groups) {
		target := a.groups[targetIdx]
		target.members = append(target.members, d)
		if a.docked(d) {
			target.current = d
		}
	} else {
		a.groups = append(a.groups, a.newGroup(d))
	}
	a.focus = d
	return true
}

// SetFloating undocks d into a panel of its own, or docks it back into the
// group it came from.
func (a *Area) SetFloating(d *window.Dock, floating bool) {
	if floating {
		a.floating[d.ID] = true
	} else {
		delete(a.floating, d.ID)
	}
	if g, _ := a.groupOf(d); g != nil {
		if floating && g.current == d {
			g.current = a.firstShown(g)
		}
		if !floating && a.docked(d) {
			g.current = d
		}
	}
}

// IsFloating reports whether d is undocked.
func (a *Area) IsFloating(d *window.Dock) bool {
	return a.floating[d.ID]
}

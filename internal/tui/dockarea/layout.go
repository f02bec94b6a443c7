package dockarea

import (
	"encoding/json"
	"fmt"
	"slices"

	"launchapp/internal/window"
)

// Layout is a serialisable snapshot of an Area. Docks are referenced by ID.
type Layout struct {
	Groups   [][]string `json:"groups"`
	Current  []string   `json:"current"`
	Floating []string   `json:"floating,omitempty"`
	Visible  []string   `json:"visible"`
	Focus    string     `json:"focus,omitempty"`
}

// Snapshot captures the current arrangement and visibility.
func (a *Area) Snapshot() Layout {
	var l Layout
	for _, g := range a.groups {
		ids := make([]string, len(g.members))
		for i, d := range g.members {
			ids[i] = d.ID
		}
		l.Groups = append(l.Groups, ids)
		current := ""
		if g.current != nil {
			current = g.current.ID
		}
		l.Current = append(l.Current, current)
	}
	for d := range a.docks.All() {
		if a.floating[d.ID] {
			l.Floating = append(l.Floating, d.ID)
		}
		if d.IsVisible() {
			l.Visible = append(l.Visible, d.ID)
		}
	}
	if a.focus != nil {
		l.Focus = a.focus.ID
	}
	return l
}

// Restore rebuilds the arrangement from l. Docks that l does not mention
// get a group of their own at the end. Visibility is changed through the
// dispatcher so that toggles follow.
func (a *Area) Restore(l Layout) error {
	lookup := func(id string) (*window.Dock, error) {
		d, ok := a.docks.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("layout references unknown dock %q", id)
		}
		return d, nil
	}

	placed := make(map[string]bool)
	var groups []*group
	for i, ids := range l.Groups {
		var members []*window.Dock
		for _, id := range ids {
			d, err := lookup(id)
			if err != nil {
				return err
			}
			if placed[id] {
				return fmt.Errorf("layout places dock %q twice", id)
			}
			placed[id] = true
			members = append(members, d)
		}
		if len(members) == 0 {
			continue
		}
		g := &group{members: members}
		if i < len(l.Current) && l.Current[i] != "" {
			if d, ok := a.docks.Lookup(l.Current[i]); ok && slices.Contains(members, d) {
				g.current = d
			}
		}
		groups = append(groups, g)
	}
	for _, id := range append(slices.Clone(l.Floating), l.Visible...) {
		if _, err := lookup(id); err != nil {
			return err
		}
	}

	for d := range a.docks.All() {
		if !placed[d.ID] {
			groups = append(groups, &group{members: []*window.Dock{d}})
		}
	}
	for _, g := range groups {
		a.seq++
		g.id = fmt.Sprintf("g%d", a.seq)
	}

	a.groups = groups
	a.floating = make(map[string]bool)
	for _, id := range l.Floating {
		a.floating[id] = true
	}
	a.focus = nil

	wanted := make(map[*group]*window.Dock, len(groups))
	for _, g := range groups {
		wanted[g] = g.current
	}
	for d := range a.docks.All() {
		a.events.SetVisible(d, slices.Contains(l.Visible, d.ID))
	}
	for _, g := range a.groups {
		g.current = wanted[g]
		if g.current == nil || !a.docked(g.current) {
			g.current = a.firstShown(g)
		}
	}
	if d, ok := a.docks.Lookup(l.Focus); ok && d.IsVisible() {
		a.focus = d
	} else {
		a.focus = a.Active()
	}
	return nil
}

// Encode serialises l for storage in the preferences.
func (l Layout) Encode() (string, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encoding layout: %w", err)
	}
	return string(data), nil
}

// ParseLayout reads a layout produced by Encode.
func ParseLayout(s string) (Layout, error) {
	var l Layout
	if err := json.Unmarshal([]byte(s), &l); err != nil {
		return Layout{}, fmt.Errorf("decoding layout: %w", err)
	}
	return l, nil
}

package window

import (
	"fmt"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost is a TabHost whose groups tests can rearrange between calls.
type fakeHost struct {
	groups     []TabGroup
	selected   map[string]string
	enumerated int
}

func newFakeHost(groups ...[]string) *fakeHost {
	h := &fakeHost{selected: make(map[string]string)}
	for i, titles := range groups {
		h.groups = append(h.groups, TabGroup{ID: fmt.Sprintf("strip-%d", i), Titles: titles})
	}
	return h
}

func (h *fakeHost) TabGroups() iter.Seq[TabGroup] {
	h.enumerated++
	return func(yield func(TabGroup) bool) {
		for _, g := range h.groups {
			if !yield(g) {
				return
			}
		}
	}
}

func (h *fakeHost) SelectTab(groupID, title string) bool {
	for _, g := range h.groups {
		if g.ID == groupID && g.Contains(title) {
			h.selected[groupID] = title
			return true
		}
	}
	return false
}

type fixture struct {
	docks  *Registry
	host   *fakeHost
	events *Dispatcher
	coord  *Coordinator
	sm     *StateMachine
}

func newFixture(t *testing.T, host *fakeHost, docks ...*Dock) *fixture {
	t.Helper()
	reg := NewRegistry()
	for _, d := range docks {
		require.NoError(t, reg.Register(d))
	}
	events := NewDispatcher()
	coord := NewCoordinator(reg, host, events)
	sm := NewStateMachine(reg, coord, events, Layout{AppDock: "app", ConsoleDock: "console"})
	return &fixture{docks: reg, host: host, events: events, coord: coord, sm: sm}
}

func launcherDocks() []*Dock {
	return []*Dock{
		NewDock("app", "App", false),
		NewDock("packages", "Packages", true),
		NewDock("context", "Context", true),
		NewDock("environment", "Environment", true),
		NewDock("console", "Console", false),
		NewDock("commands", "Commands", true),
		NewDock("preferences", "Preferences", false),
	}
}

func visibleIDs(reg *Registry) []string {
	var ids []string
	for d := range reg.All() {
		if d.IsVisible() {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

func TestRegistry_OrderAndLookup(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.First())

	for _, d := range launcherDocks() {
		require.NoError(t, reg.Register(d))
	}
	assert.Error(t, reg.Register(NewDock("app", "App again", false)))
	assert.Error(t, reg.Register(nil))

	var ids []string
	for d := range reg.All() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"app", "packages", "context", "environment", "console", "commands", "preferences"}, ids)

	// The sequence is restartable.
	count := 0
	for range reg.All() {
		count++
	}
	assert.Equal(t, reg.Len(), count)
	assert.Equal(t, "app", reg.First().ID)

	d, ok := reg.Lookup("console")
	require.True(t, ok)
	assert.Equal(t, "Console", d.Title)
	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestNewDock_ToggleIsBound(t *testing.T) {
	d := NewDock("console", "Console", false)
	assert.Same(t, d, d.Toggle().Dock())
	assert.False(t, d.IsVisible())
	assert.True(t, d.IsEnabled())
	assert.False(t, d.Toggle().IsChecked())
}

func TestTabGroupResolver_FindGroupContaining(t *testing.T) {
	host := newFakeHost([]string{"App", "Packages"}, []string{"Console"})
	r := NewTabGroupResolver(host)

	g, ok := r.FindGroupContaining(NewDock("console", "Console", false))
	require.True(t, ok)
	assert.Equal(t, "strip-1", g.ID)
	assert.Equal(t, []string{"Console"}, g.Titles)

	_, ok = r.FindGroupContaining(NewDock("missing", "Missing", false))
	assert.False(t, ok)
}

func TestTabGroupResolver_ReResolvesEveryCall(t *testing.T) {
	host := newFakeHost([]string{"App", "Console"})
	r := NewTabGroupResolver(host)
	console := NewDock("console", "Console", false)

	g, ok := r.FindGroupContaining(console)
	require.True(t, ok)
	assert.Equal(t, "strip-0", g.ID)

	// The user drags Console into a strip of its own.
	host.groups = []TabGroup{{ID: "strip-7", Titles: []string{"App", "Packages"}}, {ID: "strip-8", Titles: []string{"Console", "Commands"}}}
	g, ok = r.FindGroupContaining(console)
	require.True(t, ok)
	assert.Equal(t, "strip-8", g.ID)
	assert.Equal(t, 2, host.enumerated)
}

func TestTabGroupResolver_DuplicateTitleKeepsFirst(t *testing.T) {
	host := newFakeHost([]string{"Console", "App"}, []string{"Packages", "Console"})
	r := NewTabGroupResolver(host)

	g, ok := r.FindGroupContaining(NewDock("console", "Console", false))
	require.True(t, ok)
	assert.Equal(t, "strip-0", g.ID)
}

func TestCoordinator_ExclusiveScenario(t *testing.T) {
	a := NewDock("a", "A", false)
	b := NewDock("b", "B", false)
	c := NewDock("c", "C", false)
	f := newFixture(t, newFakeHost(), a, b, c)
	in := Input{Prefs: Preferences{AllowMultipleDocks: false}}

	f.coord.Activate(b, in)
	assert.Equal(t, []string{"b"}, visibleIDs(f.docks))
	assert.True(t, b.Toggle().IsChecked())

	f.coord.Activate(c, Input{Modifier: true, Prefs: in.Prefs})
	assert.Equal(t, []string{"c"}, visibleIDs(f.docks))
	assert.False(t, b.IsVisible())
	assert.False(t, b.Toggle().IsChecked())
	assert.True(t, c.Toggle().IsChecked())
}

func TestCoordinator_ExclusiveAfterEveryActivate(t *testing.T) {
	docks := launcherDocks()
	f := newFixture(t, newFakeHost([]string{"App", "Packages", "Console"}), docks...)
	prefs := Preferences{AllowMultipleDocks: false, ShowAdvancedControls: true}

	sequence := []int{0, 4, 4, 1, 6, 2, 0, 5, 3}
	for _, i := range sequence {
		f.coord.Activate(docks[i], Input{Prefs: prefs})
		assert.Equal(t, []string{docks[i].ID}, visibleIDs(f.docks), "after activating %s", docks[i].ID)
	}
}

func TestCoordinator_ModifierForcesExclusiveWithMultipleAllowed(t *testing.T) {
	docks := launcherDocks()
	f := newFixture(t, newFakeHost(), docks...)
	prefs := Preferences{AllowMultipleDocks: true, ShowAdvancedControls: true}

	f.coord.Activate(docks[0], Input{Prefs: prefs})
	f.coord.Activate(docks[4], Input{Prefs: prefs})
	assert.Equal(t, []string{"app", "console"}, visibleIDs(f.docks))

	f.coord.Activate(docks[6], Input{Modifier: true, Prefs: prefs})
	assert.Equal(t, []string{"preferences"}, visibleIDs(f.docks))
}

func TestCoordinator_ActivateSelectsTabWhenMultipleAllowed(t *testing.T) {
	docks := launcherDocks()
	host := newFakeHost([]string{"App", "Console"}, []string{"Preferences"})
	f := newFixture(t, host, docks...)
	prefs := Preferences{AllowMultipleDocks: true}

	app, console := docks[0], docks[4]
	f.events.SetVisible(app, true)
	f.coord.Activate(console, Input{Prefs: prefs})

	assert.Equal(t, "Console", host.selected["strip-0"])
	assert.True(t, app.IsVisible(), "other members keep their visibility")
	assert.True(t, console.IsVisible())
}

func TestCoordinator_ActivateWithoutGroupIsNoop(t *testing.T) {
	docks := launcherDocks()
	host := newFakeHost([]string{"App", "Console"})
	f := newFixture(t, host, docks...)

	prefs := Preferences{AllowMultipleDocks: true}
	f.coord.Activate(docks[6], Input{Prefs: prefs})

	assert.Empty(t, host.selected)
	assert.Equal(t, []string{"preferences"}, visibleIDs(f.docks))
}

func TestCoordinator_ActivateIsIdempotent(t *testing.T) {
	for _, allow := range []bool{false, true} {
		t.Run(fmt.Sprintf("allowMultiple=%v", allow), func(t *testing.T) {
			docks := launcherDocks()
			f := newFixture(t, newFakeHost([]string{"App", "Console"}), docks...)
			in := Input{Prefs: Preferences{AllowMultipleDocks: allow}}

			f.coord.Activate(docks[0], in)
			f.coord.Activate(docks[4], in)
			once := visibleIDs(f.docks)
			f.coord.Activate(docks[4], in)
			assert.Equal(t, once, visibleIDs(f.docks))
		})
	}
}

func TestCoordinator_ToggleRoundTrip(t *testing.T) {
	for _, allow := range []bool{false, true} {
		t.Run(fmt.Sprintf("allowMultiple=%v", allow), func(t *testing.T) {
			docks := launcherDocks()
			f := newFixture(t, newFakeHost(), docks...)
			in := Input{Prefs: Preferences{AllowMultipleDocks: allow}}
			console := docks[4]

			before := console.IsVisible()
			f.coord.OnToggleClicked(console, in)
			assert.NotEqual(t, before, console.IsVisible())
			assert.Equal(t, console.IsVisible(), console.Toggle().IsChecked())

			f.coord.OnToggleClicked(console, in)
			assert.Equal(t, before, console.IsVisible())
			assert.Equal(t, before, console.Toggle().IsChecked())
		})
	}
}

func TestCoordinator_HostCloseSyncsToggleOnly(t *testing.T) {
	docks := launcherDocks()
	host := newFakeHost([]string{"App", "Console"})
	f := newFixture(t, host, docks...)
	in := Input{Prefs: Preferences{AllowMultipleDocks: true}}

	f.coord.OnToggleClicked(docks[0], in)
	f.coord.OnToggleClicked(docks[4], in)
	selections := len(host.selected)
	enumerations := host.enumerated

	// The user closes the console from the host.
	f.events.SetVisible(docks[4], false)
	assert.False(t, docks[4].Toggle().IsChecked())
	assert.True(t, docks[0].IsVisible())
	assert.Equal(t, selections, len(host.selected))
	assert.Equal(t, enumerations, host.enumerated, "a visibility notification must not re-resolve tabs")
}

func TestCoordinator_ActivateRefusedDuringNotification(t *testing.T) {
	docks := launcherDocks()
	f := newFixture(t, newFakeHost(), docks...)
	in := Input{Prefs: Preferences{AllowMultipleDocks: false}}

	// A misbehaving subscriber tries to activate the console whenever the
	// app dock changes.
	activations := 0
	f.events.Subscribe(func(d *Dock, visible bool) {
		if d.ID == "app" {
			activations++
			f.coord.Activate(docks[4], in)
		}
	})

	f.coord.Activate(docks[0], in)
	assert.Equal(t, 1, activations)
	assert.Equal(t, []string{"app"}, visibleIDs(f.docks))
}

func TestCoordinator_AdvancedDockStaysHidden(t *testing.T) {
	docks := launcherDocks()
	f := newFixture(t, newFakeHost(), docks...)
	prefs := Preferences{AllowMultipleDocks: true, ShowAdvancedControls: false}
	packages := docks[1]

	f.coord.OnToggleClicked(packages, Input{Prefs: prefs})
	assert.False(t, packages.IsVisible())

	f.coord.Activate(packages, Input{Prefs: prefs})
	assert.False(t, packages.IsVisible())
}

func TestStateMachine_InitialState(t *testing.T) {
	f := newFixture(t, newFakeHost(), launcherDocks()...)
	assert.Equal(t, "booting", f.sm.State().String())
	assert.Equal(t, PageBooting, f.sm.Page())
}

func TestStateMachine_Pages(t *testing.T) {
	tests := []struct {
		state string
		want  Page
	}{
		{"booting", PageBooting},
		{"home", PageHome},
		{"noapps", PageNoApps},
		{"errored", PageErrored},
		{"pkgnotfound", PageErrored},
		{"notresolved", PageHome},
		{"launching", PageHome},
		{"ready", PageHome},
		{"banana", PageHome},
		{"", PageHome},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			f := newFixture(t, newFakeHost(), launcherDocks()...)
			assert.NotPanics(t, func() {
				f.sm.Apply(stateOf(tt.state), Env{Project: "alita"})
			})
			assert.Equal(t, tt.want, f.sm.Page())
			assert.Equal(t, tt.state, f.sm.Controls().StateIndicator.Text)
		})
	}
}

func TestStateMachine_LoadingKeepsPageAndDisablesDocks(t *testing.T) {
	f := newFixture(t, newFakeHost(), launcherDocks()...)

	f.sm.Apply(stateOf("noapps"), Env{Project: "alita"})
	f.sm.Apply(stateOf("loading"), Env{Project: "alita"})
	assert.Equal(t, PageNoApps, f.sm.Page())
	for d := range f.docks.All() {
		assert.False(t, d.IsEnabled(), d.ID)
	}
	assert.False(t, f.sm.Controls().Apps.Enabled)

	f.sm.Apply(stateOf("ready"), Env{Project: "alita"})
	for d := range f.docks.All() {
		assert.True(t, d.IsEnabled(), d.ID)
	}
}

func TestStateMachine_ReadyEnablesControls(t *testing.T) {
	f := newFixture(t, newFakeHost(), launcherDocks()...)

	f.sm.Apply(stateOf("home"), Env{})
	c := f.sm.Controls()
	assert.False(t, c.Apps.Enabled)
	assert.False(t, c.ProjectButton.Enabled)

	f.sm.Apply(stateOf("ready"), Env{})
	c = f.sm.Controls()
	assert.True(t, c.Apps.Enabled)
	assert.True(t, c.ProjectButton.Enabled)
	assert.True(t, c.ProjectVersions.Enabled)
	assert.True(t, c.Launch.Enabled)
	assert.Equal(t, LaunchLabel, c.Launch.Text)
}

func TestStateMachine_NoAppsMessage(t *testing.T) {
	f := newFixture(t, newFakeHost(), launcherDocks()...)

	f.sm.Apply(stateOf("noapps"), Env{Project: "alita"})
	c := f.sm.Controls()
	assert.True(t, c.ProjectButton.Enabled)
	assert.Equal(t, "No applications found for alita", c.NoAppsMessage.Text)
}

func TestStateMachine_LaunchingDisablesAppDock(t *testing.T) {
	f := newFixture(t, newFakeHost(), launcherDocks()...)

	f.sm.Apply(stateOf("launching"), Env{})
	app, _ := f.docks.Lookup("app")
	console, _ := f.docks.Lookup("console")
	assert.False(t, app.IsEnabled())
	assert.True(t, console.IsEnabled())
}

func TestStateMachine_NotResolved(t *testing.T) {
	f := newFixture(t, newFakeHost(), launcherDocks()...)

	f.sm.Apply(stateOf("notresolved"), Env{})
	c := f.sm.Controls()
	assert.Equal(t, PageHome, f.sm.Page())
	assert.False(t, c.Apps.Enabled)
	assert.False(t, c.Launch.Enabled)
	assert.Equal(t, NotResolvedLabel, c.Launch.Text)

	// Nothing leaks into the next state.
	f.sm.Apply(stateOf("ready"), Env{})
	assert.True(t, f.sm.Controls().Launch.Enabled)
	assert.Equal(t, LaunchLabel, f.sm.Controls().Launch.Text)
}

func TestStateMachine_BootingReadyErroredScenario(t *testing.T) {
	for _, allow := range []bool{false, true} {
		t.Run(fmt.Sprintf("allowMultiple=%v", allow), func(t *testing.T) {
			docks := launcherDocks()
			host := newFakeHost([]string{"App", "Console", "Preferences"})
			f := newFixture(t, host, docks...)
			env := Env{Project: "alita", Prefs: Preferences{AllowMultipleDocks: allow}}

			f.sm.Apply(stateOf("booting"), env)
			f.sm.Apply(stateOf("ready"), env)
			f.coord.OnToggleClicked(docks[0], Input{Prefs: env.Prefs})

			f.sm.Apply(stateOf("errored"), env)

			c := f.sm.Controls()
			console := docks[4]
			assert.Equal(t, PageErrored, f.sm.Page())
			assert.False(t, c.Apps.Enabled)
			assert.False(t, c.Launch.Enabled)
			assert.Equal(t, PackageNotFoundLabel, c.Launch.Text)
			assert.True(t, console.IsVisible())
			assert.True(t, console.Toggle().IsChecked())
			if allow {
				assert.Equal(t, "Console", host.selected["strip-0"])
				assert.True(t, docks[0].IsVisible())
			} else {
				assert.Equal(t, []string{"console"}, visibleIDs(f.docks))
			}
		})
	}
}

func TestStateMachine_AdvancedDocksHiddenInEveryState(t *testing.T) {
	states := []string{"booting", "home", "errored", "noapps", "pkgnotfound", "notresolved", "loading", "launching", "ready", "banana"}
	for _, state := range states {
		t.Run(state, func(t *testing.T) {
			docks := launcherDocks()
			f := newFixture(t, newFakeHost(), docks...)
			shown := Preferences{AllowMultipleDocks: true, ShowAdvancedControls: true}

			for _, d := range docks {
				f.coord.Activate(d, Input{Prefs: shown})
			}

			hidden := Preferences{AllowMultipleDocks: true}
			f.sm.Apply(stateOf(state), Env{Prefs: hidden})
			for d := range f.docks.All() {
				if d.Advanced {
					assert.False(t, d.IsVisible(), d.ID)
					assert.True(t, d.Toggle().IsHidden(), d.ID)
					assert.False(t, d.Toggle().IsChecked(), d.ID)
				} else {
					assert.False(t, d.Toggle().IsHidden(), d.ID)
				}
			}
			assert.False(t, f.sm.Controls().ProjectVersions.Visible)
		})
	}
}

func TestStateMachine_ApplyAdvancedRevealsToggles(t *testing.T) {
	docks := launcherDocks()
	f := newFixture(t, newFakeHost(), docks...)

	f.sm.Apply(stateOf("ready"), Env{})
	assert.True(t, docks[1].Toggle().IsHidden())

	f.sm.ApplyAdvanced(Preferences{ShowAdvancedControls: true})
	assert.False(t, docks[1].Toggle().IsHidden())
	assert.True(t, f.sm.Controls().ProjectVersions.Visible)
	assert.False(t, docks[1].IsVisible(), "revealing toggles does not show docks")
}

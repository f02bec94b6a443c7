package dockarea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_SnapshotRestoreRoundTrip(t *testing.T) {
	f := newFixture(t, "App", "Packages", "Console", "Commands")
	f.area.TabifyAll()
	f.show("App", "Packages", "Console", "Commands")
	require.True(t, f.area.MoveToNextGroup(f.docks["Commands"]))
	f.area.SetFloating(f.docks["Console"], true)
	f.area.Focus(f.docks["Packages"])

	saved := f.area.Snapshot()
	encoded, err := saved.Encode()
	require.NoError(t, err)

	f.area.TabifyAll()
	f.events.SetVisible(f.docks["Packages"], false)

	decoded, err := ParseLayout(encoded)
	require.NoError(t, err)
	require.NoError(t, f.area.Restore(decoded))

	assert.True(t, f.docks["Packages"].IsVisible())
	assert.True(t, f.docks["Packages"].Toggle().IsChecked(), "restoring visibility goes through the dispatcher")
	assert.True(t, f.area.IsFloating(f.docks["Console"]))
	assert.Equal(t, [][]string{{"App", "Packages"}}, groupsOf(f.area))
	assert.Equal(t, f.docks["Packages"], f.area.Active())
	assert.Equal(t, saved.Groups, f.area.Snapshot().Groups)
}

func TestLayout_RestoreKeepsCurrentTab(t *testing.T) {
	f := newFixture(t, "App", "Packages", "Console")
	f.area.TabifyAll()
	f.show("App", "Packages", "Console")
	f.area.Focus(f.docks["Console"])
	saved := f.area.Snapshot()

	for _, d := range f.docks {
		f.events.SetVisible(d, false)
	}
	require.NoError(t, f.area.Restore(saved))

	panes := f.area.Panes()
	require.Len(t, panes, 1)
	assert.Equal(t, f.docks["Console"], panes[0].Current)
}

func TestLayout_RestorePlacesUnknownDocksAlone(t *testing.T) {
	f := newFixture(t, "App", "Console")
	require.NoError(t, f.area.Restore(Layout{
		Groups:  [][]string{{"App"}},
		Visible: []string{"App", "Console"},
	}))
	assert.Len(t, f.area.Panes(), 2)
	assert.Empty(t, groupsOf(f.area))
}

func TestLayout_RestoreRejectsBadLayouts(t *testing.T) {
	f := newFixture(t, "App", "Console")

	err := f.area.Restore(Layout{Groups: [][]string{{"App", "Ghost"}}})
	assert.ErrorContains(t, err, "Ghost")

	err = f.area.Restore(Layout{Groups: [][]string{{"App"}, {"App"}}})
	assert.ErrorContains(t, err, "twice")

	err = f.area.Restore(Layout{Visible: []string{"Ghost"}})
	assert.ErrorContains(t, err, "Ghost")
}

func TestParseLayout_Invalid(t *testing.T) {
	_, err := ParseLayout("{not json")
	assert.Error(t, err)
}

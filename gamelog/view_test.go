package gamelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewStore(t *testing.T) *Store {
	t.Helper()
	text := sampleHeader + "\n" +
		"00|Alice|9|A1|Shot|00:01:00|00:01:05|True|True\n" +
		"01|Bob|4|B1|Pass|00:03:00|00:03:08|False|False\n" +
		"00|Alice|9|A1|Tackle|00:05:00|00:05:10|False|False\n" +
		"01|Bob|4|B1|Shot|00:07:00|00:07:06|True|False\n"
	store, _, err := Parse(text)
	require.NoError(t, err)
	return store
}

func TestVisibleMomentsScopeNone(t *testing.T) {
	store := viewStore(t)
	assert.Empty(t, VisibleMoments(store, Selection{Mode: ScopeNone}))
}

func TestVisibleMomentsMatchScope(t *testing.T) {
	store := viewStore(t)

	all := VisibleMoments(store, MatchSelection(ActionAll))
	assert.Len(t, all, 4)

	highlights := VisibleMoments(store, MatchSelection(MatchHighlightsAction))
	require.Len(t, highlights, 2)
	assert.Equal(t, 60, highlights[0].Inpoint)
	assert.Equal(t, 420, highlights[1].Inpoint)

	shots := VisibleMoments(store, MatchSelection("Shot"))
	assert.Len(t, shots, 2)
}

func TestVisibleMomentsPlayerScope(t *testing.T) {
	store := viewStore(t)

	alice := VisibleMoments(store, PlayerSelection("00", ActionAll))
	require.Len(t, alice, 2)
	for _, m := range alice {
		assert.Equal(t, "00", m.PlayerID)
	}

	aliceHighlights := VisibleMoments(store, PlayerSelection("00", PlayerHighlightsAction))
	require.Len(t, aliceHighlights, 1)
	assert.Equal(t, "Shot", aliceHighlights[0].Event)

	bobTackles := VisibleMoments(store, PlayerSelection("01", "Tackle"))
	assert.Empty(t, bobTackles)
}

func TestVisibleMomentsExcludeDeleted(t *testing.T) {
	store := viewStore(t)
	m := store.Moments()[0]
	require.NoError(t, store.SoftDelete(m.Key))

	visible := VisibleMoments(store, MatchSelection(ActionAll))
	assert.Len(t, visible, 3)
	for _, v := range visible {
		assert.NotEqual(t, m.Key, v.Key)
	}

	// Audit view brings the deleted moment back.
	audit := VisibleMoments(store, Selection{Mode: ScopeMatch, ShowDeleted: true})
	assert.Len(t, audit, 4)
}

func TestVisibleMomentsFollowStoreOrder(t *testing.T) {
	store := viewStore(t)
	visible := VisibleMoments(store, MatchSelection(ActionAll))
	for i := 1; i < len(visible); i++ {
		assert.LessOrEqual(t, visible[i-1].Inpoint, visible[i].Inpoint)
	}
}

func TestActionPickerMatchScope(t *testing.T) {
	store := viewStore(t)

	entries, def := ActionPicker(store, MatchSelection(ActionAll))
	assert.Equal(t, MatchHighlightsAction, def)

	require.Len(t, entries, 6) // All, highlights, separator, Pass, Shot, Tackle
	assert.Equal(t, "All Actions", entries[0].Label)
	assert.Equal(t, MatchHighlightsAction, entries[1].Value)
	assert.True(t, entries[2].Separator)
	assert.Equal(t, []string{"Pass", "Shot", "Tackle"},
		[]string{entries[3].Value, entries[4].Value, entries[5].Value})
}

func TestActionPickerFallbackWithoutHighlights(t *testing.T) {
	store := viewStore(t)

	// Bob has no player highlights, so the pseudo-entry is absent and the
	// default falls back to All Actions.
	entries, def := ActionPicker(store, PlayerSelection("01", ActionAll))
	assert.Equal(t, ActionAll, def)
	for _, e := range entries {
		assert.NotEqual(t, PlayerHighlightsAction, e.Value)
		assert.False(t, e.Separator)
	}
}

func TestActionPickerPlayerScope(t *testing.T) {
	store := viewStore(t)

	entries, def := ActionPicker(store, PlayerSelection("00", ActionAll))
	assert.Equal(t, PlayerHighlightsAction, def)
	require.GreaterOrEqual(t, len(entries), 4)
	assert.Equal(t, PlayerHighlightsAction, entries[1].Value)
}

func TestActionPickerScopeNone(t *testing.T) {
	store := viewStore(t)
	entries, def := ActionPicker(store, Selection{Mode: ScopeNone})
	assert.Empty(t, entries)
	assert.Equal(t, ActionAll, def)
}

func TestObservedActionsDistinctSorted(t *testing.T) {
	store := viewStore(t)
	assert.Equal(t, []string{"Pass", "Shot", "Tackle"}, ObservedActions(store, MatchSelection(ActionAll)))
	assert.Equal(t, []string{"Shot", "Tackle"}, ObservedActions(store, PlayerSelection("00", ActionAll)))
}

func TestPlayerPicker(t *testing.T) {
	store := viewStore(t)
	entries := PlayerPicker(store)
	require.Len(t, entries, 2)
	assert.Equal(t, "00", entries[0].ID)
	assert.Contains(t, entries[0].Label, "Alice")
	assert.Contains(t, entries[0].Label, "Jersey: 9")
	assert.Equal(t, "01", entries[1].ID)
}

package gamelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFormat(t *testing.T) {
	store := testStore(t)
	out := Export(store)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, exportHeader, lines[0])
	assert.Equal(t, "00|Alice|9|A1|Shot|00:01:00|00:01:05|true|false|false|false|false", lines[1])
}

func TestExportExcludesDeleted(t *testing.T) {
	store := testStore(t)
	m := store.Moments()[1]
	require.NoError(t, store.SoftDelete(m.Key))

	out := Export(store)
	assert.NotContains(t, out, m.Event)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3) // header + 2 surviving moments
}

func TestExportAuditFlags(t *testing.T) {
	store := testStore(t)
	m := store.Moments()[0]

	require.NoError(t, store.Edit(m.Key, EditRequest{
		PlayerID: m.PlayerID,
		Event:    "Conversion",
		Inpoint:  m.Inpoint,
		Outpoint: m.Outpoint,
	}))

	out := Export(store)
	assert.Contains(t, out, "Conversion|00:01:00|00:01:05|true|false|true|false|false")
}

func TestExportReimportRoundTrip(t *testing.T) {
	store := testStore(t)

	// Mutate: toggle a flag, soft-delete one moment, insert another.
	moments := store.Moments()
	require.NoError(t, store.SetFlag(moments[0].Key, FlagPlayerHighlight, true))
	require.NoError(t, store.SoftDelete(moments[2].Key))
	_, err := store.Insert(InsertRequest{
		PlayerID: "01",
		Event:    "Scrum",
		Inpoint:  240,
		Outpoint: 250,
	})
	require.NoError(t, err)

	reimported, warnings, err := Parse(Export(store))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	want := VisibleMoments(store, MatchSelection(ActionAll))
	got := VisibleMoments(reimported, MatchSelection(ActionAll))
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i].PlayerID, got[i].PlayerID)
		assert.Equal(t, want[i].Event, got[i].Event)
		assert.Equal(t, want[i].Inpoint, got[i].Inpoint)
		assert.Equal(t, want[i].Outpoint, got[i].Outpoint)
		assert.Equal(t, want[i].MatchHighlight, got[i].MatchHighlight)
		assert.Equal(t, want[i].PlayerHighlight, got[i].PlayerHighlight)
	}
}

package bundle

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive builds a zip on disk from entry name to contents.
func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, contents := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

const manifest = "player_id,manual_id,video_360_filename,thumbnail_filename\n" +
	"00,A1,alice.mp4,alice.jpg\n" +
	"01,B1,bob.mp4,\n"

func TestOpenResolvesManifest(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"export/players.csv":                       manifest,
		"export/player_360_videos/alice.mp4":       "video-a",
		"export/player_360_videos/bob.mp4":         "video-b",
		"export/player_360_thumbnails/alice.jpg":   "thumb-a",
		"export/._players.csv":                     "resource fork junk",
		"export/player_360_videos/unreferenced.mp4": "ignored",
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	assert.Empty(t, b.Warnings)
	require.Len(t, b.Players(), 2)

	alice, err := b.Player("00")
	require.NoError(t, err)
	assert.Equal(t, "A1", alice.ManualID)
	assert.Equal(t, "export/player_360_videos/alice.mp4", alice.VideoEntry)
	assert.Equal(t, "export/player_360_thumbnails/alice.jpg", alice.ThumbnailEntry)

	bob, err := b.Player("01")
	require.NoError(t, err)
	assert.Equal(t, "export/player_360_videos/bob.mp4", bob.VideoEntry)
	assert.Empty(t, bob.ThumbnailEntry)
}

func TestOpenManifestAtRoot(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"players.csv":                  "player_id,manual_id,video_360_filename,thumbnail_filename\n00,A1,a.mp4,\n",
		"player_360_videos/a.mp4":      "video",
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	media, err := b.Player("00")
	require.NoError(t, err)
	assert.Equal(t, "player_360_videos/a.mp4", media.VideoEntry)
}

func TestOpenMissingManifest(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"readme.txt": "no manifest here",
	})

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

func TestOpenWarnsOnMissingMedia(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"players.csv": "player_id,manual_id,video_360_filename,thumbnail_filename\n00,A1,ghost.mp4,\n",
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	require.Len(t, b.Warnings, 1)
	assert.Contains(t, b.Warnings[0], "ghost.mp4")

	media, err := b.Player("00")
	require.NoError(t, err)
	assert.Empty(t, media.VideoEntry)
}

func TestOpenWarnsOnDuplicateManifests(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"a/players.csv": "player_id,manual_id,video_360_filename,thumbnail_filename\n00,A1,,\n",
		"b/players.csv": "player_id,manual_id,video_360_filename,thumbnail_filename\n99,Z9,,\n",
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	require.NotEmpty(t, b.Warnings)
	assert.Contains(t, b.Warnings[0], "a/players.csv")

	_, err = b.Player("00")
	assert.NoError(t, err)
	_, err = b.Player("99")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestExtractVideo(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"players.csv":             "player_id,manual_id,video_360_filename,thumbnail_filename\n00,A1,a.mp4,\n",
		"player_360_videos/a.mp4": "video bytes",
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	dest := filepath.Join(t.TempDir(), "out")
	written, err := b.ExtractVideo("00", dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "a.mp4"), written)

	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "video bytes", string(data))
}

func TestExtractMissingMedia(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"players.csv": "player_id,manual_id,video_360_filename,thumbnail_filename\n00,A1,,\n",
	})

	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	_, err = b.ExtractVideo("00", t.TempDir())
	assert.ErrorIs(t, err, ErrNoMedia)

	_, err = b.ExtractThumbnail("unknown", t.TempDir())
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

// Package bundle reads the companion media archive that ships alongside a
// match video: a zip of per-player 360° clips and thumbnails keyed by a
// players.csv manifest.
package bundle

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrManifestNotFound is returned when the archive has no players.csv.
	ErrManifestNotFound = errors.New("bundle: players.csv not found in archive")
	// ErrPlayerNotFound is returned for lookups of ids absent from the manifest.
	ErrPlayerNotFound = errors.New("bundle: player not in manifest")
	// ErrNoMedia is returned when the requested player has no such media entry.
	ErrNoMedia = errors.New("bundle: no media for player")
)

const (
	manifestName = "players.csv"
	videoDir     = "player_360_videos"
	thumbnailDir = "player_360_thumbnails"
)

// PlayerMedia is one manifest row resolved against the archive contents.
// Entry names are empty when the manifest row has no filename or the named
// file is missing from the archive.
type PlayerMedia struct {
	PlayerID       string
	ManualID       string
	VideoEntry     string
	ThumbnailEntry string
}

// Bundle is an open companion archive. Close releases the underlying zip.
type Bundle struct {
	path   string
	reader *zip.ReadCloser

	players []PlayerMedia
	byID    map[string]int

	// Warnings collects non-fatal findings from loading: duplicate
	// manifests, manifest rows naming files absent from the archive.
	Warnings []string
}

// Open reads the archive at path and resolves its manifest.
func Open(bundlePath string) (*Bundle, error) {
	reader, err := zip.OpenReader(bundlePath)
	if err != nil {
		return nil, fmt.Errorf("bundle: opening %s: %w", bundlePath, err)
	}

	b := &Bundle{
		path:   bundlePath,
		reader: reader,
		byID:   make(map[string]int),
	}
	if err := b.load(); err != nil {
		reader.Close()
		return nil, err
	}
	return b, nil
}

// Close closes the underlying archive.
func (b *Bundle) Close() error {
	return b.reader.Close()
}

// Path returns the archive path this bundle was opened from.
func (b *Bundle) Path() string {
	return b.path
}

// Players returns the manifest rows in archive order.
func (b *Bundle) Players() []PlayerMedia {
	out := make([]PlayerMedia, len(b.players))
	copy(out, b.players)
	return out
}

// Player looks up one manifest row by player id.
func (b *Bundle) Player(id string) (PlayerMedia, error) {
	idx, ok := b.byID[id]
	if !ok {
		return PlayerMedia{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
	}
	return b.players[idx], nil
}

// ExtractVideo writes the player's 360° video into destDir and returns the
// written path.
func (b *Bundle) ExtractVideo(id, destDir string) (string, error) {
	media, err := b.Player(id)
	if err != nil {
		return "", err
	}
	if media.VideoEntry == "" {
		return "", fmt.Errorf("%w: %s has no 360 video", ErrNoMedia, id)
	}
	return b.extract(media.VideoEntry, destDir)
}

// ExtractThumbnail writes the player's thumbnail into destDir and returns
// the written path.
func (b *Bundle) ExtractThumbnail(id, destDir string) (string, error) {
	media, err := b.Player(id)
	if err != nil {
		return "", err
	}
	if media.ThumbnailEntry == "" {
		return "", fmt.Errorf("%w: %s has no thumbnail", ErrNoMedia, id)
	}
	return b.extract(media.ThumbnailEntry, destDir)
}

// load locates the manifest and resolves every row against the archive.
// The manifest may live in a subdirectory; media directories are resolved
// relative to it. macOS resource fork entries are ignored.
func (b *Bundle) load() error {
	entries := make(map[string]*zip.File, len(b.reader.File))
	var manifests []*zip.File
	for _, f := range b.reader.File {
		entries[f.Name] = f
		base := path.Base(f.Name)
		if strings.HasPrefix(base, "._") {
			continue
		}
		if strings.EqualFold(base, manifestName) {
			manifests = append(manifests, f)
		}
	}

	if len(manifests) == 0 {
		return ErrManifestNotFound
	}
	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].Name < manifests[j].Name
	})
	if len(manifests) > 1 {
		b.Warnings = append(b.Warnings,
			fmt.Sprintf("multiple players.csv files found, using %s", manifests[0].Name))
	}

	manifest := manifests[0]
	basePath := ""
	if idx := strings.LastIndex(manifest.Name, "/"); idx >= 0 {
		basePath = manifest.Name[:idx+1]
	}

	rows, err := readManifest(manifest)
	if err != nil {
		return err
	}

	for _, row := range rows {
		id := row["player_id"]
		if id == "" {
			continue
		}
		media := PlayerMedia{
			PlayerID: id,
			ManualID: row["manual_id"],
		}
		if name := row["video_360_filename"]; name != "" {
			entry := basePath + videoDir + "/" + name
			if _, ok := entries[entry]; ok {
				media.VideoEntry = entry
			} else {
				b.Warnings = append(b.Warnings,
					fmt.Sprintf("video file not found in archive: %s", entry))
			}
		}
		if name := row["thumbnail_filename"]; name != "" {
			entry := basePath + thumbnailDir + "/" + name
			if _, ok := entries[entry]; ok {
				media.ThumbnailEntry = entry
			} else {
				b.Warnings = append(b.Warnings,
					fmt.Sprintf("thumbnail file not found in archive: %s", entry))
			}
		}
		b.byID[id] = len(b.players)
		b.players = append(b.players, media)
	}
	return nil
}

// readManifest parses the CSV into header-keyed rows with trimmed values.
func readManifest(f *zip.File) ([]map[string]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("bundle: opening manifest: %w", err)
	}
	defer rc.Close()

	reader := csv.NewReader(rc)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("bundle: parsing manifest: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	headers := records[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// extract copies one archive entry into destDir under its base name.
func (b *Bundle) extract(entry, destDir string) (string, error) {
	f, ok := b.find(entry)
	if !ok {
		return "", fmt.Errorf("bundle: entry vanished from archive: %s", entry)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("bundle: creating %s: %w", destDir, err)
	}
	destPath := filepath.Join(destDir, path.Base(entry))

	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("bundle: opening entry %s: %w", entry, err)
	}
	defer rc.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("bundle: creating %s: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return "", fmt.Errorf("bundle: extracting %s: %w", entry, err)
	}
	return destPath, nil
}

func (b *Bundle) find(entry string) (*zip.File, bool) {
	for _, f := range b.reader.File {
		if f.Name == entry {
			return f, true
		}
	}
	return nil, false
}

package level

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tiltmaze/internal/level/formats"
	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/registry"
)

// Custom is a level loaded from a file.
type Custom struct {
	formats.File
	FilePath string
}

// Loader handles loading custom levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// SkippedFile records a level file that could not be loaded.
type SkippedFile struct {
	Path string
	Err  error
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped and reported. A missing root yields no levels.
// Levels are sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Custom, []SkippedFile, error) {
	var (
		levels  []Custom
		skipped []SkippedFile
	)

	if _, err := os.Stat(l.Root); os.IsNotExist(err) {
		return nil, nil, nil
	}

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(formats.FormatExtensions(), ext) {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Err: err})
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, skipped, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Custom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Custom{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	f, err := formats.Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Custom{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Custom{File: f, FilePath: path}, nil
}

// RegisterAll loads every level under Root and adds it to the registry.
// Files whose id collides with an existing level are reported as skipped.
func (l *Loader) RegisterAll() ([]Custom, []SkippedFile, error) {
	levels, skipped, err := l.LoadAll()
	if err != nil {
		return nil, nil, err
	}

	registered := make([]Custom, 0, len(levels))
	for _, lvl := range levels {
		geometry := lvl.Level()
		err := registry.TryRegister(registry.Entry{
			Key:     lvl.ID,
			Title:   lvl.Title(),
			LevelID: lvl.Difficulty,
			Build:   func() physics.Level { return geometry },
			Custom:  true,
		})
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: lvl.FilePath, Err: err})
			continue
		}
		registered = append(registered, lvl)
	}

	return registered, skipped, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

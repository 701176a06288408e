// Package levels loads level files into world layouts.
// This package depends on world but world does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tui-ricochet/internal/levels/formats"
	"github.com/vovakirdan/tui-ricochet/internal/physics"
	"github.com/vovakirdan/tui-ricochet/internal/world"
)

//go:embed builtin/*
var builtinFS embed.FS

// ErrLevelNotFound is returned when no level has the requested ID.
var ErrLevelNotFound = errors.New("levels: level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Tilemap  Tilemap
	Layout   world.Layout
	Metadata map[string]string
	FilePath string
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	var errs []error

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.root, err)
	}
	if len(levels) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file, relative to the loader's root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}
	lvl, err := Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	lvl.FilePath = path.Join(l.root, p)
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Parse decodes level data in the format implied by ext.
func Parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}
	return convert(parsed)
}

func convert(p formats.Level) (Level, error) {
	lvl := Level{
		ID:       p.ID,
		Name:     p.Name,
		Tilemap:  NewTilemap(p.Tilemap),
		Metadata: p.Metadata,
		Layout: world.Layout{
			MoneyBagsNeeded: p.Needed,
			Inventory:       make(map[world.Item]int, len(p.Inventory)),
		},
	}

	for i, o := range p.Obstacles {
		kind, err := physics.ParseKind(o.Kind)
		if err != nil {
			return Level{}, fmt.Errorf("obstacle %d: %w", i, err)
		}
		lvl.Layout.Obstacles = append(lvl.Layout.Obstacles, world.ObstacleSpec{
			Start:       mgl32.Vec2(o.Start),
			End:         mgl32.Vec2(o.End),
			COR:         o.COR,
			Orientation: mgl32.Vec2(o.Orientation),
			Kind:        kind,
			BoostExtra:  o.Boost,
		})
	}
	for _, b := range p.MoneyBags {
		lvl.Layout.MoneyBags = append(lvl.Layout.MoneyBags, mgl32.Vec2(b))
	}
	if p.Needed > len(p.MoneyBags) {
		return Level{}, fmt.Errorf("needs %d money bags but only has %d", p.Needed, len(p.MoneyBags))
	}
	for name, count := range p.Inventory {
		item, err := world.ParseItem(name)
		if err != nil {
			return Level{}, err
		}
		lvl.Layout.Inventory[item] += count
	}
	return lvl, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".ql":
		return formats.ParseQL(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

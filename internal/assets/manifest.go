// Package assets describes the sprites a renderer can draw. The manifest is
// YAML; image decoding is left to the renderer that needs it.
package assets

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sprite ids used by the game.
const (
	SpritePlayer = "player"
	SpriteEnemy  = "enemy"
	SpriteBullet = "bullet"
	SpriteCursor = "cursor"
)

// Sprite is one manifest entry. Width and Height size the placeholder drawn
// when Path cannot be loaded; a zero size means "nothing to draw yet".
type Sprite struct {
	ID     string `yaml:"id"`
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"` // placeholder fill, "#rrggbb" or "#rrggbbaa"
	Glyph  string `yaml:"glyph"` // terminal rendering
}

// Fill parses Color, falling back to opaque grey.
func (s *Sprite) Fill() color.NRGBA {
	c, err := ParseColor(s.Color)
	if err != nil {
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	return c
}

// Rune is the first rune of Glyph, or '?' if it is empty.
func (s *Sprite) Rune() rune {
	for _, r := range s.Glyph {
		return r
	}
	return '?'
}

// Manifest indexes sprites by id.
type Manifest struct {
	byID map[string]*Sprite
}

// Get returns the sprite with id, or nil if not found.
func (m *Manifest) Get(id string) *Sprite {
	return m.byID[id]
}

// Count returns the number of sprites loaded.
func (m *Manifest) Count() int {
	return len(m.byID)
}

// IDs returns all sprite ids in sorted order.
func (m *Manifest) IDs() []string {
	ids := make([]string, 0, len(m.byID))
	for id := range m.byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// --- YAML loading ---

type manifestFile struct {
	Sprites []Sprite `yaml:"sprites"`
}

// LoadManifest loads sprite definitions from YAML. Relative image paths are
// resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(raw)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for _, s := range m.byID {
		if s.Path != "" && !filepath.IsAbs(s.Path) {
			s.Path = filepath.Join(dir, s.Path)
		}
	}
	return m, nil
}

// ParseManifest decodes a manifest document.
func ParseManifest(raw []byte) (*Manifest, error) {
	var f manifestFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	m := &Manifest{byID: make(map[string]*Sprite, len(f.Sprites))}
	for i := range f.Sprites {
		s := &f.Sprites[i]
		if s.ID == "" {
			return nil, fmt.Errorf("sprite %d has no id", i)
		}
		if _, dup := m.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate sprite id %q", s.ID)
		}
		if s.Width < 0 || s.Height < 0 {
			return nil, fmt.Errorf("sprite %q has negative size", s.ID)
		}
		if s.Color != "" {
			if _, err := ParseColor(s.Color); err != nil {
				return nil, fmt.Errorf("sprite %q: %w", s.ID, err)
			}
		}
		m.byID[s.ID] = s
	}
	return m, nil
}

// Default is the manifest used when no file is configured: no images, only
// coloured placeholders and glyphs.
func Default() *Manifest {
	sprites := []Sprite{
		{ID: SpritePlayer, Width: 64, Height: 64, Color: "#2e86de", Glyph: "@"},
		{ID: SpriteEnemy, Width: 64, Height: 64, Color: "#c0392b", Glyph: "Z"},
		{ID: SpriteBullet, Width: 8, Height: 8, Color: "#222222", Glyph: "*"},
		{ID: SpriteCursor, Width: 32, Height: 32, Color: "#27ae6080", Glyph: "+"},
	}
	m := &Manifest{byID: make(map[string]*Sprite, len(sprites))}
	for i := range sprites {
		m.byID[sprites[i].ID] = &sprites[i]
	}
	return m
}

// ParseColor reads "#rrggbb" or "#rrggbbaa" as a non-premultiplied colour.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

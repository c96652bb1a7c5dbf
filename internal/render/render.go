// Package render draws the game onto an ebiten image.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/plus3/horde/internal/assets"
	"github.com/plus3/horde/internal/geom"
)

// Glyph cell of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Surface implements game.Renderer on top of an ebiten screen. Call Target
// with the frame's screen before drawing.
type Surface struct {
	manifest *assets.Manifest
	log      *zap.Logger

	target  *ebiten.Image
	sprites map[string]*ebiten.Image
	texts   map[string]*ebiten.Image
}

func NewSurface(manifest *assets.Manifest, log *zap.Logger) *Surface {
	return &Surface{
		manifest: manifest,
		log:      log,
		sprites:  make(map[string]*ebiten.Image),
		texts:    make(map[string]*ebiten.Image),
	}
}

// Target sets the image the following draw calls paint on.
func (s *Surface) Target(screen *ebiten.Image) {
	s.target = screen
}

func (s *Surface) Fill(c color.Color) {
	s.target.Fill(c)
}

// DrawText scales the debug font so that its cell is size pixels tall, with
// the bottom of the cell on at.Y.
func (s *Surface) DrawText(text string, at geom.Vector, size float64, c color.Color) {
	img, ok := s.texts[text]
	if !ok {
		img = ebiten.NewImage(len(text)*debugGlyphW, debugGlyphH)
		ebitenutil.DebugPrint(img, text)
		s.texts[text] = img
	}

	scale := size / debugGlyphH
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(at.X, at.Y-size)
	opts.ColorScale.ScaleWithColor(c)
	s.target.DrawImage(img, opts)
}

func (s *Surface) DrawSprite(id string, center geom.Vector, w, h, angle float64) {
	if w <= 0 || h <= 0 {
		return
	}
	img := s.sprite(id)
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = spriteGeoM(b.Dx(), b.Dy(), center, w, h, angle)
	opts.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, opts)
}

// sprite loads id on first use. A missing or unreadable image is replaced
// by a placeholder in the manifest colour; an unknown id draws nothing.
func (s *Surface) sprite(id string) *ebiten.Image {
	if img, ok := s.sprites[id]; ok {
		return img
	}

	def := s.manifest.Get(id)
	if def == nil {
		s.log.Warn("unknown sprite", zap.String("id", id))
		s.sprites[id] = nil
		return nil
	}

	var img *ebiten.Image
	if def.Path != "" {
		loaded, _, err := ebitenutil.NewImageFromFile(def.Path)
		if err != nil {
			s.log.Warn("sprite image unavailable, using placeholder",
				zap.String("id", id),
				zap.String("path", def.Path),
				zap.Error(err),
			)
		} else {
			img = loaded
		}
	}
	if img == nil {
		if p := placeholder(def); p != nil {
			img = ebiten.NewImageFromImage(p)
		}
	}
	s.sprites[id] = img
	return img
}

// placeholder is a solid rectangle of the sprite's size and colour, or nil
// for a sprite without a size.
func placeholder(def *assets.Sprite) *image.NRGBA {
	if def.Width <= 0 || def.Height <= 0 {
		return nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, def.Width, def.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: def.Fill()}, image.Point{}, draw.Src)
	return img
}

// spriteGeoM maps a srcW×srcH image onto a w×h box centred on center and
// rotated by angle around that centre.
func spriteGeoM(srcW, srcH int, center geom.Vector, w, h, angle float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(w/float64(srcW), h/float64(srcH))
	m.Translate(-w/2, -h/2)
	m.Rotate(angle)
	m.Translate(center.X, center.Y)
	return m
}

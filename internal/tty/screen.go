// Package tty renders the game into a terminal and turns terminal events
// into input. One cell stands for CellWidth×CellHeight arena pixels.
package tty

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/horde/internal/assets"
	"github.com/plus3/horde/internal/geom"
)

const (
	CellWidth  = 8
	CellHeight = 16
)

// Screen implements game.Renderer on a tcell screen. Sprites are drawn as
// their manifest glyph over every cell of their footprint; rotation is
// ignored.
type Screen struct {
	screen   tcell.Screen
	manifest *assets.Manifest
	bg       tcell.Color
}

func NewScreen(screen tcell.Screen, manifest *assets.Manifest) *Screen {
	return &Screen{screen: screen, manifest: manifest, bg: tcell.ColorDefault}
}

// Arena is the terminal size in arena pixels.
func (s *Screen) Arena() geom.Vector {
	w, h := s.screen.Size()
	return geom.Vector{X: float64(w * CellWidth), Y: float64(h * CellHeight)}
}

// Cell maps an arena point to the cell containing it.
func Cell(p geom.Vector) (col, row int) {
	return int(math.Floor(p.X / CellWidth)), int(math.Floor(p.Y / CellHeight))
}

// CellCenter is the arena point in the middle of a cell.
func CellCenter(col, row int) geom.Vector {
	return geom.Vector{
		X: float64(col*CellWidth) + CellWidth/2,
		Y: float64(row*CellHeight) + CellHeight/2,
	}
}

func (s *Screen) Fill(c color.Color) {
	s.bg = toColor(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

// DrawText writes text on the row holding the vertical middle of a size-tall
// line whose baseline is at.Y. Terminals have one text size.
func (s *Screen) DrawText(text string, at geom.Vector, size float64, c color.Color) {
	col, row := Cell(geom.Vector{X: at.X, Y: at.Y - size/2})
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(s.bg)
	for _, r := range text {
		s.set(col, row, r, style)
		col++
	}
}

func (s *Screen) DrawSprite(id string, center geom.Vector, w, h, angle float64) {
	if w <= 0 || h <= 0 {
		return
	}
	def := s.manifest.Get(id)
	if def == nil {
		return
	}
	glyph := def.Rune()
	style := tcell.StyleDefault.Foreground(toColor(def.Fill())).Background(s.bg)

	box := geom.NewBox(center, w, h)
	left, top := Cell(box.Origin())
	// The far edges are exclusive.
	right, bottom := Cell(geom.Vector{X: box.X + box.W - 1e-9, Y: box.Y + box.H - 1e-9})
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			s.set(col, row, glyph, style)
		}
	}
}

// Show pushes the frame to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) set(col, row int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, r, nil, style)
}

func toColor(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

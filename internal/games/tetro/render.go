package tetro

import (
	"fmt"

	"github.com/vovakirdan/tetro/internal/core"
)

// Field layout on screen: each cell is two characters wide and the field is
// framed by a two-column side border and a one-row top/bottom border.
const (
	borderW = 2
	cellW   = 2
	block   = '█'
)

// Render draws the field, the active piece and the status readout.
// It does not modify the game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	frame := g.frameRect()
	g.renderBorder(dst, frame)
	g.renderField(dst, frame)

	if g.state != StateGameOver {
		g.renderPiece(dst, frame)
	}

	g.renderStatus(dst, frame)

	if g.state == StateGameOver {
		g.renderOverlay(dst, frame, "GAME OVER", fmt.Sprintf("Score: %d", g.score))
	}
}

// frameRect returns the screen area of the field including its border.
func (g *Game) frameRect() core.Rect {
	return core.NewRect(0, 0, g.grid.Width()*cellW+2*borderW, g.grid.Height()+2)
}

// renderBorder draws the multicolored frame.
func (g *Game) renderBorder(dst *core.Screen, frame core.Rect) {
	for x := frame.X; x < frame.Right(); x++ {
		c := paletteColor(x)
		dst.SetColored(x, frame.Y, block, c)
		dst.SetColored(x, frame.Bottom()-1, block, c)
	}
	for y := frame.Y + 1; y < frame.Bottom()-1; y++ {
		c := paletteColor(y)
		for i := range borderW {
			dst.SetColored(frame.X+i, y, block, c)
			dst.SetColored(frame.Right()-borderW+i, y, block, c)
		}
	}
}

// renderField draws the settled cells.
func (g *Game) renderField(dst *core.Screen, frame core.Rect) {
	for y := range g.grid.Height() {
		for x := range g.grid.Width() {
			if c := g.grid.At(x, y); c != Empty {
				drawCell(dst, frame, x, y, c)
			}
		}
	}
}

// renderPiece draws the active piece. Cells above the top edge are hidden.
func (g *Game) renderPiece(dst *core.Screen, frame core.Rect) {
	g.piece.Cells(func(x, y int) {
		if y >= 0 {
			drawCell(dst, frame, x, y, g.piece.Color)
		}
	})
}

// renderStatus draws lives and score under the field.
func (g *Game) renderStatus(dst *core.Screen, frame core.Rect) {
	dst.DrawText(frame.X, frame.Bottom(), fmt.Sprintf("Lives: %d", g.lives))
	dst.DrawText(frame.X, frame.Bottom()+1, fmt.Sprintf("Score: %d", g.score))
}

// renderOverlay draws two centered lines over the field.
func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect, line1, line2 string) {
	_, cy := frame.Center()
	dst.DrawTextCentered(frame, cy-1, " "+line1+" ", core.ColorRed)
	dst.DrawTextCentered(frame, cy+1, " "+line2+" ", core.ColorWhite)
}

// drawCell draws one field cell in the given color.
func drawCell(dst *core.Screen, frame core.Rect, x, y int, c Cell) {
	sx := frame.X + borderW + x*cellW
	sy := frame.Y + 1 + y
	for i := range cellW {
		dst.SetColored(sx+i, sy, block, core.Color(c))
	}
}

// paletteColor cycles through the seven block colors.
func paletteColor(i int) core.Color {
	return core.Color(i%core.PaletteSize + 1)
}

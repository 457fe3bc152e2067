package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// Each board cell renders as two terminal columns so the playfield looks
// square in a character grid.
const (
	cellRune  = '█'
	ghostRune = '░'
	hudHeight = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.state == StateMenu {
		g.renderMenu(dst)
		return
	}

	bx, by := g.boardOrigin(dst)
	g.renderFrame(dst, bx, by)
	g.renderStack(dst, bx, by)
	if g.cfg.Display.Ghost {
		g.renderGhost(dst, bx, by)
	}
	g.renderPiece(dst, bx, by)
	g.renderSidebar(dst, bx, by)

	switch g.state {
	case StateGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - press R to restart", g.score))
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardOrigin returns the screen position of the playfield's top-left
// cell, leaving room for the sidebar on the right.
func (g *Game) boardOrigin(dst *core.Screen) (int, int) {
	boardW := g.board.W * 2
	totalW := boardW + 2 + sidebarWidth
	bx := (dst.Width()-totalW)/2 + 1
	by := hudHeight + 1
	return bx, by
}

const sidebarWidth = 14

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetra — Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMenu draws the title screen.
func (g *Game) renderMenu(dst *core.Screen) {
	midY := dst.Height() / 2
	dst.DrawTextCentered(midY-2, "T E T R A")
	dst.DrawTextCentered(midY, "Press Enter to start")
	dst.DrawTextCentered(midY+2, "←/→ move · ↑ rotate · ↓ soft drop · space hard drop")
}

// renderFrame draws the playfield border.
func (g *Game) renderFrame(dst *core.Screen, bx, by int) {
	dst.DrawBox(core.NewRect(bx-1, by-1, g.board.W*2+2, g.board.H+2))
}

// renderStack draws the locked cells.
func (g *Game) renderStack(dst *core.Screen, bx, by int) {
	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			color := g.board.Cell(x, y)
			if color == cellEmpty {
				continue
			}
			dst.SetCell(bx+x*2, by+y, cellRune, color)
			dst.SetCell(bx+x*2+1, by+y, cellRune, color)
		}
	}
}

// renderGhost draws the landing-position preview under the current piece.
func (g *Game) renderGhost(dst *core.Screen, bx, by int) {
	if g.current == nil {
		return
	}
	ghostY := g.board.GhostRow(g.current)
	if ghostY == g.current.Y {
		return // Piece already grounded; the ghost would just overdraw it
	}
	for sy, row := range g.current.Shape() {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			y := ghostY + sy
			if y < 0 {
				continue
			}
			x := g.current.X + sx
			dst.SetCell(bx+x*2, by+y, ghostRune, core.ColorGray)
			dst.SetCell(bx+x*2+1, by+y, ghostRune, core.ColorGray)
		}
	}
}

// renderPiece draws the falling piece. Rows above the board are clipped.
func (g *Game) renderPiece(dst *core.Screen, bx, by int) {
	if g.current == nil {
		return
	}
	color := g.current.Color()
	for sy, row := range g.current.Shape() {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			y := g.current.Y + sy
			if y < 0 {
				continue
			}
			x := g.current.X + sx
			dst.SetCell(bx+x*2, by+y, cellRune, color)
			dst.SetCell(bx+x*2+1, by+y, cellRune, color)
		}
	}
}

// renderSidebar draws the next-piece preview and round statistics to the
// right of the playfield.
func (g *Game) renderSidebar(dst *core.Screen, bx, by int) {
	sx := bx + g.board.W*2 + 2

	if g.cfg.Display.Preview && g.next != nil {
		dst.DrawText(sx+1, by, "Next")
		box := core.NewRect(sx, by+1, 12, 6)
		dst.DrawBox(box)

		// Center the piece's tight bounding box inside the preview
		bounds := g.next.Bounds()
		color := g.next.Color()
		offX := box.X + (box.W-bounds.W*2)/2
		offY := box.Y + (box.H-bounds.H)/2
		for sy, row := range g.next.Shape() {
			for sxCell, occupied := range row {
				if !occupied {
					continue
				}
				px := offX + (sxCell-bounds.X)*2
				py := offY + (sy - bounds.Y)
				dst.SetCell(px, py, cellRune, color)
				dst.SetCell(px+1, py, cellRune, color)
			}
		}
	}

	dst.DrawText(sx+1, by+8, fmt.Sprintf("Speed %v", g.DropInterval()))
	dst.DrawText(sx+1, by+10, "P pause")
	dst.DrawText(sx+1, by+11, "Q quit")
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

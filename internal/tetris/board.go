package tetris

import "github.com/vovakirdan/tui-tetra/internal/core"

// Standard playfield dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// cellEmpty marks an unoccupied board cell. No piece uses the default
// color, so the zero value doubles as the empty marker.
const cellEmpty = core.ColorDefault

// Board is the fixed grid of locked cells. Rows are 0-indexed top to
// bottom. It is a pure data structure mutated by placement and line
// clearing; it carries no game state of its own.
type Board struct {
	W, H  int
	cells [][]core.Color
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(w, h int) *Board {
	b := &Board{W: w, H: h}
	b.Reset()
	return b
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.cells = make([][]core.Color, b.H)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, b.W)
	}
}

// Cell returns the color at (x, y), or the empty marker when out of bounds.
func (b *Board) Cell(x, y int) core.Color {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return cellEmpty
	}
	return b.cells[y][x]
}

// Occupied reports whether (x, y) holds a locked cell.
func (b *Board) Occupied(x, y int) bool {
	return b.Cell(x, y) != cellEmpty
}

// IsValidPosition reports whether the piece, shifted by (dx, dy), fits on
// the board: every occupied cell must be within columns [0, W), above row
// H, and not overlap a locked cell. Rows above the board (y < 0) are
// exempt from the occupancy check so pieces may overhang the top edge.
func (b *Board) IsValidPosition(p *Piece, dx, dy int) bool {
	for sy, row := range p.Shape() {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			x := p.X + sx + dx
			y := p.Y + sy + dy
			if x < 0 || x >= b.W || y >= b.H {
				return false
			}
			if y >= 0 && b.cells[y][x] != cellEmpty {
				return false
			}
		}
	}
	return true
}

// IsValidRotation reports whether the piece would fit with the given
// rotation index after applying the wall-kick offset (kickX, kickY).
func (b *Board) IsValidRotation(p *Piece, rotation, kickX, kickY int) bool {
	test := p.Clone()
	test.SetRotation(rotation)
	test.X += kickX
	test.Y += kickY
	return b.IsValidPosition(test, 0, 0)
}

// Place locks the piece's occupied cells into the grid. Cells above the
// visible board are dropped; a piece that passed the game-over check does
// not produce them.
func (b *Board) Place(p *Piece) {
	color := p.Color()
	for sy, row := range p.Shape() {
		for sx, occupied := range row {
			if !occupied {
				continue
			}
			y := p.Y + sy
			if y < 0 || y >= b.H {
				continue
			}
			b.cells[y][p.X+sx] = color
		}
	}
}

// ClearLines removes every full row and shifts the rows above down to
// fill the gap. It returns the cleared row indices (top to bottom) for
// the caller's animation use; the grid is rebuilt from the surviving rows
// with fresh empty rows prepended at the top.
func (b *Board) ClearLines() []int {
	var cleared []int
	kept := make([][]core.Color, 0, b.H)

	for y := 0; y < b.H; y++ {
		full := true
		for x := 0; x < b.W; x++ {
			if b.cells[y][x] == cellEmpty {
				full = false
				break
			}
		}
		if full {
			cleared = append(cleared, y)
		} else {
			kept = append(kept, b.cells[y])
		}
	}

	if len(cleared) == 0 {
		return nil
	}

	rebuilt := make([][]core.Color, 0, b.H)
	for i := 0; i < len(cleared); i++ {
		rebuilt = append(rebuilt, make([]core.Color, b.W))
	}
	rebuilt = append(rebuilt, kept...)
	b.cells = rebuilt

	return cleared
}

// GhostRow returns the row the piece would land on if dropped straight
// down from its current position with no further input.
func (b *Board) GhostRow(p *Piece) int {
	dy := 0
	for b.IsValidPosition(p, 0, dy+1) {
		dy++
	}
	return p.Y + dy
}

// IsGameOver reports whether the piece's spawn position is already
// blocked by locked cells.
func (b *Board) IsGameOver(p *Piece) bool {
	return !b.IsValidPosition(p, 0, 0)
}

// ColumnHeight returns the stack height of a column: the distance from
// the floor to its topmost occupied cell, 0 for an empty column.
func (b *Board) ColumnHeight(col int) int {
	if col < 0 || col >= b.W {
		return 0
	}
	for y := 0; y < b.H; y++ {
		if b.cells[y][col] != cellEmpty {
			return b.H - y
		}
	}
	return 0
}

// MaxHeight returns the tallest column's height.
func (b *Board) MaxHeight() int {
	maxH := 0
	for x := 0; x < b.W; x++ {
		maxH = core.Max(maxH, b.ColumnHeight(x))
	}
	return maxH
}

// CountHoles counts empty cells with at least one locked cell above them
// in the same column. Exposed for stack-shape analytics; not used by core
// gameplay.
func (b *Board) CountHoles() int {
	holes := 0
	for x := 0; x < b.W; x++ {
		covered := false
		for y := 0; y < b.H; y++ {
			if b.cells[y][x] != cellEmpty {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

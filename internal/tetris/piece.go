package tetris

import "github.com/vovakirdan/tui-tetra/internal/core"

// Piece is the mutable state of a falling (or previewed) tetromino: its
// type, rotation index, and the board position of its bounding matrix's
// top-left corner. Y may be negative at spawn (piece partially above the
// visible board). A Piece holds no board knowledge; collision checks and
// wall-kick resolution belong to the Board and engine.
type Piece struct {
	Type     PieceType
	Rotation int
	X, Y     int

	shape Shape // always rotations[Type][Rotation]
}

// SpawnPiece creates a piece at its spawn position on a standard-width
// board: rotation 0, column 4 for O and 3 for the rest, row 0 except I,
// whose 4x4 bounding box starts one row higher so its occupied row spawns
// level with the others.
func SpawnPiece(t PieceType) *Piece {
	x := 3
	if t == PieceO {
		x = 4
	}
	y := 0
	if t == PieceI {
		y = -1
	}
	return &Piece{
		Type:     t,
		Rotation: 0,
		X:        x,
		Y:        y,
		shape:    ShapeFor(t, 0),
	}
}

// Shape returns the occupied-cell matrix for the current rotation.
func (p *Piece) Shape() Shape {
	return p.shape
}

// Color returns the piece's display color.
func (p *Piece) Color() core.Color {
	return ColorFor(p.Type)
}

// RotationTarget computes the rotation index reached by rotating in the
// given direction (+1 clockwise, -1 counter-clockwise). It performs no
// collision validation.
func (p *Piece) RotationTarget(direction int) int {
	n := RotationCount(p.Type)
	return (p.Rotation + direction + n) % n
}

// SetRotation sets the rotation index and refreshes the cached shape.
func (p *Piece) SetRotation(rotation int) {
	p.Rotation = rotation
	p.shape = ShapeFor(p.Type, rotation)
}

// Bounds returns the tight bounding box of occupied cells within the
// shape matrix, in matrix coordinates. Used to center the preview.
func (p *Piece) Bounds() core.Rect {
	minX, minY := len(p.shape), len(p.shape)
	maxX, maxY := -1, -1
	for y, row := range p.shape {
		for x, occupied := range row {
			if !occupied {
				continue
			}
			minX = core.Min(minX, x)
			minY = core.Min(minY, y)
			maxX = core.Max(maxX, x)
			maxY = core.Max(maxY, y)
		}
	}
	if maxX < 0 {
		return core.NewRect(0, 0, 0, 0)
	}
	return core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1)
}

// Clone returns a copy of the piece. The cached shape is shared; it is
// immutable catalog data.
func (p *Piece) Clone() *Piece {
	clone := *p
	return &clone
}

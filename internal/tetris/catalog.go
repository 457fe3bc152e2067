// Package tetris implements the falling-block game simulation: piece
// catalog, bag randomizer, board, and the game engine. It contains pure
// logic with no external dependencies (especially no Bubble Tea); the
// platform handles input mapping, timing, and terminal rendering.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceCount is the number of distinct piece types.
const PieceCount = 7

// String returns the conventional one-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// Shape is one rotation state: a square boolean matrix of occupied cells.
// The matrix is 4x4 for I, 2x2 for O, and 3x3 for the rest.
type Shape [][]bool

// Offset is a wall-kick candidate (dx, dy) in board coordinates (y grows
// downward).
type Offset struct {
	DX, DY int
}

// shape builds a Shape from row strings; 'X' marks an occupied cell.
func shape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(rows))
		for x, ch := range row {
			s[y][x] = ch == 'X'
		}
	}
	return s
}

// rotations holds the ordered rotation states per piece type, indexed by
// rotation 0 (spawn), 1 (clockwise), 2 (180), 3 (counter-clockwise).
// O has a single state. Immutable after initialization.
var rotations = [PieceCount][]Shape{
	PieceI: {
		shape("....", "XXXX", "....", "...."),
		shape("..X.", "..X.", "..X.", "..X."),
		shape("....", "....", "XXXX", "...."),
		shape(".X..", ".X..", ".X..", ".X.."),
	},
	PieceO: {
		shape("XX", "XX"),
	},
	PieceT: {
		shape(".X.", "XXX", "..."),
		shape(".X.", ".XX", ".X."),
		shape("...", "XXX", ".X."),
		shape(".X.", "XX.", ".X."),
	},
	PieceS: {
		shape(".XX", "XX.", "..."),
		shape(".X.", ".XX", "..X"),
		shape("...", ".XX", "XX."),
		shape("X..", "XX.", ".X."),
	},
	PieceZ: {
		shape("XX.", ".XX", "..."),
		shape("..X", ".XX", ".X."),
		shape("...", "XX.", ".XX"),
		shape(".X.", "XX.", "X.."),
	},
	PieceJ: {
		shape("X..", "XXX", "..."),
		shape(".XX", ".X.", ".X."),
		shape("...", "XXX", "..X"),
		shape(".X.", ".X.", "XX."),
	},
	PieceL: {
		shape("..X", "XXX", "..."),
		shape(".X.", ".X.", ".XX"),
		shape("...", "XXX", "X.."),
		shape("XX.", ".X.", ".X."),
	},
}

// pieceColors maps each piece type to its standard color.
var pieceColors = [PieceCount]core.Color{
	PieceI: core.ColorBrightCyan,
	PieceO: core.ColorBrightYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorBrightGreen,
	PieceZ: core.ColorBrightRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// Super Rotation System wall-kick tables. Published SRS offsets use a y-up
// convention; the board's y grows downward, so dy values are negated here
// once rather than per lookup. Keys are "<from>-><to>" rotation indices.
var kickTableJLSTZ = map[string][]Offset{
	"0->1": {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	"1->0": {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	"1->2": {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	"2->1": {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	"2->3": {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	"3->2": {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	"3->0": {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	"0->3": {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var kickTableI = map[string][]Offset{
	"0->1": {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	"1->0": {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	"1->2": {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	"2->1": {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	"2->3": {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	"3->2": {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	"3->0": {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	"0->3": {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

// zeroKick is the fallback candidate list: try the rotation in place only.
var zeroKick = []Offset{{0, 0}}

// RotationCount returns the number of rotation states for the piece type
// (1 for O, 4 for the rest).
func RotationCount(t PieceType) int {
	return len(rotations[t])
}

// ShapeFor returns the rotation-state matrix for the piece type.
// The returned shape is shared immutable data; callers must not mutate it.
func ShapeFor(t PieceType, rotation int) Shape {
	return rotations[t][rotation]
}

// ColorFor returns the piece type's display color.
func ColorFor(t PieceType) core.Color {
	return pieceColors[t]
}

// WallKicks returns the ordered wall-kick candidates for rotating t from
// one rotation index to another. The first candidate that yields a valid
// board position wins. Unknown transitions and the O piece fall back to a
// single zero offset.
func WallKicks(t PieceType, from, to int) []Offset {
	var table map[string][]Offset
	switch t {
	case PieceO:
		return zeroKick
	case PieceI:
		table = kickTableI
	default:
		table = kickTableJLSTZ
	}

	key := fmt.Sprintf("%d->%d", from, to)
	if offsets, ok := table[key]; ok {
		return offsets
	}
	return zeroKick
}

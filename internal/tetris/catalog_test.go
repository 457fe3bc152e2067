package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func TestRotationCounts(t *testing.T) {
	for pt := PieceType(0); pt < PieceCount; pt++ {
		want := 4
		if pt == PieceO {
			want = 1
		}
		if got := RotationCount(pt); got != want {
			t.Errorf("RotationCount(%s)=%d, want %d", pt, got, want)
		}
	}
}

func TestShapeCellCounts(t *testing.T) {
	// Every rotation state of every piece occupies exactly four cells
	for pt := PieceType(0); pt < PieceCount; pt++ {
		for r := 0; r < RotationCount(pt); r++ {
			count := 0
			for _, row := range ShapeFor(pt, r) {
				for _, occupied := range row {
					if occupied {
						count++
					}
				}
			}
			if count != 4 {
				t.Errorf("%s rotation %d has %d occupied cells, want 4", pt, r, count)
			}
		}
	}
}

func TestShapeMatrixSizes(t *testing.T) {
	sizes := map[PieceType]int{
		PieceI: 4,
		PieceO: 2,
		PieceT: 3,
		PieceS: 3,
		PieceZ: 3,
		PieceJ: 3,
		PieceL: 3,
	}

	for pt, want := range sizes {
		for r := 0; r < RotationCount(pt); r++ {
			s := ShapeFor(pt, r)
			if len(s) != want {
				t.Errorf("%s rotation %d matrix height=%d, want %d", pt, r, len(s), want)
			}
			for _, row := range s {
				if len(row) != want {
					t.Errorf("%s rotation %d row width=%d, want %d", pt, r, len(row), want)
				}
			}
		}
	}
}

func TestISpawnRow(t *testing.T) {
	// I spawns with its occupied row in the second matrix row
	s := ShapeFor(PieceI, 0)
	for x := 0; x < 4; x++ {
		if !s[1][x] {
			t.Errorf("I rotation 0 missing cell at (%d, 1)", x)
		}
	}
}

func TestPieceColorsDistinct(t *testing.T) {
	seen := make(map[core.Color]PieceType)
	for pt := PieceType(0); pt < PieceCount; pt++ {
		c := ColorFor(pt)
		if c == core.ColorDefault {
			t.Errorf("%s uses the empty-cell color", pt)
		}
		if prev, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %v", pt, prev, c)
		}
		seen[c] = pt
	}
}

func TestWallKicksOPiece(t *testing.T) {
	kicks := WallKicks(PieceO, 0, 0)
	if len(kicks) != 1 || kicks[0] != (Offset{0, 0}) {
		t.Errorf("O piece kicks=%v, want single zero offset", kicks)
	}
}

func TestWallKicksKnownTransitions(t *testing.T) {
	// Every valid transition has five candidates, first of which is (0,0)
	transitions := [][2]int{
		{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 3}, {3, 2}, {3, 0}, {0, 3},
	}

	for _, pt := range []PieceType{PieceI, PieceT, PieceS, PieceZ, PieceJ, PieceL} {
		for _, tr := range transitions {
			kicks := WallKicks(pt, tr[0], tr[1])
			if len(kicks) != 5 {
				t.Errorf("WallKicks(%s, %d, %d) has %d candidates, want 5", pt, tr[0], tr[1], len(kicks))
				continue
			}
			if kicks[0] != (Offset{0, 0}) {
				t.Errorf("WallKicks(%s, %d, %d) first candidate=%v, want (0,0)", pt, tr[0], tr[1], kicks[0])
			}
		}
	}
}

func TestWallKicksUnknownTransition(t *testing.T) {
	// 0->2 is not a single rotation step and falls back to the zero kick
	kicks := WallKicks(PieceT, 0, 2)
	if len(kicks) != 1 || kicks[0] != (Offset{0, 0}) {
		t.Errorf("unknown transition kicks=%v, want single zero offset", kicks)
	}
}

func TestPieceTypeString(t *testing.T) {
	names := map[PieceType]string{
		PieceI: "I", PieceO: "O", PieceT: "T", PieceS: "S",
		PieceZ: "Z", PieceJ: "J", PieceL: "L",
	}
	for pt, want := range names {
		if got := pt.String(); got != want {
			t.Errorf("PieceType(%d).String()=%q, want %q", pt, got, want)
		}
	}
	if got := PieceType(99).String(); got != "?" {
		t.Errorf("invalid type String()=%q, want %q", got, "?")
	}
}

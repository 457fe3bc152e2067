package tetris

import "testing"

func TestSpawnPositions(t *testing.T) {
	tests := []struct {
		pt   PieceType
		x, y int
	}{
		{PieceI, 3, -1},
		{PieceO, 4, 0},
		{PieceT, 3, 0},
		{PieceS, 3, 0},
		{PieceZ, 3, 0},
		{PieceJ, 3, 0},
		{PieceL, 3, 0},
	}

	for _, tt := range tests {
		p := SpawnPiece(tt.pt)
		if p.X != tt.x || p.Y != tt.y {
			t.Errorf("SpawnPiece(%s) at (%d, %d), want (%d, %d)", tt.pt, p.X, p.Y, tt.x, tt.y)
		}
		if p.Rotation != 0 {
			t.Errorf("SpawnPiece(%s) rotation=%d, want 0", tt.pt, p.Rotation)
		}
	}
}

func TestRotationTargetWraps(t *testing.T) {
	p := SpawnPiece(PieceT)

	if got := p.RotationTarget(1); got != 1 {
		t.Errorf("CW from 0 = %d, want 1", got)
	}
	if got := p.RotationTarget(-1); got != 3 {
		t.Errorf("CCW from 0 = %d, want 3", got)
	}

	p.SetRotation(3)
	if got := p.RotationTarget(1); got != 0 {
		t.Errorf("CW from 3 = %d, want 0", got)
	}
}

func TestRotationTargetOPiece(t *testing.T) {
	p := SpawnPiece(PieceO)
	if got := p.RotationTarget(1); got != 0 {
		t.Errorf("O piece CW target=%d, want 0", got)
	}
	if got := p.RotationTarget(-1); got != 0 {
		t.Errorf("O piece CCW target=%d, want 0", got)
	}
}

func TestSetRotationRefreshesShape(t *testing.T) {
	p := SpawnPiece(PieceI)
	p.SetRotation(1)

	// Vertical I: column 2 occupied in every row
	for y := 0; y < 4; y++ {
		if !p.Shape()[y][2] {
			t.Errorf("I rotation 1 missing cell at (2, %d)", y)
		}
	}
}

func TestBounds(t *testing.T) {
	// Horizontal I occupies row 1, columns 0..3
	p := SpawnPiece(PieceI)
	r := p.Bounds()
	if r.X != 0 || r.Y != 1 || r.W != 4 || r.H != 1 {
		t.Errorf("I bounds=%+v, want {0 1 4 1}", r)
	}

	// O occupies the full 2x2 matrix
	o := SpawnPiece(PieceO)
	r = o.Bounds()
	if r.X != 0 || r.Y != 0 || r.W != 2 || r.H != 2 {
		t.Errorf("O bounds=%+v, want {0 0 2 2}", r)
	}

	// T spawn occupies rows 0..1, columns 0..2
	tp := SpawnPiece(PieceT)
	r = tp.Bounds()
	if r.X != 0 || r.Y != 0 || r.W != 3 || r.H != 2 {
		t.Errorf("T bounds=%+v, want {0 0 3 2}", r)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := SpawnPiece(PieceJ)
	c := p.Clone()

	c.X += 2
	c.SetRotation(1)

	if p.X != 3 || p.Rotation != 0 {
		t.Errorf("mutating clone changed original: X=%d rotation=%d", p.X, p.Rotation)
	}
}

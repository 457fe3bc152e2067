package tetris

// Snapshot captures the observable game state for determinism testing and
// debugging.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	Level        int
	Lines        int
	CurrentType  PieceType
	CurrentRot   int
	CurrentX     int
	CurrentY     int
	NextType     PieceType
	BagRemaining int
	GravityTicks int
	MaxHeight    int
	Holes        int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		State:        g.state,
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		GravityTicks: g.gravityTicks,
	}
	if g.current != nil {
		s.CurrentType = g.current.Type
		s.CurrentRot = g.current.Rotation
		s.CurrentX = g.current.X
		s.CurrentY = g.current.Y
	}
	if g.next != nil {
		s.NextType = g.next.Type
	}
	if g.bag != nil {
		s.BagRemaining = g.bag.Remaining()
	}
	if g.board != nil {
		s.MaxHeight = g.board.MaxHeight()
		s.Holes = g.board.CountHoles()
	}
	return s
}

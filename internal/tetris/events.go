package tetris

// Hooks are optional notification callbacks the platform layer attaches
// to observe engine events. They are invoked synchronously and in order
// from within the engine's own mutation path; a nil field is skipped.
// Handlers must not call back into engine mutation methods.
type Hooks struct {
	// OnScoreUpdate fires whenever the score changes (soft drop, hard
	// drop, line clear).
	OnScoreUpdate func(score int)

	// OnLevelUp fires when the level increases after a line clear.
	OnLevelUp func(level int)

	// OnLineClear fires after rows are cleared, with the count and the
	// points awarded for them.
	OnLineClear func(lines, points int)

	// OnPiecePlace fires when a piece locks into the board, before line
	// clearing.
	OnPiecePlace func()

	// OnGameOver fires once when the session ends, carrying the final
	// statistics.
	OnGameOver func(score, level, lines int)
}

func (h Hooks) scoreUpdate(score int) {
	if h.OnScoreUpdate != nil {
		h.OnScoreUpdate(score)
	}
}

func (h Hooks) levelUp(level int) {
	if h.OnLevelUp != nil {
		h.OnLevelUp(level)
	}
}

func (h Hooks) lineClear(lines, points int) {
	if h.OnLineClear != nil {
		h.OnLineClear(lines, points)
	}
}

func (h Hooks) piecePlace() {
	if h.OnPiecePlace != nil {
		h.OnPiecePlace()
	}
}

func (h Hooks) gameOver(score, level, lines int) {
	if h.OnGameOver != nil {
		h.OnGameOver(score, level, lines)
	}
}

package tetris

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))
	g.Start()
	if g.SessionState() != StatePlaying {
		t.Fatalf("state after Start=%v, want playing", g.SessionState())
	}
	return g
}

func TestResetEntersMenu(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	if g.SessionState() != StateMenu {
		t.Errorf("state after Reset=%v, want menu", g.SessionState())
	}
	if g.Current() != nil {
		t.Error("no piece should be falling before Start")
	}
}

func TestStepConfirmStartsRound(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	if g.SessionState() != StatePlaying {
		t.Errorf("state after Confirm=%v, want playing", g.SessionState())
	}
	if g.Current() == nil || g.Next() == nil {
		t.Error("Start should spawn current and next pieces")
	}
}

func TestMoveLeftStopsAtWall(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.current = SpawnPiece(PieceI) // occupies columns 3..6

	for i := 0; i < 3; i++ {
		if !g.MoveLeft() {
			t.Fatalf("MoveLeft %d should succeed", i+1)
		}
	}
	if g.current.X != 0 {
		t.Errorf("piece X=%d after three moves, want 0", g.current.X)
	}
	if g.MoveLeft() {
		t.Error("fourth MoveLeft should fail at the wall")
	}
	if g.current.X != 0 {
		t.Errorf("failed move changed X to %d", g.current.X)
	}
}

func TestMoveRightStopsAtWall(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.current = SpawnPiece(PieceO) // occupies columns 4..5

	moves := 0
	for g.MoveRight() {
		moves++
		if moves > BoardWidth {
			t.Fatal("MoveRight never hit the wall")
		}
	}
	if moves != 4 {
		t.Errorf("O piece moved right %d times, want 4", moves)
	}
}

func TestSoftDropScoresOnePoint(t *testing.T) {
	g := newPlayingGame(t, 42)
	before := g.Score()

	if !g.SoftDrop() {
		t.Fatal("SoftDrop on open board should succeed")
	}
	if got := g.Score() - before; got != 1 {
		t.Errorf("soft drop awarded %d points, want 1", got)
	}
}

func TestHardDropScoresTwiceDistance(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.current = SpawnPiece(PieceO) // Y=0, lands at Y=18 on an empty board

	distance := g.HardDrop()
	if distance != 18 {
		t.Fatalf("hard drop distance=%d, want 18", distance)
	}
	if g.Score() != 36 {
		t.Errorf("hard drop score=%d, want 36", g.Score())
	}

	// Piece locked at the floor
	if !g.board.Occupied(4, 19) || !g.board.Occupied(5, 19) {
		t.Error("piece should be locked on the floor after hard drop")
	}
	if g.Current() == nil {
		t.Error("next piece should be promoted after lock")
	}
}

func TestLineClearScoring(t *testing.T) {
	// Single clear at level 3 is worth 40*3
	g := newPlayingGame(t, 42)
	g.level = 3
	fillRow(g.board, 18, 4, 5)

	g.current = SpawnPiece(PieceO)
	g.current.Y = 17 // occupies rows 17..18; only row 18 completes

	g.score = 0
	g.lockPiece()

	if len(g.LastCleared()) != 1 {
		t.Fatalf("cleared %d rows, want 1", len(g.LastCleared()))
	}
	if g.Score() != 120 {
		t.Errorf("single clear at level 3 scored %d, want 120", g.Score())
	}
	if g.Lines() != 1 {
		t.Errorf("lines=%d, want 1", g.Lines())
	}
}

func TestTetrisClearScoring(t *testing.T) {
	g := newPlayingGame(t, 42)
	for y := 16; y < 20; y++ {
		fillRow(g.board, y, 9)
	}

	// Vertical I in the rightmost column completes all four rows
	g.current = SpawnPiece(PieceI)
	g.current.SetRotation(1) // occupied matrix column 2
	g.current.X = 7
	g.current.Y = 16

	g.score = 0
	g.lockPiece()

	if len(g.LastCleared()) != 4 {
		t.Fatalf("cleared %d rows, want 4", len(g.LastCleared()))
	}
	if g.Score() != 1200 {
		t.Errorf("quad clear at level 1 scored %d, want 1200", g.Score())
	}
	if g.board.MaxHeight() != 0 {
		t.Errorf("board MaxHeight=%d after quad clear, want 0", g.board.MaxHeight())
	}
}

func TestLevelProgression(t *testing.T) {
	g := newPlayingGame(t, 42)

	tests := []struct {
		lines int
		level int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{29, 3},
		{30, 4},
		{99, 10},
	}

	for _, tt := range tests {
		g.lines = tt.lines
		if got := g.computeLevel(); got != tt.level {
			t.Errorf("level at %d lines=%d, want %d", tt.lines, got, tt.level)
		}
	}
}

func TestLevelNeverDropsBelowStart(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.startLevel = 7
	g.lines = 0

	if got := g.computeLevel(); got != 7 {
		t.Errorf("level with start 7 and 0 lines=%d, want 7", got)
	}

	g.lines = 90
	if got := g.computeLevel(); got != 10 {
		t.Errorf("level with start 7 and 90 lines=%d, want 10", got)
	}
}

func TestLevelUpAcceleratesGravity(t *testing.T) {
	g := newPlayingGame(t, 42)

	g.level = 1
	slow := g.DropInterval()
	g.level = 5
	fast := g.DropInterval()

	if fast >= slow {
		t.Errorf("level 5 interval %v not faster than level 1 interval %v", fast, slow)
	}

	// Levels past the curve clamp to the fastest tier
	g.level = 50
	if got := g.DropInterval(); got != 100*time.Millisecond {
		t.Errorf("clamped interval=%v, want 100ms", got)
	}
}

func TestGravityMovesPieceDown(t *testing.T) {
	g := newPlayingGame(t, 42)
	startY := g.current.Y

	// One tick short of the gravity threshold: no drop yet
	empty := core.NewInputFrame()
	for i := 0; i < g.gravityTicks-1; i++ {
		g.Step(empty)
	}
	if g.current.Y != startY {
		t.Fatalf("piece dropped after %d ticks, expected none before %d", g.gravityTicks-1, g.gravityTicks)
	}

	g.Step(empty)
	if g.current.Y != startY+1 {
		t.Errorf("piece Y=%d after gravity tick, want %d", g.current.Y, startY+1)
	}
}

func TestRotationAgainstWall(t *testing.T) {
	g := newPlayingGame(t, 42)

	// Vertical I flush against the left wall: the kick table shifts it inward
	g.current = SpawnPiece(PieceI)
	g.current.SetRotation(1)
	g.current.X = -2 // occupied column 2 of the matrix sits at board column 0
	g.current.Y = 5

	if !g.Rotate(1) {
		t.Fatal("rotation against the wall should succeed via wall kick")
	}
	if !g.board.IsValidPosition(g.current, 0, 0) {
		t.Error("kicked rotation landed in an invalid position")
	}
	if g.current.Rotation != 2 {
		t.Errorf("rotation=%d after CW turn, want 2", g.current.Rotation)
	}
}

func TestRotationBlockedLeavesPieceUnchanged(t *testing.T) {
	g := newPlayingGame(t, 42)

	// Box the piece in: every row around it is solid except the slot the
	// horizontal I occupies, so no kick candidate can fit
	g.current = SpawnPiece(PieceI)
	g.current.Y = 10 // occupied row lands at y=11
	for y := 7; y < 15; y++ {
		if y == 11 {
			fillRow(g.board, y, 3, 4, 5, 6)
		} else {
			fillRow(g.board, y)
		}
	}

	wantX, wantY, wantRot := g.current.X, g.current.Y, g.current.Rotation
	if g.Rotate(1) {
		t.Fatal("boxed-in rotation should fail")
	}
	if g.current.X != wantX || g.current.Y != wantY || g.current.Rotation != wantRot {
		t.Error("failed rotation mutated the piece")
	}
}

func TestOPieceNeverRotates(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.current = SpawnPiece(PieceO)

	if g.Rotate(1) || g.Rotate(-1) {
		t.Error("O piece rotation should be a no-op")
	}
}

func TestPauseBlocksSimulation(t *testing.T) {
	g := newPlayingGame(t, 42)

	g.Pause()
	if g.SessionState() != StatePaused {
		t.Fatalf("state after Pause=%v, want paused", g.SessionState())
	}

	if g.MoveLeft() || g.MoveDown() || g.Rotate(1) {
		t.Error("moves should fail while paused")
	}
	if g.HardDrop() != 0 {
		t.Error("hard drop should be a no-op while paused")
	}

	// Gravity does not advance while paused
	y := g.current.Y
	empty := core.NewInputFrame()
	for i := 0; i < g.gravityTicks*2; i++ {
		g.Step(empty)
	}
	if g.current.Y != y {
		t.Error("piece dropped while paused")
	}

	g.Pause()
	if g.SessionState() != StatePlaying {
		t.Errorf("state after unpause=%v, want playing", g.SessionState())
	}
}

func TestStepPauseAction(t *testing.T) {
	g := newPlayingGame(t, 42)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if g.SessionState() != StatePaused {
		t.Fatalf("state after pause action=%v, want paused", g.SessionState())
	}

	g.Step(pause)
	if g.SessionState() != StatePlaying {
		t.Errorf("state after second pause action=%v, want playing", g.SessionState())
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	g := newPlayingGame(t, 42)

	var hookScore, hookLevel, hookLines int
	hookCalled := false
	g.SetHooks(Hooks{
		OnGameOver: func(score, level, lines int) {
			hookCalled = true
			hookScore, hookLevel, hookLines = score, level, lines
		},
	})

	// Wall off everything below the spawn rows so the lock blocks the next
	// spawn without completing any line
	for y := 2; y < 20; y++ {
		fillRow(g.board, y, 0)
	}
	g.current = SpawnPiece(PieceT)

	g.HardDrop()

	if g.SessionState() != StateGameOver {
		t.Fatalf("state=%v after blocked spawn, want gameover", g.SessionState())
	}
	if !hookCalled {
		t.Fatal("game over hook not invoked")
	}
	if hookScore != g.Score() || hookLevel != g.Level() || hookLines != g.Lines() {
		t.Errorf("hook payload (%d, %d, %d) != game (%d, %d, %d)",
			hookScore, hookLevel, hookLines, g.Score(), g.Level(), g.Lines())
	}

	// Further moves are rejected
	if g.MoveLeft() || g.MoveDown() {
		t.Error("moves should fail after game over")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newPlayingGame(t, 42)

	for y := 2; y < 20; y++ {
		fillRow(g.board, y, 0)
	}
	g.current = SpawnPiece(PieceT)
	g.HardDrop()
	if g.SessionState() != StateGameOver {
		t.Fatal("setup failed to reach game over")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.SessionState() != StatePlaying {
		t.Fatalf("state after restart=%v, want playing", g.SessionState())
	}
	if g.Score() != 0 || g.Lines() != 0 {
		t.Errorf("restart kept score=%d lines=%d, want zeros", g.Score(), g.Lines())
	}
	if g.board.MaxHeight() != 0 {
		t.Error("restart should clear the board")
	}
}

func TestHooksFireOnLineClear(t *testing.T) {
	g := newPlayingGame(t, 42)

	var clearedLines, clearedPoints int
	var placed bool
	g.SetHooks(Hooks{
		OnPiecePlace: func() { placed = true },
		OnLineClear: func(lines, points int) {
			clearedLines, clearedPoints = lines, points
		},
	})

	fillRow(g.board, 19, 4, 5)
	fillRow(g.board, 18, 4, 5)
	g.current = SpawnPiece(PieceO)
	g.current.Y = 18 // fills the gaps in both bottom rows
	g.score = 0
	g.lockPiece()

	if !placed {
		t.Error("piece place hook not invoked")
	}
	if clearedLines != 2 {
		t.Errorf("line clear hook lines=%d, want 2", clearedLines)
	}
	if clearedPoints != 100 {
		t.Errorf("line clear hook points=%d, want 100", clearedPoints)
	}
}

func TestGhostRowTracksPiece(t *testing.T) {
	g := newPlayingGame(t, 42)
	g.current = SpawnPiece(PieceO)

	if got := g.GhostRow(); got != 18 {
		t.Errorf("GhostRow=%d on empty board, want 18", got)
	}
	if g.IsAtBottom() {
		t.Error("spawned piece should not be at the bottom")
	}

	g.current.Y = 18
	if !g.IsAtBottom() {
		t.Error("piece on the floor should be at the bottom")
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and inputs produce identical outcomes
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%13 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%17 == 0:
			inputSequence[i].Set(core.ActionRotateCW)
		case i%23 == 0:
			inputSequence[i].Set(core.ActionHardDrop)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		g.Start()
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	// Snapshots cover piece position, bag state, and stack shape, not just
	// the score line
	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("runs diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestDifficultyStartLevel(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(testConfig(42))
	g.Start()

	if g.Level() != 7 {
		t.Errorf("hard preset start level=%d, want 7", g.Level())
	}
}

func TestStateString(t *testing.T) {
	names := map[State]string{
		StateMenu:     "menu",
		StatePlaying:  "playing",
		StatePaused:   "paused",
		StateGameOver: "gameover",
	}
	for s, want := range names {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String()=%q, want %q", s, got, want)
		}
	}
}

package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/core"
)

// State is the engine's session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game is the falling-block engine. It owns one board and the
// current/next piece pair, drawn from a private bag randomizer. All
// mutation happens synchronously: the platform's tick loop serializes
// gravity and input on one goroutine, so no two operations can
// interleave mid-lock or mid-clear.
type Game struct {
	cfg      config.TetraConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int

	bag     *Bag
	board   *Board
	current *Piece
	next    *Piece

	score      int
	level      int
	startLevel int
	lines      int
	state      State

	// grounded is set when a gravity move fails and cleared by any
	// successful move or rotation. Locking happens immediately on the
	// failed gravity move; the flag is kept as the reset hook for a
	// future grace-period lock delay.
	grounded bool

	gravityTicks   int // Ticks between automatic drops at the current level
	gravityCounter int // Counts ticks until the next automatic drop

	lastCleared []int // Row indices of the most recent line clear

	hooks Hooks

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level variables for config/difficulty (set by the CLI before creation)
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 keeps the config's value.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a new game in the menu state. Reset must be called before
// stepping.
func New() *Game {
	return &Game{state: StateMenu}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "tetra"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetra"
}

// SetHooks attaches notification callbacks. Pass a zero Hooks to detach.
func (g *Game) SetHooks(h Hooks) {
	g.hooks = h
}

// Reset initializes the session: loads config, seeds the rng, and returns
// to the menu state. Start (or a Confirm step) begins play.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetra(configPath)
	if err != nil {
		cfg = config.DefaultTetraConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetraPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	if selectedStartLevel > 0 {
		cfg.Difficulty.StartLevel = selectedStartLevel
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.board = NewBoard(cfg.Board.Width, cfg.Board.Height)
	g.bag = nil
	g.current = nil
	g.next = nil
	g.score = 0
	g.startLevel = cfg.Difficulty.StartLevel
	g.level = g.startLevel
	g.lines = 0
	g.grounded = false
	g.lastCleared = nil
	g.state = StateMenu
}

// Start begins a fresh round: resets the board, rebuilds the randomizer,
// zeros the statistics, spawns the current and next pieces, and enters
// the playing state. Valid from any state.
func (g *Game) Start() {
	g.board.Reset()
	g.bag = NewBag(g.rng)
	g.score = 0
	g.level = g.startLevel
	g.lines = 0
	g.grounded = false
	g.lastCleared = nil
	g.gravityCounter = 0
	g.updateGravity()

	g.current = SpawnPiece(g.bag.Next())
	g.next = SpawnPiece(g.bag.Peek())
	g.state = StatePlaying

	// A fresh board cannot block the spawn, but Start may be called on a
	// pre-filled board in tests and future modes.
	if g.board.IsGameOver(g.current) {
		g.state = StateGameOver
		g.hooks.gameOver(g.score, g.level, g.lines)
	}
}

// Pause toggles between playing and paused. No-op in other states.
// While paused the gravity counter does not advance: the step loop skips
// simulation entirely.
func (g *Game) Pause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// MoveLeft shifts the piece one column left. Returns whether it moved.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the piece one column right. Returns whether it moved.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

func (g *Game) shift(dx int) bool {
	if g.state != StatePlaying || g.current == nil {
		return false
	}
	if !g.board.IsValidPosition(g.current, dx, 0) {
		return false
	}
	g.current.X += dx
	g.grounded = false
	return true
}

// MoveDown descends the piece one row without scoring. Used by gravity
// and by SoftDrop. Returns whether it moved.
func (g *Game) MoveDown() bool {
	if g.state != StatePlaying || g.current == nil {
		return false
	}
	if !g.board.IsValidPosition(g.current, 0, 1) {
		return false
	}
	g.current.Y++
	g.grounded = false
	return true
}

// SoftDrop descends one row and awards the soft-drop bonus on success.
func (g *Game) SoftDrop() bool {
	if !g.MoveDown() {
		return false
	}
	g.score += g.cfg.Scoring.SoftDrop
	g.hooks.scoreUpdate(g.score)
	return true
}

// HardDrop sends the piece straight to its landing row, awards points per
// row travelled, and locks immediately. Returns the distance dropped.
func (g *Game) HardDrop() int {
	if g.state != StatePlaying || g.current == nil {
		return 0
	}
	distance := 0
	for g.board.IsValidPosition(g.current, 0, distance+1) {
		distance++
	}
	g.current.Y += distance
	if distance > 0 {
		g.score += distance * g.cfg.Scoring.HardDrop
		g.hooks.scoreUpdate(g.score)
	}
	g.lockPiece()
	return distance
}

// Rotate turns the piece in the given direction (+1 clockwise, -1
// counter-clockwise), trying each wall-kick candidate in order and
// applying the first that fits. Returns false, leaving the piece
// unchanged, when every candidate collides; a rejected rotation is
// normal, not an error. The O piece never rotates.
func (g *Game) Rotate(direction int) bool {
	if g.state != StatePlaying || g.current == nil {
		return false
	}
	if g.current.Type == PieceO {
		return false
	}

	target := g.current.RotationTarget(direction)
	for _, kick := range WallKicks(g.current.Type, g.current.Rotation, target) {
		if g.board.IsValidRotation(g.current, target, kick.DX, kick.DY) {
			g.current.SetRotation(target)
			g.current.X += kick.DX
			g.current.Y += kick.DY
			g.grounded = false
			return true
		}
	}
	return false
}

// lockPiece fixes the current piece into the board, clears lines, scores,
// levels up, promotes the next piece, and checks for game over.
func (g *Game) lockPiece() {
	g.board.Place(g.current)
	g.hooks.piecePlace()

	cleared := g.board.ClearLines()
	g.lastCleared = cleared
	if n := len(cleared); n > 0 {
		base := g.cfg.Scoring.LinePoints[core.Min(n, len(g.cfg.Scoring.LinePoints)-1)]
		points := base * g.level
		g.score += points
		g.lines += n
		g.hooks.lineClear(n, points)
		g.hooks.scoreUpdate(g.score)

		if newLevel := g.computeLevel(); newLevel > g.level {
			g.level = newLevel
			g.updateGravity()
			g.hooks.levelUp(g.level)
		}
	}

	g.current = SpawnPiece(g.bag.Next())
	g.next = SpawnPiece(g.bag.Peek())
	g.grounded = false
	g.gravityCounter = 0

	if g.board.IsGameOver(g.current) {
		g.state = StateGameOver
		g.hooks.gameOver(g.score, g.level, g.lines)
	}
}

// computeLevel derives the level from total cleared lines, never dropping
// below the configured starting level.
func (g *Game) computeLevel() int {
	return core.Max(g.startLevel, g.lines/10+1)
}

// DropInterval returns the current automatic drop period from the speed
// curve, floored at the fastest tier.
func (g *Game) DropInterval() time.Duration {
	intervals := g.cfg.Gravity.IntervalsMs
	idx := core.Min(g.level-1, len(intervals)-1)
	idx = core.Max(idx, 0)
	return time.Duration(intervals[idx]) * time.Millisecond
}

// updateGravity converts the drop interval into a tick count at the
// session tick rate.
func (g *Game) updateGravity() {
	ticks := int(g.DropInterval().Milliseconds()) * g.tickRate / 1000
	g.gravityTicks = core.Max(1, ticks)
}

// GhostRow returns the row the current piece would land on, or 0 when no
// piece is falling.
func (g *Game) GhostRow() int {
	if g.current == nil {
		return 0
	}
	return g.board.GhostRow(g.current)
}

// IsAtBottom reports whether the current piece cannot descend further.
func (g *Game) IsAtBottom() bool {
	if g.current == nil {
		return false
	}
	return !g.board.IsValidPosition(g.current, 0, 1)
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// Lines returns the total lines cleared this round.
func (g *Game) Lines() int { return g.lines }

// SessionState returns the engine state.
func (g *Game) SessionState() State { return g.state }

// Board returns the playfield for read-only rendering access.
func (g *Game) Board() *Board { return g.board }

// Current returns the falling piece, nil outside a round.
func (g *Game) Current() *Piece { return g.current }

// Next returns the preview of the upcoming piece, nil outside a round.
func (g *Game) Next() *Piece { return g.next }

// LastCleared returns the row indices removed by the most recent line
// clear, for the platform's animation use.
func (g *Game) LastCleared() []int { return g.lastCleared }

// Step advances the simulation by one tick: applies this frame's input
// and, while playing, one gravity increment. A gravity move that fails
// locks the piece immediately.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			g.Start()
		}
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.Start()
		}
	case StatePaused:
		if in.Has(core.ActionPause) {
			g.Pause()
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.Pause()
			break
		}
		g.applyInput(in)
		if g.state != StatePlaying || g.tooSmall {
			break
		}
		g.gravityCounter++
		if g.gravityCounter >= g.gravityTicks {
			g.gravityCounter = 0
			if !g.MoveDown() {
				g.grounded = true
				g.lockPiece()
			}
		}
	}

	return core.StepResult{State: g.State()}
}

// applyInput maps this frame's actions to engine commands.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.MoveRight()
	}
	if in.Has(core.ActionRotateCW) {
		g.Rotate(1)
	}
	if in.Has(core.ActionRotateCCW) {
		g.Rotate(-1)
	}
	if in.Has(core.ActionSoftDrop) {
		g.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		g.HardDrop()
	}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// checkScreenSize flags sessions whose terminal cannot fit the playfield.
func (g *Game) checkScreenSize() {
	requiredW := g.cfg.Board.Width*2 + 2 + 14 // board + frame + sidebar
	requiredH := g.cfg.Board.Height + 4       // board + frame + HUD
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

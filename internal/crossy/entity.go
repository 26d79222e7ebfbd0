package crossy

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

// SpriteID identifies what an entity looks like. The core never draws;
// the platform renderer maps sprite identifiers to terminal cells.
type SpriteID int

const (
	SpriteVehicle SpriteID = iota
	SpritePlayer
	SpriteText
)

// Entity is the common surface the renderer and update loop work against.
// Positions are in native pixel space.
type Entity interface {
	Pos() (x, y float64)
	Update(dt float64)
	Sprite() SpriteID
}

// Vehicle is a moving obstacle travelling left to right through a lane.
// It owns its position and speed and re-rolls itself once it leaves the
// play field on the right.
type Vehicle struct {
	x, y  float64
	speed float64

	grid *GridConfig
	rng  *rand.Rand

	// rollDifficulty is the difficulty used for the next speed roll. It
	// tracks the grid setting plus any streak progression bonus.
	rollDifficulty int
}

// NewVehicle creates a vehicle with randomized position and speed,
// spawning off-screen to the left.
func NewVehicle(grid *GridConfig, rng *rand.Rand) *Vehicle {
	v := &Vehicle{
		grid:           grid,
		rng:            rng,
		rollDifficulty: grid.Difficulty(),
	}
	v.reroll()
	return v
}

// Pos returns the vehicle's native pixel position.
func (v *Vehicle) Pos() (float64, float64) { return v.x, v.y }

// Speed returns the vehicle's speed in native pixels per second.
func (v *Vehicle) Speed() float64 { return v.speed }

// Sprite identifies the vehicle for the renderer.
func (v *Vehicle) Sprite() SpriteID { return SpriteVehicle }

// SetDifficulty sets the difficulty used for the next speed roll.
// Values outside the grid bounds are clamped.
func (v *Vehicle) SetDifficulty(d int) {
	v.rollDifficulty = core.Clamp(d, MinDifficulty, MaxDifficulty)
}

// Update advances the vehicle by dt seconds. Once it exits the field on
// the right it re-rolls a fresh position and speed off-screen left.
func (v *Vehicle) Update(dt float64) {
	if v.x < v.grid.NativeCanvasWidth() {
		v.x += dt * v.speed
		return
	}
	v.reroll()
}

// reroll places the vehicle off-screen left in a random lane with a fresh
// speed. The speed roll adds 50 px/s per difficulty point rolled.
func (v *Vehicle) reroll() {
	v.x = -TileW * float64(randBetween(v.rng, 1, v.grid.Cols()))
	v.y = TileH*float64(randBetween(v.rng, 1, v.grid.Lanes()+1)) + LaneYOffset
	v.speed = v.grid.BaseSpeed() + 50*float64(randBetween(v.rng, 1, v.rollDifficulty+1))
}

// randBetween returns a uniform value in [lo, hi). A degenerate range
// yields lo.
func randBetween(rng *rand.Rand, lo, hi int) int {
	if hi-lo < 1 {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// Player is the player-controlled entity. It moves in discrete tile steps
// and is clamped to the grid; a hop that would leave the board is ignored
// rather than clamped-and-moved.
type Player struct {
	col, row int
	grid     *GridConfig
}

// NewPlayer creates a player at the grid's start position.
func NewPlayer(grid *GridConfig) *Player {
	p := &Player{grid: grid}
	p.ResetToStart()
	return p
}

// Col returns the player's current column.
func (p *Player) Col() int { return p.col }

// Row returns the player's current row.
func (p *Player) Row() int { return p.row }

// Pos returns the player's native pixel position, derived from its tile.
func (p *Player) Pos() (float64, float64) {
	return float64(p.col) * TileW, float64(p.row) * TileH
}

// Sprite identifies the player for the renderer.
func (p *Player) Sprite() SpriteID { return SpritePlayer }

// Update is a no-op; the player only moves on input. Goal detection is
// evaluated by the game driver after input is applied.
func (p *Player) Update(dt float64) {}

// AtGoal reports whether the player has reached the goal row.
func (p *Player) AtGoal() bool { return p.row < 1 }

// ResetToStart returns the player to the configured start position.
func (p *Player) ResetToStart() {
	p.col = p.grid.PlayerStartCol()
	p.row = p.grid.PlayerStartRow()
}

// Hop moves the player exactly one tile in the given direction. Moves that
// would exit [0, cols-1] x [0, rows-1] are ignored. Returns whether the
// player moved.
func (p *Player) Hop(dir Direction) bool {
	col, row := p.col, p.row
	switch dir {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	default:
		return false
	}
	if col < 0 || col >= p.grid.Cols() || row < 0 || row >= p.grid.Rows() {
		return false
	}
	p.col, p.row = col, row
	return true
}

// Direction is a discrete hop direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// StatLine is a text display entity: it exposes the scoreboard as a line
// of text for the renderer. It has no position in the play field.
type StatLine struct {
	text string
}

// Pos places the stat line at the origin; the renderer pins HUD text.
func (s *StatLine) Pos() (float64, float64) { return 0, 0 }

// Update is a no-op; the game rewrites the text when the score changes.
func (s *StatLine) Update(dt float64) {}

// Sprite identifies the stat line for the renderer.
func (s *StatLine) Sprite() SpriteID { return SpriteText }

// Text returns the current display text.
func (s *StatLine) Text() string { return s.text }

// SetText replaces the display text.
func (s *StatLine) SetText(text string) { s.text = text }

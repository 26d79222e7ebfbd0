package crossy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar  = '◆'
	VehicleChar = '█'
	GoalChar    = '≈'
	GrassChar   = '░'
	LaneEdge    = '─'
)

// Scoreboard tracks the run's streak counters. It is mutated only by the
// success and failure transitions.
type Scoreboard struct {
	Streak int
	Best   int
	Wins   int
	Deaths int
}

// RecordWin applies the success transition to the counters.
func (s *Scoreboard) RecordWin() {
	s.Streak++
	s.Wins++
	if s.Streak > s.Best {
		s.Best = s.Streak
	}
}

// RecordDeath applies the failure transition and returns the streak that
// just ended (zero if none was running).
func (s *Scoreboard) RecordDeath() int {
	ended := s.Streak
	s.Streak = 0
	s.Deaths++
	return ended
}

// Zero resets all counters.
func (s *Scoreboard) Zero() {
	*s = Scoreboard{}
}

// Game drives one crossing run: every tick it advances the vehicles,
// applies input to the player, and evaluates the win/lose transitions.
// There is no terminal state; the run continues until the player quits.
type Game struct {
	grid   *GridConfig
	rng    *rand.Rand
	player *Player

	vehicles []*Vehicle
	score    Scoreboard
	hud      *StatLine

	diff *config.DifficultyManager
	cfg  config.CrossyConfig

	runtime core.RuntimeConfig
	paused  bool
}

// Package-level variables set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new crossing game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crossy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crossy"
}

// Grid exposes the live grid configuration.
func (g *Game) Grid() *GridConfig {
	return g.grid
}

// Score returns a copy of the current scoreboard.
func (g *Game) Score() Scoreboard {
	return g.score
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCrossy(configPath)
	if err != nil {
		cfg = config.DefaultCrossyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrossyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.grid = NewGridConfig(
		cfg.Grid.Lanes,
		cfg.Grid.Cols,
		cfg.Grid.Vehicles,
		cfg.Grid.BaseSpeed,
		cfg.Grid.Difficulty,
	)
	g.grid.SetScale(cfg.Grid.Scale)

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.hud = &StatLine{}
	g.paused = false

	g.rebuild()
}

// rebuild reconstructs the board from the current grid settings: a fresh
// vehicle list, the player at the start position, and a zeroed scoreboard.
// Called at reset, on restart, and after any settings change lands.
func (g *Game) rebuild() {
	g.vehicles = make([]*Vehicle, 0, g.grid.Vehicles())
	for i := 0; i < g.grid.Vehicles(); i++ {
		g.vehicles = append(g.vehicles, NewVehicle(g.grid, g.rng))
	}
	g.player = NewPlayer(g.grid)
	g.score.Zero()
	g.refreshHUD()
}

// Step advances the game by dt seconds of simulation time. dt is wall-clock
// time between ticks, supplied by the platform, so motion speed is
// frame-rate-independent.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.rebuild()
		return core.StepResult{State: g.State()}
	}

	if g.applySettings(in) {
		// Settings change rebuilds the board before the next tick.
		g.rebuild()
		return core.StepResult{State: g.State()}
	}

	g.applyMovement(in)

	// Advance every vehicle. The difficulty used for speed re-rolls is the
	// grid setting plus any streak progression bonus.
	roll := g.grid.Difficulty() + g.diff.Boost(g.score.Streak)
	for _, v := range g.vehicles {
		v.SetDifficulty(roll)
		v.Update(dt)
	}

	g.player.Update(dt)

	ended := 0
	if g.player.AtGoal() {
		g.score.RecordWin()
		g.player.ResetToStart()
	}

	// Every hit triggers the failure transition independently; hits are not
	// deduplicated within a tick.
	for _, v := range g.vehicles {
		if Collides(v, g.player) {
			if e := g.score.RecordDeath(); e > 0 {
				ended = e
			}
			g.player.ResetToStart()
		}
	}

	g.refreshHUD()

	return core.StepResult{State: g.State(), EndedStreak: ended}
}

// applySettings runs the grid adjustment commands present in the input
// frame. Returns true if any setting actually changed; out-of-bounds
// requests are silent no-ops and do not trigger a rebuild.
func (g *Game) applySettings(in core.InputFrame) bool {
	changed := false

	apply := func(requested bool, adjust func() int, before int) {
		if !requested {
			return
		}
		if adjust() != before {
			changed = true
		}
	}

	apply(in.Has(core.ActionMoreLanes), g.grid.AddLane, g.grid.Lanes())
	apply(in.Has(core.ActionFewerLanes), g.grid.RemoveLane, g.grid.Lanes())
	apply(in.Has(core.ActionMoreCols), g.grid.AddCol, g.grid.Cols())
	apply(in.Has(core.ActionFewerCols), g.grid.RemoveCol, g.grid.Cols())
	apply(in.Has(core.ActionMoreVehicles), g.grid.AddVehicle, g.grid.Vehicles())
	apply(in.Has(core.ActionFewerVehicles), g.grid.RemoveVehicle, g.grid.Vehicles())
	apply(in.Has(core.ActionHarder), g.grid.RaiseDifficulty, g.grid.Difficulty())
	apply(in.Has(core.ActionEasier), g.grid.LowerDifficulty, g.grid.Difficulty())

	return changed
}

// applyMovement translates directional actions into tile hops, in a fixed
// order so simultaneous presses stay deterministic.
func (g *Game) applyMovement(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.player.Hop(DirUp)
	}
	if in.Has(core.ActionDown) {
		g.player.Hop(DirDown)
	}
	if in.Has(core.ActionLeft) {
		g.player.Hop(DirLeft)
	}
	if in.Has(core.ActionRight) {
		g.player.Hop(DirRight)
	}
}

// refreshHUD rewrites the stat line entity from the scoreboard.
func (g *Game) refreshHUD() {
	g.hud.SetText(fmt.Sprintf(" Streak: %d  Best: %d  Wins: %d  Deaths: %d ",
		g.score.Streak, g.score.Best, g.score.Wins, g.score.Deaths))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Streak:     g.score.Streak,
		BestStreak: g.score.Best,
		Wins:       g.score.Wins,
		Deaths:     g.score.Deaths,
		Paused:     g.paused,
	}
}

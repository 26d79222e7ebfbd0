// Package crossy implements the lane-crossing game logic: a player hops
// across a grid of traffic lanes while vehicles stream through them.
// The simulation runs in native pixel space; the platform renderer maps
// pixels to terminal cells.
package crossy

import "github.com/vovakirdan/tui-crossy/internal/core"

// Native tile geometry. These are tileset calibration constants shared by
// layout and collision math; they are not derived from anything.
const (
	TileW = 101.0 // Native tile width in pixels
	TileH = 171.0 // Native tile height in pixels

	TopMargin    = 50.0 // Pixels above the goal row
	BottomMargin = 20.0 // Pixels below the start row

	// LaneYOffset nudges vehicles down within their lane so sprites sit on
	// the road surface rather than the tile's top edge.
	LaneYOffset = -23.0
)

// Grid tunable bounds. Out-of-range adjustment requests are silent no-ops.
const (
	MinLanes = 1
	MaxLanes = 10

	MinCols = 1
	MaxCols = 20

	MinVehicles = 0
	MaxVehicles = 50

	MinDifficulty = 1
	MaxDifficulty = 20
)

// GridConfig holds the tunable game parameters and derives the board
// geometry from them. All derived values are recomputed from current
// settings on every call; nothing is cached.
//
// Getters come in two coordinate frames: "native" getters return unscaled
// design-time pixel values, the plain getters multiply by the display scale.
type GridConfig struct {
	lanes      int
	cols       int
	vehicles   int
	baseSpeed  float64
	difficulty int
	scale      float64
}

// NewGridConfig creates a grid with the given tunables, clamped into bounds.
// A non-positive scale falls back to 1.
func NewGridConfig(lanes, cols, vehicles int, baseSpeed float64, difficulty int) *GridConfig {
	g := &GridConfig{
		lanes:      core.Clamp(lanes, MinLanes, MaxLanes),
		cols:       core.Clamp(cols, MinCols, MaxCols),
		vehicles:   core.Clamp(vehicles, MinVehicles, MaxVehicles),
		baseSpeed:  baseSpeed,
		difficulty: core.Clamp(difficulty, MinDifficulty, MaxDifficulty),
		scale:      1,
	}
	return g
}

// Lanes returns the number of traffic lanes.
func (g *GridConfig) Lanes() int { return g.lanes }

// Cols returns the number of grid columns.
func (g *GridConfig) Cols() int { return g.cols }

// Vehicles returns the configured vehicle count.
func (g *GridConfig) Vehicles() int { return g.vehicles }

// BaseSpeed returns the base vehicle speed in native pixels per second.
func (g *GridConfig) BaseSpeed() float64 { return g.baseSpeed }

// Difficulty returns the current difficulty setting.
func (g *GridConfig) Difficulty() int { return g.difficulty }

// Scale returns the display scaling factor.
func (g *GridConfig) Scale() float64 { return g.scale }

// Rows returns the total row count: one goal row, the traffic lanes, and
// two safe rows at the bottom.
func (g *GridConfig) Rows() int { return g.lanes + 3 }

// NativeTileW returns the unscaled tile width.
func (g *GridConfig) NativeTileW() float64 { return TileW }

// NativeTileH returns the unscaled tile height.
func (g *GridConfig) NativeTileH() float64 { return TileH }

// TileWidth returns the scaled tile width.
func (g *GridConfig) TileWidth() float64 { return TileW * g.scale }

// TileHeight returns the scaled tile height.
func (g *GridConfig) TileHeight() float64 { return TileH * g.scale }

// NativeCanvasWidth returns the unscaled play field width.
func (g *GridConfig) NativeCanvasWidth() float64 {
	return float64(g.cols) * TileW
}

// NativeCanvasHeight returns the unscaled play field height including margins.
func (g *GridConfig) NativeCanvasHeight() float64 {
	return float64(g.Rows())*TileH + TopMargin + BottomMargin
}

// CanvasWidth returns the scaled play field width.
func (g *GridConfig) CanvasWidth() float64 {
	return g.NativeCanvasWidth() * g.scale
}

// CanvasHeight returns the scaled play field height.
func (g *GridConfig) CanvasHeight() float64 {
	return g.NativeCanvasHeight() * g.scale
}

// PlayerStartCol returns the column the player spawns in.
func (g *GridConfig) PlayerStartCol() int { return g.cols / 2 }

// PlayerStartRow returns the row the player spawns in (the bottom safe row).
func (g *GridConfig) PlayerStartRow() int { return g.Rows() - 1 }

// AddLane adds a traffic lane. Returns the resulting lane count; at the
// upper bound the request is a no-op.
func (g *GridConfig) AddLane() int {
	if g.lanes < MaxLanes {
		g.lanes++
	}
	return g.lanes
}

// RemoveLane removes a traffic lane. Returns the resulting lane count; at
// the lower bound the request is a no-op.
func (g *GridConfig) RemoveLane() int {
	if g.lanes > MinLanes {
		g.lanes--
	}
	return g.lanes
}

// AddCol widens the grid by one column. No-op at the upper bound.
func (g *GridConfig) AddCol() int {
	if g.cols < MaxCols {
		g.cols++
	}
	return g.cols
}

// RemoveCol narrows the grid by one column. No-op at the lower bound.
func (g *GridConfig) RemoveCol() int {
	if g.cols > MinCols {
		g.cols--
	}
	return g.cols
}

// AddVehicle raises the vehicle count. No-op at the upper bound.
func (g *GridConfig) AddVehicle() int {
	if g.vehicles < MaxVehicles {
		g.vehicles++
	}
	return g.vehicles
}

// RemoveVehicle lowers the vehicle count. No-op at the lower bound.
func (g *GridConfig) RemoveVehicle() int {
	if g.vehicles > MinVehicles {
		g.vehicles--
	}
	return g.vehicles
}

// RaiseDifficulty raises the difficulty. No-op at the upper bound.
func (g *GridConfig) RaiseDifficulty() int {
	if g.difficulty < MaxDifficulty {
		g.difficulty++
	}
	return g.difficulty
}

// LowerDifficulty lowers the difficulty. No-op at the lower bound.
func (g *GridConfig) LowerDifficulty() int {
	if g.difficulty > MinDifficulty {
		g.difficulty--
	}
	return g.difficulty
}

// SetScale sets the display scaling factor. Non-positive values are
// rejected and the current scale is kept. Returns the resulting scale.
func (g *GridConfig) SetScale(scale float64) float64 {
	if scale > 0 {
		g.scale = scale
	}
	return g.scale
}

// SetBaseSpeed sets the base vehicle speed in native pixels per second.
func (g *GridConfig) SetBaseSpeed(speed float64) {
	g.baseSpeed = speed
}

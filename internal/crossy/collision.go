package crossy

import "github.com/vovakirdan/tui-crossy/internal/core"

// Hitbox insets in native pixels. They approximate the visible sprite
// silhouettes within a tile and are calibration data for this tileset, not
// derived geometry. Each inset set is bound to its entity type; swapping
// them would change collision behavior.
const (
	vehicleInsetTop    = 65.0
	vehicleInsetBottom = 30.0

	playerInsetSide = 30.0
	playerInsetTop  = 45.0
)

// VehicleHitbox returns the vehicle's collision box in native pixels.
func VehicleHitbox(v *Vehicle) core.RectF {
	x, y := v.Pos()
	return core.NewRectF(x, y+vehicleInsetTop, x+TileW, y+TileH-vehicleInsetBottom)
}

// PlayerHitbox returns the player's collision box in native pixels.
func PlayerHitbox(p *Player) core.RectF {
	x, y := p.Pos()
	return core.NewRectF(x+playerInsetSide, y+playerInsetTop, x+TileW-playerInsetSide, y+TileH)
}

// Collides reports whether the vehicle's and player's hitboxes overlap.
func Collides(v *Vehicle, p *Player) bool {
	return VehicleHitbox(v).Intersects(PlayerHitbox(p))
}

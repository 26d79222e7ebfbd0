package crossy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

// Board layout minimums. Below these the screen is too small to play.
const (
	minCellW = 3
	minCellH = 1
)

// Render draws the current game state to the screen. The board is laid out
// by mapping the grid's native pixel space onto terminal cells: each tile
// becomes a cellW x cellH block, centered on screen under a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rows := g.grid.Rows()
	cols := g.grid.Cols()

	cellW := (dst.Width() - 2) / cols
	cellH := (dst.Height() - 3) / rows
	if cellW < minCellW || cellH < minCellH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small - enlarge or shrink the grid")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("(need %dx%d cells for a %dx%d board)",
			cols*minCellW+2, rows*minCellH+3, cols, rows))
		return
	}

	offsetX := (dst.Width() - cellW*cols) / 2
	offsetY := 1 + (dst.Height()-2-cellH*rows)/2

	g.drawBackground(dst, cellW, cellH, offsetX, offsetY)
	for _, v := range g.vehicles {
		g.drawVehicle(dst, v, cellW, cellH, offsetX, offsetY)
	}
	g.drawPlayer(dst, cellW, cellH, offsetX, offsetY)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBackground paints the goal row, the traffic lanes, and the safe rows.
func (g *Game) drawBackground(dst *core.Screen, cellW, cellH, offsetX, offsetY int) {
	rows := g.grid.Rows()
	cols := g.grid.Cols()
	boardW := cellW * cols

	for row := 0; row < rows; row++ {
		for dy := 0; dy < cellH; dy++ {
			y := offsetY + row*cellH + dy
			switch {
			case row == 0:
				// Goal row
				for x := 0; x < boardW; x++ {
					dst.SetCell(offsetX+x, y, GoalChar, core.ColorCyan)
				}
			case row <= g.grid.Lanes():
				// Traffic lane: mark the lane edge on its last cell row
				if dy == cellH-1 && row < g.grid.Lanes() {
					for x := 0; x < boardW; x++ {
						dst.SetCell(offsetX+x, y, LaneEdge, core.ColorGray)
					}
				}
			default:
				// Safe row
				for x := 0; x < boardW; x++ {
					dst.SetCell(offsetX+x, y, GrassChar, core.ColorGreen)
				}
			}
		}
	}
}

// drawVehicle renders a single vehicle as a cellW-wide block in its lane.
func (g *Game) drawVehicle(dst *core.Screen, v *Vehicle, cellW, cellH, offsetX, offsetY int) {
	x, y := v.Pos()

	lane := int(math.Round((y - LaneYOffset) / TileH))
	if lane < 1 || lane > g.grid.Lanes() {
		return
	}

	vx := offsetX + int(x/TileW*float64(cellW))
	vy := offsetY + lane*cellH + cellH/2

	// Faster vehicles draw hotter
	color := core.ColorBrightYellow
	if v.Speed() >= g.grid.BaseSpeed()+150 {
		color = core.ColorBrightRed
	} else if v.Speed() >= g.grid.BaseSpeed()+100 {
		color = core.ColorOrange
	}

	boardLeft := offsetX
	boardRight := offsetX + cellW*g.grid.Cols()
	for dx := 0; dx < cellW; dx++ {
		cx := vx + dx
		if cx < boardLeft || cx >= boardRight {
			continue
		}
		dst.SetCell(cx, vy, VehicleChar, color)
	}
}

// drawPlayer renders the player centered in its tile.
func (g *Game) drawPlayer(dst *core.Screen, cellW, cellH, offsetX, offsetY int) {
	cx := offsetX + g.player.Col()*cellW + cellW/2
	cy := offsetY + g.player.Row()*cellH + cellH/2
	dst.SetCell(cx, cy, PlayerChar, core.ColorBrightGreen)
}

// drawHUD renders the stat line and the settings help line.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, g.hud.Text())

	settings := fmt.Sprintf(" Lanes:%d Cols:%d Cars:%d Diff:%d ",
		g.grid.Lanes(), g.grid.Cols(), g.grid.Vehicles(), g.grid.Difficulty())
	dst.DrawTextColored(dst.Width()-len(settings)-1, 0, settings, core.ColorGray)

	help := "arrows/hjkl move  [ ] lanes  { } cols  < > cars  + - diff  p pause  q quit"
	dst.DrawTextColored((dst.Width()-len(help))/2, dst.Height()-1, help, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

package crossy

import (
	"math"
	"math/rand"
	"testing"
)

func TestPlayerStartsAtGridStart(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 3)
	p := NewPlayer(g)

	if p.Col() != 3 || p.Row() != 6 {
		t.Errorf("player at (%d,%d), expected start (3,6)", p.Col(), p.Row())
	}
	if p.AtGoal() {
		t.Error("player should not start at goal")
	}
}

func TestPlayerHop(t *testing.T) {
	tests := []struct {
		name               string
		startCol, startRow int
		dir                Direction
		wantCol, wantRow   int
		wantMoved          bool
	}{
		{"up from middle", 3, 4, DirUp, 3, 3, true},
		{"down from middle", 3, 4, DirDown, 3, 5, true},
		{"left from middle", 3, 4, DirLeft, 2, 4, true},
		{"right from middle", 3, 4, DirRight, 4, 4, true},
		{"left blocked at column 0", 0, 4, DirLeft, 0, 4, false},
		{"right blocked at last column", 6, 4, DirRight, 6, 4, false},
		{"up blocked at goal row", 3, 0, DirUp, 3, 0, false},
		{"down blocked at bottom row", 3, 6, DirDown, 3, 6, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGridConfig(4, 7, 0, 80, 3)
			p := NewPlayer(g)
			p.col, p.row = tc.startCol, tc.startRow

			moved := p.Hop(tc.dir)
			if moved != tc.wantMoved {
				t.Errorf("Hop moved = %v, expected %v", moved, tc.wantMoved)
			}
			if p.Col() != tc.wantCol || p.Row() != tc.wantRow {
				t.Errorf("player at (%d,%d), expected (%d,%d)",
					p.Col(), p.Row(), tc.wantCol, tc.wantRow)
			}
		})
	}
}

func TestPlayerHopMovesExactlyOneTile(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 3)
	p := NewPlayer(g)

	x0, y0 := p.Pos()
	p.Hop(DirUp)
	x1, y1 := p.Pos()

	if x1 != x0 {
		t.Errorf("x changed on a vertical hop: %v -> %v", x0, x1)
	}
	if y0-y1 != TileH {
		t.Errorf("vertical hop moved %v pixels, expected %v", y0-y1, TileH)
	}

	p.Hop(DirLeft)
	x2, _ := p.Pos()
	if x1-x2 != TileW {
		t.Errorf("horizontal hop moved %v pixels, expected %v", x1-x2, TileW)
	}
}

func TestPlayerAtGoal(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 3)
	p := NewPlayer(g)

	p.row = 1
	if p.AtGoal() {
		t.Error("row 1 should not be the goal")
	}
	p.row = 0
	if !p.AtGoal() {
		t.Error("row 0 should be the goal")
	}
}

func TestPlayerResetToStart(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 3)
	p := NewPlayer(g)
	p.col, p.row = 0, 0

	p.ResetToStart()
	if p.Col() != g.PlayerStartCol() || p.Row() != g.PlayerStartRow() {
		t.Errorf("player at (%d,%d) after reset, expected (%d,%d)",
			p.Col(), p.Row(), g.PlayerStartCol(), g.PlayerStartRow())
	}
}

func TestVehicleAdvances(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 3)
	rng := rand.New(rand.NewSource(1))
	v := NewVehicle(g, rng)

	x0, y0 := v.Pos()
	v.Update(0.5)
	x1, y1 := v.Pos()

	want := x0 + 0.5*v.Speed()
	if math.Abs(x1-want) > 1e-9 {
		t.Errorf("x after update = %v, expected %v", x1, want)
	}
	if y1 != y0 {
		t.Errorf("vehicle changed lanes during update: %v -> %v", y0, y1)
	}
}

func TestVehicleRerollsPastRightEdge(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 3)
	rng := rand.New(rand.NewSource(1))
	v := NewVehicle(g, rng)

	v.x = g.NativeCanvasWidth() + 1
	v.Update(0.1)

	x, _ := v.Pos()
	if x >= 0 {
		t.Errorf("x after reroll = %v, expected off-screen left", x)
	}
}

func TestVehicleSpawnRanges(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 5)
	rng := rand.New(rand.NewSource(42))

	minY := TileH + LaneYOffset
	maxY := float64(g.Lanes())*TileH + LaneYOffset
	minSpeed := g.BaseSpeed() + 50
	maxSpeed := g.BaseSpeed() + 50*float64(g.Difficulty())

	for i := 0; i < 200; i++ {
		v := NewVehicle(g, rng)
		x, y := v.Pos()

		if x >= 0 || x < -TileW*float64(g.Cols()-1)-1e-9 {
			t.Fatalf("spawn %d: x = %v, expected in [%v, 0)", i, x, -TileW*float64(g.Cols()-1))
		}
		if y < minY || y > maxY {
			t.Fatalf("spawn %d: y = %v, expected in [%v, %v]", i, y, minY, maxY)
		}
		if v.Speed() < minSpeed || v.Speed() > maxSpeed {
			t.Fatalf("spawn %d: speed = %v, expected in [%v, %v]", i, v.Speed(), minSpeed, maxSpeed)
		}
	}
}

func TestVehicleSetDifficultyClamps(t *testing.T) {
	g := NewGridConfig(4, 7, 0, 80, 3)
	rng := rand.New(rand.NewSource(1))
	v := NewVehicle(g, rng)

	v.SetDifficulty(999)
	if v.rollDifficulty != MaxDifficulty {
		t.Errorf("rollDifficulty = %d, expected clamp to %d", v.rollDifficulty, MaxDifficulty)
	}
	v.SetDifficulty(-5)
	if v.rollDifficulty != MinDifficulty {
		t.Errorf("rollDifficulty = %d, expected clamp to %d", v.rollDifficulty, MinDifficulty)
	}
}

func TestVehicleDifficultyOneSpeedIsFixed(t *testing.T) {
	// With difficulty 1 the roll range is degenerate, so every vehicle gets
	// exactly base + 50.
	g := NewGridConfig(4, 7, 0, 100, 1)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		v := NewVehicle(g, rng)
		if v.Speed() != 150 {
			t.Fatalf("spawn %d: speed = %v, expected 150", i, v.Speed())
		}
	}
}

func TestRandBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		got := randBetween(rng, 2, 5)
		if got < 2 || got >= 5 {
			t.Fatalf("randBetween(2,5) = %d, expected in [2,5)", got)
		}
	}
	if got := randBetween(rng, 4, 4); got != 4 {
		t.Errorf("degenerate range returned %d, expected 4", got)
	}
	if got := randBetween(rng, 4, 3); got != 4 {
		t.Errorf("inverted range returned %d, expected 4", got)
	}
}

func TestStatLine(t *testing.T) {
	s := &StatLine{}
	s.SetText("Streak: 3")
	if s.Text() != "Streak: 3" {
		t.Errorf("Text() = %q", s.Text())
	}
	if s.Sprite() != SpriteText {
		t.Error("stat line should report the text sprite")
	}
}

package crossy

import (
	"testing"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameMetadata(t *testing.T) {
	g := New()
	if g.ID() != "crossy" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() != "Crossy" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameResetUsesDefaults(t *testing.T) {
	g := newTestGame(t, 1)

	if g.Grid().Lanes() != 4 || g.Grid().Cols() != 7 {
		t.Errorf("grid %dx%d lanes/cols, expected 4x7 defaults",
			g.Grid().Lanes(), g.Grid().Cols())
	}
	if len(g.vehicles) != g.Grid().Vehicles() {
		t.Errorf("%d vehicles spawned, expected %d", len(g.vehicles), g.Grid().Vehicles())
	}
	if g.player.Col() != 3 || g.player.Row() != 6 {
		t.Errorf("player at (%d,%d), expected (3,6)", g.player.Col(), g.player.Row())
	}

	state := g.State()
	if state.Streak != 0 || state.Wins != 0 || state.Deaths != 0 || state.Paused {
		t.Errorf("fresh state = %+v, expected all zero", state)
	}
}

func TestGameDeterministicGivenSeed(t *testing.T) {
	a := newTestGame(t, 42)
	b := newTestGame(t, 42)

	inputs := []core.InputFrame{
		frame(core.ActionUp),
		frame(),
		frame(core.ActionLeft),
		frame(),
		frame(core.ActionUp, core.ActionRight),
		frame(),
	}
	for _, in := range inputs {
		a.Step(in, 1.0/60)
		b.Step(in, 1.0/60)
	}

	if a.player.Col() != b.player.Col() || a.player.Row() != b.player.Row() {
		t.Error("player positions diverged for identical seed and inputs")
	}
	for i := range a.vehicles {
		ax, ay := a.vehicles[i].Pos()
		bx, by := b.vehicles[i].Pos()
		if ax != bx || ay != by {
			t.Errorf("vehicle %d diverged: (%v,%v) vs (%v,%v)", i, ax, ay, bx, by)
		}
		if a.vehicles[i].Speed() != b.vehicles[i].Speed() {
			t.Errorf("vehicle %d speed diverged", i)
		}
	}
}

func TestGameCrossingScoresWin(t *testing.T) {
	g := newTestGame(t, 1)
	g.vehicles = nil // clear the road so the run cannot fail

	// Six hops up from row 6 reach the goal row.
	for i := 0; i < 6; i++ {
		if g.Score().Wins != 0 {
			t.Fatalf("won after only %d hops", i)
		}
		g.Step(frame(core.ActionUp), 1.0/60)
	}

	score := g.Score()
	if score.Wins != 1 {
		t.Fatalf("Wins = %d, expected 1", score.Wins)
	}
	if score.Streak != 1 || score.Best != 1 {
		t.Errorf("Streak = %d Best = %d, expected 1/1", score.Streak, score.Best)
	}
	if g.player.Row() != g.Grid().PlayerStartRow() {
		t.Errorf("player at row %d after win, expected reset to %d",
			g.player.Row(), g.Grid().PlayerStartRow())
	}
}

func TestGameWinResetsPlayerBeforeNextTick(t *testing.T) {
	g := newTestGame(t, 1)
	g.vehicles = nil
	g.player.row = 1

	g.Step(frame(core.ActionUp), 1.0/60)
	if g.Score().Wins != 1 {
		t.Fatalf("Wins = %d, expected 1", g.Score().Wins)
	}
	if g.player.Row() != g.Grid().PlayerStartRow() {
		t.Fatal("player must be back at the start immediately after a win")
	}

	// The next idle tick must not double-count the visit.
	g.Step(frame(), 1.0/60)
	if g.Score().Wins != 1 {
		t.Fatalf("Wins = %d after idle tick, expected still 1", g.Score().Wins)
	}
}

func TestGameCollisionEndsStreak(t *testing.T) {
	g := newTestGame(t, 1)
	g.score.Streak = 5
	g.score.Best = 5
	g.score.Wins = 5

	// Park a single vehicle directly on the player's tile.
	px, py := g.player.Pos()
	v := vehicleAt(t, g.Grid(), px, py)
	v.speed = 0
	g.vehicles = []*Vehicle{v}

	result := g.Step(frame(), 0)

	score := g.Score()
	if score.Streak != 0 {
		t.Errorf("Streak = %d after collision, expected 0", score.Streak)
	}
	if score.Deaths != 1 {
		t.Errorf("Deaths = %d, expected 1", score.Deaths)
	}
	if score.Best != 5 {
		t.Errorf("Best = %d, expected preserved 5", score.Best)
	}
	if result.EndedStreak != 5 {
		t.Errorf("EndedStreak = %d, expected 5", result.EndedStreak)
	}
	if g.player.Col() != g.Grid().PlayerStartCol() || g.player.Row() != g.Grid().PlayerStartRow() {
		t.Error("player not reset to start after collision")
	}
}

func TestGameOverlappingHitsCountSeparately(t *testing.T) {
	// Two vehicles on the same tile both hit in the same tick: each one
	// triggers the failure transition on its own, and the streak that ended
	// is reported from the first counting hit.
	g := newTestGame(t, 1)
	g.score.Streak = 4
	g.score.Best = 4
	g.score.Wins = 4

	px, py := g.player.Pos()
	a := vehicleAt(t, g.Grid(), px, py)
	a.speed = 0
	b := vehicleAt(t, g.Grid(), px, py)
	b.speed = 0
	g.vehicles = []*Vehicle{a, b}

	result := g.Step(frame(), 0)

	score := g.Score()
	if score.Deaths != 2 {
		t.Errorf("Deaths = %d after two overlapping hits, expected 2", score.Deaths)
	}
	if score.Streak != 0 {
		t.Errorf("Streak = %d, expected 0", score.Streak)
	}
	if result.EndedStreak != 4 {
		t.Errorf("EndedStreak = %d, expected the pre-hit streak 4", result.EndedStreak)
	}
}

func TestGameNoCollisionWhenRoadClear(t *testing.T) {
	g := newTestGame(t, 1)
	g.vehicles = nil

	g.Step(frame(), 1.0/60)
	if g.Score().Deaths != 0 {
		t.Errorf("Deaths = %d on an empty road, expected 0", g.Score().Deaths)
	}
}

func TestGameSettingsChangeRebuilds(t *testing.T) {
	g := newTestGame(t, 1)
	g.score.Streak = 3
	g.score.Wins = 3
	g.player.row = 2

	g.Step(frame(core.ActionMoreLanes), 1.0/60)

	if g.Grid().Lanes() != 5 {
		t.Fatalf("Lanes = %d after MoreLanes, expected 5", g.Grid().Lanes())
	}
	if g.Score().Streak != 0 || g.Score().Wins != 0 {
		t.Error("scoreboard not zeroed by settings rebuild")
	}
	if g.player.Row() != g.Grid().PlayerStartRow() {
		t.Error("player not reset by settings rebuild")
	}
	if len(g.vehicles) != g.Grid().Vehicles() {
		t.Errorf("vehicle list not rebuilt: %d vehicles for setting %d",
			len(g.vehicles), g.Grid().Vehicles())
	}
}

func TestGameRejectedSettingDoesNotRebuild(t *testing.T) {
	g := newTestGame(t, 1)
	for g.Grid().Lanes() < MaxLanes {
		g.Grid().AddLane()
	}
	g.score.Streak = 3
	oldVehicles := g.vehicles

	g.Step(frame(core.ActionMoreLanes), 1.0/60)

	if g.Score().Streak != 3 {
		t.Error("a rejected setting request must not zero the scoreboard")
	}
	if len(g.vehicles) != len(oldVehicles) {
		t.Error("a rejected setting request must not rebuild the board")
	}
	for i := range g.vehicles {
		if g.vehicles[i] != oldVehicles[i] {
			t.Fatal("vehicle list replaced despite rejected setting")
		}
	}
}

func TestGameVehicleCountSettingChangesFleet(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.Grid().Vehicles()

	g.Step(frame(core.ActionMoreVehicles), 1.0/60)
	if len(g.vehicles) != before+1 {
		t.Errorf("%d vehicles after MoreVehicles, expected %d", len(g.vehicles), before+1)
	}

	g.Step(frame(core.ActionFewerVehicles), 1.0/60)
	g.Step(frame(core.ActionFewerVehicles), 1.0/60)
	if len(g.vehicles) != before-1 {
		t.Errorf("%d vehicles after two FewerVehicles, expected %d", len(g.vehicles), before-1)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 1)

	positions := func() []float64 {
		xs := make([]float64, len(g.vehicles))
		for i, v := range g.vehicles {
			xs[i], _ = v.Pos()
		}
		return xs
	}

	g.Step(frame(core.ActionPause), 1.0/60)
	if !g.State().Paused {
		t.Fatal("game did not pause")
	}

	before := positions()
	g.Step(frame(core.ActionUp), 1.0)
	after := positions()

	for i := range before {
		if before[i] != after[i] {
			t.Fatal("vehicles moved while paused")
		}
	}
	if g.player.Row() != g.Grid().PlayerStartRow() {
		t.Error("player moved while paused")
	}

	g.Step(frame(core.ActionPause), 1.0/60)
	if g.State().Paused {
		t.Fatal("game did not unpause")
	}
}

func TestGameRestartRebuildsButKeepsSettings(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionMoreLanes), 1.0/60)
	g.score.Streak = 4
	g.score.Deaths = 2
	g.player.row = 2

	g.Step(frame(core.ActionRestart), 1.0/60)

	if g.Grid().Lanes() != 5 {
		t.Errorf("Lanes = %d after restart, expected kept adjustment 5", g.Grid().Lanes())
	}
	if g.Score().Streak != 0 || g.Score().Deaths != 0 {
		t.Error("scoreboard not zeroed by restart")
	}
	if g.player.Row() != g.Grid().PlayerStartRow() {
		t.Error("player not reset by restart")
	}
}

func TestGameMotionScalesWithDt(t *testing.T) {
	// Two games with identical fleets; one big step equals the sum of many
	// small ones between re-rolls.
	a := newTestGame(t, 9)
	b := newTestGame(t, 9)

	for i := 0; i < 10; i++ {
		a.Step(frame(), 0.01)
	}
	b.Step(frame(), 0.1)

	for i := range a.vehicles {
		ax, _ := a.vehicles[i].Pos()
		bx, _ := b.vehicles[i].Pos()
		if diff := ax - bx; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("vehicle %d: ten 0.01s steps moved to %v, one 0.1s step to %v", i, ax, bx)
		}
	}
}

func TestGameHUDTracksScore(t *testing.T) {
	g := newTestGame(t, 1)
	g.vehicles = nil
	g.player.row = 1

	g.Step(frame(core.ActionUp), 1.0/60)
	want := " Streak: 1  Best: 1  Wins: 1  Deaths: 0 "
	if g.hud.Text() != want {
		t.Errorf("hud = %q, expected %q", g.hud.Text(), want)
	}
}

func TestScoreboardTransitions(t *testing.T) {
	var s Scoreboard

	s.RecordWin()
	s.RecordWin()
	if s.Streak != 2 || s.Best != 2 || s.Wins != 2 {
		t.Errorf("after two wins: %+v", s)
	}

	if ended := s.RecordDeath(); ended != 2 {
		t.Errorf("RecordDeath returned %d, expected 2", ended)
	}
	if s.Streak != 0 || s.Best != 2 || s.Deaths != 1 {
		t.Errorf("after death: %+v", s)
	}

	if ended := s.RecordDeath(); ended != 0 {
		t.Errorf("RecordDeath with no streak returned %d, expected 0", ended)
	}

	s.Zero()
	if s != (Scoreboard{}) {
		t.Errorf("after Zero: %+v", s)
	}
}

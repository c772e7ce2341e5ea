package recall

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/azolotarev/tui-recall/internal/core"
	"github.com/azolotarev/tui-recall/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     12345,
	}
}

func TestGameDeterminism(t *testing.T) {
	SetSaveDir(t.TempDir())

	cfg := testRuntime()

	// Scripted run: wait out the preview, walk the cursor, flip a few
	// tiles, restart, flip again.
	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 120:
			inputSequence[i].Set(core.ActionFlip)
		case i == 125:
			inputSequence[i].Set(core.ActionRight)
		case i == 130:
			inputSequence[i].Set(core.ActionFlip)
		case i == 180:
			inputSequence[i].Set(core.ActionDown)
		case i == 185:
			inputSequence[i].Set(core.ActionFlip)
		case i == 220:
			inputSequence[i].Set(core.ActionRestart)
		case i == 290:
			inputSequence[i].Set(core.ActionFlip)
		}
	}

	g1 := New(ModeClassic)
	g1.Reset(cfg)
	for _, in := range inputSequence {
		g1.Step(in)
	}
	snap1 := g1.Snapshot()

	g2 := New(ModeClassic)
	g2.Reset(cfg)
	for _, in := range inputSequence {
		g2.Step(in)
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}

	if snap1.RunMatches != snap2.RunMatches || snap1.RunMismatches != snap2.RunMismatches {
		t.Errorf("Determinism failed: counters differ")
	}
}

func TestGameReset(t *testing.T) {
	SetSaveDir(t.TempDir())

	g := New(ModeClassic)
	g.Reset(testRuntime())

	if !g.Session().PreviewActive() {
		t.Error("a fresh run should open with a preview")
	}
	if got := len(g.Session().Tiles()); got != 12 {
		t.Errorf("board has %d tiles, want 12", got)
	}

	state := g.State()
	if state.GameOver || state.Paused {
		t.Errorf("fresh game state = %+v", state)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	SetSaveDir(t.TempDir())

	cfg := testRuntime()
	cfg.ScreenW = 10
	cfg.ScreenH = 5

	g := New(ModeClassic)
	g.Reset(cfg)

	in := core.NewInputFrame()
	in.Set(core.ActionFlip)
	g.Step(in)

	if g.Session().Started() {
		t.Error("input should be ignored while the screen is too small")
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
}

func TestGamePauseStopsClock(t *testing.T) {
	SetSaveDir(t.TempDir())

	g := New(ModeClassic)
	g.Reset(testRuntime())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("pause toggle did not register")
	}
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.Session().PreviewActive() {
		t.Error("preview ran out while paused")
	}
}

func TestGameStartLevel(t *testing.T) {
	SetSaveDir(t.TempDir())
	defer SetStartLevel(1)

	SetStartLevel(3)
	g := New(ModeClassic)
	g.Reset(testRuntime())

	if got := g.Session().Mode(); got != DifficultyHard {
		t.Errorf("mode = %v for level 3, want hard", got)
	}
}

func TestGameDebugKeysGated(t *testing.T) {
	SetSaveDir(t.TempDir())

	g := New(ModeClassic)
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionDebug)
	in.DebugKey = 'n'
	g.Step(in)

	for _, tile := range g.Session().Tiles() {
		if tile.Status == TileMatched && tile.Value != "" {
			t.Fatal("debug shortcut fired without debug mode")
		}
	}
}

func TestGameDebugKeysRouteThroughAction(t *testing.T) {
	SetSaveDir(t.TempDir())

	rt := testRuntime()
	rt.Debug = true
	g := New(ModeClassic)
	g.Reset(rt)

	// A raw key with no debug action attached is ignored.
	in := core.NewInputFrame()
	in.DebugKey = 'n'
	g.Step(in)
	for _, tile := range g.Session().Tiles() {
		if tile.Status == TileMatched && tile.Value != "" {
			t.Fatal("debug shortcut fired without the debug action")
		}
	}

	in = core.NewInputFrame()
	in.Set(core.ActionDebug)
	in.DebugKey = 'n'
	g.Step(in)
	fired := false
	for _, tile := range g.Session().Tiles() {
		if tile.Status == TileMatched && tile.Value != "" {
			fired = true
			break
		}
	}
	if !fired {
		t.Fatal("near-win shortcut did not fire in debug mode")
	}
}

func TestEphemeralGameLeavesSaveSlot(t *testing.T) {
	runScript := func(rt core.RuntimeConfig) {
		g := New(ModeClassic)
		g.Reset(rt)
		for i := 0; i < 150; i++ {
			in := core.NewInputFrame()
			if i == 120 {
				in.Set(core.ActionFlip)
			}
			g.Step(in)
		}
	}

	localDir := t.TempDir()
	SetSaveDir(localDir)
	runScript(testRuntime())
	if _, err := os.Stat(filepath.Join(localDir, "last_run.yaml")); err != nil {
		t.Fatalf("local run did not write the slot: %v", err)
	}

	remoteDir := t.TempDir()
	SetSaveDir(remoteDir)
	rt := testRuntime()
	rt.Ephemeral = true
	runScript(rt)
	if _, err := os.Stat(filepath.Join(remoteDir, "last_run.yaml")); !os.IsNotExist(err) {
		t.Fatalf("ephemeral run touched the slot: %v", err)
	}
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"classic", "tri", "endless"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}
}

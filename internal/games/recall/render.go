package recall

import (
	"fmt"

	"github.com/azolotarev/tui-recall/internal/core"
)

// Board layout in screen cells.
const (
	tileCellW    = 6 // glyph cell plus gap
	tileCellH    = 2 // tile row plus gap
	boardTop     = 3 // HUD rows plus separator
	boardMarginX = 1
)

const (
	hiddenGlyph  = '?'
	separatorRun = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the mode label, timer, and pick counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, g.session.ModeLabel())

	timeText := formatMMSS(g.session.SecondsElapsed())
	dst.DrawTextCentered(0, timeText)

	statText := fmt.Sprintf("OK %d  MISS %d", g.session.RunMatches(), g.session.RunMismatches())
	dst.DrawText(dst.Width()-len(statText)-1, 0, statText)

	if g.banner != "" {
		dst.DrawTextColored(1, 1, g.banner, core.ColorYellow)
	} else if g.session.PreviewActive() {
		secs := (g.session.RemainingPreviewMS() + 999) / 1000
		dst.DrawTextColored(1, 1, fmt.Sprintf("Memorize... %d", secs), core.ColorCyan)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 2, separatorRun)
	}
}

// renderBoard draws the tile grid with the cursor highlighted.
func (g *Game) renderBoard(dst *core.Screen) {
	grid := g.session.Grid()
	tiles := g.session.Tiles()

	boardW := grid.Cols*tileCellW - 1
	offsetX := (dst.Width() - boardW) / 2
	if offsetX < boardMarginX {
		offsetX = boardMarginX
	}

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			idx := row*grid.Cols + col
			if idx >= len(tiles) {
				continue
			}
			x := offsetX + col*tileCellW
			y := boardTop + row*tileCellH
			g.renderTile(dst, x, y, tiles[idx], col == g.cursorX && row == g.cursorY)
		}
	}
}

func (g *Game) renderTile(dst *core.Screen, x, y int, tile Tile, underCursor bool) {
	glyph := hiddenGlyph
	color := core.ColorDefault

	switch tile.Status {
	case TileHidden:
		color = core.ColorGray
	case TileFlipped:
		if len(tile.Value) > 0 {
			glyph = []rune(tile.Value)[0]
		}
		color = core.ColorCyan
	case TileMatched:
		if tile.Value == "" {
			// Filler cell, never playable.
			dst.DrawTextColored(x, y, "  .  ", core.ColorGray)
			return
		}
		glyph = []rune(tile.Value)[0]
		color = core.ColorGreen
	}

	left, right := ' ', ' '
	bracketColor := color
	if underCursor {
		left, right = '[', ']'
		bracketColor = core.ColorYellow
	}

	dst.SetCell(x, y, left, bracketColor)
	dst.SetCell(x+1, y, ' ', color)
	dst.SetCell(x+2, y, glyph, color)
	dst.SetCell(x+3, y, ' ', color)
	dst.SetCell(x+4, y, right, bracketColor)
}

// renderOverlay draws the pause and victory screens on top of the board.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		drawOverlayBox(dst, []string{"PAUSED", "", "p to resume"})
		return
	}

	result := g.session.Result()
	if !g.session.Completed() || result == nil {
		return
	}

	lines := []string{
		VictoryTitle(result.Rank),
		"",
		fmt.Sprintf("%s completed", g.session.ModeLabel()),
		fmt.Sprintf("Time: %s", formatMMSS(result.TimeSecs)),
		fmt.Sprintf("Precision: %d%%", result.PrecisionPct),
		fmt.Sprintf("Rank: %s", result.Rank),
		"",
		"r to play again",
	}
	drawOverlayBox(dst, lines)
}

func drawOverlayBox(dst *core.Screen, lines []string) {
	boxW := 0
	for _, line := range lines {
		if len(line)+6 > boxW {
			boxW = len(line) + 6
		}
	}
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	box := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorYellow)
	for i, line := range lines {
		lx := x + (boxW-len(line))/2
		dst.DrawText(lx, y+1+i, line)
	}
}

func formatMMSS(totalSecs uint32) string {
	return fmt.Sprintf("%02d:%02d", totalSecs/60, totalSecs%60)
}

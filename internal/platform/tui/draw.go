package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Sprite characters.
const (
	pipeBodyChar   = '█'
	pipeCapTopChar = '▄'
	pipeCapBotChar = '▀'
	groundTopChar  = '═'
	groundFillChar = '░'
	birdBodyChar   = '●'
	birdBeakChar   = '▶'
)

// wingChars is indexed by the avatar's animation frame.
var wingChars = [3]rune{'/', '-', '\\'}

// scaleX projects a virtual pixel x coordinate onto a screen column.
func (m Model) scaleX(px float64) int {
	return int(px * float64(m.screen.Width()) / float64(m.cfg.Window.Width))
}

// scaleY projects a virtual pixel y coordinate onto a screen row.
func (m Model) scaleY(px float64) int {
	return int(px * float64(m.screen.Height()) / float64(m.cfg.Window.Height))
}

// drawSnapshot renders one frame of the simulation into the cell buffer.
// Everything scales from the 400x600 virtual space to whatever terminal
// size the player has.
func (m Model) drawSnapshot(s game.Snapshot) {
	m.screen.Clear()

	m.drawGround(s)
	for _, p := range s.Pipes {
		m.drawPipe(p)
	}
	m.drawBird(s)
	m.drawHUD(s)

	switch s.Phase {
	case game.PhaseStart:
		m.drawStartOverlay()
	case game.PhaseGameOver:
		m.drawGameOverOverlay(s)
	}
}

// drawGround renders the scrolling strip below the playable area. The two
// strip copies carry an alternating texture so the scroll is visible.
func (m Model) drawGround(s game.Snapshot) {
	topRow := m.scaleY(float64(s.GroundY))
	if topRow >= m.screen.Height() {
		topRow = m.screen.Height() - 1
	}

	m.screen.DrawHLine(0, topRow, m.screen.Width(), groundTopChar, core.ColorGreen)

	// Texture phase follows the first copy's offset so the band slides
	// with the obstacles.
	phase := m.scaleX(-s.GroundX1)
	for y := topRow + 1; y < m.screen.Height(); y++ {
		for x := 0; x < m.screen.Width(); x++ {
			if (x+phase+y)%4 == 0 {
				m.screen.SetCell(x, y, groundFillChar, core.ColorBrown)
			}
		}
	}
}

// drawPipe renders one obstacle pair: green bodies with darker cap rows on
// the gap edges, clipped to the playable area.
func (m Model) drawPipe(p game.PipeSnapshot) {
	left := m.scaleX(p.X - float64(p.Width)/2)
	right := m.scaleX(p.X + float64(p.Width)/2)
	if right <= left {
		right = left + 1
	}
	w := right - left

	gapTopRow := m.scaleY(float64(p.GapTop))
	gapBotRow := m.scaleY(float64(p.GapBottom))
	topStart := m.scaleY(float64(p.GapTop - p.TopLen))
	bottomEnd := m.scaleY(float64(p.GapBottom + p.BottomLen))

	if topStart < 0 {
		topStart = 0
	}
	if gapTopRow > topStart {
		m.screen.FillRect(core.NewRect(left, topStart, w, gapTopRow-topStart), pipeBodyChar, core.ColorGreen)
		m.screen.DrawHLine(left, gapTopRow-1, w, pipeCapTopChar, core.ColorDarkGreen)
	}

	groundRow := m.scaleY(float64(m.cfg.Window.PlayableHeight))
	if bottomEnd > groundRow {
		bottomEnd = groundRow
	}
	if bottomEnd > gapBotRow {
		m.screen.FillRect(core.NewRect(left, gapBotRow, w, bottomEnd-gapBotRow), pipeBodyChar, core.ColorGreen)
		m.screen.DrawHLine(left, gapBotRow, w, pipeCapBotChar, core.ColorDarkGreen)
	}
}

// drawBird renders the avatar: body, beak, and a wing glyph that follows
// the animation frame. The tilt shows through the wing position rather
// than a rotated sprite; a cell grid is too coarse for real rotation.
func (m Model) drawBird(s game.Snapshot) {
	x := m.scaleX(s.BirdX)
	y := m.scaleY(s.BirdY)

	m.screen.SetCell(x, y, birdBodyChar, core.ColorYellow)
	m.screen.SetCell(x+1, y, birdBeakChar, core.ColorOrange)

	wing := wingChars[s.BirdFrame%len(wingChars)]
	wingRow := y
	if s.BirdTilt < -45 {
		wingRow = y - 1 // nose-down dive, wing trails above
	}
	m.screen.SetCell(x-1, wingRow, wing, core.ColorYellow)
}

// drawHUD renders the score line.
func (m Model) drawHUD(s game.Snapshot) {
	m.screen.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorWhite)
	if s.HighScore > 0 {
		best := fmt.Sprintf(" Best: %d ", s.HighScore)
		m.screen.DrawText(m.screen.Width()-len(best)-2, 0, best, core.ColorGray)
	}
}

// drawStartOverlay renders the idle-phase banner.
func (m Model) drawStartOverlay() {
	m.drawMessageBox(
		"FLAPPY",
		[]string{"press space to flap", "q to quit"},
	)
}

// drawGameOverOverlay renders the end-of-episode box with the session log.
func (m Model) drawGameOverOverlay(s game.Snapshot) {
	lines := []string{
		fmt.Sprintf("score %d   best %d", s.Score, s.HighScore),
	}
	if m.bestRun > 0 {
		recent := "recent:"
		for _, r := range m.recentRuns {
			recent += fmt.Sprintf(" %d", r.Score)
		}
		lines = append(lines, recent)
	}
	lines = append(lines, "space to retry, q to quit")

	m.drawMessageBox("GAME OVER", lines)
}

// drawMessageBox draws a bordered box centered on screen with a title and
// body lines.
func (m Model) drawMessageBox(title string, lines []string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := len(title)
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	m.screen.FillRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorWhite)

	m.screen.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	for i, l := range lines {
		m.screen.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l, core.ColorWhite)
	}
}

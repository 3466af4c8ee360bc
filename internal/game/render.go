package game

import (
	"fmt"
	"math"

	"scoopstack/internal/core"
	"scoopstack/internal/session"
)

const (
	minSidebarWidth = 30
	coneHeight      = 3
)

// Render draws the current game state into the screen buffer: the equation
// sidebar on the left, the scoop stack on the right, and overlays on top.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	sidebarW := screen.Width() * 2 / 5
	if sidebarW < minSidebarWidth {
		sidebarW = minSidebarWidth
	}
	if sidebarW >= screen.Width() {
		sidebarW = screen.Width() - 1
	}

	g.renderSidebar(screen, sidebarW)
	screen.DrawVLine(sidebarW, 0, screen.Height(), '│', core.ColorGray)
	g.renderSky(screen, sidebarW+1)
	g.renderStack(screen, sidebarW+1)
	g.renderHUD(screen, sidebarW+1)
	g.renderOverlays(screen, sidebarW)
}

// renderSidebar draws each pending frame with its answer grid. The cursor
// frame gets a highlighted border, the cursor answer an inverse marker.
func (g *Game) renderSidebar(screen *core.Screen, width int) {
	frames := g.sess.Frames()
	y := 1
	screen.DrawTextColored(2, 0, "Equations", core.ColorBrightCyan)

	for i, frame := range frames {
		cols, rows := answerGrid(frame)
		boxH := rows + 3
		if y+boxH > screen.Height()-2 {
			screen.DrawTextColored(2, y, fmt.Sprintf("… %d more", len(frames)-i), core.ColorGray)
			break
		}

		borderColor := core.ColorGray
		if i == g.frameSel {
			borderColor = core.ColorBrightYellow
		}
		box := core.NewRect(1, y, width-2, boxH)
		screen.DrawBox(box, borderColor)

		textColor := core.ColorWhite
		if frame.Giant {
			textColor = core.ColorBrightGreen
			screen.DrawTextColored(box.Right()-8, y, " GIANT ", core.ColorBrightGreen)
		}
		screen.DrawTextColored(3, y+1, frame.Text, textColor)

		g.renderAnswers(screen, box, frame, i == g.frameSel, cols)
		y += boxH + 1
	}
}

// answerGrid returns the answer layout for a frame: 2x2 for normal frames,
// 4x3 for giants.
func answerGrid(frame *session.Frame) (cols, rows int) {
	if frame.Giant {
		return 4, 3
	}
	return 2, 2
}

func (g *Game) renderAnswers(screen *core.Screen, box core.Rect, frame *session.Frame, selected bool, cols int) {
	cellW := (box.W - 4) / cols
	for idx, v := range frame.Answers {
		col := idx % cols
		row := idx / cols
		x := box.X + 2 + col*cellW
		y := box.Y + 2 + row

		label := formatAnswer(v)
		color := core.ColorDefault
		if selected && idx == g.answerSel {
			label = "▸" + label + "◂"
			color = core.ColorBrightYellow
		} else {
			label = " " + label + " "
		}
		screen.DrawTextColored(x, y, label, color)
	}
}

// renderSky darkens the top of the play area as the placement pace grows.
// The shade density tracks how far the interval has ramped toward its floor.
func (g *Game) renderSky(screen *core.Screen, left int) {
	cfg := g.sess.Config()
	span := cfg.InitialInterval - cfg.MinInterval
	if span <= 0 {
		return
	}
	ramped := (cfg.InitialInterval - g.sess.Interval()) / span

	var shade rune
	switch {
	case ramped < 0.25:
		return // calm sky
	case ramped < 0.5:
		shade = '·'
	case ramped < 0.8:
		shade = '░'
	default:
		shade = '▒'
	}

	width := screen.Width() - left
	for y := 4; y < 7; y++ {
		for x := left; x < left+width; x += 3 {
			screen.SetCell(x+(y%3), y, shade, core.ColorGray)
		}
	}
}

// renderStack draws the cone and the tower of placed scoops. The camera
// follows the top of the stack when it outgrows the screen.
func (g *Game) renderStack(screen *core.Screen, left int) {
	areaW := screen.Width() - left
	centerX := left + areaW/2
	baseY := screen.Height() - 2

	// Each scoop occupies one row; giants take two.
	totalRows := 0
	for _, sc := range g.scoops {
		totalRows += scoopRows(sc)
	}

	visible := baseY - coneHeight - 1
	offset := 0
	if totalRows > visible {
		offset = totalRows - visible
	}

	g.renderCone(screen, centerX, baseY, offset)

	y := baseY - coneHeight + offset
	for _, sc := range g.scoops {
		rows := scoopRows(sc)
		y -= rows
		g.renderScoop(screen, centerX, y, sc)
	}
}

func scoopRows(sc scoop) int {
	if sc.giant {
		return 2
	}
	return 1
}

func (g *Game) renderCone(screen *core.Screen, centerX, baseY, offset int) {
	widths := []int{7, 5, 3}
	for i, w := range widths {
		y := baseY - coneHeight + 1 + (coneHeight - 1 - i) + offset
		screen.DrawHLine(centerX-w/2, y, w, '▒', core.ColorOrange)
	}
	screen.SetCell(centerX, baseY+offset, 'V', core.ColorOrange)
}

func (g *Game) renderScoop(screen *core.Screen, centerX, y int, sc scoop) {
	if sc.giant {
		top := "(" + repeated('●', 10) + ")"
		bottom := "(" + repeated('●', 12) + ")"
		screen.DrawTextColored(centerX-len([]rune(top))/2, y, top, sc.color)
		screen.DrawTextColored(centerX-len([]rune(bottom))/2, y+1, bottom, sc.color)
		return
	}
	body := "(" + repeated('o', 6) + ")"
	screen.DrawTextColored(centerX-len([]rune(body))/2, y, body, sc.color)
}

func repeated(r rune, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}

// renderHUD draws score, remaining capacity and sprint status above the
// stack area.
func (g *Game) renderHUD(screen *core.Screen, left int) {
	screen.DrawTextColored(left+2, 0, fmt.Sprintf("Score: %d", g.sess.Score()), core.ColorBrightGreen)

	remaining := g.sess.RemainingUnits()
	capColor := core.ColorDefault
	if remaining <= 4 {
		capColor = core.ColorBrightRed
	}
	screen.DrawTextColored(left+2, 1, fmt.Sprintf("Room left: %d", remaining), capColor)

	if phase := g.sess.SprintPhase(); phase != session.PhaseInactive {
		screen.DrawTextColored(left+2, 2, "SPRINT", core.ColorBrightRed)
	}
	if g.sess.Invincible() {
		screen.DrawTextColored(left+2, screen.Height()-1, "invincible", core.ColorGray)
	}

	if g.bannerTicks > 0 && g.banner != "" {
		x := left + (screen.Width()-left-len([]rune(g.banner)))/2
		screen.DrawTextColored(x, 3, g.banner, g.bannerColor)
	}

	if g.sess.SprintPhase() == session.PhaseCountdown {
		n := int(math.Ceil(g.sess.CountdownRemaining()))
		if n < 1 {
			n = 1
		}
		digit := fmt.Sprintf("%d", n)
		x := left + (screen.Width()-left-len(digit))/2
		screen.DrawTextColored(x, screen.Height()/2, digit, core.ColorBrightYellow)
	}
}

// renderOverlays draws the pause and game-over messages on top of the scene.
func (g *Game) renderOverlays(screen *core.Screen, sidebarW int) {
	state := g.State()
	switch {
	case state.GameOver && state.Won:
		g.drawMessage(screen, sidebarW, "YOU WIN!", state.Reason, core.ColorBrightGreen)
	case state.GameOver:
		g.drawMessage(screen, sidebarW, "GAME OVER", state.Reason, core.ColorBrightRed)
	case state.Paused:
		g.drawMessage(screen, sidebarW, "PAUSED", "press p to resume", core.ColorBrightYellow)
	}
}

func (g *Game) drawMessage(screen *core.Screen, sidebarW int, title, detail string, c core.Color) {
	w := len([]rune(detail)) + 6
	if tw := len([]rune(title)) + 6; tw > w {
		w = tw
	}
	areaW := screen.Width() - sidebarW
	x := sidebarW + (areaW-w)/2
	y := screen.Height()/2 - 2

	box := core.NewRect(x, y, w, 5)
	screen.DrawRect(box, ' ', core.ColorDefault)
	screen.DrawBox(box, c)
	screen.DrawTextColored(x+(w-len([]rune(title)))/2, y+1, title, c)
	screen.DrawTextColored(x+(w-len([]rune(detail)))/2, y+3, detail, core.ColorWhite)
}

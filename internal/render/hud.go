package render

import (
	"fmt"

	"tile-robot/internal/component"
	"tile-robot/internal/ecs"
	"tile-robot/internal/system"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of terminal rows the HUD uses below the canvas.
const hudRows = 5

// DrawHUD renders the status bar and message log below the canvas.
func (r *Renderer) DrawHUD(s system.State, messages []string) {
	hudY := r.canvasRows()

	r.drawHLine(hudY, tcell.ColorGray)

	robotText := "no robot"
	if robot, ok := s.Robot(); ok {
		robotText = fmt.Sprintf("energy %d  robot %v", robot.Energy, robot.Pos)
	}
	glitches := len(s.Items.Filter(ecs.OfKind(component.KindGlitch)))
	statusLine := fmt.Sprintf("%s  camera %v zoom %d  glitches %d",
		robotText, s.Camera.Offset, s.Camera.Zoom, glitches)
	r.drawText(0, hudY+1, statusLine, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := len(messages) - (hudRows - 2)
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

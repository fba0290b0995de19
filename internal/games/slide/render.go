package slide

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide/core"
)

const (
	hudHeight    = 3  // Title, status line and a spacer
	footerHeight = 2  // Spacer and banner line
	lowTime      = 30 // Seconds left at which the clock turns red
)

// boardLayout places the grid on screen. Boxed tiles are three rows tall with
// a border; compact tiles are a single bracketed row.
type boardLayout struct {
	n      int
	x, y   int
	tileW  int
	tileH  int
	gapX   int
	boxed  bool
	width  int
	height int
}

// computeLayout picks the largest tile style that fits. The second result is
// true when even compact tiles do not fit.
func computeLayout(n, screenW, screenH int) (boardLayout, bool) {
	digits := len(strconv.Itoa(n*n - 1))
	availH := screenH - hudHeight - footerHeight

	l := boardLayout{n: n, tileW: digits + 4, tileH: 3, boxed: true}
	l.measure()
	if l.width > screenW || l.height > availH {
		l = boardLayout{n: n, tileW: digits + 2, tileH: 1, gapX: 1}
		l.measure()
	}
	if l.width > screenW || l.height > availH {
		return l, true
	}

	l.x = (screenW - l.width) / 2
	l.y = hudHeight
	return l, false
}

func (l *boardLayout) measure() {
	l.width = l.n*(l.tileW+l.gapX) - l.gapX
	l.height = l.n * l.tileH
}

// cellRect returns the screen area of grid cell i.
func (l boardLayout) cellRect(i int) platformcore.Rect {
	row, col := i/l.n, i%l.n
	return platformcore.NewRect(l.x+col*(l.tileW+l.gapX), l.y+row*l.tileH, l.tileW, l.tileH)
}

// cellAt is the inverse of cellRect. Gaps between compact tiles hit nothing.
func (l boardLayout) cellAt(x, y int) (int, bool) {
	for i := 0; i < l.n*l.n; i++ {
		if l.cellRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the HUD, the board and the current banner.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.loop == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	s := g.loop.Session()
	g.renderHUD(dst, s)

	grid := s.Grid
	preview := grid == nil
	if preview {
		grid = core.New(s.Dimension)
	}
	g.renderBoard(dst, grid, preview)
	g.renderBanner(dst, s)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, "Please resize terminal")
}

func (g *Game) renderHUD(dst *platformcore.Screen, s *Session) {
	variant := g.cfg.Variant(s.Level)
	dst.DrawTextCentered(0, "SLIDE: "+variant.Name)

	status := fmt.Sprintf("Level %d  %s  Moves %d  Cleared %d  ",
		s.Level+1, dimensionLabel(s.Dimension), s.Moves, s.Cleared)
	clock := FormatClock(s.Remaining)
	x := (g.screenW - len(status) - len(clock)) / 2
	dst.DrawText(x, 1, status)

	clockColor := platformcore.ColorDefault
	if s.Playing && s.Remaining <= lowTime {
		clockColor = platformcore.ColorBrightRed
	}
	dst.DrawTextColored(x+len(status), 1, clock, clockColor)
}

func (g *Game) renderBoard(dst *platformcore.Screen, grid *core.Grid, preview bool) {
	palette := g.palette(g.loop.Session().Level)
	n := grid.Dimension()

	for i := 0; i < grid.Len(); i++ {
		if grid.IsEmpty(i) {
			continue
		}
		tile := grid.At(i)
		color := platformcore.ColorGray
		if !preview && len(palette) > 0 {
			color = palette[(tile/n)%len(palette)]
		}

		r := g.layout.cellRect(i)
		label := strconv.Itoa(tile + 1)
		if g.layout.boxed {
			dst.DrawBox(r, color)
			lx := r.X + (r.W-len(label))/2
			dst.DrawTextColored(lx, r.Y+1, label, color)
			continue
		}
		dst.SetColored(r.X, r.Y, '[', color)
		dst.SetColored(r.Right()-1, r.Y, ']', color)
		lx := r.Right() - 1 - len(label)
		dst.DrawTextColored(lx, r.Y, label, color)
	}
}

func (g *Game) renderBanner(dst *platformcore.Screen, s *Session) {
	y := g.layout.y + g.layout.height + 1

	var msg string
	color := platformcore.ColorDefault
	switch {
	case g.paused:
		msg = "PAUSED  press P to resume"
		color = platformcore.ColorYellow
	case s.State == StateIdle:
		msg = "Press Enter to start"
	case s.State == StateShuffling:
		msg = "Shuffling..."
		color = platformcore.ColorGray
	case s.State == StateLevelComplete:
		msg = fmt.Sprintf("LEVEL COMPLETE  %s", FormatClock(s.Elapsed()))
		color = platformcore.ColorBrightGreen
	case s.State == StateTimedOut:
		msg = fmt.Sprintf("OUT OF TIME  cleared %d  press Enter to retry", s.Cleared)
		color = platformcore.ColorBrightRed
	}
	if msg != "" {
		dst.DrawTextCenteredColored(y, msg, color)
	}
}

// palette resolves the color names of the variant for level.
func (g *Game) palette(level int) []platformcore.Color {
	names := g.cfg.Variant(level).Palette
	colors := make([]platformcore.Color, 0, len(names))
	for _, name := range names {
		if c, ok := platformcore.ParseColor(name); ok {
			colors = append(colors, c)
		}
	}
	return colors
}

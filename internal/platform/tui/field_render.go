package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/sheepjump/internal/config"
	"github.com/vovakirdan/sheepjump/internal/core"
	"github.com/vovakirdan/sheepjump/internal/sheep"
)

// Smallest terminal the field is drawn on.
const (
	minScreenWidth  = 40
	minScreenHeight = 12
)

// HUD carries platform-side values shown around the field.
type HUD struct {
	HighScore  int // Best stored score before the current round
	Difficulty string
	Player     string
	SoundOn    bool
}

// viewport projects field units onto screen cells.
type viewport struct {
	field config.FieldConfig
	w, h  float64
}

func newViewport(field config.FieldConfig, w, h int) viewport {
	return viewport{field: field, w: float64(w), h: float64(h)}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.w / v.field.Width)) }

func (v viewport) row(y float64) int { return int(math.Floor(y * v.h / v.field.Height)) }

// fieldX maps a column back to field units.
func (v viewport) fieldX(col int) float64 { return float64(col) * v.field.Width / v.w }

// cells projects a box, keeping at least one cell in each direction.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.col(r.X), v.row(r.Y)
	w = max(1, v.col(r.Right())-x)
	h = max(1, v.row(r.Bottom())-y)
	return x, y, w, h
}

// DrawSnapshot renders one frame of the game into dst.
func DrawSnapshot(dst *core.Screen, snap sheep.Snapshot, hud HUD) {
	dst.Clear()
	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		drawTooSmall(dst)
		return
	}

	v := newViewport(snap.Field, dst.Width(), dst.Height())

	for _, c := range snap.Clouds {
		drawCloud(dst, v, c)
	}
	drawGround(dst, v, snap)
	for _, o := range snap.Obstacles {
		drawHurdle(dst, v, o)
	}
	for _, h := range snap.Hazards {
		drawEagle(dst, v, h)
	}
	for _, p := range snap.Particles {
		dst.SetColor(v.col(p.X), v.row(p.Y), particleRune(p.Alpha), p.Color)
	}
	drawSheep(dst, v, snap.Player)

	if snap.Popup.Active() {
		drawPopup(dst, v, snap.Popup)
	}
	drawHUD(dst, snap, hud)
	if snap.HazardWarning && snap.State == sheep.StatePlaying && (snap.Stats.Ticks/15)%2 == 0 {
		dst.DrawTextCentered(1, "! EAGLES INCOMING !", core.ColorOrange)
	}

	switch snap.State {
	case sheep.StateMenu:
		lines := []string{
			"SHEEP JUMP",
			"",
			"SPACE / ENTER   start",
			"SPACE           jump, twice in the air",
			"P               pause",
			"Q               quit",
			"",
			fmt.Sprintf("High score: %d", hud.HighScore),
		}
		if hud.Player != "" {
			lines = append(lines, "Playing as "+hud.Player)
		}
		drawPanel(dst, core.ColorBrightWhite, lines)
	case sheep.StatePaused:
		drawPanel(dst, core.ColorYellow, []string{
			"PAUSED",
			"",
			"P resume   Q menu",
		})
	case sheep.StateGameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d", snap.Score),
			fmt.Sprintf("Time %ds   Jumps %d", int(snap.Elapsed.Seconds()), snap.Stats.Jumps),
			fmt.Sprintf("Hurdles %d   Eagles %d", snap.Stats.ObstaclesCleared, snap.Stats.HazardsCleared),
		}
		if snap.Score > hud.HighScore {
			lines = append(lines, "", "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "SPACE retry   Q menu")
		drawPanel(dst, core.ColorRed, lines)
	}
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorRed)
	dst.DrawTextCentered(y, fmt.Sprintf("need %dx%d", minScreenWidth, minScreenHeight), core.ColorGray)
}

func drawCloud(dst *core.Screen, v viewport, c sheep.Cloud) {
	x, y, w, h := v.cells(c.Bounds())
	if h > 1 && w > 2 {
		dst.DrawHLine(x+1, y, w-2, '▄', core.ColorWhite)
		dst.FillRect(x, y+1, w, h-1, '█', core.ColorWhite)
		return
	}
	dst.DrawHLine(x, y, w, '▀', core.ColorWhite)
}

func drawGround(dst *core.Screen, v viewport, snap sheep.Snapshot) {
	gy := v.row(snap.Field.GroundY)
	for col := range dst.Width() {
		fx := v.fieldX(col) + snap.GroundOffset
		r := '▀'
		if int(fx)%20 >= 10 {
			r = '▔'
		}
		dst.SetColor(col, gy, r, core.ColorGreen)
	}
	dst.FillRect(0, gy+1, dst.Width(), dst.Height()-gy-1, '░', core.ColorBrown)
}

func drawHurdle(dst *core.Screen, v viewport, o sheep.Obstacle) {
	x, y, w, h := v.cells(o.Bounds())
	right := x + w - 1
	for row := y; row < y+h; row++ {
		dst.SetColor(x, row, '║', core.ColorBrown)
		dst.SetColor(right, row, '║', core.ColorBrown)
	}
	dst.DrawHLine(x, y, w, '═', core.ColorBrightWhite)
	if o.Tier == "double" && w > 2 {
		for row := y + 1; row < y+h; row++ {
			dst.SetColor(x+w/2, row, '║', core.ColorBrown)
		}
	}
}

func drawEagle(dst *core.Screen, v viewport, h sheep.Hazard) {
	x, y := v.col(h.X), v.row(h.Y+h.BobOffset())
	_, _, w, _ := v.cells(h.BoundingBox())

	wings := "/▾\\"
	if h.WingsUp() {
		wings = "\\▾/"
	}
	body := x + max(0, (w-3)/2)
	dst.DrawTextColor(body, y, wings, h.Body)

	head := core.ColorBrown
	if h.WhiteHead {
		head = core.ColorBrightWhite
	}
	if h.FacingRight {
		dst.SetColor(body+3, y, 'o', head)
	} else {
		dst.SetColor(body-1, y, 'o', head)
	}
}

func drawSheep(dst *core.Screen, v viewport, p sheep.Player) {
	x, y, w, h := v.cells(p.Bounds())
	if h > 1 {
		dst.FillRect(x, y, w, h-1, '█', core.ColorBrightWhite)
	}
	dst.SetColor(x+w-1, y, '●', core.ColorDarkGray)

	legs := y + h - 1
	if h == 1 {
		return
	}
	if !p.Grounded {
		dst.SetColor(x, legs, '╲', core.ColorDarkGray)
		dst.SetColor(x+w-1, legs, '╱', core.ColorDarkGray)
		return
	}
	back, front := '╱', '╲'
	if int(p.LegFrame)%2 == 1 {
		back, front = front, back
	}
	dst.SetColor(x, legs, back, core.ColorDarkGray)
	dst.SetColor(x+w-1, legs, front, core.ColorDarkGray)
}

func drawPopup(dst *core.Screen, v viewport, p sheep.Popup) {
	color := core.ColorGold
	if (p.TicksLeft/5)%2 == 1 {
		color = core.ColorBrightYellow
	}
	x := v.col(p.X) - len([]rune(p.Text))/2
	dst.DrawTextColor(x, v.row(p.Y), p.Text, color)
}

func drawHUD(dst *core.Screen, snap sheep.Snapshot, hud HUD) {
	best := max(hud.HighScore, snap.Score)
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %05d  HI %05d", snap.Score, best), core.ColorBrightWhite)

	charges := strings.Repeat("●", snap.Player.Charges) + strings.Repeat("○", sheep.MaxCharges-snap.Player.Charges)
	dst.DrawTextColor(24, 0, charges, core.ColorGold)

	right := fmt.Sprintf("SPD %s  %s", speedBar(snap.SpeedLevel, 5), hud.Difficulty)
	if hud.SoundOn {
		right += " ♪"
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorGray)
}

// speedBar draws level (0..1) as a bar of n segments.
func speedBar(level float64, n int) string {
	filled := int(math.Round(core.ClampF(level, 0, 1) * float64(n)))
	return strings.Repeat("▮", filled) + strings.Repeat("▯", n-filled)
}

// particleRune fades a particle as its alpha drops.
func particleRune(alpha uint8) rune {
	switch {
	case alpha >= 170:
		return '*'
	case alpha >= 85:
		return '•'
	default:
		return '·'
	}
}

// drawPanel draws a centered box around lines. The first line is the title.
func drawPanel(dst *core.Screen, color core.Color, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w, h := width+4, len(lines)+2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, color)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = color
		}
		lx := x + (w-len([]rune(l)))/2
		dst.DrawTextColor(lx, y+1+i, l, c)
	}
}

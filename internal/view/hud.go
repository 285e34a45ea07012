package view

import (
	"fmt"
	"runtime"

	"ruins-game/internal/game"
	"ruins-game/internal/rebind"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fontSize   = 20
	lineHeight = fontSize + 4
	padding    = 12
	panelWidth = 360

	maxLogLines    = 8
	maxLogChars    = 160
	statsInterval  = 30
	bannerFontSize = 24
)

var (
	panelBg     = rl.NewColor(20, 20, 24, 220)
	panelBorder = rl.NewColor(90, 90, 100, 255)
	armedBg     = rl.NewColor(200, 160, 40, 255)
	logBg       = rl.NewColor(24, 24, 24, 200)
	bannerBg    = rl.NewColor(150, 30, 30, 220)

	upper = cases.Upper(language.Und)
)

// keyLabel renders a key identifier for display. Bindings may hold any Unicode key name.
func keyLabel(key string) string {
	if key == "" {
		return "-"
	}
	return upper.String(key)
}

// HUD draws the 2D overlay: wolf banner, inventory, controls guide, rebinding panel, recent
// log lines and frame stats.
type HUD struct {
	// Lines returns recent log lines; nil hides the log.
	Lines func() []string

	frame     uint32
	statsText string
	mem       runtime.MemStats
}

func NewHUD(lines func() []string) *HUD {
	return &HUD{Lines: lines}
}

func (h *HUD) Draw(v game.View) {
	screenW := int32(rl.GetScreenWidth())

	if v.WolfFollowing {
		text := "The wolf is following you"
		w := rl.MeasureText(text, bannerFontSize)
		x := (screenW - w) / 2
		rl.DrawRectangle(x-padding, padding, w+2*padding, bannerFontSize+padding, bannerBg)
		rl.DrawText(text, x, padding+padding/2, bannerFontSize, rl.White)
	}

	y := int32(padding)
	if v.ShowInventory {
		y = drawInventory(v.Inventory, y) + padding
	}
	if v.ShowControls {
		drawControls(v.BindingRows, y)
	}
	if v.PanelOpen {
		drawRebindPanel(v.BindingRows, screenW)
	}

	h.drawLog()
	h.drawStats(screenW)
}

func box(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, panelBg)
	rl.DrawRectangleLines(x, y, w, h, panelBorder)
}

func drawInventory(items []string, y int32) int32 {
	lines := []string{"Inventory"}
	if len(items) == 0 {
		lines = append(lines, "  (empty)")
	}
	counts := map[string]int{}
	var order []string
	for _, it := range items {
		if counts[it] == 0 {
			order = append(order, it)
		}
		counts[it]++
	}
	for _, it := range order {
		lines = append(lines, fmt.Sprintf("  %s x%d", it, counts[it]))
	}
	return drawList(lines, padding, y)
}

func drawControls(rows []rebind.Row, y int32) int32 {
	lines := []string{"Controls"}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %-16s %s", r.Label, keyLabel(r.Key)))
	}
	lines = append(lines, "  Drag right mouse to orbit", "  F1 rebind  F5 reset  F9 default keys")
	return drawList(lines, padding, y)
}

func drawList(lines []string, x, y int32) int32 {
	h := int32(len(lines))*lineHeight + padding
	box(x, y, panelWidth, h)
	for i, l := range lines {
		rl.DrawText(l, x+padding, y+padding/2+int32(i)*lineHeight, fontSize, rl.RayWhite)
	}
	return y + h
}

func drawRebindPanel(rows []rebind.Row, screenW int32) {
	x := screenW - panelWidth - padding
	y := int32(padding * 4)
	h := int32(len(rows)+2)*lineHeight + padding
	box(x, y, panelWidth, h)
	rl.DrawText("Key bindings (press number)", x+padding, y+padding/2, fontSize, rl.RayWhite)

	for i, r := range rows {
		ry := y + padding/2 + int32(i+1)*lineHeight
		key := keyLabel(r.Key)
		c := rl.RayWhite
		if r.Armed {
			rl.DrawRectangle(x+2, ry-2, panelWidth-4, lineHeight, armedBg)
			key = "press a key..."
			c = rl.Black
		}
		rl.DrawText(fmt.Sprintf("%d. %-16s %s", r.Index, r.Label, key), x+padding, ry, fontSize, c)
	}
	foot := y + padding/2 + int32(len(rows)+1)*lineHeight
	rl.DrawText("Esc or click outside to close", x+padding, foot, fontSize, rl.Gray)
}

func (h *HUD) drawLog() {
	if h.Lines == nil {
		return
	}
	lines := h.Lines()
	if len(lines) > maxLogLines {
		lines = lines[len(lines)-maxLogLines:]
	}
	if len(lines) == 0 {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	height := int32(len(lines))*lineHeight + padding
	top := screenH - height
	rl.DrawRectangle(0, top, screenW, height, logBg)
	for i, line := range lines {
		if len(line) > maxLogChars {
			line = line[:maxLogChars-3] + "..."
		}
		rl.DrawText(line, padding, top+padding/2+int32(i)*lineHeight, fontSize-4, rl.LightGray)
	}
}

// drawStats shows FPS and heap size top-right, refreshing the text every statsInterval frames.
func (h *HUD) drawStats(screenW int32) {
	h.frame++
	if h.statsText == "" || h.frame%statsInterval == 0 {
		runtime.ReadMemStats(&h.mem)
		h.statsText = fmt.Sprintf("FPS: %d  Mem: %.1f MiB", rl.GetFPS(), float64(h.mem.Alloc)/(1024*1024))
	}
	w := rl.MeasureText(h.statsText, fontSize-4)
	rl.DrawText(h.statsText, screenW-w-padding, int32(rl.GetScreenHeight())-lineHeight*int32(maxLogLines+1)-padding, fontSize-4, rl.Green)
}

package graphics

import (
	"ruins-game/internal/gameconfig"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives the frame loop until the window is closed. Each frame it
// calls update with the elapsed wall-clock time in milliseconds, then clears the screen and
// calls draw. unload, if not nil, runs after the last frame while the GL context is still
// alive. Escape belongs to the game (it closes panels), so it does not quit.
func Run(cfg gameconfig.Window, update func(nowMs float64), draw func(), unload func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	defer rl.CloseWindow()
	if unload != nil {
		defer unload()
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(cfg.TargetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetTime() * 1000)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(150, 180, 210, 255))
		draw()
		rl.EndDrawing()
	}
}

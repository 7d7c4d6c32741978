package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

const (
	borderPadding = 10 // padding around game area
	statusHeight  = 30 // room for the score line under the grid
	targetFPS     = 60
)

// keyCommands maps raylib key codes to game commands
var keyCommands = map[int32]manager.Command{
	rl.KeyUp:    manager.Turn(types.Up),
	rl.KeyDown:  manager.Turn(types.Down),
	rl.KeyLeft:  manager.Turn(types.Left),
	rl.KeyRight: manager.Turn(types.Right),
	rl.KeyW:     manager.Turn(types.Up),
	rl.KeyS:     manager.Turn(types.Down),
	rl.KeyA:     manager.Turn(types.Left),
	rl.KeyD:     manager.Turn(types.Right),
	rl.KeySpace: {Kind: manager.CommandPause},
	rl.KeyQ:     {Kind: manager.CommandQuit},
}

// Window is the raylib frontend: it owns the OS window, polls the key queue
// and scales the grid to the current window size.
type Window struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

// OpenWindow creates a resizable window capped at 60 FPS
func OpenWindow(width, height int32, title string) *Window {
	rl.InitWindow(width, height, title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(targetFPS)
	return &Window{}
}

// Close destroys the window
func (w *Window) Close() {
	rl.CloseWindow()
}

// Poll drains the key queue in press order. Closing the window quits.
// The frame wait happens in EndDrawing, so Poll itself never blocks.
func (w *Window) Poll() []manager.Command {
	if rl.WindowShouldClose() {
		return []manager.Command{{Kind: manager.CommandQuit}}
	}

	var cmds []manager.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd, ok := keyCommands[key]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// UpdateDimensions fits the grid into the window, centered
func (w *Window) UpdateDimensions(grid types.Grid) {
	w.screenWidth = int32(rl.GetScreenWidth())
	w.screenHeight = int32(rl.GetScreenHeight())
	w.cellSize, w.offsetX, w.offsetY = fitGrid(grid, w.screenWidth, w.screenHeight)
}

// fitGrid returns the largest square cell size that fits the grid inside the
// padded window, and the offsets that center it.
func fitGrid(grid types.Grid, screenWidth, screenHeight int32) (cell, offsetX, offsetY int32) {
	availableWidth := screenWidth - borderPadding*2
	availableHeight := screenHeight - borderPadding*2 - statusHeight

	cell = min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
	if cell < 1 {
		cell = 1
	}
	offsetX = (screenWidth - cell*int32(grid.Width)) / 2
	offsetY = borderPadding + (availableHeight-cell*int32(grid.Height))/2
	return cell, offsetX, offsetY
}

func (w *Window) Draw(v game.View) {
	w.UpdateDimensions(v.Grid)
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	gridWidth := w.cellSize * int32(v.Grid.Width)
	gridHeight := w.cellSize * int32(v.Grid.Height)

	// Grid background
	rl.DrawRectangle(w.offsetX-1, w.offsetY-1, gridWidth+2, gridHeight+2, rl.DarkGray)
	rl.DrawRectangle(w.offsetX, w.offsetY, gridWidth, gridHeight, rl.RayWhite)

	if v.HasFood {
		w.drawCell(v.Food, rl.Red)
	}

	for i, p := range v.Body {
		if i == len(v.Body)-1 {
			w.drawCell(p, rl.DarkGreen)
			w.drawHeading(p, v.Direction)
			continue
		}
		w.drawCell(p, rl.Black)
	}

	fontSize := int32(20)
	textY := w.offsetY + gridHeight + borderPadding
	score := fmt.Sprintf("Score: %d", v.Score)
	rl.DrawText(score, w.offsetX, textY, fontSize, rl.RayWhite)

	var banner string
	switch {
	case v.Died:
		banner = "You died!"
	case v.BoardFull:
		banner = "Board full!"
	case v.Paused:
		banner = "PAUSED"
	}
	if banner != "" {
		bannerX := w.offsetX + gridWidth - rl.MeasureText(banner, fontSize)
		rl.DrawText(banner, bannerX, textY, fontSize, rl.Yellow)
	}

	rl.EndDrawing()
}

func (w *Window) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		w.offsetX+int32(p.X)*w.cellSize,
		w.offsetY+int32(p.Y)*w.cellSize,
		w.cellSize, w.cellSize, color)
}

// drawHeading draws a small triangle on the head pointing where it moves
func (w *Window) drawHeading(p types.Point, d types.Direction) {
	headX := float32(w.offsetX + int32(p.X)*w.cellSize)
	headY := float32(w.offsetY + int32(p.Y)*w.cellSize)
	size := float32(w.cellSize)
	half := size / 2

	var a, b, c rl.Vector2
	switch d {
	case types.Right:
		a = rl.Vector2{X: headX + size, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + size}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + size}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + size}
		b = rl.Vector2{X: headX + size, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default:
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + size, Y: headY + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

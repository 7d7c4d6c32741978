package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-snake/game"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

const (
	terminalFrame = 16 * time.Millisecond // ~60 FPS
	cellColumns   = 2                     // each grid cell is drawn two columns wide
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Terminal draws the game with tcell and reads keys from the same screen
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	ticker *time.Ticker
}

// OpenTerminal takes over the controlling terminal
func OpenTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return newTerminal(screen)
}

func newTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		ticker: time.NewTicker(terminalFrame),
	}
	go screen.ChannelEvents(t.events, t.quit)
	return t, nil
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.ticker.Stop()
	close(t.quit)
	t.screen.Fini()
}

// Poll collects key presses until the next frame is due
func (t *Terminal) Poll() []manager.Command {
	var cmds []manager.Command
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(cmds, manager.Command{Kind: manager.CommandQuit})
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd, ok := terminalCommand(ev); ok {
					cmds = append(cmds, cmd)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-t.ticker.C:
			return cmds
		}
	}
}

// terminalCommand maps a key press to a game command
func terminalCommand(ev *tcell.EventKey) (manager.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return manager.Turn(types.Up), true
	case tcell.KeyDown:
		return manager.Turn(types.Down), true
	case tcell.KeyLeft:
		return manager.Turn(types.Left), true
	case tcell.KeyRight:
		return manager.Turn(types.Right), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return manager.Command{Kind: manager.CommandQuit}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return manager.Turn(types.Up), true
		case 'j', 's':
			return manager.Turn(types.Down), true
		case 'h', 'a':
			return manager.Turn(types.Left), true
		case 'l', 'd':
			return manager.Turn(types.Right), true
		case ' ':
			return manager.Command{Kind: manager.CommandPause}, true
		case 'q':
			return manager.Command{Kind: manager.CommandQuit}, true
		}
	}
	return manager.Command{}, false
}

// Draw renders the board inside a border with the score underneath
func (t *Terminal) Draw(v game.View) {
	t.screen.Clear()

	w := v.Grid.Width*cellColumns + 2
	h := v.Grid.Height + 2
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 0, '─', nil, styleBorder)
		t.screen.SetContent(x, h-1, '─', nil, styleBorder)
	}
	for y := 0; y < h; y++ {
		t.screen.SetContent(0, y, '│', nil, styleBorder)
		t.screen.SetContent(w-1, y, '│', nil, styleBorder)
	}
	t.screen.SetContent(0, 0, '┌', nil, styleBorder)
	t.screen.SetContent(w-1, 0, '┐', nil, styleBorder)
	t.screen.SetContent(0, h-1, '└', nil, styleBorder)
	t.screen.SetContent(w-1, h-1, '┘', nil, styleBorder)

	if v.HasFood {
		t.setCell(v.Food, '●', styleFood)
	}
	for i, p := range v.Body {
		style := styleBody
		if i == len(v.Body)-1 {
			style = styleHead
		}
		t.setCell(p, '█', style)
	}

	score := fmt.Sprintf("Score: %d", v.Score)
	t.drawText(0, h, score, styleText)
	switch {
	case v.Died:
		t.drawText(len(score)+2, h, "You died!", styleAlert)
	case v.BoardFull:
		t.drawText(len(score)+2, h, "Board full!", styleAlert)
	case v.Paused:
		t.drawText(len(score)+2, h, "PAUSED", styleAlert)
	}

	t.screen.Show()
}

func (t *Terminal) setCell(p types.Point, r rune, style tcell.Style) {
	for c := 0; c < cellColumns; c++ {
		t.screen.SetContent(1+p.X*cellColumns+c, 1+p.Y, r, nil, style)
	}
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

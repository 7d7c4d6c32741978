package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"torus-snake/game"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

func TestTerminalCommandMapping(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want manager.Command
		ok   bool
	}{
		{"arrow up", tcell.KeyUp, 0, manager.Turn(types.Up), true},
		{"arrow left", tcell.KeyLeft, 0, manager.Turn(types.Left), true},
		{"vi down", tcell.KeyRune, 'j', manager.Turn(types.Down), true},
		{"wasd right", tcell.KeyRune, 'd', manager.Turn(types.Right), true},
		{"space pauses", tcell.KeyRune, ' ', manager.Command{Kind: manager.CommandPause}, true},
		{"q quits", tcell.KeyRune, 'q', manager.Command{Kind: manager.CommandQuit}, true},
		{"escape quits", tcell.KeyEscape, 0, manager.Command{Kind: manager.CommandQuit}, true},
		{"other rune ignored", tcell.KeyRune, 'x', manager.Command{}, false},
		{"enter ignored", tcell.KeyEnter, 0, manager.Command{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := terminalCommand(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if ok != tt.ok || got != tt.want {
				t.Fatalf("terminalCommand = %+v %v, want %+v %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := newTerminal(screen)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(term.Close)
	return term, screen
}

func TestTerminalDrawPlacesCells(t *testing.T) {
	term, screen := newSimTerminal(t)

	term.Draw(game.View{
		Grid:    types.Grid{Width: 5, Height: 4},
		Body:    []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Food:    types.Point{X: 4, Y: 3},
		HasFood: true,
		Score:   7,
		Paused:  true,
	})

	check := func(x, y int, want rune) {
		t.Helper()
		if r, _, _, _ := screen.GetContent(x, y); r != want {
			t.Errorf("cell (%d,%d) = %q, want %q", x, y, r, want)
		}
	}
	check(0, 0, '┌')
	check(1, 1, '█') // tail, first column
	check(4, 1, '█') // head, second column
	check(9, 4, '●') // food at grid (4,3)
	check(5, 1, ' ')

	_, _, headStyle, _ := screen.GetContent(3, 1)
	if headStyle != styleHead {
		t.Error("head not drawn with the head style")
	}
	for i, r := range "Score: 7  PAUSED" {
		check(i, 6, r)
	}
}

func TestTerminalPollDeliversKeysInOrder(t *testing.T) {
	term, screen := newSimTerminal(t)

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	var got []manager.Command
	for i := 0; i < 50 && len(got) < 3; i++ {
		got = append(got, term.Poll()...)
	}
	want := []manager.Command{
		manager.Turn(types.Up),
		{Kind: manager.CommandPause},
		manager.Turn(types.Left),
	}
	if len(got) != len(want) {
		t.Fatalf("commands = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

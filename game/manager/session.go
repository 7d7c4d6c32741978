package manager

import (
	"log"
	"time"

	"torus-snake/game"
	"torus-snake/game/types"
)

// CommandKind identifies a player input
type CommandKind int

const (
	CommandTurn CommandKind = iota
	CommandPause
	CommandQuit
)

// Command is one input event delivered by a frontend
type Command struct {
	Kind      CommandKind
	Direction types.Direction // only for CommandTurn
}

// Turn builds a direction change command
func Turn(d types.Direction) Command {
	return Command{Kind: CommandTurn, Direction: d}
}

// Frontend is the presentation side of a session.
// Poll returns the inputs received since the last call, in arrival order,
// and is expected to pace the loop to the display frame rate.
type Frontend interface {
	Poll() []Command
	Draw(v game.View)
}

// Pilot steers the snake instead of (or alongside) a human player.
// Next is called after every tick with that tick's outcome.
type Pilot interface {
	Next(g *game.Game, last game.Outcome) types.Direction
}

// Result summarizes a finished session
type Result struct {
	Score     int
	Died      bool
	BoardFull bool
	Quit      bool
	Ticks     int
	Duration  time.Duration
}

// Session runs the game loop for one game
type Session struct {
	game     *game.Game
	pacer    *FramePacer
	frontend Frontend
	clock    Clock
	pilot    Pilot
}

// NewSession wires a game to a frontend
func NewSession(g *game.Game, pacer *FramePacer, frontend Frontend, clock Clock) *Session {
	return &Session{
		game:     g,
		pacer:    pacer,
		frontend: frontend,
		clock:    clock,
	}
}

// SetPilot lets p issue a direction request after every tick
func (s *Session) SetPilot(p Pilot) {
	s.pilot = p
}

// Run polls input, advances the pacer and draws until the game ends or the
// player quits. Everything happens on the calling goroutine.
func (s *Session) Run() Result {
	g := s.game
	start := s.clock.Now()
	last := start

	log.Printf("session %s started: grid %dx%d heading %v", g.UUID, g.Grid().Width, g.Grid().Height, g.Direction())

	if s.pilot != nil {
		g.RequestDirection(s.pilot.Next(g, game.OutcomeIdle))
	}

	result := Result{}
	for {
		for _, cmd := range s.frontend.Poll() {
			switch cmd.Kind {
			case CommandTurn:
				g.RequestDirection(cmd.Direction)
			case CommandPause:
				s.pacer.TogglePause()
			case CommandQuit:
				result.Quit = true
			}
		}
		if result.Quit {
			break
		}

		now := s.clock.Now()
		elapsed := now.Sub(last)
		last = now

		out, stepped := s.pacer.Update(g, elapsed)
		if stepped && s.pilot != nil {
			dir := s.pilot.Next(g, out)
			if !g.Over() {
				g.RequestDirection(dir)
			}
		}

		view := g.View()
		view.Paused = s.pacer.Paused()
		s.frontend.Draw(view)

		if g.Over() {
			break
		}
	}

	result.Score = g.Score()
	result.Died = g.Died()
	result.BoardFull = g.BoardFull()
	result.Ticks = s.pacer.Ticks()
	result.Duration = s.clock.Now().Sub(start)

	log.Printf("session %s ended: score=%d died=%v ticks=%d", g.UUID, result.Score, result.Died, result.Ticks)
	return result
}

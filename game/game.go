package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"torus-snake/game/entity"
	"torus-snake/game/rng"
	"torus-snake/game/types"
)

var (
	// ErrInvalidConfig is returned by New when the grid or initial snake cannot be built
	ErrInvalidConfig = errors.New("invalid game config")
	// ErrBoardFull is returned by NextFoodPos when every cell is occupied by the snake
	ErrBoardFull = errors.New("board full")
)

// Rejection sampling gives up after this many draws per grid cell and
// samples from the free cells directly instead.
const foodAttemptsPerCell = 4

// Config holds the startup constants of a game
type Config struct {
	Grid          types.Grid
	InitialLength int
}

// DefaultConfig returns the classic 20x20 board with a 10 cell snake
func DefaultConfig() Config {
	return Config{
		Grid:          types.Grid{Width: types.DefaultWidth, Height: types.DefaultHeight},
		InitialLength: types.DefaultInitialLength,
	}
}

// Validate checks that the grid is usable and the initial snake fits in a
// straight line along either axis without overlapping itself.
func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial length %d", ErrInvalidConfig, c.InitialLength)
	}
	if c.InitialLength > min(c.Grid.Width, c.Grid.Height) {
		return fmt.Errorf("%w: initial length %d does not fit grid %dx%d",
			ErrInvalidConfig, c.InitialLength, c.Grid.Width, c.Grid.Height)
	}
	if c.InitialLength >= c.Grid.Area() {
		return fmt.Errorf("%w: no room for food on grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	return nil
}

// Outcome describes what a single Step did
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeDied
	OutcomeBoardFull
	OutcomeIdle // the game was already over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	case OutcomeBoardFull:
		return "board full"
	default:
		return "idle"
	}
}

// Game is the simulation state of one snake on a toroidal grid.
// It is not safe for concurrent use; the game loop owns it.
type Game struct {
	UUID string

	grid        types.Grid
	body        *entity.Body
	direction   types.Direction
	turnAllowed bool
	food        types.Point
	hasFood     bool
	score       int
	died        bool
	full        bool
	steps       int
	rand        *rng.Random
}

// New creates a game with a straight snake at a random position heading in a
// random direction, and food placed off the snake.
func New(cfg Config, r *rng.Random) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		UUID:        uuid.New().String(),
		grid:        cfg.Grid,
		body:        entity.NewBody(cfg.InitialLength * 2),
		direction:   types.Directions[r.Uniform(len(types.Directions))],
		turnAllowed: true,
		rand:        r,
	}

	// The random cell is the head; the rest trails behind it, opposite to
	// the heading. Cells are pushed tail first.
	cells := make([]types.Point, cfg.InitialLength)
	cells[0] = types.Point{X: r.Uniform(cfg.Grid.Width), Y: r.Uniform(cfg.Grid.Height)}
	behind := g.direction.Opposite()
	for i := 1; i < len(cells); i++ {
		cells[i] = cells[i-1].Move(behind, cfg.Grid)
	}
	for i := len(cells) - 1; i >= 0; i-- {
		g.body.PushHead(cells[i])
	}

	food, err := g.NextFoodPos()
	if err != nil {
		return nil, err
	}
	g.food, g.hasFood = food, true

	return g, nil
}

// Restore builds a game from an explicit body (tail to head), heading and food.
// Used to set up exact positions; the caller is responsible for a valid layout.
func Restore(grid types.Grid, cells []types.Point, dir types.Direction, food types.Point, r *rng.Random) *Game {
	g := &Game{
		UUID:        uuid.New().String(),
		grid:        grid,
		body:        entity.NewBody(len(cells) * 2),
		direction:   dir,
		turnAllowed: true,
		food:        food,
		hasFood:     true,
		rand:        r,
	}
	for _, c := range cells {
		g.body.PushHead(c)
	}
	return g
}

// RequestDirection asks the snake to turn. The request is applied only if no
// turn has been applied since the last completed step and dir is not the exact
// reverse of the current heading. It reports whether the request was applied.
func (g *Game) RequestDirection(dir types.Direction) bool {
	if !g.turnAllowed || dir.IsReverseOf(g.direction) {
		return false
	}
	g.direction = dir
	g.turnAllowed = false
	return true
}

// AllowTurn reopens the direction change gate
func (g *Game) AllowTurn() {
	g.turnAllowed = true
}

// Step advances the snake by one cell
func (g *Game) Step() Outcome {
	if g.Over() {
		return OutcomeIdle
	}

	newHead := g.body.Head().Move(g.direction, g.grid)
	if g.body.Contains(newHead) {
		g.died = true
		return OutcomeDied
	}

	g.body.PushHead(newHead)
	g.steps++

	outcome := OutcomeMoved
	if g.hasFood && newHead == g.food {
		g.score++
		outcome = OutcomeAte
		food, err := g.NextFoodPos()
		if err != nil {
			g.full = true
			g.hasFood = false
			outcome = OutcomeBoardFull
		} else {
			g.food = food
		}
	}

	if outcome == OutcomeMoved {
		g.body.PopTail()
	}

	g.turnAllowed = true
	return outcome
}

// NextFoodPos picks a uniformly random cell not covered by the body.
// Any collision discards the candidate and resamples. After a bounded number
// of misses the free cells are enumerated and one is chosen directly.
func (g *Game) NextFoodPos() (types.Point, error) {
	free := g.grid.Area() - g.body.Len()
	if free <= 0 {
		return types.Point{}, ErrBoardFull
	}

	for attempt := 0; attempt < foodAttemptsPerCell*g.grid.Area(); attempt++ {
		p := types.Point{X: g.rand.Uniform(g.grid.Width), Y: g.rand.Uniform(g.grid.Height)}
		if !g.body.Contains(p) {
			return p, nil
		}
	}

	candidates := make([]types.Point, 0, free)
	for y := 0; y < g.grid.Height; y++ {
		for x := 0; x < g.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !g.body.Contains(p) {
				candidates = append(candidates, p)
			}
		}
	}
	return candidates[g.rand.Uniform(len(candidates))], nil
}

// Over reports whether the game has reached a terminal state
func (g *Game) Over() bool {
	return g.died || g.full
}

// Died reports whether the snake ran into itself
func (g *Game) Died() bool {
	return g.died
}

// BoardFull reports whether the snake covers the whole grid
func (g *Game) BoardFull() bool {
	return g.full
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Steps() int {
	return g.steps
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) TurnAllowed() bool {
	return g.turnAllowed
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// Food returns the food cell; ok is false once the board is full
func (g *Game) Food() (p types.Point, ok bool) {
	return g.food, g.hasFood
}

func (g *Game) Head() types.Point {
	return g.body.Head()
}

func (g *Game) Len() int {
	return g.body.Len()
}

// Occupied reports whether p is covered by the snake
func (g *Game) Occupied(p types.Point) bool {
	return g.body.Contains(p)
}

// Body returns the snake cells ordered tail to head
func (g *Game) Body() []types.Point {
	return g.body.Cells()
}

// View is a read-only snapshot for presentation
type View struct {
	Grid      types.Grid
	Body      []types.Point // tail to head
	Direction types.Direction
	Food      types.Point
	HasFood   bool
	Score     int
	Died      bool
	BoardFull bool
	Paused    bool
}

// View captures the state needed to draw one frame
func (g *Game) View() View {
	return View{
		Grid:      g.grid,
		Body:      g.body.Cells(),
		Direction: g.direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.score,
		Died:      g.died,
		BoardFull: g.full,
	}
}

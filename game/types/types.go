package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Area returns the number of cells in the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Game constants
const (
	DefaultWidth         = 20
	DefaultHeight        = 20
	DefaultInitialLength = 10
	DefaultTickInterval  = 50 * time.Millisecond
)

// Point is a single grid cell
type Point struct {
	X, Y int
}

// Move returns the cell one step from p in direction d, wrapping around the grid edges
func (p Point) Move(d Direction, g Grid) Point {
	v := d.ToPoint()
	return Point{
		X: Wrap(p.X, v.X, g.Width),
		Y: Wrap(p.Y, v.Y, g.Height),
	}
}

// Wrap adds delta to coord on a torus of size bound.
// delta is always in {-1, 0, 1} and bound >= 1, so one correction suffices.
func Wrap(coord, delta, bound int) int {
	next := coord + delta
	if next < 0 {
		next += bound
	} else if next >= bound {
		next -= bound
	}
	return next
}

// Direction is one of the four cardinal directions
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order
var Directions = [4]Direction{Up, Down, Left, Right}

// ToPoint converts a Direction into its unit vector
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		panic("types: invalid direction")
	}
}

// Opposite returns the reverse of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		panic("types: invalid direction")
	}
}

// IsReverseOf reports whether d points exactly against other.
// Checked per axis, so Up against Down and Left against Right.
func (d Direction) IsReverseOf(other Direction) bool {
	a, b := d.ToPoint(), other.ToPoint()
	return (a.X != 0 && a.X == -b.X) || (a.Y != 0 && a.Y == -b.Y)
}

// TurnLeft returns the direction after a 90 degree counter-clockwise turn
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// TurnRight returns the direction after a 90 degree clockwise turn
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

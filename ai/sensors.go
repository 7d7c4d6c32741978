package ai

import (
	"torus-snake/game"
	"torus-snake/game/types"
)

// Sense builds the learner's view of the board around the snake's head.
// Distances are measured on the torus, so food across an edge counts as near.
func Sense(g *game.Game) State {
	head := g.Head()
	grid := g.Grid()

	var dangers [4]bool
	for _, d := range types.Directions {
		dangers[d] = g.Occupied(head.Move(d, grid))
	}

	food, ok := g.Food()
	if !ok {
		return NewState([2]int{}, 0, dangers, g.Direction())
	}

	dx := torusDelta(head.X, food.X, grid.Width)
	dy := torusDelta(head.Y, food.Y, grid.Height)
	return NewState([2]int{sign(dx), sign(dy)}, abs(dx)+abs(dy), dangers, g.Direction())
}

// torusDelta returns the shortest signed offset from a to b on a ring of size n
func torusDelta(a, b, n int) int {
	d := b - a
	if d > n/2 {
		d -= n
	} else if d < -n/2 {
		d += n
	}
	return d
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

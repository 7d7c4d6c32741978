package ai

import (
	"fmt"
	"math"

	"torus-snake/game"
	"torus-snake/game/rng"
	"torus-snake/game/types"
)

type State struct {
	RelativeFoodDir [2]int  // Food direction relative to head (x, y)
	FoodDistance    int     // Manhattan distance to food on the torus
	DangerDirs      [4]bool // Body in each direction, indexed by types.Direction
	Heading         types.Direction
}

// NewState creates a new state with initialized values
func NewState(foodDir [2]int, foodDist int, dangers [4]bool, heading types.Direction) State {
	return State{
		RelativeFoodDir: foodDir,
		FoodDistance:    foodDist,
		DangerDirs:      dangers,
		Heading:         heading,
	}
}

type QTable map[string]map[types.Direction]float64

// QLearning is a tabular learner that plays the snake. It keeps its table
// in memory for the lifetime of the process.
type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int

	rand       *rng.Random
	lastState  State
	lastAction types.Direction
	hasLast    bool
}

func NewQLearning(r *rng.Random) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rand:         r,
	}
}

func (q *QLearning) getStateKey(s State) string {
	return fmt.Sprintf("%d%d%d%d%d%d%d", s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		boolToInt(s.DangerDirs[types.Up]),
		boolToInt(s.DangerDirs[types.Down]),
		boolToInt(s.DangerDirs[types.Left]),
		boolToInt(s.DangerDirs[types.Right]),
		s.Heading)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// legalActions are straight on, a left turn and a right turn. The reverse of
// the heading is never offered since the game would refuse it.
func legalActions(heading types.Direction) []types.Direction {
	return []types.Direction{heading, heading.TurnLeft(), heading.TurnRight()}
}

func (q *QLearning) row(key string) map[types.Direction]float64 {
	if _, exists := q.QTable[key]; !exists {
		q.QTable[key] = make(map[types.Direction]float64)
		for _, a := range types.Directions {
			q.QTable[key][a] = 0
		}
	}
	return q.QTable[key]
}

func (q *QLearning) GetAction(state State) types.Direction {
	actions := legalActions(state.Heading)

	// Exploration: random action
	if q.rand.Float64() < q.Epsilon {
		return actions[q.rand.Uniform(len(actions))]
	}

	// Exploitation: best known action
	return q.getBestAction(state, actions)
}

func (q *QLearning) getBestAction(state State, actions []types.Direction) types.Direction {
	values := q.row(q.getStateKey(state))

	bestAction := actions[0]
	bestValue := math.Inf(-1)
	for _, action := range actions {
		if values[action] > bestValue {
			bestValue = values[action]
			bestAction = action
		}
	}
	return bestAction
}

// reward scores the transition from state to nextState under outcome
func reward(state State, action types.Direction, nextState State, outcome game.Outcome) float64 {
	switch outcome {
	case game.OutcomeDied:
		return -1.0
	case game.OutcomeAte, game.OutcomeBoardFull:
		return 1.0
	}

	var r float64
	distanceChange := nextState.FoodDistance - state.FoodDistance
	if distanceChange < 0 {
		r = 0.5
	} else if distanceChange > 0 {
		r = -0.3
	}
	if nextState.DangerDirs[action] {
		// Moved towards danger
		r = -1.0
	}
	return r
}

// Update applies one Q-learning step and returns the reward used
func (q *QLearning) Update(state State, action types.Direction, nextState State, outcome game.Outcome) float64 {
	r := reward(state, action, nextState, outcome)

	current := q.row(q.getStateKey(state))
	maxNextQ := 0.0
	if outcome != game.OutcomeDied && outcome != game.OutcomeBoardFull {
		maxNextQ = math.Inf(-1)
		for _, value := range q.row(q.getStateKey(nextState)) {
			if value > maxNextQ {
				maxNextQ = value
			}
		}
	}

	// Q-learning update formula
	currentQ := current[action]
	current[action] = currentQ + q.LearningRate*(r+q.Discount*maxNextQ-currentQ)

	q.TotalReward += r
	return r
}

// Next learns from the last tick and picks the direction for the next one
func (q *QLearning) Next(g *game.Game, last game.Outcome) types.Direction {
	state := Sense(g)
	if q.hasLast && last != game.OutcomeIdle {
		q.Update(q.lastState, q.lastAction, state, last)
	}

	if g.Over() {
		q.GamesPlayed++
		q.hasLast = false
		return g.Direction()
	}

	action := q.GetAction(state)
	q.lastState, q.lastAction, q.hasLast = state, action, true
	return action
}

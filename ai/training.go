package ai

import (
	"fmt"
	"log"
	"sort"

	"torus-snake/game"
	"torus-snake/game/rng"
)

// An episode that neither dies nor fills the board is cut off after this
// many steps per grid cell.
const maxStepsPerCell = 50

// TrainingStats summarizes a batch of headless episodes
type TrainingStats struct {
	Games        int
	Deaths       int
	Truncated    int
	BestScore    int
	AverageScore float64
	MedianScore  float64
	TotalSteps   int
}

// addGame folds one finished episode into the batch
func (s *TrainingStats) addGame(scores []int, score, steps int, died bool) []int {
	s.Games++
	s.TotalSteps += steps
	if died {
		s.Deaths++
	}
	if score > s.BestScore {
		s.BestScore = score
	}
	return append(scores, score)
}

func (s *TrainingStats) finish(scores []int) {
	if len(scores) == 0 {
		return
	}
	sort.Ints(scores)
	total := 0
	for _, v := range scores {
		total += v
	}
	s.AverageScore = float64(total) / float64(len(scores))

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		s.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		s.MedianScore = float64(scores[mid])
	}
}

// Train plays episodes without a frontend so the table is warm before a
// visible game. Each step reopens the turn gate exactly as a pacer tick does.
func (q *QLearning) Train(cfg game.Config, episodes int, r *rng.Random) (TrainingStats, error) {
	var stats TrainingStats
	scores := make([]int, 0, episodes)
	limit := maxStepsPerCell * cfg.Grid.Area()

	for episode := 0; episode < episodes; episode++ {
		g, err := game.New(cfg, r)
		if err != nil {
			return stats, fmt.Errorf("training episode %d: %w", episode, err)
		}
		q.hasLast = false
		g.RequestDirection(q.Next(g, game.OutcomeIdle))

		for !g.Over() && g.Steps() < limit {
			g.AllowTurn()
			out := g.Step()
			dir := q.Next(g, out)
			if !g.Over() {
				g.RequestDirection(dir)
			}
		}
		if !g.Over() {
			stats.Truncated++
		}
		scores = stats.addGame(scores, g.Score(), g.Steps(), g.Died())

		if (episode+1)%500 == 0 {
			log.Printf("training: %d/%d episodes, best score %d", episode+1, episodes, stats.BestScore)
		}
	}

	stats.finish(scores)
	return stats, nil
}

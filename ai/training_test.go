package ai

import (
	"errors"
	"testing"

	"torus-snake/game"
	"torus-snake/game/rng"
	"torus-snake/game/types"
)

func TestTrainPlaysEveryEpisode(t *testing.T) {
	cfg := game.Config{Grid: types.Grid{Width: 8, Height: 8}, InitialLength: 3}
	q := NewQLearning(rng.New(21))

	stats, err := q.Train(cfg, 40, rng.New(22))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 40 {
		t.Fatalf("Games = %d, want 40", stats.Games)
	}
	if stats.Deaths+stats.Truncated > stats.Games {
		t.Fatalf("deaths %d + truncated %d exceed games", stats.Deaths, stats.Truncated)
	}
	if q.GamesPlayed != stats.Games-stats.Truncated {
		t.Fatalf("GamesPlayed = %d, want %d", q.GamesPlayed, stats.Games-stats.Truncated)
	}
	if stats.MedianScore > float64(stats.BestScore) || stats.AverageScore > float64(stats.BestScore) {
		t.Fatalf("summary above best: %+v", stats)
	}
	if stats.TotalSteps == 0 || len(q.QTable) == 0 {
		t.Fatalf("nothing learned: %+v", stats)
	}
}

func TestTrainRejectsInvalidConfig(t *testing.T) {
	q := NewQLearning(rng.New(1))
	_, err := q.Train(game.Config{Grid: types.Grid{Width: 3, Height: 3}, InitialLength: 5}, 1, rng.New(1))
	if !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestTrainingStatsMedian(t *testing.T) {
	tests := []struct {
		scores []int
		median float64
		avg    float64
	}{
		{[]int{5}, 5, 5},
		{[]int{4, 1, 3}, 3, 8.0 / 3},
		{[]int{6, 1, 2, 9}, 4, 4.5},
	}
	for _, tt := range tests {
		var s TrainingStats
		var scores []int
		for _, v := range tt.scores {
			scores = s.addGame(scores, v, 1, true)
		}
		s.finish(scores)
		if s.MedianScore != tt.median || s.AverageScore != tt.avg {
			t.Errorf("%v: median %v avg %v, want %v %v", tt.scores, s.MedianScore, s.AverageScore, tt.median, tt.avg)
		}
		if s.Deaths != len(tt.scores) {
			t.Errorf("%v: Deaths = %d", tt.scores, s.Deaths)
		}
	}
}

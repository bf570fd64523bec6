package telemetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"life3d/internal/sims/life3d"
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord(4, life3d.StepStats{Births: 3, Deaths: 5, Survivors: 17}, 1000)
	assert.Equal(t, Record{
		Generation:   4,
		Live:         20,
		Births:       3,
		Deaths:       5,
		Survivors:    17,
		LiveFraction: 0.02,
	}, rec)
	assert.Zero(t, NewRecord(0, life3d.StepStats{}, 0).LiveFraction)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		live    []int
		mean    float64
		std     float64
		peak    int
		peakAt  int
		extinct int
	}{
		{"single", []int{8}, 8, 0, 8, 0, -1},
		{"growth then extinction", []int{2, 4, 6, 0, 0}, 2.4, math.Sqrt(6.8), 6, 2, 3},
		{"steady", []int{5, 5, 5}, 5, 0, 5, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder()
			for gen, live := range tt.live {
				r.Add(Record{Generation: gen, Live: live, Births: 1, Deaths: 2})
			}
			s := r.Summarize()
			assert.Equal(t, len(tt.live)-1, s.Generations)
			assert.Equal(t, tt.live[len(tt.live)-1], s.FinalLive)
			assert.InDelta(t, tt.mean, s.MeanLive, 1e-9)
			assert.InDelta(t, tt.std, s.StdDevLive, 1e-9)
			assert.Equal(t, tt.peak, s.PeakLive)
			assert.Equal(t, tt.peakAt, s.PeakAt)
			assert.Equal(t, tt.extinct, s.ExtinctAt)
			assert.Equal(t, len(tt.live), s.TotalBirths)
			assert.Equal(t, 2*len(tt.live), s.TotalDeaths)
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := NewRecorder().Summarize()
	assert.Equal(t, Summary{ExtinctAt: -1}, s)
}

package life3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureClamps(t *testing.T) {
	tests := []struct {
		name string
		got  Rules
		want Rules
	}{
		{"in range", Configure(2, 3, 3, 0.2), Rules{2, 3, 3, 0.2}},
		{"density above one", Configure(2, 3, 3, 1.5), Rules{2, 3, 3, 1}},
		{"density below zero", Configure(2, 3, 3, -0.5), Rules{2, 3, 3, 0}},
		{"negative min", Configure(-5, 3, 3, 0.2), Rules{0, 3, 3, 0.2}},
		{"max above neighborhood", Configure(2, 40, 3, 0.2), Rules{2, 26, 3, 0.2}},
		{"birth both sides", Configure(2, 3, 27, 0.2), Rules{2, 3, 26, 0.2}},
		{"negative birth", Configure(2, 3, -1, 0.2), Rules{2, 3, 0, 0.2}},
		{"nan density", Configure(2, 3, 3, math.NaN()), Rules{2, 3, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigureIsIdempotent(t *testing.T) {
	once := Configure(-5, 40, 99, 1.5)
	twice := Configure(once.MinNeighbors, once.MaxNeighbors, once.BirthCount, once.Density)
	assert.Equal(t, once, twice)
	assert.Equal(t, once, once.Clamped())
}

func TestConfigureKeepsInvertedWindow(t *testing.T) {
	r := Configure(9, 4, 5, 0.1)
	assert.Equal(t, 9, r.MinNeighbors)
	assert.Equal(t, 4, r.MaxNeighbors)
}

func TestDefaultRules(t *testing.T) {
	assert.Equal(t, Rules{MinNeighbors: 2, MaxNeighbors: 3, BirthCount: 3, Density: 0.002}, DefaultRules())
}

func TestNextValue(t *testing.T) {
	r := Rules{MinNeighbors: 4, MaxNeighbors: 6, BirthCount: 5}
	tests := []struct {
		name string
		cur  int
		n    int
		want int
	}{
		{"dead below window", 0, 3, 0},
		{"dead in window without birth count", 0, 4, 0},
		{"dead born", 0, 5, 1},
		{"dead above window", 0, 7, 0},
		{"live at lower bound", 1, 4, 16},
		{"live at birth count ages", 1, 5, 16},
		{"live at upper bound", 31, 6, 46},
		{"live starved", 16, 3, 0},
		{"live crowded", 16, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextValue(tt.cur, tt.n, r))
		})
	}
}

func TestNextValueBirthOutsideWindowNeverFires(t *testing.T) {
	r := Rules{MinNeighbors: 4, MaxNeighbors: 6, BirthCount: 2}
	assert.Equal(t, 0, NextValue(0, 2, r))
}

// Package ui draws the side panel of the viewer.
package ui

import (
	"fmt"
	"strconv"

	"life3d/internal/core"
)

// Status is the run state shown above the parameter controls.
type Status struct {
	Generation int
	Live       int
	Volume     int
	Counting   bool
	Autoplay   bool
}

// Lines renders the status block. The live count is only shown while
// counting is switched on.
func (s Status) Lines() []string {
	lines := []string{fmt.Sprintf("Generation %d", s.Generation)}
	if s.Counting {
		pct := 0.0
		if s.Volume > 0 {
			pct = 100 * float64(s.Live) / float64(s.Volume)
		}
		lines = append(lines, fmt.Sprintf("Live %d (%.2f%%)", s.Live, pct))
	} else {
		lines = append(lines, "Live -- (c to count)")
	}
	if s.Autoplay {
		lines = append(lines, "Auto-play on (e to stop)")
	} else {
		lines = append(lines, "Paused (r to run)")
	}
	return lines
}

// adjust returns the value one step away from cur in direction dir, clamped to
// the control bounds, and whether that differs from cur.
func adjust(ctrl core.ParameterControl, cur float64, dir int) (float64, bool) {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := cur + float64(dir)*step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if target > ctrl.Max {
		target = ctrl.Max
	}
	return target, target != cur
}

// formatValue renders a control value with a precision matching its step.
func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

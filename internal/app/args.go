package app

import (
	"fmt"
	"strconv"
	"strings"

	"life3d/internal/sims/life3d"
)

// RuleArgsUsage describes the optional positional arguments.
const RuleArgsUsage = "<density: 0.0-1.0> <min neighbors> <max neighbors> <number to be born>"

// ParseRuleArgs applies the positional overrides to base. They are used only
// when exactly four values are given; any other count leaves base untouched
// and reports applied=false. Values are clamped, but a value that is not a
// number is an error.
func ParseRuleArgs(args []string, base life3d.Rules) (rules life3d.Rules, applied bool, err error) {
	if len(args) != 4 {
		return base, false, nil
	}
	density, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return base, false, fmt.Errorf("density %q: %w", args[0], err)
	}
	counts := make([]int, 3)
	names := []string{"min neighbors", "max neighbors", "birth count"}
	for i, arg := range args[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return base, false, fmt.Errorf("%s %q: %w", names[i], arg, err)
		}
		counts[i] = n
	}
	return life3d.Configure(counts[0], counts[1], counts[2], density), true, nil
}

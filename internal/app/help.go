package app

import (
	"fmt"
	"io"
)

// Command is one key binding of the viewer.
type Command struct {
	Key         string
	Description string
}

// Commands lists the viewer key bindings in help order.
var Commands = []Command{
	{"F2", "re-seeds the volume using the current rules"},
	{"Space", "ages the model 1 generation"},
	{"c", "toggles displaying the number of live cells"},
	{"h", "prints this help"},
	{"Arrows", "rotate the model"},
	{"r", "starts auto-play; the model ages every half second"},
	{"e", "stops auto-play"},
	{"q", "quits the program"},
}

// PrintCommands writes the key binding help to w.
func PrintCommands(w io.Writer) {
	for _, c := range Commands {
		fmt.Fprintf(w, "%-7s %s\n", c.Key, c.Description)
	}
}

// PrintUsage writes the positional argument summary followed by the key help.
func PrintUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [flags] [%s]\n\n", program, RuleArgsUsage)
	PrintCommands(w)
}

package app

import "flag"

// Flags represents the command-line parameters shared by the binaries.
type Flags struct {
	ConfigPath string
	Sim        string
	Seed       int64
	Workers    int

	// Viewer only; bound by BindGUI.
	TPS      int
	Autoplay bool
}

// NewFlags returns Flags populated with sensible defaults.
func NewFlags() *Flags {
	return &Flags{Sim: "life3d", TPS: 60}
}

// Bind attaches the flags shared by the viewer and the headless runner.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "path to config.yaml (empty = use defaults)")
	fs.StringVar(&f.Sim, "sim", f.Sim, "simulation to run")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "RNG seed (0 = use config, then time-based)")
	fs.IntVar(&f.Workers, "workers", f.Workers, "goroutines per generation (0 = use config)")
}

// BindGUI attaches the viewer-only flags.
func (f *Flags) BindGUI(fs *flag.FlagSet) {
	fs.IntVar(&f.TPS, "tps", f.TPS, "frames per second")
	fs.BoolVar(&f.Autoplay, "autoplay", f.Autoplay, "start with auto-play running")
}

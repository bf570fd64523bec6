// Package telemetry records the per-generation census of a run and
// summarizes it.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"life3d/internal/sims/life3d"
)

// Record is one generation of the census.
type Record struct {
	Generation   int     `csv:"generation"`
	Live         int     `csv:"live"`
	Births       int     `csv:"births"`
	Deaths       int     `csv:"deaths"`
	Survivors    int     `csv:"survivors"`
	LiveFraction float64 `csv:"live_fraction"`
}

// NewRecord builds a census record from the transitions of one step.
func NewRecord(generation int, stats life3d.StepStats, volume int) Record {
	r := Record{
		Generation: generation,
		Live:       stats.Live(),
		Births:     stats.Births,
		Deaths:     stats.Deaths,
		Survivors:  stats.Survivors,
	}
	if volume > 0 {
		r.LiveFraction = float64(r.Live) / float64(volume)
	}
	return r
}

// LogValue renders the record for structured logging.
func (r Record) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", r.Generation),
		slog.Int("live", r.Live),
		slog.Int("births", r.Births),
		slog.Int("deaths", r.Deaths),
	)
}

// Summary aggregates a whole run.
type Summary struct {
	Generations int
	FinalLive   int
	PeakLive    int
	PeakAt      int
	MeanLive    float64
	StdDevLive  float64
	TotalBirths int
	TotalDeaths int
	ExtinctAt   int // first generation with no live cells; -1 if never
}

// Recorder accumulates census records in memory.
type Recorder struct {
	records []Record
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Add appends a record.
func (r *Recorder) Add(rec Record) { r.records = append(r.records, rec) }

// Records returns the recorded census in order.
func (r *Recorder) Records() []Record { return r.records }

// Len returns the number of recorded generations.
func (r *Recorder) Len() int { return len(r.records) }

// Summarize computes run statistics over every recorded generation.
func (r *Recorder) Summarize() Summary {
	s := Summary{ExtinctAt: -1}
	if len(r.records) == 0 {
		return s
	}
	live := make([]float64, len(r.records))
	s.PeakLive = -1
	for i, rec := range r.records {
		live[i] = float64(rec.Live)
		s.TotalBirths += rec.Births
		s.TotalDeaths += rec.Deaths
		if rec.Live > s.PeakLive {
			s.PeakLive = rec.Live
			s.PeakAt = rec.Generation
		}
		if rec.Live == 0 && s.ExtinctAt < 0 {
			s.ExtinctAt = rec.Generation
		}
	}
	last := r.records[len(r.records)-1]
	s.Generations = last.Generation
	s.FinalLive = last.Live
	s.MeanLive, s.StdDevLive = stat.MeanStdDev(live, nil)
	if len(live) == 1 {
		s.StdDevLive = 0
	}
	return s
}

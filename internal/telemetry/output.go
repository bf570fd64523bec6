package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CensusFile is the name of the census CSV inside an output directory.
const CensusFile = "census.csv"

// OutputManager streams census records to census.csv in a run directory.
type OutputManager struct {
	dir           string
	censusFile    *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and opens census.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, CensusFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", CensusFile, err)
	}
	return &OutputManager{dir: dir, censusFile: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Path joins name onto the output directory.
func (om *OutputManager) Path(name string) string {
	return filepath.Join(om.Dir(), name)
}

// WriteRecord appends one census record, writing the header first.
func (om *OutputManager) WriteRecord(rec Record) error {
	if om == nil {
		return nil
	}
	if err := writeRecords(om.censusFile, []Record{rec}, !om.headerWritten); err != nil {
		return err
	}
	om.headerWritten = true
	return nil
}

// Close flushes and closes the census file.
func (om *OutputManager) Close() error {
	if om == nil || om.censusFile == nil {
		return nil
	}
	err := om.censusFile.Close()
	om.censusFile = nil
	return err
}

// WriteCSV writes every record with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	return writeRecords(w, records, true)
}

func writeRecords(w io.Writer, records []Record, header bool) error {
	if header {
		if err := gocsv.Marshal(records, w); err != nil {
			return fmt.Errorf("writing census: %w", err)
		}
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w); err != nil {
		return fmt.Errorf("writing census: %w", err)
	}
	return nil
}

// ReadCSV parses records previously written by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading census: %w", err)
	}
	return records, nil
}

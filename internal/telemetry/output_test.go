package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	records := []Record{
		{Generation: 0, Live: 10, Births: 10, LiveFraction: 0.5},
		{Generation: 1, Live: 4, Deaths: 8, Survivors: 2, Births: 2, LiveFraction: 0.2},
	}
	require.NoError(t, WriteCSV(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "generation,live,births,deaths,survivors,live_fraction", lines[0])
	assert.Equal(t, "1,4,2,8,2,0.2", lines[2])

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, back)
}

func TestOutputManagerStreamsOneHeader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	for gen := 0; gen < 3; gen++ {
		require.NoError(t, om.WriteRecord(Record{Generation: gen, Live: gen * 2}))
	}
	require.NoError(t, om.Close())
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, CensusFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "generation"))
	assert.Equal(t, filepath.Join(dir, "config.yaml"), om.Path("config.yaml"))

	back, err := ReadCSV(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.Equal(t, 4, back[2].Live)
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)
	assert.NoError(t, om.WriteRecord(Record{}))
	assert.NoError(t, om.Close())
	assert.Equal(t, "", om.Dir())
}

package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedPoint10 = regexp.MustCompile(`^\d+\.\d{10}$`)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSV_WriteTraceCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	points := []estimator.Point{
		{SampleCount: 100, Estimate: 3.2},
		{SampleCount: 200, Estimate: 3.14},
		{SampleCount: 300, Estimate: 3.1466666667},
	}

	require.NoError(t, WriteTraceCSV(path, points))

	records := readCSV(t, path)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Sample_Count", "Pi_Estimate", "Error"}, records[0])
	assert.Equal(t, []string{"100", "3.2000000000", "0.0584073464"}, records[1])
	assert.Equal(t, []string{"200", "3.1400000000", "0.0015926536"}, records[2])
	for _, row := range records[1:] {
		assert.True(t, fixedPoint10.MatchString(row[1]), "estimate %v is not 10-decimal fixed point", row[1])
		assert.True(t, fixedPoint10.MatchString(row[2]), "error %v is not 10-decimal fixed point", row[2])
	}
}

func TestCSV_WriteResultCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")
	res := estimator.Result{Samples: 1_000_000, PointsInside: 785_398, Pi: 3.141592}

	require.NoError(t, WriteResultCSV(path, res))

	records := readCSV(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Sample_Count", "Pi_Estimate", "Error"}, records[0])
	assert.Equal(t, "1000000", records[1][0])
	assert.Equal(t, "3.1415920000", records[1][1])
}

func TestCSV_WriteFailsOnUnwritablePath(t *testing.T) {
	err := WriteResultCSV(filepath.Join(t.TempDir(), "missing", "result.csv"), estimator.Result{Samples: 1, Pi: 4})
	assert.ErrorContains(t, err, "cannot create output file")
}

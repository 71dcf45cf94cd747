package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestCmd_RunFinalEstimate(t *testing.T) {
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(10_000)).
		Flag(utils.RandomSeedFlag.Name, int64(1)).
		Flag("log", "CRITICAL").
		Build()

	assert.NoError(t, newApp().Run(args))
}

func TestCmd_RunWithProgress(t *testing.T) {
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(1000)).
		Flag(utils.TrackProgressFlag.Name, true).
		Flag(utils.RandomSeedFlag.Name, int64(1)).
		Flag("log", "CRITICAL").
		Build()

	assert.NoError(t, newApp().Run(args))
}

func TestCmd_WritesFinalResultCSV(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "result.csv")
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(1000)).
		Flag(utils.OutputFlag.Name, outputFile).
		Flag(utils.RandomSeedFlag.Name, int64(1)).
		Flag("log", "CRITICAL").
		Build()

	require.NoError(t, newApp().Run(args))

	records := readCSV(t, outputFile)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Sample_Count", "Pi_Estimate", "Error"}, records[0])
	assert.Equal(t, "1000", records[1][0])
}

func TestCmd_WritesIntermediateEstimatesCSV(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "trace.csv")
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(1000)).
		Flag(utils.OutputFlag.Name, outputFile).
		Flag(utils.IntermediateFlag.Name, true).
		Flag(utils.StepSizeFlag.Name, uint64(100)).
		Flag(utils.RandomSeedFlag.Name, int64(1)).
		Flag("log", "CRITICAL").
		Build()

	require.NoError(t, newApp().Run(args))

	records := readCSV(t, outputFile)
	require.Len(t, records, 11) // header plus one row per full step
	assert.Equal(t, "100", records[1][0])
	assert.Equal(t, "1000", records[10][0])
}

func TestCmd_WritesConvergenceChart(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "trace.csv")
	chartFile := filepath.Join(tmpDir, "convergence.html")
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(1000)).
		Flag(utils.OutputFlag.Name, outputFile).
		Flag(utils.IntermediateFlag.Name, true).
		Flag(utils.ChartFileFlag.Name, chartFile).
		Flag(utils.RandomSeedFlag.Name, int64(1)).
		Flag("log", "CRITICAL").
		Build()

	require.NoError(t, newApp().Run(args))

	stat, err := os.Stat(chartFile)
	require.NoError(t, err)
	assert.NotZero(t, stat.Size())
}

func TestCmd_SameSeedProducesSameCSV(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "first.csv")
	second := filepath.Join(tmpDir, "second.csv")

	for _, outputFile := range []string{first, second} {
		args := utils.NewArgs("mcpi").
			Flag(utils.NumSamplesFlag.Name, uint64(5000)).
			Flag(utils.OutputFlag.Name, outputFile).
			Flag(utils.RandomSeedFlag.Name, int64(77)).
			Flag("log", "CRITICAL").
			Build()
		require.NoError(t, newApp().Run(args))
	}

	assert.Equal(t, readCSV(t, first), readCSV(t, second))
}

func TestCmd_IntermediateWithoutOutputUsesDefaultFile(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(1000)).
		Flag(utils.IntermediateFlag.Name, true).
		Flag(utils.StepSizeFlag.Name, uint64(100)).
		Flag(utils.RandomSeedFlag.Name, int64(1)).
		Flag("log", "CRITICAL").
		Build()

	require.NoError(t, newApp().Run(args))

	records := readCSV(t, utils.DefaultOutputFile)
	require.Len(t, records, 11)
	assert.Equal(t, []string{"Sample_Count", "Pi_Estimate", "Error"}, records[0])
}

func TestCmd_RejectsZeroSamples(t *testing.T) {
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(0)).
		Build()

	assert.ErrorContains(t, newApp().Run(args), "must be greater than zero")
}

func TestCmd_RejectsUnknownFlag(t *testing.T) {
	assert.Error(t, newApp().Run([]string{"mcpi", "--no-such-flag"}))
}

func TestCmd_ReportsUnwritableOutputPath(t *testing.T) {
	args := utils.NewArgs("mcpi").
		Flag(utils.NumSamplesFlag.Name, uint64(100)).
		Flag(utils.OutputFlag.Name, filepath.Join(t.TempDir(), "missing", "result.csv")).
		Flag(utils.RandomSeedFlag.Name, int64(1)).
		Flag("log", "CRITICAL").
		Build()

	assert.ErrorContains(t, newApp().Run(args), "cannot create output file")
}

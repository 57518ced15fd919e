package tools

import (
	"path/filepath"
	"testing"

	"github.com/nathanhack/fecsim/benchmarking"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadResults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "results.json")

	missing, err := LoadResults(file)
	require.NoError(t, err)
	require.Nil(t, missing)

	stats := benchmarking.Stats{}
	stats.Detected.Update(1)
	stats.Detected.Update(0)
	data := &SimulationStats{
		TypeInfo: "parity2d",
		RunInfo:  Md5Sum(16, int64(1)),
		Stats:    map[float64]benchmarking.Stats{0.01: stats, 0.5: {}},
	}
	require.NoError(t, SaveResults(file, data))

	loaded, err := LoadResults(file)
	require.NoError(t, err)
	require.Equal(t, data.TypeInfo, loaded.TypeInfo)
	require.Equal(t, data.RunInfo, loaded.RunInfo)
	require.Len(t, loaded.Stats, 2)
	require.Equal(t, 2, loaded.Stats[0.01].Trials())
	require.InDelta(t, 0.5, loaded.Stats[0.01].Detected.Mean, 1e-12)
}

func TestMd5Sum(t *testing.T) {
	require.Equal(t, Md5Sum(16, int64(1)), Md5Sum(16, int64(1)))
	require.NotEqual(t, Md5Sum(16, int64(1)), Md5Sum(16, int64(2)))
}

package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	t.Run("creating a timestamped directory", func(t *testing.T) {
		root := t.TempDir()
		now := time.Date(2024, 3, 1, 12, 30, 0, 123456789, time.UTC)

		w, err := newWriter(root, "compare", now)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(root, "compare", "2024-03-01T12-30-00.123456789Z"), w.Dir())

		info, err := os.Stat(w.Dir())
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})

	t.Run("refusing to reuse a run directory", func(t *testing.T) {
		root := t.TempDir()
		now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

		_, err := newWriter(root, "compare", now)
		require.NoError(t, err)
		_, err = newWriter(root, "compare", now)
		require.Error(t, err, "A second run at the same instant must not overwrite the first")
	})

	t.Run("separating runs within the same second", func(t *testing.T) {
		root := t.TempDir()
		base := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

		first, err := newWriter(root, "compare", base)
		require.NoError(t, err)
		second, err := newWriter(root, "compare", base.Add(time.Millisecond))
		require.NoError(t, err)
		require.NotEqual(t, first.Dir(), second.Dir())
	})
}

func TestWriteRecords(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "compare")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 2, Evaluation: "score"}}))
	require.NoError(t, w.WriteRecords([]Record{{Agent: 1, Action: "A", Value: 3, Nodes: 7}}))

	data, err := os.ReadFile(filepath.Join(w.Dir(), "records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "agent,position,action,value,duration,nodes,cutoffs,prunes\n")
	require.Contains(t, string(data), "1,0,A,3,0s,7,0,0\n")
}

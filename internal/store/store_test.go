package store

import (
	"context"
	"testing"
	"time"

	"housingready/internal/db"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()

	d, err := db.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	return d
}

// steppingClock advances one second per call so ordering by timestamp is
// deterministic.
func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

var testEpoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := newID()
		require.Len(t, id, idSize)
		require.Regexp(t, `^[0-9A-Za-z]+$`, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}

package record

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokelab/airsketch/stroke"
	"github.com/strokelab/airsketch/vmath"
)

func openTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "strokes.db"), "test", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRecordAndReplayInStrokeOrder(t *testing.T) {
	r := openTestRecorder(t)

	r.RecordPoint(stroke.WorldPoint{Seq: 0, Position: vmath.Vec3{X: 1}}, 0.001)
	r.RecordPoint(stroke.WorldPoint{Seq: 1, Position: vmath.Vec3{X: 2}}, 0.001)
	r.RecordPoint(stroke.WorldPoint{Seq: 2, Position: vmath.Vec3{X: 3}}, 0.2)
	require.NoError(t, r.Flush())

	pts, err := r.Points(r.SessionID())
	require.NoError(t, err)
	require.Len(t, pts, 3)
	for i, p := range pts {
		assert.Equal(t, i, p.Seq)
		assert.Equal(t, float64(i+1), p.X)
	}
	assert.Equal(t, 0.2, pts[2].Height)
}

func TestFlushEmptyBufferIsNoop(t *testing.T) {
	r := openTestRecorder(t)
	require.NoError(t, r.Flush())

	pts, err := r.Points(r.SessionID())
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestCloseFlushesPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strokes.db")

	r, err := Open(path, "run-1", zerolog.Nop())
	require.NoError(t, err)
	id := r.SessionID()

	r.RecordPoint(stroke.WorldPoint{Seq: 0, Position: vmath.Vec3{Z: -1}}, 0.001)
	require.NoError(t, r.Close())

	// Reopen the same file: the point survived the close
	r2, err := Open(path, "run-2", zerolog.Nop())
	require.NoError(t, err)
	defer r2.Close()

	pts, err := r2.Points(id)
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.Equal(t, -1.0, pts[0].Z)

	sessions, err := r2.Sessions()
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestSessionsAreIsolated(t *testing.T) {
	r := openTestRecorder(t)
	r.RecordPoint(stroke.WorldPoint{Seq: 0}, 0.001)
	require.NoError(t, r.Flush())

	pts, err := r.Points(r.SessionID() + 999)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

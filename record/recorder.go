package record

import (
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/strokelab/airsketch/stroke"
)

// FlushInterval is how often buffered points are written out.
const FlushInterval = 2 * time.Second

// Recorder buffers deposited points and writes them to SQLite in batches.
// RecordPoint is safe to call from the frame loop; the actual writes happen
// on a background goroutine so the frame budget is never spent on IO
type Recorder struct {
	db      *gorm.DB
	session SketchSession

	mu      sync.Mutex
	pending []StrokePoint

	stop chan struct{}
	done chan struct{}

	log zerolog.Logger
}

// Open creates a recorder backed by the SQLite file at path and starts a new
// session row. An empty path uses a shared in-memory database
func Open(path, label string, log zerolog.Logger) (*Recorder, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        2000,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open stroke database: %w", err)
	}

	if err := db.AutoMigrate(DatabaseModels...); err != nil {
		return nil, fmt.Errorf("failed to migrate stroke schema: %w", err)
	}

	r := &Recorder{
		db:      db,
		session: SketchSession{StartedAt: time.Now(), Label: label},
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		log:     log.With().Str("component", "record").Logger(),
	}
	if err := db.Create(&r.session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session row: %w", err)
	}

	go r.flushLoop()
	r.log.Info().Uint("session", r.session.ID).Str("path", dsn).Msg("recording strokes")
	return r, nil
}

// SessionID returns the database ID of the active session row
func (r *Recorder) SessionID() uint {
	return r.session.ID
}

// RecordPoint buffers one deposited point for the next flush
func (r *Recorder) RecordPoint(p stroke.WorldPoint, height float64) {
	r.mu.Lock()
	r.pending = append(r.pending, StrokePoint{
		SessionID: r.session.ID,
		Seq:       p.Seq,
		X:         p.Position.X,
		Y:         p.Position.Y,
		Z:         p.Position.Z,
		Height:    height,
		CreatedAt: time.Now(),
	})
	r.mu.Unlock()
}

// Flush writes all buffered points immediately
func (r *Recorder) Flush() error {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	if err := r.db.Create(&batch).Error; err != nil {
		return fmt.Errorf("failed to write stroke batch: %w", err)
	}
	r.log.Debug().Int("count", len(batch)).Msg("flushed stroke points")
	return nil
}

// Points returns every point of the session in stroke order
func (r *Recorder) Points(sessionID uint) ([]StrokePoint, error) {
	var pts []StrokePoint
	err := r.db.Where("session_id = ?", sessionID).
		Order("seq ASC").
		Find(&pts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load stroke points: %w", err)
	}
	return pts, nil
}

// Sessions returns every recorded session, oldest first
func (r *Recorder) Sessions() ([]SketchSession, error) {
	var sessions []SketchSession
	err := r.db.Order("started_at ASC").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return sessions, nil
}

// Close flushes the remaining points and stops the background writer
func (r *Recorder) Close() error {
	close(r.stop)
	<-r.done
	return r.Flush()
}

func (r *Recorder) flushLoop() {
	defer close(r.done)
	ticker := time.NewTicker(FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.Flush(); err != nil {
				r.log.Error().Err(err).Msg("periodic flush failed")
			}
		case <-r.stop:
			return
		}
	}
}

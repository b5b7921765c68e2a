// Package record persists deposited stroke points to SQLite so a drawing
// session can be replayed or exported after the fact.
package record

import "time"

// SketchSession is one recorded drawing session.
type SketchSession struct {
	ID        uint `gorm:"primarykey"`
	StartedAt time.Time
	Label     string
}

// StrokePoint is one deposited point, in stroke order within its session.
type StrokePoint struct {
	ID        uint `gorm:"primarykey"`
	SessionID uint `gorm:"index"`
	Seq       int
	X         float64
	Y         float64
	Z         float64
	Height    float64
	CreatedAt time.Time
}

// DatabaseModels lists every model migrated on open.
var DatabaseModels = []interface{}{
	&SketchSession{},
	&StrokePoint{},
}

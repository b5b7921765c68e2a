package parameter

// Fingertip tracking thresholds

const (
	// MinTrackingConfidence is the cutoff below which a tracking result is
	// treated as tracking lost: the reticle hides and the last-known
	// position is discarded
	MinTrackingConfidence = 0.3
)

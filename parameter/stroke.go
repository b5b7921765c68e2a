package parameter

// Stroke marker geometry (world units, meters)

const (
	// MarkerSize is the rendered marker's footprint edge length. The point
	// store derives its minimum separation from half the footprint's
	// bounding-box diagonal
	MarkerSize = 0.01

	// DefaultHeightScale is the near-zero "flat marker" height restored by
	// a height reset
	DefaultHeightScale = 0.001

	// MaxHeightScale bounds interactive height adjustment
	MaxHeightScale = 0.5

	// HeightPerPixel maps vertical fingertip movement to marker height in
	// height-adjust mode
	HeightPerPixel = 0.002
)

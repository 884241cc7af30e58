package parameter

// Viewport & Projection
const (
	// ScreenWidth is the character grid width in cells
	ScreenWidth = 160

	// ScreenHeight is the character grid height in cells
	ScreenHeight = 44

	// CameraDistance pushes the solid along +Z in front of the camera
	CameraDistance = 60.0

	// ProjectionScale (K) scales projected coordinates to screen cells
	ProjectionScale = 40.0

	// AspectCorrectionX compensates for terminal cells being ~2x taller than wide
	AspectCorrectionX = 2.0

	// MinProjectionDepth is the smallest |z'| used for inverse depth
	// Samples closer to the camera plane are clamped to this magnitude
	MinProjectionDepth = 1e-6

	// BackgroundGlyph fills cells with no coverage
	BackgroundGlyph = ' '
)

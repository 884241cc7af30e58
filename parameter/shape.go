package parameter

// Solid Dimensions
const (
	// HalfWidth is the cube half-width, sphere radius and pyramid base half-width
	HalfWidth = 10.0

	// PyramidHeightFactor scales HalfWidth into the pyramid apex height
	PyramidHeightFactor = 1.5
)

// Sample Density
// Finer steps close gaps between projected samples at higher per-frame cost
const (
	// CubeSampleStep is the face parameter increment in object units
	CubeSampleStep = 0.1

	// SphereSampleStep is the theta/phi increment in radians
	// 0.02 rad at radius 10 keeps neighboring samples within a cell at the default scale
	SphereSampleStep = 0.02

	// PyramidSampleStep is the barycentric t1/t2 increment for side faces
	PyramidSampleStep = 0.01

	// PyramidBaseStep is the base grid increment in object units
	PyramidBaseStep = 0.1
)

// Glyphs
const (
	// ShadingRamp orders glyphs from sparse to dense
	ShadingRamp = " .:-=+*#%@"

	// CubeFaceGlyphs are front, back, left, right, top, bottom
	CubeFaceGlyphs = "#@%*+="

	// CubeFaceGlyphsClassic is the alternate face palette of the single-cube renderer
	CubeFaceGlyphsClassic = ".$*#X&"

	// PyramidSideGlyph fills the four triangular faces
	PyramidSideGlyph = '='

	// PyramidBaseGlyph fills the square base
	PyramidBaseGlyph = '-'
)

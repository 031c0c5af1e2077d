// Package dataset defines the shape selector and the named constants used
// by the generators, so no literal appears twice.
package dataset

// Shape selects the generative policy for the sample set.
type Shape string

const (
	ShapeLine     Shape = "line"
	ShapeTriangle Shape = "triangle"
	ShapeSquare   Shape = "square"
	ShapeCircle   Shape = "circle"
	ShapeSpiral   Shape = "spiral"
	ShapeSphere   Shape = "sphere"
	ShapeCube     Shape = "cube"
	// ShapeFeatures is the 1D three-cluster feature-selection set.
	ShapeFeatures Shape = "features"
	ShapeCustom   Shape = "custom"
	ShapeDefault  Shape = "default"
)

//-----------------------------------------------------------------------------
// Cluster geometry
//-----------------------------------------------------------------------------

const (
	// blobOffset is the |coordinate| of every Gaussian blob center.
	blobOffset = 5.0
	// blobSigma is the standard deviation of every Gaussian blob.
	blobSigma = 1.0

	outerRingRadius = 5.0
	innerRingRadius = 2.0
	ringJitter      = 0.5

	// spiralRadius is the final radius of a spiral arm; the arm makes
	// spiralTurns full turns while growing linearly from 0.
	spiralRadius = 5.0
	spiralTurns  = 2.0
	spiralJitter = 0.2

	sphereRadius = 5.0
	sphereJitter = 0.5

	cubeHalfExtent = 5.0
	cubeFaces      = 6
	cubeFaceSigma  = 1.0

	helixHeight = 5.0

	cloudSigma = 5.0

	// paletteLevels is the number of values per colour channel.
	paletteLevels = 256
)

//-----------------------------------------------------------------------------
// Weight initialisation
//-----------------------------------------------------------------------------

const (
	// weightSpread1D is the N(0,·) scale of 1D weights.
	weightSpread1D = 5.0
	// weightSpread2D is the N(0,·) scale of unstructured 2D weights.
	weightSpread2D = 6.0
	// weightOffset1D is the constant display Y of 1D weights.
	weightOffset1D = 0.5

	// gridStep2D is the coordinate spacing between 2D grid-initialised units.
	gridStep2D = 2.0
	// gridExtent3D is the side length of the square the 3D grid covers.
	gridExtent3D = 10.0
	// defaultGridJitter is the N(0,·) jitter applied to grid-initialised units.
	defaultGridJitter = 0.1
)

//-----------------------------------------------------------------------------
// Per-dimension size defaults
//-----------------------------------------------------------------------------

const (
	DefaultDataSize1D  = 100
	DefaultInputSize1D = 20
	DefaultDataSize    = 80
	DefaultInputSize   = 36
)

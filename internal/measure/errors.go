package measure

import "errors"

// Sentinel failure conditions. Each measurement fails independently; callers
// classify with errors.Is and carry on with the rest of the batch.
var (
	// ErrBoundaryMiss reports a ray that left the raster without hitting a
	// boundary pixel. A legitimate outcome, not a malfunction.
	ErrBoundaryMiss = errors.New("ray left the raster without a boundary hit")

	// ErrEmptyRegion reports a cropped region of interest that contains no
	// boundary pixel at all. Distinct from a valid zero-distance result.
	ErrEmptyRegion = errors.New("no boundary pixels in region")

	// ErrContract reports invalid input to a measurement: mismatched
	// per-side hit counts, or a cross-section with depth exceeding width.
	ErrContract = errors.New("measurement contract violated")
)

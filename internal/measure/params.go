package measure

import "math"

// Params tunes the raster search primitives. The defaults reproduce the
// behaviour the measurement tables were calibrated against; Step scales with
// raster resolution if larger working images are used.
type Params struct {
	Step            float64 // ray marching increment, raster units
	Samples         int     // sample count along a segment for extremum search
	PitStep         float64 // angular hill-climb increment, radians
	PitMaxSweep     float64 // per-direction angular sweep cap, radians
	WidthRatioLimit float64 // extremum early-stop ratio against the first sample width; <= 0 disables
}

// DefaultParams returns search parameters for ~600px rasters.
func DefaultParams() Params {
	return Params{
		Step:            0.01,
		Samples:         100,
		PitStep:         0.01,
		PitMaxSweep:     math.Pi,
		WidthRatioLimit: 1.5,
	}
}

// WithStep returns a copy with the marching increment replaced.
func (p Params) WithStep(step float64) Params {
	p.Step = step
	return p
}

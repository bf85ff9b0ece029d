package measure

import (
	"fmt"
	"math"
)

// StadiumPerimeter approximates a body cross-section as a stadium: a
// rectangle capped by two semicircles, with the side-view depth as the
// circle diameter and the front-view width as the overall extent. When
// width equals depth the stadium degenerates to a circle.
//
// The two inputs must come from orthogonal views of the same cross-section;
// width < depth or negative inputs violate the contract and are reported
// rather than turned into a negative perimeter.
func StadiumPerimeter(width, depth float64) (float64, error) {
	if depth < 0 || width < depth {
		return 0, fmt.Errorf("stadium perimeter: width %.2f, depth %.2f: %w", width, depth, ErrContract)
	}
	return 2 * (math.Pi*depth/2 + (width - depth)), nil
}

// CirclePerimeter approximates a near-round cross-section (neck, thigh,
// upper arm) from a single diameter measurement.
func CirclePerimeter(diameter float64) (float64, error) {
	if diameter < 0 {
		return 0, fmt.Errorf("circle perimeter: diameter %.2f: %w", diameter, ErrContract)
	}
	return math.Pi * diameter, nil
}

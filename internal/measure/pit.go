package measure

import (
	"fmt"

	"github.com/Hakuou123/YeadonModelGenerator/internal/silhouette"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// LocatePit finds a concave indentation near anchor, such as an armpit,
// whose boundary distance is a local angular maximum: scanning straight
// down from the shoulder hits the pit wall early, while rotating the ray
// lets it reach deeper into the fold until the boundary pulls back in.
//
// A reference ray is cast along +row from anchor, then the angle is
// hill-climbed in both rotational directions by p.PitStep. Each climb is
// greedy and halts at the first distance decrease (or the first miss), so
// non-monotonic boundary noise can stop it before the global extremum —
// that is the intended behaviour, matched to the measurement tables. Each
// sweep is capped at p.PitMaxSweep radians, and exceeding the cap counts as
// a boundary miss. The deeper of the two retained hits is returned in
// natural x/y order along with its ray distance.
func LocatePit(r *silhouette.Raster, anchor geometry.Point2D, p Params) (geometry.Point2D, float64, error) {
	origin := geometry.PixelFromPoint(anchor)

	first, err := Cast(r, origin, 0, p)
	if err != nil {
		return geometry.Point2D{}, 0, fmt.Errorf("locate pit, reference ray: %w", err)
	}

	climb := func(dir float64) (Hit, error) {
		saved := first
		for i := 1; ; i++ {
			sweep := float64(i) * p.PitStep
			if sweep > p.PitMaxSweep {
				return Hit{}, fmt.Errorf("locate pit: sweep cap %.2f rad exceeded: %w",
					p.PitMaxSweep, ErrBoundaryMiss)
			}
			h, err := Cast(r, origin, dir*sweep, p)
			if err != nil || h.Distance < saved.Distance {
				return saved, nil
			}
			saved = h
		}
	}

	forward, err := climb(+1)
	if err != nil {
		return geometry.Point2D{}, 0, err
	}
	backward, err := climb(-1)
	if err != nil {
		return geometry.Point2D{}, 0, err
	}

	deepest := forward
	if backward.Distance > deepest.Distance {
		deepest = backward
	}
	return deepest.Pixel.ToPoint(), deepest.Distance, nil
}

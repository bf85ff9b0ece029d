package pose

import (
	"fmt"

	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// Assemble maps a raw keypoint array onto named landmarks for the given
// view and computes the derived landmarks the measurement tables need.
func Assemble(view View, raw []geometry.Point2D) (Landmarks, error) {
	if len(raw) < MinKeypoints {
		return nil, fmt.Errorf("assemble %s landmarks: got %d keypoints, need %d", view, len(raw), MinKeypoints)
	}

	lm := Landmarks{}
	for name, idx := range primaryTable(view) {
		lm[name] = raw[idx]
	}

	switch view {
	case ViewFront, ViewFrontUp:
		deriveLeft(lm, raw)
		deriveRight(lm, raw)
	case ViewLeftSide:
		deriveLeft(lm, raw)
	case ViewRightSide:
		deriveRight(lm, raw)
	}
	return lm, nil
}

// deriveLeft fills in the left-side derived landmarks. The lowest front rib
// is approximated as the shoulder/hip midpoint, the nipple as the
// rib/shoulder midpoint, and the umbiculus as a 3:2 rib/hip blend; foot
// arch and ball interpolate between toe and heel.
func deriveLeft(lm Landmarks, raw []geometry.Point2D) {
	shoulder, hip := raw[kpLeftShoulder], raw[kpLeftHip]
	rib := shoulder.Midpoint(hip)
	lm[LeftLowestRib] = rib
	lm[LeftNipple] = rib.Midpoint(shoulder)
	lm[LeftUmbiculus] = geometry.Blend(rib, 3, hip, 2)

	toe, heel := raw[kpLeftToeNail], raw[kpLeftHeel]
	arch := toe.Midpoint(heel)
	lm[LeftArch] = arch
	lm[LeftBall] = toe.Midpoint(arch)

	lm[LeftMidArm] = shoulder.Midpoint(raw[kpLeftElbow])
	lm[LeftKnuckles] = geometry.Centroid(pick(raw, leftKnuckleGroup))
	lm[LeftNails] = geometry.Centroid(pick(raw, leftNailGroup))
}

func deriveRight(lm Landmarks, raw []geometry.Point2D) {
	shoulder, hip := raw[kpRightShoulder], raw[kpRightHip]
	rib := shoulder.Midpoint(hip)
	lm[RightLowestRib] = rib
	lm[RightNipple] = rib.Midpoint(shoulder)
	lm[RightUmbiculus] = geometry.Blend(rib, 3, hip, 2)

	toe, heel := raw[kpRightToeNail], raw[kpRightHeel]
	arch := toe.Midpoint(heel)
	lm[RightArch] = arch
	lm[RightBall] = toe.Midpoint(arch)

	lm[RightMidArm] = shoulder.Midpoint(raw[kpRightElbow])
	lm[RightKnuckles] = geometry.Centroid(pick(raw, rightKnuckleGroup))
	lm[RightNails] = geometry.Centroid(pick(raw, rightNailGroup))
}

func pick(raw []geometry.Point2D, idx []int) []geometry.Point2D {
	out := make([]geometry.Point2D, len(idx))
	for i, j := range idx {
		out[i] = raw[j]
	}
	return out
}

// Package pose names anatomical landmarks and maps raw pose-network
// keypoints onto them, per camera view.
//
// The network itself is an external collaborator behind the Estimator
// interface; this package only owns the index tables and the arithmetic
// that derives secondary landmarks (ribs, nipples, umbiculus, arches) from
// the primary ones.
package pose

import (
	"fmt"

	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// View identifies one of the four camera views a subject is photographed in.
type View int

const (
	ViewFront     View = iota // T-pose, facing the camera
	ViewFrontUp               // facing the camera, arms raised
	ViewLeftSide              // left profile
	ViewRightSide             // right profile
)

func (v View) String() string {
	switch v {
	case ViewFront:
		return "front"
	case ViewFrontUp:
		return "front-up"
	case ViewLeftSide:
		return "left-side"
	case ViewRightSide:
		return "right-side"
	default:
		return "unknown"
	}
}

// Landmark names. Primary names come straight from the keypoint tables;
// derived names are computed by Assemble.
const (
	Nose             = "nose"
	LeftEar          = "left_ear"
	RightEar         = "right_ear"
	LeftShoulder     = "left_shoulder"
	RightShoulder    = "right_shoulder"
	LeftElbow        = "left_elbow"
	RightElbow       = "right_elbow"
	LeftWrist        = "left_wrist"
	RightWrist       = "right_wrist"
	LeftHip          = "left_hip"
	RightHip         = "right_hip"
	LeftKnee         = "left_knee"
	RightKnee        = "right_knee"
	LeftAnkle        = "left_ankle"
	RightAnkle       = "right_ankle"
	LeftThumbBase    = "left_base_of_thumb"
	RightThumbBase   = "right_base_of_thumb"
	LeftHeel         = "left_heel"
	RightHeel        = "right_heel"
	LeftToeNail      = "left_toe_nail"
	RightToeNail     = "right_toe_nail"
	LeftKnuckles     = "left_knuckles"
	RightKnuckles    = "right_knuckles"
	LeftNails        = "left_nails"
	RightNails       = "right_nails"
	LeftLowestRib    = "left_lowest_front_rib"
	RightLowestRib   = "right_lowest_front_rib"
	LeftNipple       = "left_nipple"
	RightNipple      = "right_nipple"
	LeftUmbiculus    = "left_umbiculus"
	RightUmbiculus   = "right_umbiculus"
	LeftArch         = "left_arch"
	RightArch        = "right_arch"
	LeftBall         = "left_ball"
	RightBall        = "right_ball"
	LeftMidArm       = "left_mid_arm"
	RightMidArm      = "right_mid_arm"

	// Raster-derived landmarks, located by the measurement layer from the
	// silhouette rather than by the pose network.
	TopOfHead       = "top_of_head"
	LeftAcromion    = "left_acromion"
	RightAcromion   = "right_acromion"
	LeftMaxForearm  = "left_maximum_forearm"
	RightMaxForearm = "right_maximum_forearm"
	LeftMaxCalf     = "left_maximum_calf"
	RightMaxCalf    = "right_maximum_calf"
	LeftCrotch      = "left_crotch"
	RightCrotch     = "right_crotch"
	LeftMidThigh    = "left_mid_thigh"
	RightMidThigh   = "right_mid_thigh"
)

// Landmarks maps landmark names to image positions for one view.
type Landmarks map[string]geometry.Point2D

// Point returns a named landmark, or an error naming what is missing so a
// failed measurement can report its cause.
func (l Landmarks) Point(name string) (geometry.Point2D, error) {
	p, ok := l[name]
	if !ok {
		return geometry.Point2D{}, fmt.Errorf("landmark %q not present in view", name)
	}
	return p, nil
}

// Has reports whether every named landmark is present.
func (l Landmarks) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := l[name]; !ok {
			return false
		}
	}
	return true
}

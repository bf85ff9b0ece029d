package pose

// Keypoint indices in the COCO-WholeBody ordering the pose network emits.
// Body keypoints occupy 0..22; hand keypoints start at 91 (left) and 112
// (right), four indices per finger from base to tip.
const (
	kpNose           = 0
	kpLeftEar        = 3
	kpRightEar       = 4
	kpLeftShoulder   = 5
	kpRightShoulder  = 6
	kpLeftElbow      = 7
	kpRightElbow     = 8
	kpLeftWrist      = 9
	kpRightWrist     = 10
	kpLeftHip        = 11
	kpRightHip       = 12
	kpLeftKnee       = 13
	kpRightKnee      = 14
	kpLeftAnkle      = 15
	kpRightAnkle     = 16
	kpLeftToeNail    = 17
	kpLeftHeel       = 19
	kpRightToeNail   = 20
	kpRightHeel      = 22
	kpLeftThumbBase  = 93
	kpRightThumbBase = 114

	// MinKeypoints is the smallest raw keypoint array Assemble accepts.
	MinKeypoints = 132
)

// Knuckle and nail groups: the first knuckle and the fingertip of the
// index, middle and ring fingers. Their centroid stands in for "the
// knuckles" and "the nails" of a flat hand.
var (
	leftKnuckleGroup  = []int{96, 100, 104}
	rightKnuckleGroup = []int{117, 121, 125}
	leftNailGroup     = []int{98, 102, 106}
	rightNailGroup    = []int{119, 123, 127}
)

// primaryTable lists the raw keypoints visible in a view. Profile views
// only carry the camera-side half of the body.
func primaryTable(view View) map[string]int {
	front := map[string]int{
		Nose:           kpNose,
		LeftEar:        kpLeftEar,
		RightEar:       kpRightEar,
		LeftShoulder:   kpLeftShoulder,
		RightShoulder:  kpRightShoulder,
		LeftElbow:      kpLeftElbow,
		RightElbow:     kpRightElbow,
		LeftWrist:      kpLeftWrist,
		RightWrist:     kpRightWrist,
		LeftHip:        kpLeftHip,
		RightHip:       kpRightHip,
		LeftKnee:       kpLeftKnee,
		RightKnee:      kpRightKnee,
		LeftAnkle:      kpLeftAnkle,
		RightAnkle:     kpRightAnkle,
		LeftThumbBase:  kpLeftThumbBase,
		RightThumbBase: kpRightThumbBase,
		LeftHeel:       kpLeftHeel,
		RightHeel:      kpRightHeel,
		LeftToeNail:    kpLeftToeNail,
		RightToeNail:   kpRightToeNail,
	}

	switch view {
	case ViewFront, ViewFrontUp:
		return front
	case ViewLeftSide:
		return map[string]int{
			Nose:          kpNose,
			LeftEar:       kpLeftEar,
			LeftShoulder:  kpLeftShoulder,
			LeftElbow:     kpLeftElbow,
			LeftWrist:     kpLeftWrist,
			LeftHip:       kpLeftHip,
			LeftKnee:      kpLeftKnee,
			LeftAnkle:     kpLeftAnkle,
			LeftThumbBase: kpLeftThumbBase,
			LeftHeel:      kpLeftHeel,
			LeftToeNail:   kpLeftToeNail,
		}
	case ViewRightSide:
		return map[string]int{
			Nose:           kpNose,
			RightEar:       kpRightEar,
			RightShoulder:  kpRightShoulder,
			RightElbow:     kpRightElbow,
			RightWrist:     kpRightWrist,
			RightHip:       kpRightHip,
			RightKnee:      kpRightKnee,
			RightAnkle:     kpRightAnkle,
			RightThumbBase: kpRightThumbBase,
			RightHeel:      kpRightHeel,
			RightToeNail:   kpRightToeNail,
		}
	default:
		return nil
	}
}

package model

import (
	"github.com/Hakuou123/YeadonModelGenerator/internal/measure"
	"github.com/Hakuou123/YeadonModelGenerator/internal/pose"
)

// job is one independent labeled measurement.
type job struct {
	label string
	run   func() (Value, error)
}

// jobs builds the full measurement table. Every job is a pure function of
// the subject's landmarks and rasters, so the set can run in any order and
// in parallel.
func (s *Subject) jobs(p measure.Params) []job {
	front := &s.Front
	frontUp := &s.FrontUp
	rightSide := &s.RightSide

	var jobs []job
	add := func(label string, run func() (Value, error)) {
		jobs = append(jobs, job{label: label, run: run})
	}

	point := func(label string, v *View, name string) {
		add(label, func() (Value, error) {
			pt, err := v.point(name)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindPoint, Point: pt}, nil
		})
	}
	length := func(label string, v *View, a, b string, scale float64) {
		add(label, func() (Value, error) {
			d, err := v.span(a, b)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindLength, Scalar: d * scale}, nil
		})
	}
	height := func(label string, v *View, a, b string) {
		add(label, func() (Value, error) {
			d, err := v.drop(a, b)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindLength, Scalar: d}, nil
		})
	}
	widthLine := func(label string, v *View, a, b string) {
		add(label, func() (Value, error) {
			w, err := v.widthAcross(a, b, p)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindWidth, Scalar: w}, nil
		})
	}
	widthStart := func(label string, v *View, a, b string) {
		add(label, func() (Value, error) {
			w, err := v.widthFrom(a, b, p)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindWidth, Scalar: w}, nil
		})
	}
	spanWidth := func(label string, v *View, a, b string) {
		add(label, func() (Value, error) {
			w, err := v.span(a, b)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindWidth, Scalar: w}, nil
		})
	}
	// circle perimeter from a single local width
	circleFrom := func(label string, v *View, a, b string) {
		add(label, func() (Value, error) {
			w, err := v.widthFrom(a, b, p)
			if err != nil {
				return Value{}, err
			}
			perim, err := measure.CirclePerimeter(w)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindPerimeter, Scalar: perim}, nil
		})
	}
	// circle perimeter from a landmark-to-landmark distance
	circleSpan := func(label string, v *View, a, b string) {
		add(label, func() (Value, error) {
			d, err := v.span(a, b)
			if err != nil {
				return Value{}, err
			}
			perim, err := measure.CirclePerimeter(d)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindPerimeter, Scalar: perim}, nil
		})
	}
	// stadium perimeter from a frontal across-line width and a profile depth
	stadiumAcross := func(label string, fa, fb string, depthView *View, da, db string) {
		add(label, func() (Value, error) {
			width, err := front.widthAcross(fa, fb, p)
			if err != nil {
				return Value{}, err
			}
			depth, err := depthView.widthFrom(da, db, p)
			if err != nil {
				return Value{}, err
			}
			perim, err := measure.StadiumPerimeter(width, depth)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindPerimeter, Scalar: perim}, nil
		})
	}
	// stadium perimeter from two single-anchor widths in orthogonal views
	stadiumFrom := func(label string, wv *View, wa, wb string, dv *View, da, db string) {
		add(label, func() (Value, error) {
			width, err := wv.widthFrom(wa, wb, p)
			if err != nil {
				return Value{}, err
			}
			depth, err := dv.widthFrom(da, db, p)
			if err != nil {
				return Value{}, err
			}
			perim, err := measure.StadiumPerimeter(width, depth)
			if err != nil {
				return Value{}, err
			}
			return Value{Kind: KindPerimeter, Scalar: perim}, nil
		})
	}

	// Torso and head landmark points, hip upward.
	point("Ls0", front, pose.LeftHip)
	point("Ls1", front, pose.LeftUmbiculus)
	point("Ls2", front, pose.LeftLowestRib)
	point("Ls3", front, pose.LeftNipple)
	point("Ls4", front, pose.LeftShoulder)
	point("Ls5", front, pose.LeftAcromion)
	point("Ls6", front, pose.Nose)
	point("Ls7", front, pose.LeftEar)
	point("Ls8", front, pose.TopOfHead)

	// Arm landmark points, shoulder outward.
	point("La0", front, pose.LeftShoulder)
	point("La1", front, pose.LeftMidArm)
	point("La2", front, pose.LeftElbow)
	point("La3", front, pose.LeftMaxForearm)
	point("La4", front, pose.LeftWrist)
	point("La5", front, pose.LeftThumbBase)
	point("La6", front, pose.LeftKnuckles)
	point("La7", front, pose.LeftNails)
	point("Lb0", front, pose.RightShoulder)
	point("Lb1", front, pose.RightMidArm)
	point("Lb2", front, pose.RightElbow)
	point("Lb3", front, pose.RightMaxForearm)
	point("Lb4", front, pose.RightWrist)
	point("Lb5", front, pose.RightThumbBase)
	point("Lb6", front, pose.RightKnuckles)
	point("Lb7", front, pose.RightNails)

	// Leg landmark points, hip downward.
	point("Lj0", front, pose.LeftHip)
	point("Lj1", front, pose.LeftCrotch)
	point("Lj2", front, pose.LeftMidThigh)
	point("Lj3", front, pose.LeftKnee)
	point("Lj4", front, pose.LeftMaxCalf)
	point("Lj5", front, pose.LeftAnkle)
	point("Lj6", front, pose.LeftHeel)
	point("Lj7", front, pose.LeftArch)
	point("Lj8", front, pose.LeftBall)
	point("Lj9", front, pose.LeftToeNail)
	point("Lk0", front, pose.RightHip)
	point("Lk1", front, pose.RightCrotch)
	point("Lk2", front, pose.RightMidThigh)
	point("Lk3", front, pose.RightKnee)
	point("Lk4", front, pose.RightMaxCalf)
	point("Lk5", front, pose.RightAnkle)
	point("Lk6", front, pose.RightHeel)
	point("Lk7", front, pose.RightArch)
	point("Lk8", front, pose.RightBall)
	point("Lk9", front, pose.RightToeNail)

	// Torso level heights above the hip, and head heights above the
	// acromion.
	height("Ls1L", front, pose.LeftUmbiculus, pose.LeftHip)
	height("Ls2L", front, pose.LeftLowestRib, pose.LeftHip)
	height("Ls3L", front, pose.LeftNipple, pose.LeftHip)
	height("Ls4L", front, pose.LeftShoulder, pose.LeftHip)
	height("Ls5L", front, pose.LeftAcromion, pose.LeftHip)
	height("Ls6L", front, pose.LeftAcromion, pose.Nose)
	height("Ls7L", front, pose.LeftAcromion, pose.LeftEar)
	height("Ls8L", front, pose.LeftAcromion, pose.TopOfHead)

	// Arm segment lengths from the shoulder, then hand lengths from the
	// wrist. Mid-arm is by construction half the shoulder-elbow span.
	length("La1L", front, pose.LeftShoulder, pose.LeftElbow, 0.5)
	length("La2L", front, pose.LeftShoulder, pose.LeftElbow, 1)
	length("La3L", front, pose.LeftShoulder, pose.LeftMaxForearm, 1)
	length("La4L", front, pose.LeftShoulder, pose.LeftWrist, 1)
	length("La5L", front, pose.LeftWrist, pose.LeftThumbBase, 1)
	length("La6L", front, pose.LeftWrist, pose.LeftKnuckles, 1)
	length("La7L", front, pose.LeftWrist, pose.LeftNails, 1)
	length("Lb1L", front, pose.RightShoulder, pose.RightElbow, 0.5)
	length("Lb2L", front, pose.RightShoulder, pose.RightElbow, 1)
	length("Lb3L", front, pose.RightShoulder, pose.RightMaxForearm, 1)
	length("Lb4L", front, pose.RightShoulder, pose.RightWrist, 1)
	length("Lb5L", front, pose.RightWrist, pose.RightThumbBase, 1)
	length("Lb6L", front, pose.RightWrist, pose.RightKnuckles, 1)
	length("Lb7L", front, pose.RightWrist, pose.RightNails, 1)

	// Leg segment lengths from the hip, then foot lengths from the ankle.
	length("Lj1L", front, pose.LeftHip, pose.LeftCrotch, 1)
	length("Lj2L", front, pose.LeftHip, pose.LeftKnee, 0.5)
	length("Lj3L", front, pose.LeftHip, pose.LeftKnee, 1)
	length("Lj4L", front, pose.LeftHip, pose.LeftMaxCalf, 1)
	length("Lj5L", front, pose.LeftHip, pose.LeftAnkle, 1)
	length("Lj6L", front, pose.LeftAnkle, pose.LeftHeel, 1)
	length("Lj7L", front, pose.LeftAnkle, pose.LeftArch, 1)
	length("Lj8L", front, pose.LeftAnkle, pose.LeftBall, 1)
	length("Lj9L", front, pose.LeftAnkle, pose.LeftToeNail, 1)
	length("Lk1L", front, pose.RightHip, pose.RightCrotch, 1)
	length("Lk2L", front, pose.RightHip, pose.RightKnee, 0.5)
	length("Lk3L", front, pose.RightHip, pose.RightKnee, 1)
	length("Lk4L", front, pose.RightHip, pose.RightMaxCalf, 1)
	length("Lk5L", front, pose.RightHip, pose.RightAnkle, 1)
	length("Lk6L", front, pose.RightAnkle, pose.RightHeel, 1)
	length("Lk7L", front, pose.RightAnkle, pose.RightArch, 1)
	length("Lk8L", front, pose.RightAnkle, pose.RightBall, 1)
	length("Lk9L", front, pose.RightAnkle, pose.RightToeNail, 1)

	// Torso cross-section widths between the left/right landmark pairs.
	widthLine("Ls0w", front, pose.LeftHip, pose.RightHip)
	widthLine("Ls1w", front, pose.LeftUmbiculus, pose.RightUmbiculus)
	widthLine("Ls2w", front, pose.LeftLowestRib, pose.RightLowestRib)
	widthLine("Ls3w", front, pose.LeftNipple, pose.RightNipple)
	spanWidth("Ls4w", front, pose.LeftShoulder, pose.RightShoulder)

	// Wrist and hand widths, measured perpendicular to the forearm/hand axis.
	widthStart("La4w", front, pose.LeftWrist, pose.LeftElbow)
	widthStart("La5w", front, pose.LeftThumbBase, pose.LeftWrist)
	widthStart("La6w", front, pose.LeftKnuckles, pose.LeftWrist)
	widthStart("La7w", front, pose.LeftNails, pose.LeftWrist)
	widthStart("Lb4w", front, pose.RightWrist, pose.RightElbow)
	widthStart("Lb5w", front, pose.RightThumbBase, pose.RightWrist)
	widthStart("Lb6w", front, pose.RightKnuckles, pose.RightWrist)
	widthStart("Lb7w", front, pose.RightNails, pose.RightWrist)

	// Torso stadium perimeters: frontal width plus right-profile depth.
	stadiumAcross("Ls0p", pose.RightHip, pose.LeftHip, rightSide, pose.RightHip, pose.RightUmbiculus)
	stadiumAcross("Ls1p", pose.RightUmbiculus, pose.LeftUmbiculus, rightSide, pose.RightUmbiculus, pose.RightHip)
	stadiumAcross("Ls2p", pose.RightLowestRib, pose.LeftLowestRib, rightSide, pose.RightLowestRib, pose.RightHip)
	stadiumAcross("Ls3p", pose.RightNipple, pose.LeftNipple, rightSide, pose.RightNipple, pose.RightHip)

	// Shoulder, head and neck girths are treated as circular.
	circleSpan("Ls5p", front, pose.LeftAcromion, pose.RightAcromion)
	circleFrom("Ls6p", front, pose.Nose, pose.TopOfHead)
	circleSpan("Ls7p", front, pose.LeftEar, pose.RightEar)

	// Arm girths: circular through the elbow, stadium at wrist and hand
	// where the arms-up view supplies the orthogonal depth.
	circleFrom("La1p", front, pose.LeftMidArm, pose.LeftElbow)
	circleFrom("La2p", front, pose.LeftElbow, pose.LeftMidArm)
	circleFrom("La3p", front, pose.LeftMaxForearm, pose.LeftElbow)
	stadiumFrom("La4p", front, pose.LeftWrist, pose.LeftElbow, frontUp, pose.LeftWrist, pose.LeftElbow)
	stadiumFrom("La6p", front, pose.LeftKnuckles, pose.LeftWrist, frontUp, pose.LeftKnuckles, pose.LeftWrist)
	stadiumFrom("La7p", front, pose.LeftNails, pose.LeftWrist, frontUp, pose.LeftNails, pose.LeftWrist)
	circleFrom("Lb1p", front, pose.RightMidArm, pose.RightElbow)
	circleFrom("Lb2p", front, pose.RightElbow, pose.RightMidArm)
	circleFrom("Lb3p", front, pose.RightMaxForearm, pose.RightElbow)
	stadiumFrom("Lb4p", front, pose.RightWrist, pose.RightElbow, frontUp, pose.RightWrist, pose.RightElbow)
	stadiumFrom("Lb6p", front, pose.RightKnuckles, pose.RightWrist, frontUp, pose.RightKnuckles, pose.RightWrist)
	stadiumFrom("Lb7p", front, pose.RightNails, pose.RightWrist, frontUp, pose.RightNails, pose.RightWrist)

	// Leg girths, circular through the thigh.
	circleFrom("Lj1p", front, pose.LeftCrotch, pose.LeftKnee)
	circleFrom("Lj2p", front, pose.LeftMidThigh, pose.LeftKnee)
	circleFrom("Lj3p", front, pose.LeftKnee, pose.LeftHip)
	circleFrom("Lk1p", front, pose.RightCrotch, pose.RightKnee)
	circleFrom("Lk2p", front, pose.RightMidThigh, pose.RightKnee)
	circleFrom("Lk3p", front, pose.RightKnee, pose.RightHip)

	return jobs
}

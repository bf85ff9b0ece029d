package model

import (
	"fmt"

	"github.com/Hakuou123/YeadonModelGenerator/internal/measure"
	"github.com/Hakuou123/YeadonModelGenerator/internal/pose"
	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// locateFeatures finds the raster-derived landmarks of one frontal view and
// adds them to its landmark set. Each feature fails independently; failures
// are recorded under "view:feature" keys and downstream measurements that
// need the feature then fail with a missing-landmark error.
func locateFeatures(v *View, view pose.View, p measure.Params, res *Results) {
	record := func(name string, pt geometry.Point2D, err error) {
		if err != nil {
			res.Errors[view.String()+":"+name] = err
			return
		}
		v.Landmarks[name] = pt
	}

	crown, err := measure.TopOfHead(v.Edges)
	record(pose.TopOfHead, crown, err)

	locateAcromion := func(name string, side measure.Side, earName, shoulderName string) {
		var pt geometry.Point2D
		ear, shoulder, err := points2(v.Landmarks, earName, shoulderName)
		if err == nil {
			pt, err = measure.Acromion(v.Edges, side, ear, shoulder)
		}
		record(name, pt, err)
	}
	locateAcromion(pose.LeftAcromion, measure.SideLeft, pose.LeftEar, pose.LeftShoulder)
	locateAcromion(pose.RightAcromion, measure.SideRight, pose.RightEar, pose.RightShoulder)

	locateExtremum := func(name, startName, endName string) {
		var pt geometry.Point2D
		start, end, err := points2(v.Landmarks, startName, endName)
		if err == nil {
			pt, err = measure.LocateExtremum(v.Edges, start, end, p)
		}
		record(name, pt, err)
	}
	locateExtremum(pose.LeftMaxForearm, pose.LeftWrist, pose.LeftElbow)
	locateExtremum(pose.RightMaxForearm, pose.RightWrist, pose.RightElbow)
	locateExtremum(pose.LeftMaxCalf, pose.LeftAnkle, pose.LeftKnee)
	locateExtremum(pose.RightMaxCalf, pose.RightAnkle, pose.RightKnee)

	if rightHip, leftHip, leftKnee, err := points3(v.Landmarks,
		pose.RightHip, pose.LeftHip, pose.LeftKnee); err != nil {
		res.Errors[view.String()+":crotch"] = err
	} else {
		right, left, err := measure.CrotchPoints(v.Edges, rightHip, leftHip, leftKnee)
		record(pose.RightCrotch, right, err)
		record(pose.LeftCrotch, left, err)
	}

	// Mid-thigh halves the knee-to-crotch segment, so it only exists once
	// the crotch has been found.
	midThigh := func(name, kneeName, crotchName string) {
		var pt geometry.Point2D
		knee, crotch, err := points2(v.Landmarks, kneeName, crotchName)
		if err == nil {
			pt = knee.Midpoint(crotch)
		}
		record(name, pt, err)
	}
	midThigh(pose.LeftMidThigh, pose.LeftKnee, pose.LeftCrotch)
	midThigh(pose.RightMidThigh, pose.RightKnee, pose.RightCrotch)
}

func points2(lm pose.Landmarks, a, b string) (geometry.Point2D, geometry.Point2D, error) {
	pa, err := lm.Point(a)
	if err != nil {
		return geometry.Point2D{}, geometry.Point2D{}, err
	}
	pb, err := lm.Point(b)
	if err != nil {
		return geometry.Point2D{}, geometry.Point2D{}, err
	}
	return pa, pb, nil
}

func points3(lm pose.Landmarks, a, b, c string) (geometry.Point2D, geometry.Point2D, geometry.Point2D, error) {
	pa, pb, err := points2(lm, a, b)
	if err != nil {
		return geometry.Point2D{}, geometry.Point2D{}, geometry.Point2D{}, err
	}
	pc, err := lm.Point(c)
	if err != nil {
		return geometry.Point2D{}, geometry.Point2D{}, geometry.Point2D{}, err
	}
	return pa, pb, pc, nil
}

// Per-view measurement helpers. Each resolves its landmarks first so a
// missing upstream feature surfaces as a named error, not a zero.

func (v *View) widthAcross(a, b string, p measure.Params) (float64, error) {
	pa, pb, err := points2(v.Landmarks, a, b)
	if err != nil {
		return 0, err
	}
	return measure.WidthAcrossLine(v.Edges, pa, pb, p)
}

func (v *View) widthFrom(a, b string, p measure.Params) (float64, error) {
	pa, pb, err := points2(v.Landmarks, a, b)
	if err != nil {
		return 0, err
	}
	return measure.WidthFromStart(v.Edges, pa, pb, p)
}

// span is the straight-line distance between two landmarks.
func (v *View) span(a, b string) (float64, error) {
	pa, pb, err := points2(v.Landmarks, a, b)
	if err != nil {
		return 0, err
	}
	return pa.Distance(pb), nil
}

// drop is the vertical separation between two landmarks.
func (v *View) drop(a, b string) (float64, error) {
	pa, pb, err := points2(v.Landmarks, a, b)
	if err != nil {
		return 0, err
	}
	if pa.Y > pb.Y {
		return pa.Y - pb.Y, nil
	}
	return pb.Y - pa.Y, nil
}

func (v *View) point(name string) (geometry.Point2D, error) {
	pt, err := v.Landmarks.Point(name)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("view landmark: %w", err)
	}
	return pt, nil
}

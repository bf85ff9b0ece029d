package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

// syntheticKeypoints builds a raw array whose coordinates encode the index,
// so every mapping and derived formula can be checked exactly.
func syntheticKeypoints() []geometry.Point2D {
	raw := make([]geometry.Point2D, MinKeypoints)
	for i := range raw {
		raw[i] = geometry.NewPoint2D(float64(i), float64(2*i))
	}
	return raw
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("rejects short keypoint arrays", func(t *testing.T) {
		t.Parallel()
		_, err := Assemble(ViewFront, make([]geometry.Point2D, 23))
		require.Error(t, err)
	})

	t.Run("front view maps both body halves", func(t *testing.T) {
		t.Parallel()
		lm, err := Assemble(ViewFront, syntheticKeypoints())
		require.NoError(t, err)

		assert.Equal(t, geometry.NewPoint2D(11, 22), lm[LeftHip])
		assert.Equal(t, geometry.NewPoint2D(12, 24), lm[RightHip])
		assert.Equal(t, geometry.NewPoint2D(5, 10), lm[LeftShoulder])
		assert.Equal(t, geometry.NewPoint2D(0, 0), lm[Nose])
		assert.True(t, lm.Has(LeftKnuckles, RightKnuckles, LeftUmbiculus, RightUmbiculus))
	})

	t.Run("profile views carry only the camera side", func(t *testing.T) {
		t.Parallel()
		lm, err := Assemble(ViewLeftSide, syntheticKeypoints())
		require.NoError(t, err)

		assert.True(t, lm.Has(LeftShoulder, LeftLowestRib, LeftArch))
		_, err = lm.Point(RightShoulder)
		assert.Error(t, err)
		_, err = lm.Point(RightLowestRib)
		assert.Error(t, err)

		lm, err = Assemble(ViewRightSide, syntheticKeypoints())
		require.NoError(t, err)
		assert.True(t, lm.Has(RightShoulder, RightLowestRib))
		_, err = lm.Point(LeftShoulder)
		assert.Error(t, err)
	})

	t.Run("derived trunk landmarks", func(t *testing.T) {
		t.Parallel()
		lm, err := Assemble(ViewFront, syntheticKeypoints())
		require.NoError(t, err)

		// rib is the shoulder/hip midpoint, nipple halves rib and shoulder,
		// umbiculus blends rib and hip 3:2
		assert.Equal(t, geometry.NewPoint2D(8, 16), lm[LeftLowestRib])
		assert.Equal(t, geometry.NewPoint2D(6.5, 13), lm[LeftNipple])
		assert.InDelta(t, 9.2, lm[LeftUmbiculus].X, 1e-12)
		assert.InDelta(t, 18.4, lm[LeftUmbiculus].Y, 1e-12)
	})

	t.Run("derived limb landmarks", func(t *testing.T) {
		t.Parallel()
		lm, err := Assemble(ViewFront, syntheticKeypoints())
		require.NoError(t, err)

		assert.Equal(t, geometry.NewPoint2D(18, 36), lm[LeftArch])
		assert.Equal(t, geometry.NewPoint2D(17.5, 35), lm[LeftBall])
		assert.Equal(t, geometry.NewPoint2D(6, 12), lm[LeftMidArm])
		assert.Equal(t, geometry.NewPoint2D(100, 200), lm[LeftKnuckles])
		assert.Equal(t, geometry.NewPoint2D(102, 204), lm[LeftNails])
		assert.Equal(t, geometry.NewPoint2D(121, 242), lm[RightKnuckles])
	})
}

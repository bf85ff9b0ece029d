package pose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hakuou123/YeadonModelGenerator/pkg/geometry"
)

func TestFileEstimator(t *testing.T) {
	t.Parallel()

	writeKeypoints := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "keypoints.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("parses exported pairs in order", func(t *testing.T) {
		t.Parallel()
		path := writeKeypoints(t, `[[1.5, 2.5], [3, 4], [0, 0]]`)

		pts, err := NewFileEstimator(path).Infer(nil)
		require.NoError(t, err)
		require.Len(t, pts, 3)
		assert.Equal(t, geometry.NewPoint2D(1.5, 2.5), pts[0])
		assert.Equal(t, geometry.NewPoint2D(3, 4), pts[1])
	})

	t.Run("rejects pairs with missing coordinates", func(t *testing.T) {
		t.Parallel()
		path := writeKeypoints(t, `[[1, 2], [3]]`)

		_, err := NewFileEstimator(path).Infer(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keypoint 1")
	})

	t.Run("propagates read and parse failures", func(t *testing.T) {
		t.Parallel()
		_, err := NewFileEstimator(filepath.Join(t.TempDir(), "missing.json")).Infer(nil)
		require.Error(t, err)

		path := writeKeypoints(t, `{"not": "an array"}`)
		_, err = NewFileEstimator(path).Infer(nil)
		require.Error(t, err)
	})
}

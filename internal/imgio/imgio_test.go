package imgio

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownscale(t *testing.T) {
	t.Parallel()

	t.Run("caps the larger dimension", func(t *testing.T) {
		t.Parallel()
		img := image.NewRGBA(image.Rect(0, 0, 1200, 600))
		out := Downscale(img, 600)
		assert.Equal(t, 600, out.Bounds().Dx())
		assert.Equal(t, 300, out.Bounds().Dy())
	})

	t.Run("portrait orientation scales by height", func(t *testing.T) {
		t.Parallel()
		img := image.NewRGBA(image.Rect(0, 0, 600, 1200))
		out := Downscale(img, 600)
		assert.Equal(t, 300, out.Bounds().Dx())
		assert.Equal(t, 600, out.Bounds().Dy())
	})

	t.Run("never upscales", func(t *testing.T) {
		t.Parallel()
		img := image.NewRGBA(image.Rect(0, 0, 100, 50))
		out := Downscale(img, 600)
		assert.Same(t, image.Image(img), out)
	})
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	src.SetRGBA(2, 3, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "img.png")
	require.NoError(t, SavePNG(path, src))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), got.Bounds())
	r, _, _, _ := got.At(2, 3).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}

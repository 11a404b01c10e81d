package mixer

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

func TestBlendRect(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	t.Run("outside bounds", func(t *testing.T) {
		img := solid(10, 10, white)
		orig := imaging.Clone(img)

		BlendRect(img, image.Rect(20, 20, 30, 30), color.NRGBA{A: 255})
		BlendRect(img, image.Rect(-10, -10, 0, 0), color.NRGBA{A: 255})

		assert.Equal(t, orig.Pix, img.Pix)
	})

	t.Run("opaque overwrites", func(t *testing.T) {
		img := solid(10, 10, white)
		red := color.NRGBA{R: 255, A: 255}

		BlendRect(img, image.Rect(2, 3, 5, 6), red)

		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if image.Pt(x, y).In(image.Rect(2, 3, 5, 6)) {
					assert.Equal(t, red, img.NRGBAAt(x, y))
				} else {
					assert.Equal(t, white, img.NRGBAAt(x, y))
				}
			}
		}
	})

	t.Run("transparent is a no-op", func(t *testing.T) {
		img := solid(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
		orig := imaging.Clone(img)

		BlendRect(img, img.Bounds(), color.NRGBA{R: 200, G: 200, B: 200, A: 0})

		assert.Equal(t, orig.Pix, img.Pix)
	})

	t.Run("half black over white", func(t *testing.T) {
		img := solid(4, 4, white)

		BlendRect(img, img.Bounds(), color.NRGBA{A: 128})

		assert.Equal(t, color.NRGBA{R: 127, G: 127, B: 127, A: 255}, img.NRGBAAt(1, 1))
	})

	t.Run("partially outside is clipped", func(t *testing.T) {
		img := solid(10, 10, white)
		black := color.NRGBA{A: 255}

		BlendRect(img, image.Rect(8, -5, 20, 2), black)

		assert.Equal(t, black, img.NRGBAAt(9, 0))
		assert.Equal(t, black, img.NRGBAAt(8, 1))
		assert.Equal(t, white, img.NRGBAAt(7, 1))
		assert.Equal(t, white, img.NRGBAAt(9, 2))
	})

	t.Run("over transparent pixel", func(t *testing.T) {
		img := solid(2, 2, color.NRGBA{})

		BlendRect(img, img.Bounds(), color.NRGBA{R: 100, G: 50, B: 0, A: 128})

		assert.Equal(t, color.NRGBA{R: 100, G: 50, B: 0, A: 128}, img.NRGBAAt(0, 0))
	})
}

func TestBlendImage(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red := color.NRGBA{R: 255, A: 255}

	dst := solid(10, 10, white)
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(3, 3, color.NRGBA{A: 128})

	BlendImage(dst, src, image.Pt(8, 8))

	assert.Equal(t, red, dst.NRGBAAt(8, 8))
	assert.Equal(t, white, dst.NRGBAAt(9, 9))
	assert.Equal(t, white, dst.NRGBAAt(7, 7))

	BlendImage(dst, src, image.Pt(-3, -3))
	assert.Equal(t, color.NRGBA{R: 127, G: 127, B: 127, A: 255}, dst.NRGBAAt(0, 0))
	assert.Equal(t, white, dst.NRGBAAt(1, 1))
}

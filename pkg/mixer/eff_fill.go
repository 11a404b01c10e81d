package mixer

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"ilock/pkg/display"
)

// EffectFill scales the canvas to cover screen with a nearest-neighbor
// filter, then crops the centered screen-sized window.
func EffectFill(screen display.Size) Effect {
	return &fill{screen: screen, filter: imaging.NearestNeighbor}
}

type fill struct {
	screen display.Size
	filter imaging.ResampleFilter
}

func (e *fill) Name() string {
	return "fill"
}

func (e *fill) Process(img *image.NRGBA) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("empty image")
	}
	if !e.screen.Valid() {
		return nil, errors.Errorf("invalid screen size %s", e.screen)
	}

	target := ResizeTarget(e.screen, display.Size{W: b.Dx(), H: b.Dy()})

	resized := imaging.Resize(img, target.W, target.H, e.filter)

	at := CropOffset(e.screen, target)
	return imaging.Crop(resized, image.Rect(at.X, at.Y, at.X+e.screen.W, at.Y+e.screen.H)), nil
}

package mixer

import (
	"image"

	"github.com/disintegration/imaging"
)

const DefaultSigma = 5.0

func EffectBlur(sigma float64) Effect {
	return &blur{sigma: sigma}
}

type blur struct {
	sigma float64
}

func (e *blur) Name() string {
	return "blur"
}

func (e *blur) Process(img *image.NRGBA) (*image.NRGBA, error) {
	return imaging.Blur(img, e.sigma), nil
}

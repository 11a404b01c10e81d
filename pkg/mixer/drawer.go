package mixer

import (
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func NewDrawer(opts ...Option) *Drawer {
	d := &Drawer{
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

type Drawer struct {
	effs []Effect
	log  *zap.Logger
}

func (d *Drawer) Canvas(img image.Image) (*image.NRGBA, error) {
	canvas := imaging.Clone(img)

	for _, eff := range d.effs {
		start := time.Now()

		out, err := eff.Process(canvas)
		if err != nil {
			return nil, errors.Wrapf(err, "effect %s failed", eff.Name())
		}
		canvas = out

		d.log.With(
			zap.String("effect", eff.Name()),
			zap.Int("w", canvas.Bounds().Dx()),
			zap.Int("h", canvas.Bounds().Dy()),
			zap.String("cost", time.Since(start).String()),
		).Debug("processed")
	}

	return canvas, nil
}

package mixer

import (
	"image"
	"image/color"
)

// EffectBlock darkens a 300x80 box anchored 30px from the left edge and
// 110px above the bottom edge, the backdrop for the unlock prompt.
func EffectBlock() Effect {
	return &block{
		left:   30,
		bottom: 110,
		width:  300,
		height: 80,
		color:  color.NRGBA{A: 128},
	}
}

type block struct {
	left   int
	bottom int
	width  int
	height int
	color  color.NRGBA
}

func (e *block) Name() string {
	return "block"
}

func (e *block) Rect(bounds image.Rectangle) image.Rectangle {
	x := bounds.Min.X + e.left
	y := bounds.Max.Y - e.bottom
	return image.Rect(x, y, x+e.width, y+e.height)
}

func (e *block) Process(img *image.NRGBA) (*image.NRGBA, error) {
	BlendRect(img, e.Rect(img.Bounds()), e.color)
	return img, nil
}

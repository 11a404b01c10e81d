package mixer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

const DefaultFontSize = 200.0

var DefaultCaptions = []string{"Locked", "Away", "Idle"}

// LoadFace parses a TrueType font. A nil or empty ttf selects the embedded
// Go Bold font.
func LoadFace(ttf []byte, size float64) (font.Face, error) {
	if len(ttf) == 0 {
		ttf = gobold.TTF
	}

	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrap(err, "parse font failed")
	}

	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

func PickCaption(captions []string, rnd Rand) (string, error) {
	if len(captions) == 0 {
		return "", errors.New("no caption to pick")
	}
	return captions[rnd.Intn(len(captions))], nil
}

func EffectCaption(face font.Face, captions []string, rnd Rand) Effect {
	return &caption{
		face:     face,
		captions: captions,
		rnd:      rnd,
		color:    color.NRGBA{R: 255, G: 255, B: 255, A: 128},
	}
}

type caption struct {
	face     font.Face
	captions []string
	rnd      Rand
	color    color.NRGBA
}

func (e *caption) Name() string {
	return "caption"
}

func (e *caption) Process(img *image.NRGBA) (*image.NRGBA, error) {
	text, err := PickCaption(e.captions, e.rnd)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetFontFace(e.face)
	dc.SetColor(e.color)
	dc.DrawStringAnchored(text, float64(b.Dx())/2, float64(b.Dy())/2, 0.5, 0.5)

	BlendImage(img, imaging.Clone(dc.Image()), b.Min)
	return img, nil
}

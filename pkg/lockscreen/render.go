package lockscreen

import (
	"image"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"ilock/pkg/display"
	"ilock/pkg/mixer"
	"ilock/pkg/sink"
	"ilock/pkg/source"
)

var ErrNoDisplay = errors.New("cannot get screen resolution")

func New(screens display.Provider, src *source.Loader, dst *sink.Sink, params *Params, logger *zap.Logger) *Renderer {
	return &Renderer{
		screens: screens,
		src:     src,
		dst:     dst,
		params:  params,
		log:     logger.With(zap.String("via", "lockscreen")),
	}
}

// Renderer turns an input image into a lock screen wallpaper sized for the
// primary display.
type Renderer struct {
	screens display.Provider
	src     *source.Loader
	dst     *sink.Sink
	params  *Params
	log     *zap.Logger
}

func (r *Renderer) Screen() (display.Size, error) {
	size, ok := display.First(r.screens)
	if !ok {
		return display.Size{}, ErrNoDisplay
	}
	return size, nil
}

func (r *Renderer) Drawer(screen display.Size) (*mixer.Drawer, error) {
	face, err := mixer.LoadFace(r.params.Font, r.params.FontSize)
	if err != nil {
		return nil, err
	}

	return mixer.NewDrawer(
		mixer.WithLogger(r.log),
		mixer.WithEffect(
			mixer.EffectFill(screen),
			mixer.EffectBlur(r.params.Sigma),
			mixer.EffectBlock(),
			mixer.EffectCaption(face, r.params.Captions, r.params.Rand),
		),
	), nil
}

// Compose runs the effect chain on img and checks the result fills screen.
func (r *Renderer) Compose(img image.Image, screen display.Size) (*image.NRGBA, error) {
	d, err := r.Drawer(screen)
	if err != nil {
		return nil, err
	}

	out, err := d.Canvas(img)
	if err != nil {
		return nil, err
	}

	if b := out.Bounds(); b.Dx() != screen.W || b.Dy() != screen.H {
		return nil, errors.Errorf("rendered %dx%d, want %s", b.Dx(), b.Dy(), screen)
	}

	return out, nil
}

func (r *Renderer) Render(input, output string) error {
	screen, err := r.Screen()
	if err != nil {
		return err
	}
	r.log.With(zap.Stringer("screen", screen)).Debug("resolution")

	img, err := r.src.Load(input)
	if err != nil {
		return err
	}

	out, err := r.Compose(img, screen)
	if err != nil {
		return err
	}

	return r.dst.Save(out, output)
}

package lockscreen

import (
	"math/rand"
	"time"

	"ilock/pkg/mixer"
)

func NewParams(opts ...Option) *Params {
	p := &Params{
		Sigma:    mixer.DefaultSigma,
		FontSize: mixer.DefaultFontSize,
		Captions: mixer.DefaultCaptions,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

type Params struct {
	Sigma    float64
	FontSize float64
	Font     []byte
	Captions []string
	Rand     mixer.Rand
}

type Option func(p *Params)

func WithSigma(sigma float64) Option {
	return func(p *Params) {
		p.Sigma = sigma
	}
}

func WithFont(ttf []byte, size float64) Option {
	return func(p *Params) {
		p.Font = ttf
		if size > 0 {
			p.FontSize = size
		}
	}
}

func WithCaptions(captions ...string) Option {
	return func(p *Params) {
		if len(captions) > 0 {
			p.Captions = captions
		}
	}
}

func WithRand(r mixer.Rand) Option {
	return func(p *Params) {
		p.Rand = r
	}
}

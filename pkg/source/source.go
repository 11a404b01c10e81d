package source

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

const WallhavenPrefix = "wallhaven:"

var ErrEmptyInput = errors.New("empty input path")

type Option func(l *Loader)

func WithDownloader(dl *Downloader) Option {
	return func(l *Loader) {
		l.dl = dl
	}
}

func WithWallhaven(wh *Wallhaven) Option {
	return func(l *Loader) {
		l.wh = wh
	}
}

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		log: logger.With(zap.String("via", "source")),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader resolves an input argument to a decoded image. Inputs are local
// paths, http(s) URLs, or "wallhaven:<query>".
type Loader struct {
	fs  afero.Fs
	dl  *Downloader
	wh  *Wallhaven
	log *zap.Logger
}

func (l *Loader) open(input string) (*VFile, error) {
	switch {
	case input == "":
		return nil, ErrEmptyInput
	case strings.HasPrefix(input, WallhavenPrefix):
		if l.wh == nil || l.dl == nil {
			return nil, errors.New("wallhaven source not enabled")
		}
		url, err := l.wh.Pick(strings.TrimPrefix(input, WallhavenPrefix))
		if err != nil {
			return nil, err
		}
		return l.dl.Get(url)
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		if l.dl == nil {
			return nil, errors.New("http source not enabled")
		}
		return l.dl.Get(input)
	default:
		return newFile(input, l.fs), nil
	}
}

func (l *Loader) Load(input string) (image.Image, error) {
	vf, err := l.open(input)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to load image from %s", input)
	}

	bs, err := vf.Bytes()
	if err != nil {
		return nil, errors.Wrapf(err, "fail to load image from %s", input)
	}

	img, err := imaging.Decode(bytes.NewReader(bs), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "fail to decode image from %s", input)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, errors.Errorf("image %s has no pixels", input)
	}

	l.log.With(
		zap.String("name", vf.Name()),
		zap.Bool("file", vf.IsFile()),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
	).Debug("loaded")

	return img, nil
}

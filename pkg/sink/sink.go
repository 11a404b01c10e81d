package sink

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

type Option func(s *Sink)

func WithQuality(q int) Option {
	return func(s *Sink) {
		s.quality = q
	}
}

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Sink {
	s := &Sink{
		fs:      fs,
		log:     logger.With(zap.String("via", "sink")),
		quality: 95,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Sink struct {
	fs      afero.Fs
	log     *zap.Logger
	quality int
}

func (s *Sink) tmpfile(path string) string {
	return filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s", filepath.Base(path), xid.New().String()))
}

func (s *Sink) Save(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return errors.Wrapf(ErrUnsupportedFormat, "save %s", path)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(s.quality)); err != nil {
		return errors.Wrapf(err, "encode %s failed", format)
	}

	tmp := s.tmpfile(path)
	if err := afero.WriteFile(s.fs, tmp, buf.Bytes(), 0644); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, "write %s failed", path)
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, "write %s failed", path)
	}

	s.log.With(
		zap.String("path", path),
		zap.String("format", format.String()),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Debug("saved")

	return nil
}

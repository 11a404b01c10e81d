package source

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

const DefaultTimeout = 2 * time.Minute

func NewDownloader(logger *zap.Logger, progress bool, timeout time.Duration) *Downloader {
	return &Downloader{
		cli:      resty.New().SetDoNotParseResponse(true).SetTimeout(timeout),
		log:      logger.With(zap.String("via", "downloader")),
		progress: progress,
	}
}

type Downloader struct {
	cli      *resty.Client
	log      *zap.Logger
	progress bool
}

func (d *Downloader) Get(url string) (*VFile, error) {
	resp, err := d.cli.R().Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "download %s failed", url)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 400 {
		return nil, errors.Errorf("download %s failed: %s", url, resp.Status())
	}

	var w io.Writer = io.Discard
	if d.progress {
		w = progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, w), resp.RawBody()); err != nil {
		return nil, errors.Wrapf(err, "download %s failed", url)
	}

	d.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("downloaded")
	return newBytes(url, buf.Bytes()), nil
}

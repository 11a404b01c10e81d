package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"ilock/pkg/display"
	"ilock/pkg/lockscreen"
	"ilock/pkg/mixer"
	"ilock/pkg/sink"
	"ilock/pkg/source"
)

var size = flag.String("size", "", "screen size WIDTHxHEIGHT, used when X11 reports no screen")
var sigma = flag.Float64("sigma", mixer.DefaultSigma, "blur standard deviation")
var captions = flag.StringArray("caption", nil, "caption candidates, repeatable")
var fontPath = flag.String("font", "", "TrueType font file for the caption")
var fontSize = flag.Float64("font-size", mixer.DefaultFontSize, "caption font size")
var quality = flag.Int("quality", 95, "jpeg output quality")
var debug = flag.Bool("debug", false, "set debug")
var quiet = flag.Bool("quiet", false, "hide download progress")
var timeout = flag.Duration("timeout", source.DefaultTimeout, "download timeout")
var whKey = flag.String("wh-key", "", "wallhaven api key")
var whCategory = flag.String("wh-category", "", "wallhaven category names")
var whPurity = flag.String("wh-purity", "", "wallhaven purity levels")
var whRatio = flag.String("wh-ratio", "", "wallhaven ratio filter")

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, "usage : ilock [flags] <img_path> <out_path>\n\n")
	_, _ = fmt.Fprintf(os.Stderr, "img_path may be a file, an http(s) url or %s<query>\n\n", source.WallhavenPrefix)
	flag.PrintDefaults()
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !*debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func newDisplay(logger *zap.Logger) (display.Provider, error) {
	x11 := display.NewX11(logger)
	if *size == "" {
		return x11, nil
	}

	s, err := display.ParseSize(*size)
	if err != nil {
		return nil, err
	}
	return display.Chain(x11, display.NewFixed(s)), nil
}

func newParams(fs afero.Fs) (*lockscreen.Params, error) {
	var ttf []byte
	if *fontPath != "" {
		bs, err := afero.ReadFile(fs, *fontPath)
		if err != nil {
			return nil, errors.Wrap(err, "read font failed")
		}
		ttf = bs
	}

	return lockscreen.NewParams(
		lockscreen.WithSigma(*sigma),
		lockscreen.WithFont(ttf, *fontSize),
		lockscreen.WithCaptions(*captions...),
	), nil
}

func newLoader(fs afero.Fs, logger *zap.Logger) *source.Loader {
	wh := source.NewWallhaven(*whKey, source.Filters{
		Category: split(*whCategory),
		Purity:   split(*whPurity),
		Ratio:    *whRatio,
	}, logger)

	return source.New(fs, logger,
		source.WithDownloader(source.NewDownloader(logger, !*quiet, *timeout)),
		source.WithWallhaven(wh),
	)
}

func newSink(fs afero.Fs, logger *zap.Logger) *sink.Sink {
	return sink.New(fs, logger, sink.WithQuality(*quality))
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ilock: ")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 2 {
		usage()
		os.Exit(1)
	}

	var r *lockscreen.Renderer
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			afero.NewOsFs,
			newLogger,
			newDisplay,
			newParams,
			newLoader,
			newSink,
			lockscreen.New,
		),
		fx.Populate(&r),
	)
	if err := app.Err(); err != nil {
		log.Fatal(err)
	}

	if err := r.Render(flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatal(err)
	}
}

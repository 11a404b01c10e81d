package source

import (
	"github.com/moolex/wallhaven-go/api"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Filters narrow down wallhaven search results. Empty fields are not sent.
type Filters struct {
	Category []string
	Purity   []string
	Ratio    string
}

func NewWallhaven(key string, filters Filters, logger *zap.Logger) *Wallhaven {
	wh := api.New(key)
	wh.SetLogger(logger)

	return &Wallhaven{
		api:     wh,
		filters: filters,
		log:     logger.With(zap.String("via", "wallhaven")),
	}
}

type Wallhaven struct {
	api     *api.API
	filters Filters
	log     *zap.Logger
}

// Pick runs a random-sorted search and returns the full image URL of the
// first result.
func (w *Wallhaven) Pick(query string) (string, error) {
	q := api.NewQuery(query)
	if len(w.filters.Category) > 0 {
		q.SetCategory(w.filters.Category...)
	}
	if len(w.filters.Purity) > 0 {
		q.SetPurity(w.filters.Purity...)
	}
	if w.filters.Ratio != "" {
		q.SetRatio(w.filters.Ratio)
	}
	q.Random()

	ret, err := w.api.Query(q)
	if err != nil {
		return "", errors.Wrap(err, "wallhaven query failed")
	}

	wp, err := ret.Pick(api.PickLoop)
	if err != nil {
		return "", errors.Wrap(err, "get wallpaper failed")
	}

	w.log.With(
		zap.String("id", wp.Id),
		zap.String("resolution", wp.Resolution),
		zap.String("url", wp.Url),
	).Debug("picked")

	return wp.Path, nil
}

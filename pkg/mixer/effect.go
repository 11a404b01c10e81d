package mixer

import "image"

// Effect transforms a canvas. It may mutate img in place and return it, or
// return a new buffer.
type Effect interface {
	Name() string
	Process(img *image.NRGBA) (*image.NRGBA, error)
}

type Rand interface {
	Intn(n int) int
}

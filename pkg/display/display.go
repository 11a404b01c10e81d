package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Size struct {
	W int
	H int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Provider lists candidate viewport sizes, in a deterministic order.
// An unavailable windowing system yields an empty list, not an error.
type Provider interface {
	Sizes() []Size
}

// ParseSize parses "WIDTHxHEIGHT", e.g. "1920x1080".
func ParseSize(s string) (Size, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Size{}, errors.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}

	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return Size{}, errors.Wrapf(err, "invalid width in %q", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return Size{}, errors.Wrapf(err, "invalid height in %q", s)
	}

	size := Size{W: w, H: h}
	if !size.Valid() {
		return Size{}, errors.Errorf("size %q must be positive", s)
	}

	return size, nil
}

func NewFixed(sizes ...Size) Provider {
	return fixed(sizes)
}

type fixed []Size

func (f fixed) Sizes() []Size {
	return valid(f)
}

func Chain(providers ...Provider) Provider {
	return chain(providers)
}

type chain []Provider

func (c chain) Sizes() []Size {
	for _, p := range c {
		if sizes := p.Sizes(); len(sizes) > 0 {
			return sizes
		}
	}
	return nil
}

func First(p Provider) (Size, bool) {
	s, err := lo.Nth(p.Sizes(), 0)
	return s, err == nil
}

func valid(sizes []Size) []Size {
	return lo.Filter(sizes, func(s Size, _ int) bool {
		return s.Valid()
	})
}

package mixer

import (
	"image"

	"ilock/pkg/display"
)

// ResizeTarget returns the size src must be scaled to so that it covers
// screen on both axes. The binding axis matches the screen exactly and the
// other axis is truncated toward zero.
func ResizeTarget(screen, src display.Size) display.Size {
	sw, sh := int64(screen.W), int64(screen.H)
	iw, ih := int64(src.W), int64(src.H)

	// sh/sw > ih/iw
	if sh*iw > ih*sw {
		return display.Size{W: int(iw * sh / ih), H: screen.H}
	}

	return display.Size{W: screen.W, H: int(ih * sw / iw)}
}

// CropOffset centers a screen-sized window inside resized.
func CropOffset(screen, resized display.Size) image.Point {
	var p image.Point
	if resized.W > screen.W {
		p.X = (resized.W - screen.W) / 2
	}
	if resized.H > screen.H {
		p.Y = (resized.H - screen.H) / 2
	}
	return p
}

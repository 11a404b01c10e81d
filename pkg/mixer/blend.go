package mixer

import (
	"image"
	"image/color"
	"math"
)

// BlendRect composites c source-over onto every pixel of dst inside r.
// r is clipped to dst's bounds; nothing is written when they do not overlap.
func BlendRect(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() || c.A == 0 {
		return
	}

	sa := float64(c.A) / 255
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		row := dst.Pix[i : i+4*r.Dx()]
		for j := 0; j < len(row); j += 4 {
			px := row[j : j+4]
			out := blend(color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}, c, sa)
			px[0], px[1], px[2], px[3] = out.R, out.G, out.B, out.A
		}
	}
}

// BlendImage composites src source-over onto dst with src's origin at pt.
func BlendImage(dst, src *image.NRGBA, pt image.Point) {
	sb := src.Bounds()
	r := sb.Sub(sb.Min).Add(pt).Intersect(dst.Bounds())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fg := src.NRGBAAt(x-pt.X+sb.Min.X, y-pt.Y+sb.Min.Y)
			if fg.A == 0 {
				continue
			}
			dst.SetNRGBA(x, y, blend(dst.NRGBAAt(x, y), fg, float64(fg.A)/255))
		}
	}
}

func blend(bg, fg color.NRGBA, sa float64) color.NRGBA {
	if fg.A == 255 {
		return fg
	}

	da := float64(bg.A) / 255
	oa := sa + da*(1-sa)

	ch := func(f, b uint8) uint8 {
		return clamp((float64(f)*sa + float64(b)*da*(1-sa)) / oa)
	}

	return color.NRGBA{
		R: ch(fg.R, bg.R),
		G: ch(fg.G, bg.G),
		B: ch(fg.B, bg.B),
		A: clamp(oa * 255),
	}
}

func clamp(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

package acquire

import (
	"image"
	"image/color"
)

// Adaptive threshold window and offset, tuned for 300 DPI scans.
const (
	thresholdBlock  = 31
	thresholdOffset = 2
)

// Preprocess cleans up a scanned page before OCR: grayscale conversion, a
// 5x5 Gaussian blur, then adaptive thresholding over a 31x31 neighborhood
// with an offset of 2. Improves tesseract accuracy on noisy scans.
func Preprocess(src image.Image) *image.Gray {
	g := grayscale(src)
	g = gaussianBlur5(g)
	return adaptiveThreshold(g, thresholdBlock, thresholdOffset)
}

func grayscale(src image.Image) *image.Gray {
	b := src.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x, y, color.GrayModel.Convert(src.At(x, y)))
		}
	}
	return g
}

// 5x5 binomial kernel (outer product of 1 4 6 4 1), sum 256.
var blurKernel = [5]uint32{1, 4, 6, 4, 1}

func gaussianBlur5(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src
	}

	clampX := func(x int) int {
		if x < 0 {
			return 0
		}
		if x >= w {
			return w - 1
		}
		return x
	}
	clampY := func(y int) int {
		if y < 0 {
			return 0
		}
		if y >= h {
			return h - 1
		}
		return y
	}

	// Separable kernel: horizontal pass, then vertical.
	tmp := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc uint32
			for k := -2; k <= 2; k++ {
				acc += blurKernel[k+2] * uint32(src.GrayAt(b.Min.X+clampX(x+k), b.Min.Y+y).Y)
			}
			tmp.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: uint8(acc / 16)})
		}
	}
	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc uint32
			for k := -2; k <= 2; k++ {
				acc += blurKernel[k+2] * uint32(tmp.GrayAt(b.Min.X+x, b.Min.Y+clampY(y+k)).Y)
			}
			dst.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: uint8(acc / 16)})
		}
	}
	return dst
}

// adaptiveThreshold binarizes src: a pixel becomes white when it exceeds the
// mean of its block x block neighborhood minus offset. Neighborhood means
// come from a summed-area table so the pass is linear in pixel count.
func adaptiveThreshold(src *image.Gray, block, offset int) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return src
	}

	// integral[y][x] = sum of pixels in [0,x) x [0,y)
	integral := make([][]uint64, h+1)
	for i := range integral {
		integral[i] = make([]uint64, w+1)
	}
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := block / 2
	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		y0, y1 := y-half, y+half+1
		if y0 < 0 {
			y0 = 0
		}
		if y1 > h {
			y1 = h
		}
		for x := 0; x < w; x++ {
			x0, x1 := x-half, x+half+1
			if x0 < 0 {
				x0 = 0
			}
			if x1 > w {
				x1 = w
			}
			area := uint64((y1 - y0) * (x1 - x0))
			sum := integral[y1][x1] - integral[y0][x1] - integral[y1][x0] + integral[y0][x0]
			mean := sum / area

			v := uint8(0)
			if uint64(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)+uint64(offset) > mean {
				v = 255
			}
			dst.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: v})
		}
	}
	return dst
}

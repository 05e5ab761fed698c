package heightmap

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// mmPerPixel is the fixed sampling resolution: one lattice column per
// 0.2 mm of physical width.
const mmPerPixel = 0.2

// SampleOptions controls image-to-thickness conversion.
type SampleOptions struct {
	// MaxThickness and MinThickness bound the output range in mm.
	// MaxThickness must be greater than MinThickness, both non-negative.
	MaxThickness float64
	MinThickness float64

	// WidthMM is the target physical width of the model.
	WidthMM float64

	// Invert controls the brightness mapping. False maps dark pixels to
	// thick material (the usual choice for backlit prints), true maps
	// dark pixels to thin.
	Invert bool

	// Smoothing applies a 3x3 Gaussian blur after resampling to reduce
	// pixel noise in the relief.
	Smoothing bool
}

// Validate checks the option invariants shared with the geometry core.
func (o SampleOptions) Validate() error {
	if o.MinThickness < 0 {
		return errors.Errorf("sample: min thickness %g mm is negative", o.MinThickness)
	}
	if o.MaxThickness <= o.MinThickness {
		return errors.Errorf("sample: max thickness %g mm must exceed min thickness %g mm",
			o.MaxThickness, o.MinThickness)
	}
	if o.WidthMM <= 0 {
		return errors.Errorf("sample: width %g mm must be positive", o.WidthMM)
	}
	return nil
}

// FromImage converts an image to a Heightmap. The image is converted to
// grayscale, resampled so that one cell covers 0.2 mm of the target
// width (rows follow from the aspect ratio), optionally smoothed, and
// mapped linearly from [0,255] to [MinThickness, MaxThickness].
func FromImage(img image.Image, opts SampleOptions) (*Heightmap, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil, errors.New("sample: image is empty")
	}

	aspect := float64(srcW) / float64(srcH)
	cols := int(opts.WidthMM / mmPerPixel)
	rows := int(float64(cols) / aspect)
	if cols < 2 || rows < 2 {
		return nil, errors.Errorf("sample: %g mm width yields a %dx%d grid, need at least 2x2", opts.WidthMM, rows, cols)
	}

	gray := resampleGray(img, cols, rows)
	if opts.Smoothing {
		gray = gaussian3x3(gray)
	}

	// Linear brightness-to-thickness map. Without inversion dark pixels
	// become thick material.
	span := opts.MaxThickness - opts.MinThickness
	values := make([]float64, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			lum := float64(gray.GrayAt(col, row).Y)
			if !opts.Invert {
				lum = 255 - lum
			}
			values[row*cols+col] = lum/255.0*span + opts.MinThickness
		}
	}

	return &Heightmap{
		rows:   rows,
		cols:   cols,
		values: values,
		ScaleX: opts.WidthMM / float64(cols),
		ScaleY: opts.WidthMM / aspect / float64(rows),
	}, nil
}

// resampleGray converts img to grayscale and scales it to cols x rows.
func resampleGray(img image.Image, cols, rows int) *image.Gray {
	// Grayscale conversion first so the resampler works on luminance.
	src := image.NewGray(img.Bounds())
	stddraw.Draw(src, src.Bounds(), img, img.Bounds().Min, stddraw.Src)

	dst := image.NewGray(image.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// gaussian3x3 applies a separable 1-2-1 Gaussian kernel with clamped
// borders, matching the light denoise pass used before relief mapping.
func gaussian3x3(src *image.Gray) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	// Horizontal pass.
	tmp := make([]uint16, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := src.GrayAt(clamp(x-1, 0, w-1), y).Y
			c := src.GrayAt(x, y).Y
			r := src.GrayAt(clamp(x+1, 0, w-1), y).Y
			tmp[y*w+x] = uint16(l) + 2*uint16(c) + uint16(r)
		}
	}

	// Vertical pass with combined normalization (sum of weights 16).
	dst := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := tmp[clamp(y-1, 0, h-1)*w+x]
			c := tmp[y*w+x]
			bt := tmp[clamp(y+1, 0, h-1)*w+x]
			sum := (uint32(t) + 2*uint32(c) + uint32(bt) + 8) / 16
			if sum > 255 {
				sum = 255
			}
			dst.SetGray(x, y, color.Gray{Y: uint8(sum)})
		}
	}
	return dst
}

package litho

import (
	"github.com/pkg/errors"

	"github.com/chazu/lumen/pkg/kernel"
)

// BorderStyle selects how the decorative frame around the lithophane
// footprint is constructed.
type BorderStyle string

const (
	// BorderPrism is the direct construction: a rectangular annulus
	// extruded to the border height, 16 vertices and 32 triangles.
	BorderPrism BorderStyle = "prism"

	// BorderRounded builds the frame with the geometry kernel as an
	// outer box with filleted vertical edges minus the footprint cutout,
	// tessellated by marching cubes. Triangle counts depend on the
	// tessellation resolution.
	BorderRounded BorderStyle = "rounded"
)

// Phase identifies a construction stage for progress reporting.
type Phase int

const (
	PhaseLattice Phase = iota
	PhaseSurfaces
	PhaseWalls
	PhaseFrame
)

func (p Phase) String() string {
	switch p {
	case PhaseLattice:
		return "lattice"
	case PhaseSurfaces:
		return "surfaces"
	case PhaseWalls:
		return "walls"
	case PhaseFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// Options controls solid construction. The zero value is not usable;
// callers fill in the thickness range and border settings from their
// configuration surface.
type Options struct {
	// Border enables the decorative frame shell around the footprint.
	Border bool

	// BorderWidth is the frame's annulus width in mm, BorderHeight its
	// extrusion height. Both are used only when Border is set.
	BorderWidth  float64
	BorderHeight float64

	// BorderStyle selects the frame construction. Empty means BorderPrism.
	BorderStyle BorderStyle

	// Kernel is the geometry kernel used by BorderRounded. Ignored for
	// other styles.
	Kernel kernel.Kernel

	// Progress, if non-nil, is invoked at the start of each construction
	// phase. Calls happen synchronously on the calling goroutine.
	Progress func(Phase)
}

// Validate checks the border settings. Heightmap validity is checked
// separately by the caller via Heightmap.Validate; both run before any
// vertex is generated.
func (o Options) Validate() error {
	if !o.Border {
		return nil
	}
	if o.BorderWidth <= 0 {
		return errors.Errorf("litho: border width %g mm must be positive", o.BorderWidth)
	}
	if o.BorderHeight <= 0 {
		return errors.Errorf("litho: border height %g mm must be positive", o.BorderHeight)
	}
	switch o.BorderStyle {
	case "", BorderPrism:
	case BorderRounded:
		if o.Kernel == nil {
			return errors.New("litho: rounded border requires a geometry kernel")
		}
	default:
		return errors.Errorf("litho: unknown border style %q", o.BorderStyle)
	}
	return nil
}

func (o Options) progress(p Phase) {
	if o.Progress != nil {
		o.Progress(p)
	}
}

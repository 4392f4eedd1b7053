// Package preview renders a single plan-position-indicator image for one
// scan and moment of a decoded archive. It is a narrow, single-purpose
// window into the volume, not a general visualization system: one entry
// point, one image out.
package preview

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/msufi98/nexrad-archive2/archive2"
)

// Options controls the rendered image's geometry.
type Options struct {
	Size       int     // pixel width and height of the (square) output image
	MaxRangeKm float64 // range, in km, mapped to the image's half-width
	Raw        bool    // pass codes through unscaled instead of engineering units
}

// DefaultOptions mirrors the defaults of a single reflectivity PPI frame.
func DefaultOptions() Options {
	return Options{Size: 1024, MaxRangeKm: 460}
}

// Render draws one scan's moment as a plan-position-indicator image: each
// radial becomes a filled arc sector per gate, colored by the moment's
// engineering-unit value. Gates at the missing sentinel are not drawn and
// show the opaque black background.
func Render(rf *archive2.RadarFile, scanIdx int, moment string, opts Options) (image.Image, error) {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.MaxRangeKm <= 0 {
		opts.MaxRangeKm = DefaultOptions().MaxRangeKm
	}

	ramp, ok := rampFor(moment)
	if !ok {
		return nil, fmt.Errorf("preview: no color ramp for moment %q", moment)
	}

	if scanIdx < 0 || scanIdx >= len(rf.Scans) {
		return nil, fmt.Errorf("preview: scan %d out of range (have %d)", scanIdx, len(rf.Scans))
	}
	scan := rf.Scans[scanIdx]
	if len(scan.RadialIndices) == 0 {
		return nil, fmt.Errorf("preview: scan %d has no radials", scanIdx)
	}

	present := false
	for _, idx := range scan.RadialIndices {
		if m, ok := rf.Radials[idx].MomentByName(moment); ok && m != nil {
			present = true
			break
		}
	}
	if !present {
		return nil, &archive2.MomentNotPresentError{Moment: moment}
	}

	width := float64(opts.Size)
	height := float64(opts.Size)
	canvas := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetLineCap(draw2d.ButtCap)

	xc := width / 2
	yc := height / 2
	pxPerKm := width / 2 / opts.MaxRangeKm

	for _, idx := range scan.RadialIndices {
		radial := rf.Radials[idx]
		m, ok := radial.MomentByName(moment)
		if !ok || m == nil {
			continue
		}

		azimuthAngle := float64(radial.AzimuthAngle) - 90
		if azimuthAngle < 0 {
			azimuthAngle += 360
		}
		azimuthSpacing := float64(radial.AzimuthResolutionSpacing())

		startAngle := azimuthAngle * (math.Pi / 180.0)
		endAngle := azimuthSpacing * (math.Pi / 180.0)

		firstGatePx := float64(m.FirstGate) / 1000 * pxPerKm
		gateWidthPx := float64(m.GateSpacing) / 1000 * pxPerKm

		distance := firstGatePx
		gc.SetLineWidth(gateWidthPx + 1)

		numGates := m.Len()
		for i := 0; i < numGates; i++ {
			v := m.Value(i, opts.Raw)
			if !math.IsNaN(float64(v)) {
				gc.MoveTo(xc+math.Cos(startAngle)*distance, yc+math.Sin(startAngle)*distance)

				switch i {
				case 0:
					gc.ArcTo(xc, yc, distance, distance, startAngle-0.001, endAngle+0.001)
				case numGates - 1:
					gc.ArcTo(xc, yc, distance, distance, startAngle, endAngle)
				default:
					gc.ArcTo(xc, yc, distance, distance, startAngle, endAngle+0.001)
				}

				gc.SetStrokeColor(ramp(v))
				gc.Stroke()
			}
			distance += gateWidthPx
		}
	}

	drawLabels(canvas, rf, moment)

	return canvas, nil
}

package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/msufi98/nexrad-archive2/archive2"
)

// labelMargin is the inset, in pixels, of the annotation block from the
// top-left corner of the canvas.
const labelMargin = 12

// drawLabels annotates the canvas with the site identifier, volume time, and
// moment name, stacked in the top-left corner. It uses the stock 7x13 face
// rather than an embedded font, since the annotation is a short fixed block
// of ASCII, not arbitrary text layout.
func drawLabels(canvas draw.Image, rf *archive2.RadarFile, moment string) {
	lines := []string{
		rf.VolumeHeader.ICAO,
		rf.VolumeHeader.Time().UTC().Format("2006-01-02 15:04:05 UTC"),
		fmt.Sprintf("moment %s", moment),
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 2

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	y := labelMargin + face.Metrics().Ascent.Ceil()
	for _, line := range lines {
		d.Dot = fixed.P(labelMargin, y)
		d.DrawString(line)
		y += lineHeight
	}
}

package preview

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msufi98/nexrad-archive2/archive2"
)

func testRadarFile() *archive2.RadarFile {
	r0 := &archive2.Radial{
		AzimuthAngle:                 0,
		AzimuthResolutionSpacingCode: 2,
		REF: &archive2.Moment{
			NGates: 4, FirstGate: 0, GateSpacing: 250, WordSize: 8,
			Scale: 2, Offset: 66, Raw: []byte{70, 72, 0, 1},
		},
	}
	r1 := &archive2.Radial{
		AzimuthAngle:                 1,
		AzimuthResolutionSpacingCode: 2,
		REF: &archive2.Moment{
			NGates: 4, FirstGate: 0, GateSpacing: 250, WordSize: 8,
			Scale: 2, Offset: 66, Raw: []byte{74, 76, 78, 80},
		},
	}

	return &archive2.RadarFile{
		Radials: []*archive2.Radial{r0, r1},
		Scans:   []archive2.Scan{{ElevationNumber: 1, RadialIndices: []int{0, 1}}},
	}
}

func TestRender_ProducesImageOfRequestedSize(t *testing.T) {
	rf := testRadarFile()
	img, err := Render(rf, 0, "REF", Options{Size: 64, MaxRangeKm: 1})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 64, bounds.Dx())
	assert.Equal(t, 64, bounds.Dy())
	assert.IsType(t, &image.RGBA{}, img)
}

func TestRender_UnknownMomentErrors(t *testing.T) {
	rf := testRadarFile()
	_, err := Render(rf, 0, "ZDR", Options{})
	require.Error(t, err)
}

func TestRender_ScanOutOfRangeErrors(t *testing.T) {
	rf := testRadarFile()
	_, err := Render(rf, 5, "REF", Options{})
	require.Error(t, err)
}

func TestRender_DrawsLabelBlock(t *testing.T) {
	rf := testRadarFile()
	rf.VolumeHeader.ICAO = "KHGX"
	img, err := Render(rf, 0, "REF", Options{Size: 128, MaxRangeKm: 1})
	require.NoError(t, err)

	lit := false
	bounds := image.Rect(labelMargin, labelMargin, labelMargin+100, labelMargin+40)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r != 0 || g != 0 || b != 0 {
				lit = true
			}
		}
	}
	assert.True(t, lit, "expected label text to light up pixels in the annotation corner")
}

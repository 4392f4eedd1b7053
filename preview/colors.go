package preview

import "image/color"

// dbzColorNOAA is the standard NOAA reflectivity color ramp, banded in 5dBZ
// steps. Values below the lowest band render transparent. The missing
// sentinel (NaN) compares false to every band and falls through to the
// default opaque white; Render skips NaN gates before calling the ramp.
func dbzColorNOAA(dbz float32) color.Color {
	switch {
	case dbz < 5.0:
		return color.NRGBA{0x00, 0x00, 0x00, 0x00}
	case dbz < 10.0:
		return color.NRGBA{0x40, 0xe8, 0xe3, 0xFF}
	case dbz < 15.0:
		return color.NRGBA{0x26, 0xa4, 0xfa, 0xFF}
	case dbz < 20.0:
		return color.NRGBA{0x00, 0x30, 0xed, 0xFF}
	case dbz < 25.0:
		return color.NRGBA{0x49, 0xfb, 0x3e, 0xFF}
	case dbz < 30.0:
		return color.NRGBA{0x36, 0xc2, 0x2e, 0xFF}
	case dbz < 35.0:
		return color.NRGBA{0x27, 0x8c, 0x1e, 0xFF}
	case dbz < 40.0:
		return color.NRGBA{0xfe, 0xf5, 0x43, 0xFF}
	case dbz < 45.0:
		return color.NRGBA{0xeb, 0xb4, 0x33, 0xFF}
	case dbz < 50.0:
		return color.NRGBA{0xf6, 0x95, 0x2e, 0xFF}
	case dbz < 55.0:
		return color.NRGBA{0xf8, 0x0a, 0x26, 0xFF}
	case dbz < 60.0:
		return color.NRGBA{0xcb, 0x05, 0x16, 0xFF}
	case dbz < 65.0:
		return color.NRGBA{0xa9, 0x08, 0x13, 0xFF}
	case dbz < 70.0:
		return color.NRGBA{0xee, 0x34, 0xfa, 0xFF}
	case dbz < 75.0:
		return color.NRGBA{0x91, 0x61, 0xc4, 0xFF}
	default:
		return color.NRGBA{0xff, 0xff, 0xff, 0xFF}
	}
}

// velColorRadarscope bands radial velocity in 10 m/s steps from a
// fixed palette, symmetric about zero.
func velColorRadarscope(vel float32) color.Color {
	switch {
	case vel < -30:
		return color.NRGBA{0x2E, 0x0E, 0x84, 0xff}
	case vel < -20:
		return color.NRGBA{0x15, 0x1F, 0x93, 0xff}
	case vel < -10:
		return color.NRGBA{0x23, 0x6F, 0xB3, 0xff}
	case vel < 0:
		return color.NRGBA{0x41, 0xDA, 0xDB, 0xff}
	case vel < 10:
		return color.NRGBA{0x57, 0xFA, 0x63, 0xff}
	case vel < 20:
		return color.NRGBA{0x31, 0xE3, 0x2B, 0xff}
	case vel < 30:
		return color.NRGBA{0xAA, 0x10, 0x79, 0xff}
	default:
		return color.NRGBA{0xF9, 0x14, 0x73, 0xff}
	}
}

// grayscaleRamp is a generic banded ramp for moments the NOAA palette set
// doesn't cover (spectrum width, ZDR, PHI, RHO, CFP): darker means lower.
func grayscaleRamp(lo, hi float32) func(float32) color.Color {
	return func(v float32) color.Color {
		if v <= lo {
			return color.NRGBA{0x20, 0x20, 0x20, 0xFF}
		}
		if v >= hi {
			return color.NRGBA{0xF0, 0xF0, 0xF0, 0xFF}
		}
		frac := (v - lo) / (hi - lo)
		level := uint8(0x20 + frac*float32(0xF0-0x20))
		return color.NRGBA{level, level, level, 0xFF}
	}
}

var ramps = map[string]func(float32) color.Color{
	"REF": dbzColorNOAA,
	"VEL": velColorRadarscope,
	"SW":  grayscaleRamp(0, 15),
	"ZDR": grayscaleRamp(-2, 8),
	"PHI": grayscaleRamp(0, 360),
	"RHO": grayscaleRamp(0, 1),
	"CFP": grayscaleRamp(0, 1),
}

func rampFor(moment string) (func(float32) color.Color, bool) {
	r, ok := ramps[moment]
	return r, ok
}

package archive2

import "math"

// momentMissing is the decoded sentinel for any gate whose raw code is one
// of the two reserved low codes (0 = below threshold, 1 = range folded), or
// for any gate beyond the end of a moment's decoded data when padding a row
// out to a requested width.
var momentMissing = float32(math.NaN())

// VolumeData carries the station-wide parameters attached to a Message 31
// radial's VOL block (User 3.2.4.17.3). Only present on modern radials.
type VolumeData struct {
	VersionMajor                   uint8
	VersionMinor                   uint8
	Lat                            float32
	Lon                            float32
	SiteHeight                     int16
	FeedhornHeight                 int16
	CalibrationConstant            float32
	TXPowerHorz                    float32
	TXPowerVert                    float32
	SystemDifferentialReflectivity float32
	InitialSystemDifferentialPhase float32
	VCP                            uint16
	ProcessingStatus               uint16
}

// ElevationData carries per-elevation calibration attached to a Message 31
// radial's ELV block (User 3.2.4.17.4). Only present on modern radials.
type ElevationData struct {
	AtmosphericAttenuation int16 // half-dB/km, scaled
	CalibrationConstant    float32
}

// RadialData carries per-radial parameters attached to a Message 31 radial's
// RAD block (User 3.2.4.17.5). For legacy Message 1 radials, an equivalent
// is synthesized from the legacy header so both radial kinds present the
// same accessor surface.
type RadialData struct {
	UnambiguousRangeDecameters uint16
	NoiseLevelHorz             float32
	NoiseLevelVert             float32
	NyquistVelocityRaw         int16 // scaled x100 cm/s
	CalibConstHorzChan         float32
	CalibConstVertChan         float32
}

// UnambiguousRangeMeters converts the stored decameter count to meters.
func (r RadialData) UnambiguousRangeMeters() float64 {
	return float64(r.UnambiguousRangeDecameters) * 10
}

// NyquistVelocityMetersPerSec converts the stored x100 cm/s value to m/s.
func (r RadialData) NyquistVelocityMetersPerSec() float64 {
	return float64(r.NyquistVelocityRaw) / 100
}

// Moment is one per-gate physical quantity (REF, VEL, SW, ZDR, PHI, RHO, or
// CFP) decoded from either a Message 31 generic data block or a legacy
// Message 1 embedded array.
type Moment struct {
	NGates       int
	FirstGate    int32 // meters
	GateSpacing  int32 // meters
	WordSize     uint8 // bits per gate: 8 or 16
	Scale        float32
	Offset       float32
	Raw          []byte // ngates * wordSize/8 bytes, big-endian per gate
}

// rawCode returns the undecoded integer stored at gate i.
func (m *Moment) rawCode(i int) uint16 {
	if m.WordSize == 16 {
		off := i * 2
		return uint16(m.Raw[off])<<8 | uint16(m.Raw[off+1])
	}
	return uint16(m.Raw[i])
}

// Len returns the number of gates actually decoded for this moment, which
// may be less than NGates if the payload was short.
func (m *Moment) Len() int {
	if m.WordSize == 16 {
		return len(m.Raw) / 2
	}
	return len(m.Raw)
}

// Value returns the decoded value for gate i. Raw codes 0 and 1 map to the
// missing sentinel before any scaling is applied. When raw is true, any
// other code passes through unscaled; otherwise the engineering-unit
// conversion (code-offset)/scale is applied. Gates beyond Len() return the
// missing sentinel (padding).
func (m *Moment) Value(i int, raw bool) float32 {
	if i >= m.Len() {
		return momentMissing
	}
	code := m.rawCode(i)
	if code == 0 || code == 1 {
		return momentMissing
	}
	if raw {
		return float32(code)
	}
	if m.Scale == 0 {
		return float32(code)
	}
	return (float32(code) - m.Offset) / m.Scale
}

// Radial unifies a decoded Message 31 or Message 1 record behind one
// fixed-field struct; absent blocks are nil pointers rather than a runtime
// dictionary lookup.
type Radial struct {
	ElevationNumber uint8
	AzimuthNumber   uint16
	AzimuthAngle    float32
	ElevationAngle  float32
	CollectionDate  uint16 // Modified Julian Date
	CollectionMs    uint32 // milliseconds past midnight

	AzimuthResolutionSpacingCode uint8

	VOL *VolumeData
	ELV *ElevationData
	RAD *RadialData

	REF *Moment
	VEL *Moment
	SW  *Moment
	ZDR *Moment
	PHI *Moment
	RHO *Moment
	CFP *Moment
}

// AzimuthResolutionSpacing returns the spacing, in degrees, between adjacent
// radials implied by the resolution code (1 => 0.5deg, else 1deg).
func (r *Radial) AzimuthResolutionSpacing() float32 {
	if r.AzimuthResolutionSpacingCode == 1 {
		return 0.5
	}
	return 1
}

// MomentByName returns the named moment and whether it is present on this
// radial. Unknown names report absent rather than panicking.
func (r *Radial) MomentByName(name string) (*Moment, bool) {
	switch name {
	case "REF":
		return r.REF, r.REF != nil
	case "VEL":
		return r.VEL, r.VEL != nil
	case "SW":
		return r.SW, r.SW != nil
	case "ZDR":
		return r.ZDR, r.ZDR != nil
	case "PHI":
		return r.PHI, r.PHI != nil
	case "RHO":
		return r.RHO, r.RHO != nil
	case "CFP":
		return r.CFP, r.CFP != nil
	}
	return nil, false
}

func (r *Radial) setMoment(name string, m *Moment) {
	switch name {
	case "REF":
		r.REF = m
	case "VEL":
		r.VEL = m
	case "SW":
		r.SW = m
	case "ZDR":
		r.ZDR = m
	case "PHI":
		r.PHI = m
	case "RHO":
		r.RHO = m
	case "CFP":
		r.CFP = m
	}
}

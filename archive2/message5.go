package archive2

// message5HeaderLength is the size, in bytes, of the VCP pattern header
// that precedes the per-cut parameter records (User 3.2.4.5).
const message5HeaderLength = 22

// message5CutLength is the size, in bytes, of one per-cut parameter record.
const message5CutLength = 46

// CoveragePattern is the file's Volume Coverage Pattern definition, decoded
// from a Message 5 record. It is authoritative for target elevation angles
// when present; a given radial's actual elevation angle may differ slightly.
type CoveragePattern struct {
	PatternType      uint16
	PatternNumber    uint16
	NumCuts          uint16
	ClutterMapGroup  uint16
	DopplerVelResolution uint8
	PulseWidth       uint8
	Cuts             []CoveragePatternCut
}

// CoveragePatternCut is one elevation cut's scheduling parameters.
type CoveragePatternCut struct {
	ElevationAngleRaw     uint16 // scaled by 360/65536 to obtain degrees
	ChannelConfig         uint8
	WaveformType          uint8
	SuperResolutionFlags  uint8
	PRFNumber             uint8
	PRFPulseCount         uint16
	AzimuthRate           uint16
	ReflectivityThreshold int16
	VelocityThreshold     int16
	SpectrumWidthThreshold int16
	ZDRThreshold          int16
	PHIThreshold          int16
	RHOThreshold          int16
	EdgeAngle             [3]uint16
	DopplerPRFNumber      [3]uint16
	DopplerPRFPulseCount  [3]uint16
}

// ElevationAngleDegrees converts the raw binary angle to degrees (P6).
func (c CoveragePatternCut) ElevationAngleDegrees() float64 {
	return float64(c.ElevationAngleRaw) * 360.0 / 65536.0
}

func decodeMessage5(body []byte) (*CoveragePattern, error) {
	r := newReader(body)

	vcp := &CoveragePattern{}
	var err error
	if vcp.PatternType, err = r.u16(); err != nil {
		return nil, err
	}
	if vcp.PatternNumber, err = r.u16(); err != nil {
		return nil, err
	}
	if vcp.NumCuts, err = r.u16(); err != nil {
		return nil, err
	}
	if vcp.ClutterMapGroup, err = r.u16(); err != nil {
		return nil, err
	}
	if vcp.DopplerVelResolution, err = r.u8(); err != nil {
		return nil, err
	}
	if vcp.PulseWidth, err = r.u8(); err != nil {
		return nil, err
	}
	if err := r.skip(message5HeaderLength - 10); err != nil {
		return nil, err
	}

	vcp.Cuts = make([]CoveragePatternCut, vcp.NumCuts)
	for i := range vcp.Cuts {
		cut, err := decodeCoveragePatternCut(r)
		if err != nil {
			return nil, err
		}
		vcp.Cuts[i] = cut
	}

	return vcp, nil
}

func decodeCoveragePatternCut(r *reader) (CoveragePatternCut, error) {
	var c CoveragePatternCut
	var err error
	if c.ElevationAngleRaw, err = r.u16(); err != nil {
		return c, err
	}
	if c.ChannelConfig, err = r.u8(); err != nil {
		return c, err
	}
	if c.WaveformType, err = r.u8(); err != nil {
		return c, err
	}
	if c.SuperResolutionFlags, err = r.u8(); err != nil {
		return c, err
	}
	if c.PRFNumber, err = r.u8(); err != nil {
		return c, err
	}
	if c.PRFPulseCount, err = r.u16(); err != nil {
		return c, err
	}
	if c.AzimuthRate, err = r.u16(); err != nil {
		return c, err
	}
	if c.ReflectivityThreshold, err = r.i16(); err != nil {
		return c, err
	}
	if c.VelocityThreshold, err = r.i16(); err != nil {
		return c, err
	}
	if c.SpectrumWidthThreshold, err = r.i16(); err != nil {
		return c, err
	}
	if c.ZDRThreshold, err = r.i16(); err != nil {
		return c, err
	}
	if c.PHIThreshold, err = r.i16(); err != nil {
		return c, err
	}
	if c.RHOThreshold, err = r.i16(); err != nil {
		return c, err
	}
	for i := 0; i < 3; i++ {
		if c.EdgeAngle[i], err = r.u16(); err != nil {
			return c, err
		}
		if c.DopplerPRFNumber[i], err = r.u16(); err != nil {
			return c, err
		}
		if c.DopplerPRFPulseCount[i], err = r.u16(); err != nil {
			return c, err
		}
		if _, err := r.u16(); err != nil { // spare
			return c, err
		}
	}
	return c, nil
}

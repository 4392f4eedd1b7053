package archive2

import "strings"

// message31HeaderLength is the fixed portion of a Message 31 radial header,
// identification quartet through the ten block pointers: 32 bytes of
// identification/geometry fields plus ten 4-byte pointers (User 3.2.4.17).
const message31HeaderLength = 72

const numMessage31Pointers = 10

// decodeMessage31 decodes one modern variable-block radial from body, which
// must be exactly header.Size*2-4 bytes (the message payload, header
// excluded). Pointers are offsets relative to the start of body.
func decodeMessage31(body []byte) (*Radial, error) {
	r := newReader(body)

	if _, err := r.str(4); err != nil { // RadarIdentifier (ICAO)
		return nil, err
	}
	collMs, err := r.u32()
	if err != nil {
		return nil, err
	}
	collDate, err := r.u16()
	if err != nil {
		return nil, err
	}
	azNum, err := r.u16()
	if err != nil {
		return nil, err
	}
	azAngle, err := r.f32()
	if err != nil {
		return nil, err
	}
	if _, err := r.u8(); err != nil { // CompressionIndicator
		return nil, err
	}
	if _, err := r.u8(); err != nil { // Spare
		return nil, err
	}
	if _, err := r.u16(); err != nil { // RadialLength
		return nil, err
	}
	azResCode, err := r.u8()
	if err != nil {
		return nil, err
	}
	if _, err := r.u8(); err != nil { // RadialStatus
		return nil, err
	}
	elvNum, err := r.u8()
	if err != nil {
		return nil, err
	}
	if _, err := r.u8(); err != nil { // CutSectorNumber
		return nil, err
	}
	elvAngle, err := r.f32()
	if err != nil {
		return nil, err
	}
	if _, err := r.u8(); err != nil { // RadialSpotBlankingStatus
		return nil, err
	}
	if _, err := r.u8(); err != nil { // AzimuthIndexingMode
		return nil, err
	}
	blockCount, err := r.u16()
	if err != nil {
		return nil, err
	}

	pointers := make([]uint32, numMessage31Pointers)
	for i := 0; i < numMessage31Pointers; i++ {
		p, err := r.u32()
		if err != nil {
			return nil, err
		}
		pointers[i] = p
	}

	rad := &Radial{
		ElevationNumber:              elvNum,
		AzimuthNumber:                azNum,
		AzimuthAngle:                 azAngle,
		ElevationAngle:               elvAngle,
		CollectionDate:               collDate,
		CollectionMs:                 collMs,
		AzimuthResolutionSpacingCode: azResCode,
	}

	used := 0
	for i := 0; i < numMessage31Pointers && used < int(blockCount); i++ {
		ptr := pointers[i]
		if ptr == 0 {
			continue
		}
		used++

		name, err := r.peekStr(int(ptr)+1, 3)
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)

		br := newReader(body)
		if err := br.skip(int(ptr) + 4); err != nil {
			return nil, err
		}

		switch name {
		case "VOL":
			vol, err := decodeVolumeDataBlock(br)
			if err != nil {
				return nil, err
			}
			rad.VOL = vol
		case "ELV":
			elv, err := decodeElevationDataBlock(br)
			if err != nil {
				return nil, err
			}
			rad.ELV = elv
		case "RAD":
			radData, err := decodeRadialDataBlock(br)
			if err != nil {
				return nil, err
			}
			rad.RAD = radData
		case "REF", "VEL", "SW", "ZDR", "PHI", "RHO", "CFP":
			m, err := decodeGenericDataBlock(br)
			if err != nil {
				return nil, err
			}
			rad.setMoment(name, m)
		}
	}

	return rad, nil
}

func decodeVolumeDataBlock(r *reader) (*VolumeData, error) {
	v := &VolumeData{}
	var err error
	if _, err = r.u16(); err != nil { // LRTUP
		return nil, err
	}
	if v.VersionMajor, err = r.u8(); err != nil {
		return nil, err
	}
	if v.VersionMinor, err = r.u8(); err != nil {
		return nil, err
	}
	if v.Lat, err = r.f32(); err != nil {
		return nil, err
	}
	if v.Lon, err = r.f32(); err != nil {
		return nil, err
	}
	sh, err := r.i16()
	if err != nil {
		return nil, err
	}
	v.SiteHeight = sh
	fh, err := r.i16()
	if err != nil {
		return nil, err
	}
	v.FeedhornHeight = fh
	if v.CalibrationConstant, err = r.f32(); err != nil {
		return nil, err
	}
	if v.TXPowerHorz, err = r.f32(); err != nil {
		return nil, err
	}
	if v.TXPowerVert, err = r.f32(); err != nil {
		return nil, err
	}
	if v.SystemDifferentialReflectivity, err = r.f32(); err != nil {
		return nil, err
	}
	if v.InitialSystemDifferentialPhase, err = r.f32(); err != nil {
		return nil, err
	}
	if v.VCP, err = r.u16(); err != nil {
		return nil, err
	}
	if v.ProcessingStatus, err = r.u16(); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeElevationDataBlock(r *reader) (*ElevationData, error) {
	e := &ElevationData{}
	var err error
	if _, err = r.u16(); err != nil { // LRTUP
		return nil, err
	}
	if e.AtmosphericAttenuation, err = r.i16(); err != nil {
		return nil, err
	}
	if e.CalibrationConstant, err = r.f32(); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeRadialDataBlock(r *reader) (*RadialData, error) {
	d := &RadialData{}
	var err error
	if _, err = r.u16(); err != nil { // LRTUP
		return nil, err
	}
	if d.UnambiguousRangeDecameters, err = r.u16(); err != nil {
		return nil, err
	}
	if d.NoiseLevelHorz, err = r.f32(); err != nil {
		return nil, err
	}
	if d.NoiseLevelVert, err = r.f32(); err != nil {
		return nil, err
	}
	nv, err := r.i16()
	if err != nil {
		return nil, err
	}
	d.NyquistVelocityRaw = nv
	if err := r.skip(2); err != nil { // Spares
		return nil, err
	}
	if d.CalibConstHorzChan, err = r.f32(); err != nil {
		return nil, err
	}
	if d.CalibConstVertChan, err = r.f32(); err != nil {
		return nil, err
	}
	return d, nil
}

// decodeGenericDataBlock decodes the 28-byte generic moment header and its
// trailing ngates*wordSize/8 byte gate array (User 3.2.4.17.2/17.6).
func decodeGenericDataBlock(r *reader) (*Moment, error) {
	m := &Moment{}
	if err := r.skip(4); err != nil { // Reserved
		return nil, err
	}
	ngates, err := r.u16()
	if err != nil {
		return nil, err
	}
	m.NGates = int(ngates)
	fg, err := r.i16()
	if err != nil {
		return nil, err
	}
	m.FirstGate = int32(fg)
	gs, err := r.i16()
	if err != nil {
		return nil, err
	}
	m.GateSpacing = int32(gs)
	if err := r.skip(2); err != nil { // TOVER
		return nil, err
	}
	if err := r.skip(2); err != nil { // SNRThreshold
		return nil, err
	}
	if err := r.skip(1); err != nil { // ControlFlags
		return nil, err
	}
	ws, err := r.u8()
	if err != nil {
		return nil, err
	}
	m.WordSize = ws
	if m.Scale, err = r.f32(); err != nil {
		return nil, err
	}
	if m.Offset, err = r.f32(); err != nil {
		return nil, err
	}

	dataBytes := m.NGates * int(m.WordSize) / 8
	raw, err := r.bytes(dataBytes)
	if err != nil {
		return nil, err
	}
	m.Raw = raw
	return m, nil
}

package archive2

// message1HeaderLength is the size, in bytes, of the legacy fixed radial
// header that immediately follows the 16-byte message header.
const message1HeaderLength = 100

// Legacy Message 1 implicit scale/offset table (User Table II); unlike
// Message 31, these never travel with the record and are a convention of
// the format itself.
const (
	legacyREFScale  = 2.0
	legacyREFOffset = 66.0
	legacyVELOffset = 129.0
	legacySWScale   = 2.0
	legacySWOffset  = 129.0
)

// decodeMessage1 decodes one legacy fixed-record radial. record must start
// at the 16-byte message header and run to the end of the record's
// 2432-byte stride (2420 bytes, the 12-byte CTM header excluded), since the
// embedded moment pointers are offsets relative to that start.
func decodeMessage1(record []byte) (*Radial, error) {
	r := newReader(record)
	if err := r.skip(16); err != nil { // message header, already parsed by the caller
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
	unambigRange, err := r.u16()
	if err != nil {
		return nil, err
	}
	azCode, err := r.u16()
	if err != nil {
		return nil, err
	}
	azNum, err := r.u16()
	if err != nil {
		return nil, err
	}
	if _, err := r.u16(); err != nil { // RadialStatus
		return nil, err
	}
	elvCode, err := r.i16()
	if err != nil {
		return nil, err
	}
	elvNum, err := r.u16()
	if err != nil {
		return nil, err
	}
	surFirstGate, err := r.i16()
	if err != nil {
		return nil, err
	}
	dopFirstGate, err := r.i16()
	if err != nil {
		return nil, err
	}
	surGateSpacing, err := r.i16()
	if err != nil {
		return nil, err
	}
	dopGateSpacing, err := r.i16()
	if err != nil {
		return nil, err
	}
	surNBins, err := r.u16()
	if err != nil {
		return nil, err
	}
	dopNBins, err := r.u16()
	if err != nil {
		return nil, err
	}
	if _, err := r.i16(); err != nil { // CutSectorNumber
		return nil, err
	}
	if _, err := r.f32(); err != nil { // CalibConst
		return nil, err
	}
	surPointer, err := r.u16()
	if err != nil {
		return nil, err
	}
	velPointer, err := r.u16()
	if err != nil {
		return nil, err
	}
	widthPointer, err := r.u16()
	if err != nil {
		return nil, err
	}
	dopplerResolution, err := r.u16()
	if err != nil {
		return nil, err
	}
	if _, err := r.u16(); err != nil { // VCP
		return nil, err
	}
	nyquistVel, err := r.i16()
	if err != nil {
		return nil, err
	}

	rad := &Radial{
		ElevationNumber:              uint8(elvNum),
		AzimuthNumber:                azNum,
		AzimuthAngle:                 float32(azCode) / 8.0,
		ElevationAngle:               float32(elvCode) / 8.0,
		CollectionDate:               collDate,
		CollectionMs:                 collMs,
		AzimuthResolutionSpacingCode: 2, // legacy radials are always 1deg resolution
		RAD: &RadialData{
			UnambiguousRangeDecameters: unambigRange,
			NyquistVelocityRaw:         nyquistVel,
		},
	}

	if surPointer != 0 && surNBins > 0 {
		data, err := readLegacyMoment(record, int(surPointer), int(surNBins))
		if err != nil {
			return nil, err
		}
		rad.REF = &Moment{
			NGates:      int(surNBins),
			FirstGate:   int32(surFirstGate),
			GateSpacing: int32(surGateSpacing),
			WordSize:    8,
			Scale:       legacyREFScale,
			Offset:      legacyREFOffset,
			Raw:         data,
		}
	}

	velScale := float32(1.0)
	if dopplerResolution == 2 {
		velScale = 2.0
	}

	if velPointer != 0 && dopNBins > 0 {
		data, err := readLegacyMoment(record, int(velPointer), int(dopNBins))
		if err != nil {
			return nil, err
		}
		rad.VEL = &Moment{
			NGates:      int(dopNBins),
			FirstGate:   int32(dopFirstGate),
			GateSpacing: int32(dopGateSpacing),
			WordSize:    8,
			Scale:       velScale,
			Offset:      legacyVELOffset,
			Raw:         data,
		}
	}

	if widthPointer != 0 && dopNBins > 0 {
		data, err := readLegacyMoment(record, int(widthPointer), int(dopNBins))
		if err != nil {
			return nil, err
		}
		rad.SW = &Moment{
			NGates:      int(dopNBins),
			FirstGate:   int32(dopFirstGate),
			GateSpacing: int32(dopGateSpacing),
			WordSize:    8,
			Scale:       legacySWScale,
			Offset:      legacySWOffset,
			Raw:         data,
		}
	}

	return rad, nil
}

// readLegacyMoment reads an 8-bit gate array of length n starting at byte
// offset off relative to the start of record (i.e. the 16-byte message
// header).
func readLegacyMoment(record []byte, off, n int) ([]byte, error) {
	if off < 0 || off+n > len(record) {
		return nil, errBufferTooShort
	}
	out := make([]byte, n)
	copy(out, record[off:off+n])
	return out, nil
}

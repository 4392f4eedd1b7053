package archive2

// splitResult is the yield of walking the decompressed payload: the two
// possible radial record kinds (kept separate since Message 31 is
// authoritative when both are present), plus the file's coverage pattern
// from whichever source supplied it.
type splitResult struct {
	modernRadials []*Radial
	legacyRadials []*Radial
	vcp           *CoveragePattern
	vcpFromM2     uint16 // fallback VCP number from a Message 2, 0 if absent
}

// splitRecords walks the decompressed payload P from offset 0, dispatching
// each record by its message header's type, until the remaining payload
// cannot hold another message header.
func splitRecords(payload []byte) (splitResult, error) {
	var res splitResult

	pos := 0
	for pos+legacyCTMHeaderLength+16 <= len(payload) {
		headerStart := pos + legacyCTMHeaderLength
		hr := newReader(payload[headerStart:])
		header, err := decodeMessageHeader(hr)
		if err != nil {
			break
		}

		switch header.Type {
		case 31:
			bodyLen := int(header.Size)*2 - 4
			bodyStart := headerStart + 16
			if bodyLen < 0 || bodyStart+bodyLen > len(payload) {
				return res, errBufferTooShort
			}
			radial, err := decodeMessage31(payload[bodyStart : bodyStart+bodyLen])
			if err != nil {
				return res, err
			}
			res.modernRadials = append(res.modernRadials, radial)
			pos = bodyStart + bodyLen
		case 1:
			recordEnd := pos + legacyRecordStride
			if recordEnd > len(payload) {
				return res, errBufferTooShort
			}
			radial, err := decodeMessage1(payload[headerStart : headerStart+legacyRecordStride-legacyCTMHeaderLength])
			if err != nil {
				return res, err
			}
			res.legacyRadials = append(res.legacyRadials, radial)
			pos = recordEnd
		case 5:
			recordEnd := pos + legacyRecordStride
			if recordEnd > len(payload) {
				return res, errBufferTooShort
			}
			bodyStart := headerStart + 16
			vcp, err := decodeMessage5(payload[bodyStart:recordEnd])
			if err != nil {
				return res, err
			}
			res.vcp = vcp
			pos = recordEnd
		case 2:
			recordEnd := pos + legacyRecordStride
			if recordEnd > len(payload) {
				return res, nil
			}
			bodyStart := headerStart + 16
			mr := newReader(payload[bodyStart:recordEnd])
			m2, err := decodeMessage2(mr)
			if err == nil && res.vcpFromM2 == 0 {
				res.vcpFromM2 = m2.VolumeCoveragePatternNum
			}
			pos = recordEnd
		default:
			pos += legacyRecordStride
		}
	}

	return res, nil
}

package archive2

// RadarFile is the fully decoded, owned in-memory model of one NEXRAD Level
// II archive. It holds no reference to the input buffer or any
// decompression intermediate; it is safe to use after the input bytes are
// released.
type RadarFile struct {
	VolumeHeader VolumeHeader
	Radials      []*Radial
	IsLegacy     bool
	VCP          *CoveragePattern
	vcpFromM2    uint16

	Scans []Scan
}

// Decode parses the raw bytes of a NEXRAD Level II archive file into a
// RadarFile. It is the sole entry point of the core decoder: the container
// de-framer, record splitter, and scan indexer all run synchronously within
// this call, and nothing in the returned RadarFile aliases buf.
func Decode(buf []byte) (*RadarFile, error) {
	vh, payload, err := deframe(buf)
	if err != nil {
		return nil, err
	}

	split, err := splitRecords(payload)
	if err != nil {
		return nil, err
	}

	rf := &RadarFile{
		VolumeHeader: vh,
		VCP:          split.vcp,
		vcpFromM2:    split.vcpFromM2,
	}

	if len(split.modernRadials) > 0 {
		rf.Radials = split.modernRadials
	} else {
		rf.Radials = split.legacyRadials
		rf.IsLegacy = true
	}

	rf.Scans = indexScans(rf.Radials)

	return rf, nil
}

// ScanCount returns the number of distinct elevation scans reconstructed
// from the radial stream.
func (rf *RadarFile) ScanCount() int {
	return len(rf.Scans)
}

// VCPPattern returns the file's Volume Coverage Pattern number, preferring
// an explicit Message 5 definition, then a Message 31 VOL block, then a
// Message 2 status record as a last resort. It returns 0 if none of those
// sources are present.
func (rf *RadarFile) VCPPattern() uint16 {
	if rf.VCP != nil {
		return rf.VCP.PatternNumber
	}
	for _, r := range rf.Radials {
		if r.VOL != nil {
			return r.VOL.VCP
		}
	}
	return rf.vcpFromM2
}

// Location is the radar site's geodetic position, sourced from the first
// radial carrying a VOL block. ok is false if no radial carries one (always
// the case for legacy Message 1 files).
type Location struct {
	Lat, Lon   float32
	SiteHeight int16
	FeedhornHeight int16
}

// Location returns the radar's published geodetic position, if a VOL block
// is present on any radial.
func (rf *RadarFile) Location() (Location, bool) {
	for _, r := range rf.Radials {
		if r.VOL != nil {
			return Location{
				Lat:            r.VOL.Lat,
				Lon:            r.VOL.Lon,
				SiteHeight:     r.VOL.SiteHeight,
				FeedhornHeight: r.VOL.FeedhornHeight,
			}, true
		}
	}
	return Location{}, false
}

// MomentGeometry is the per-moment gate geometry carried by a scan: the
// scan's first radial's moment block, treated as authoritative for the
// whole scan.
type MomentGeometry struct {
	NGates      int
	FirstGate   int32
	GateSpacing int32
}

// ScanInfo is the set of per-moment geometries present on one scan, plus
// its elevation number.
type ScanInfo struct {
	ElevationNumber int
	Moments         map[string]MomentGeometry
}

var knownMomentNames = []string{"REF", "VEL", "SW", "ZDR", "PHI", "RHO", "CFP"}

// ScanInfo returns, for each selected scan, the elevation number and the
// gate geometry of every moment present, sourced from the scan's first
// radial.
func (rf *RadarFile) ScanInfo(scans []int) []ScanInfo {
	out := make([]ScanInfo, 0)
	for _, k := range rf.selectedScanIndices(scans) {
		scan := rf.Scans[k]
		info := ScanInfo{ElevationNumber: scan.ElevationNumber, Moments: make(map[string]MomentGeometry)}
		if len(scan.RadialIndices) > 0 {
			first := rf.Radials[scan.RadialIndices[0]]
			for _, name := range knownMomentNames {
				if m, ok := first.MomentByName(name); ok && m != nil {
					info.Moments[name] = MomentGeometry{NGates: m.NGates, FirstGate: m.FirstGate, GateSpacing: m.GateSpacing}
				}
			}
		}
		out = append(out, info)
	}
	return out
}

// selectedScanIndices turns an optional scan selection into the concrete
// list of valid indices into rf.Scans to operate over: nil/empty means "all
// scans, in scan order." Out-of-range indices are silently dropped
// (ScanOutOfRange returns empty, it is never an error).
func (rf *RadarFile) selectedScanIndices(scans []int) []int {
	if len(scans) == 0 {
		out := make([]int, len(rf.Scans))
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, len(scans))
	for _, idx := range scans {
		if idx < 0 || idx >= len(rf.Scans) {
			continue
		}
		out = append(out, idx)
	}
	return out
}

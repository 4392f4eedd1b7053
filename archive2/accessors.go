package archive2

import (
	"math"
	"time"
)

// GetRange returns the length-ngates sequence of range-to-gate-center
// values, in meters, for the named moment on the given scan's geometry
// (taken from the scan's first radial, per the invariant that a scan's
// per-moment geometry is constant across its radials). Requesting an
// out-of-range scan returns an empty sequence without error (P1).
func (rf *RadarFile) GetRange(scanIdx int, moment string) ([]float64, error) {
	if scanIdx < 0 || scanIdx >= len(rf.Scans) {
		return []float64{}, nil
	}
	scan := rf.Scans[scanIdx]
	if len(scan.RadialIndices) == 0 {
		return []float64{}, nil
	}
	first := rf.Radials[scan.RadialIndices[0]]
	m, ok := first.MomentByName(moment)
	if !ok || m == nil {
		return nil, &MomentNotPresentError{Moment: moment}
	}
	out := make([]float64, m.NGates)
	for i := range out {
		out[i] = float64(m.FirstGate) + float64(i)*float64(m.GateSpacing)
	}
	return out, nil
}

// GetAzimuthAngles returns the azimuth angle, in degrees, of every radial in
// the selected scans, flattened in scan order then within-scan order.
func (rf *RadarFile) GetAzimuthAngles(scans []int) []float32 {
	out := make([]float32, 0)
	for _, k := range rf.selectedScanIndices(scans) {
		for _, idx := range rf.Scans[k].RadialIndices {
			out = append(out, rf.Radials[idx].AzimuthAngle)
		}
	}
	return out
}

// GetElevationAngles returns the elevation angle, in degrees, of every
// radial in the selected scans, flattened the same way as GetAzimuthAngles.
func (rf *RadarFile) GetElevationAngles(scans []int) []float32 {
	out := make([]float32, 0)
	for _, k := range rf.selectedScanIndices(scans) {
		for _, idx := range rf.Scans[k].RadialIndices {
			out = append(out, rf.Radials[idx].ElevationAngle)
		}
	}
	return out
}

// GetTargetAngles returns, for each selected scan, the coverage pattern's
// scheduled elevation angle in degrees (P6). A scan with no corresponding
// cut (no VCP present, or fewer cuts than scans) reports NaN.
func (rf *RadarFile) GetTargetAngles(scans []int) []float64 {
	out := make([]float64, 0)
	for _, k := range rf.selectedScanIndices(scans) {
		if rf.VCP == nil || k >= len(rf.VCP.Cuts) {
			out = append(out, math.NaN())
			continue
		}
		out = append(out, rf.VCP.Cuts[k].ElevationAngleDegrees())
	}
	return out
}

// GetNyquistVel returns, for each selected scan, the Nyquist velocity in
// m/s taken from the scan's first radial's RAD block (or legacy
// equivalent). NaN stands in for "null" when no RAD data is present.
func (rf *RadarFile) GetNyquistVel(scans []int) []float64 {
	out := make([]float64, 0)
	for _, k := range rf.selectedScanIndices(scans) {
		out = append(out, rf.firstRadialRAD(k, func(d *RadialData) float64 {
			return d.NyquistVelocityMetersPerSec()
		}))
	}
	return out
}

// GetUnambiguousRange returns, for each selected scan, the unambiguous
// range in meters taken from the scan's first radial's RAD block (or
// legacy equivalent). NaN stands in for "null" when absent.
func (rf *RadarFile) GetUnambiguousRange(scans []int) []float64 {
	out := make([]float64, 0)
	for _, k := range rf.selectedScanIndices(scans) {
		out = append(out, rf.firstRadialRAD(k, func(d *RadialData) float64 {
			return d.UnambiguousRangeMeters()
		}))
	}
	return out
}

func (rf *RadarFile) firstRadialRAD(scanIdx int, extract func(*RadialData) float64) float64 {
	scan := rf.Scans[scanIdx]
	if len(scan.RadialIndices) == 0 {
		return math.NaN()
	}
	rad := rf.Radials[scan.RadialIndices[0]].RAD
	if rad == nil {
		return math.NaN()
	}
	return extract(rad)
}

// TimeSeries is the result of GetTimes: a base instant plus a per-ray
// second offset from that instant.
type TimeSeries struct {
	Base          time.Time
	OffsetSeconds []float64
}

// GetTimes returns the collection time of every radial in the selected
// scans as an offset, in seconds, from the volume's base instant (P7).
func (rf *RadarFile) GetTimes(scans []int) TimeSeries {
	baseMs := float64(rf.VolumeHeader.ModifiedMillis)
	ts := TimeSeries{Base: rf.VolumeHeader.Time(), OffsetSeconds: make([]float64, 0)}
	for _, k := range rf.selectedScanIndices(scans) {
		for _, idx := range rf.Scans[k].RadialIndices {
			r := rf.Radials[idx]
			ts.OffsetSeconds = append(ts.OffsetSeconds, (float64(r.CollectionMs)-baseMs)/1000.0)
		}
	}
	return ts
}

// GetData returns a [total_rays x maxNGates] array of decoded values for
// the named moment across the selected scans. A moment absent from every
// radial in the selection raises MomentNotPresent; a moment absent from a
// particular ray fills that ray's row entirely with the missing sentinel.
// Raw codes 0 and 1 always decode to the missing sentinel, regardless of
// raw.
func (rf *RadarFile) GetData(moment string, maxNGates int, scans []int, raw bool) ([][]float32, error) {
	indices := rf.selectedScanIndices(scans)

	present := false
	for _, k := range indices {
		for _, idx := range rf.Scans[k].RadialIndices {
			if m, ok := rf.Radials[idx].MomentByName(moment); ok && m != nil {
				present = true
				break
			}
		}
		if present {
			break
		}
	}
	if !present {
		return nil, &MomentNotPresentError{Moment: moment}
	}

	rows := make([][]float32, 0)
	for _, k := range indices {
		for _, idx := range rf.Scans[k].RadialIndices {
			row := make([]float32, maxNGates)
			m, ok := rf.Radials[idx].MomentByName(moment)
			if !ok || m == nil {
				for i := range row {
					row[i] = momentMissing
				}
			} else {
				for i := 0; i < maxNGates; i++ {
					row[i] = m.Value(i, raw)
				}
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

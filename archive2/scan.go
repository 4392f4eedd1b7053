package archive2

import "sort"

// Scan is one elevation sweep, reconstructed from the unsegmented stream of
// radials by grouping on elevation number. Indices reference the flat
// radial slice in RadarFile, in the order radials were encountered.
type Scan struct {
	ElevationNumber int
	RadialIndices   []int
}

// indexScans partitions radials into scans keyed by ElevationNumber,
// preserving each radial's first-seen order within its bucket, then returns
// the buckets sorted by ElevationNumber ascending (P4, P5).
func indexScans(radials []*Radial) []Scan {
	order := make([]int, 0)
	buckets := make(map[int][]int)

	for i, r := range radials {
		key := int(r.ElevationNumber)
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], i)
	}

	scans := make([]Scan, 0, len(order))
	for _, key := range order {
		scans = append(scans, Scan{ElevationNumber: key, RadialIndices: buckets[key]})
	}

	sort.Slice(scans, func(i, j int) bool {
		return scans[i].ElevationNumber < scans[j].ElevationNumber
	})

	return scans
}

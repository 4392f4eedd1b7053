// Package archive2 provides structs and functions for decoding NEXRAD Archive II files.
//
// The documents used and referenced in this package:
//  • RDA/RPG: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620002T.pdf (high level details)
//  • User: https://www.roc.noaa.gov/wsr88d/PublicDocs/ICDs/2620010H.pdf (bulk of the format)
package archive2

import "time"

const (
	// legacyCTMHeaderLength sits in front of every message header in the
	// decompressed payload (RDA/RPG 7.3.4), and is always zeroed padding.
	legacyCTMHeaderLength = 12

	// legacyRecordStride is the size of every Message 1 / Message 5 record,
	// header included, regardless of its contents (User 3.2.1).
	legacyRecordStride = 2432
)

// VolumeHeader is the fixed 24-byte prefix of every Archive II file
// (RDA/RPG 7.3.3).
type VolumeHeader struct {
	TapeFilename    string // 9 raw bytes, e.g. "AR2V0006."
	ExtensionNumber string // e.g. "001" (cycles through 000-999)
	ModifiedJulian  int32  // data's valid date, Modified Julian Date
	ModifiedMillis  int32  // data's valid time, milliseconds past midnight
	ICAO            string // radar site identifier, e.g. "KHGX"
}

func decodeVolumeHeader(r *reader) (VolumeHeader, error) {
	var vh VolumeHeader
	var err error
	if vh.TapeFilename, err = r.str(9); err != nil {
		return vh, err
	}
	if vh.ExtensionNumber, err = r.str(3); err != nil {
		return vh, err
	}
	if vh.ModifiedJulian, err = r.i32(); err != nil {
		return vh, err
	}
	if vh.ModifiedMillis, err = r.i32(); err != nil {
		return vh, err
	}
	if vh.ICAO, err = r.str(4); err != nil {
		return vh, err
	}
	return vh, nil
}

// Filename reconstructs the archive's original tape filename.
func (vh VolumeHeader) Filename() string {
	return vh.TapeFilename + vh.ExtensionNumber
}

// Time returns the instant this volume's data is valid for, derived from the
// Modified Julian Date plus the millisecond-of-day offset.
func (vh VolumeHeader) Time() time.Time {
	// Modified Julian Date epoch is 1858-11-17.
	epoch := time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)
	return epoch.
		Add(time.Duration(vh.ModifiedJulian) * 24 * time.Hour).
		Add(time.Duration(vh.ModifiedMillis) * time.Millisecond)
}

// messageHeader precedes every record in the decompressed payload
// (User 3.2.4.1).
type messageHeader struct {
	Size     uint16 // halfwords of payload, excluding this header
	Channels uint8
	Type     uint8
	SeqID    uint16
	Date     uint16
	Millis   uint32
	Segments uint16
	SegNum   uint16
}

func decodeMessageHeader(r *reader) (messageHeader, error) {
	var h messageHeader
	var err error
	if h.Size, err = r.u16(); err != nil {
		return h, err
	}
	if h.Channels, err = r.u8(); err != nil {
		return h, err
	}
	if h.Type, err = r.u8(); err != nil {
		return h, err
	}
	if h.SeqID, err = r.u16(); err != nil {
		return h, err
	}
	if h.Date, err = r.u16(); err != nil {
		return h, err
	}
	if h.Millis, err = r.u32(); err != nil {
		return h, err
	}
	if h.Segments, err = r.u16(); err != nil {
		return h, err
	}
	if h.SegNum, err = r.u16(); err != nil {
		return h, err
	}
	return h, nil
}

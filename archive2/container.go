package archive2

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/sirupsen/logrus"
)

// minStreamGap is the minimum distance, in bytes, the BZ2-header scan
// fallback requires between a resync point and the position it started
// scanning from, to avoid matching a "BZh"+digit sequence that occurs
// inside compressed data by coincidence.
const minStreamGap = 100

// compressionRecordLength is the size of the 12-byte record following the
// volume header that announces the file's compression scheme.
const compressionRecordLength = 12

type byteSpan struct {
	start, length int
}

// deframe parses the volume header and de-compresses the container,
// returning the decompressed payload P alongside the parsed header.
func deframe(b []byte) (VolumeHeader, []byte, error) {
	r := newReader(b)
	vh, err := decodeVolumeHeader(r)
	if err != nil {
		return vh, nil, err
	}

	if err := r.need(compressionRecordLength); err != nil {
		return vh, nil, err
	}
	discriminator, err := r.peekStr(r.pos+4, 2)
	if err != nil {
		return vh, nil, err
	}

	switch {
	case discriminator == "BZ":
		payload, err := deframeCompressed(b, r.pos)
		return vh, payload, err
	case discriminator == "\x00\x00" || discriminator == "\x09\x80":
		return vh, b[r.pos+compressionRecordLength:], nil
	default:
		var disc [2]byte
		copy(disc[:], discriminator)
		return vh, nil, &UnknownCompressionError{Discriminator: disc}
	}
}

// deframeCompressed splits, decompresses, and concatenates every BZ2 stream
// starting at offset start (the beginning of the compression record, which
// doubles as the first stream's control word), then drops the 12-byte
// compression record that the archive format re-embeds at the start of the
// decompressed result.
func deframeCompressed(b []byte, start int) ([]byte, error) {
	spans := locateStreams(b, start)

	var out bytes.Buffer
	failures := 0
	for i, span := range spans {
		data, err := decompressStream(b[span.start : span.start+span.length])
		if err != nil {
			logrus.Warnf("archive2: stream %d/%d failed to decompress (%d bytes): %v", i+1, len(spans), span.length, err)
			failures++
			continue
		}
		out.Write(data)
	}

	if len(spans) == 0 || failures == len(spans) {
		return nil, &DecompressionFailedError{Streams: len(spans)}
	}

	payload := out.Bytes()
	if len(payload) < compressionRecordLength {
		return nil, errBufferTooShort
	}
	return payload[compressionRecordLength:], nil
}

func decompressStream(data []byte) ([]byte, error) {
	zr, err := bzip2.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// locateStreams frames every BZ2 stream in b starting at start, using the
// 4-byte control word preceding each stream as the authoritative delimiter
// and falling back to scanning for the next "BZh"+digit magic only when the
// control word fails to validate (Open Question in the format's design
// notes: the control word is primary, the magic-byte scan a fallback).
func locateStreams(b []byte, start int) []byteSpan {
	var spans []byteSpan
	pos := start
	for pos+4 <= len(b) {
		if length, ok := validControlWord(b, pos); ok {
			spans = append(spans, byteSpan{pos + 4, length})
			pos += 4 + length
			continue
		}

		next := scanForBZhHeader(b, pos)
		if next < 0 {
			break
		}
		pos = next
	}
	return spans
}

func validControlWord(b []byte, pos int) (int, bool) {
	if pos+4 > len(b) {
		return 0, false
	}
	raw := int32(binary.BigEndian.Uint32(b[pos : pos+4]))
	n := int(raw)
	if n < 0 {
		n = -n
	}
	streamStart := pos + 4
	if n <= 0 || streamStart+n > len(b) {
		return 0, false
	}
	if !looksLikeBZh(b, streamStart) {
		return 0, false
	}
	return n, true
}

// scanForBZhHeader finds the next plausible stream start at or after from,
// requiring at least minStreamGap bytes of separation, and returns the
// position of the 4-byte control word that precedes the discovered magic.
func scanForBZhHeader(b []byte, from int) int {
	for i := from + minStreamGap; i+4 <= len(b); i++ {
		if looksLikeBZh(b, i) && i-4 >= from {
			return i - 4
		}
	}
	return -1
}

func looksLikeBZh(b []byte, pos int) bool {
	if pos+4 > len(b) {
		return false
	}
	return b[pos] == 'B' && b[pos+1] == 'Z' && b[pos+2] == 'h' && b[pos+3] >= '1' && b[pos+3] <= '9'
}

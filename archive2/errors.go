package archive2

import "fmt"

// errBufferTooShort is returned whenever a schema declares a span that runs
// past the end of the buffer being decoded.
var errBufferTooShort = fmt.Errorf("archive2: buffer too short")

// UnknownCompressionError is returned when the compression record's
// discriminator is neither "BZ", 00 00, nor 09 80.
type UnknownCompressionError struct {
	Discriminator [2]byte
}

func (e *UnknownCompressionError) Error() string {
	return fmt.Sprintf("archive2: unknown compression discriminator %#v", e.Discriminator)
}

// DecompressionFailedError is raised only when every BZ2 stream in the
// container failed to decompress; partial success is logged, not raised.
type DecompressionFailedError struct {
	Streams int
}

func (e *DecompressionFailedError) Error() string {
	return fmt.Sprintf("archive2: all %d compressed streams failed to decompress", e.Streams)
}

// MomentNotPresentError is raised by an accessor asked for a moment that is
// not present on any radial in the requested scan selection.
type MomentNotPresentError struct {
	Moment string
}

func (e *MomentNotPresentError) Error() string {
	return fmt.Sprintf("archive2: moment %q not present", e.Moment)
}

// IsBufferTooShort reports whether err is the sentinel returned when a
// schema required more bytes than remained in the buffer.
func IsBufferTooShort(err error) bool {
	return err == errBufferTooShort
}

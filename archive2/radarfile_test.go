package archive2

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putMessageHeader(buf *bytes.Buffer, msgType uint8, bodyLen int) {
	size := uint16((bodyLen + 4) / 2)
	putU16(buf, size)
	buf.WriteByte(0) // channels
	buf.WriteByte(msgType)
	putU16(buf, 0) // seq id
	putU16(buf, 20000)
	putU32(buf, 0)
	putU16(buf, 1) // segments
	putU16(buf, 1) // seg num
}

func buildArchiveBytes(bodies map[uint8][][]byte) []byte {
	var buf bytes.Buffer
	buf.Write(buildVolumeHeaderBytes("KHGX"))
	buf.Write(make([]byte, compressionRecordLength))

	for msgType, list := range bodies {
		for _, body := range list {
			buf.Write(make([]byte, legacyCTMHeaderLength))
			putMessageHeader(&buf, msgType, len(body))
			buf.Write(body)
		}
	}
	return buf.Bytes()
}

func TestDecode_EndToEndModernRadials(t *testing.T) {
	ref := buildGenericBlock("REF", 2, 0, 250, 8, 2.0, 66.0, []uint16{70, 72})
	body1 := buildMessage31Body(1, 10, map[string][]byte{"REF": ref})
	body2 := buildMessage31Body(1, 20, map[string][]byte{"REF": ref})
	body3 := buildMessage31Body(2, 10, map[string][]byte{"REF": ref})

	raw := buildArchiveBytes(map[uint8][][]byte{
		31: {body1, body2, body3},
	})

	rf, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "KHGX", rf.VolumeHeader.ICAO)
	assert.False(t, rf.IsLegacy)
	assert.Equal(t, 3, len(rf.Radials))
	assert.Equal(t, 2, rf.ScanCount())

	angles := rf.GetAzimuthAngles(nil)
	assert.Equal(t, []float32{10, 20, 10}, angles)

	rows, err := rf.GetData("REF", 2, nil, false)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.InDelta(t, 2.0, rows[0][0], 1e-6)
}

func TestDecode_MissingVolumeHeaderErrors(t *testing.T) {
	_, err := Decode([]byte("too short"))
	require.Error(t, err)
}

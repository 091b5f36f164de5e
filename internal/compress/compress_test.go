package compress

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zlibbed(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	payload := []byte("named binary payload")

	assert.Equal(t, FormatGzip, Detect(gzipped(t, payload)))
	assert.Equal(t, FormatZlib, Detect(zlibbed(t, payload)))
	assert.Equal(t, FormatNone, Detect(payload))
	assert.Equal(t, FormatNone, Detect(nil))
	assert.Equal(t, FormatNone, Detect([]byte{0x0A}))

	// 78 followed by a byte failing the FCHECK test is not zlib.
	assert.Equal(t, FormatNone, Detect([]byte{0x78, 0x00}))
}

func TestDecompressRoundTrip(t *testing.T) {
	payload := []byte{0x0A, 0x00, 0x00, 0x00}

	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"gzip", gzipped(t, payload)},
		{"zlib", zlibbed(t, payload)},
		{"none", payload},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := DecompressAuto(tc.data, 0)
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}
}

func TestDecompressLimit(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 1024)

	out, err := Decompress(gzipped(t, payload), FormatGzip, 2048)
	require.NoError(t, err)
	assert.Equal(t, payload, out)

	_, err = Decompress(gzipped(t, payload), FormatGzip, 100)
	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestDecompressCorruptStream(t *testing.T) {
	_, err := Decompress([]byte{0x1F, 0x8B, 0xFF, 0xFF}, FormatGzip, 0)
	assert.Error(t, err)
}

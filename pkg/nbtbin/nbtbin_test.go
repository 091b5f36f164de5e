package nbtbin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinfer/nbt-plugin/pkg/nbt"
	"github.com/twinfer/nbt-plugin/testutil"
)

func newTestDecoder(opts ...Option) *Decoder {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDecoder(append([]Option{WithLogger(logger)}, opts...)...)
}

// samplePayload is a root compound "hello" holding one of each common kind.
func samplePayload() []byte {
	return testutil.Root("hello").
		Named(1, "b").I8(-1).
		Named(3, "i").I32(42).
		Named(8, "s").Str("world").
		Named(7, "ba").I32(2).I8(1).I8(2).
		Named(9, "l").U8(2).I32(2).I16(10).I16(20).
		Named(10, "sub").Named(4, "big").I64(1 << 33).End().
		End().Bytes()
}

func sampleTree() map[string]any {
	return map[string]any{
		"hello": map[string]any{
			"b":  int8(-1),
			"i":  int32(42),
			"s":  "world",
			"ba": []int8{1, 2},
			"l":  []any{int16(10), int16(20)},
			"sub": map[string]any{
				"big": int64(1 << 33),
			},
		},
	}
}

func TestParseBinary(t *testing.T) {
	d := newTestDecoder()
	got, err := d.ParseBinary(context.Background(), samplePayload())
	require.NoError(t, err)

	if diff := cmp.Diff(sampleTree(), got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBinaryGzipped(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(samplePayload())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	d := newTestDecoder()
	got, err := d.ParseBinary(context.Background(), buf.Bytes())
	require.NoError(t, err)
	if diff := cmp.Diff(sampleTree(), got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBinaryZlibRequired(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(samplePayload())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	d := newTestDecoder(WithCompression(CompressionZlib))
	_, err = d.ParseBinary(context.Background(), buf.Bytes())
	require.NoError(t, err)

	// Raw payload handed to a zlib-only decoder fails at the envelope.
	_, err = d.ParseBinary(context.Background(), samplePayload())
	assert.Error(t, err)
}

func TestParseBinaryCompressionNone(t *testing.T) {
	d := newTestDecoder(WithCompression(CompressionNone))
	got, err := d.ParseBinary(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Contains(t, got, "hello")
}

func TestParseBinaryDecodeFailure(t *testing.T) {
	d := newTestDecoder()
	_, err := d.ParseBinary(context.Background(), []byte{0x0A, 0x00})
	assert.ErrorIs(t, err, nbt.ErrTruncated)
}

func TestParseBinaryContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := newTestDecoder()
	_, err := d.ParseBinary(ctx, samplePayload())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToJSON(t *testing.T) {
	d := newTestDecoder()
	out, err := d.ToJSON(context.Background(), samplePayload())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))

	hello, ok := decoded["hello"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), hello["i"])
	assert.Equal(t, "world", hello["s"])
	// []int8 must render as a JSON number array, not base64.
	assert.Equal(t, []any{float64(1), float64(2)}, hello["ba"])
}

func TestToSNBT(t *testing.T) {
	d := newTestDecoder()
	out, err := d.ToSNBT(context.Background(), testutil.Root("r").
		Named(3, "x").I32(7).
		End().Bytes())
	require.NoError(t, err)
	assert.Equal(t, "{r:{x:7}}", out)
}

func TestMaxDepthOption(t *testing.T) {
	b := testutil.Root("")
	for i := 0; i < 30; i++ {
		b.Named(10, "c")
	}
	for i := 0; i <= 30; i++ {
		b.End()
	}

	d := newTestDecoder(WithMaxDepth(4))
	_, err := d.ParseBinary(context.Background(), b.Bytes())
	assert.ErrorIs(t, err, nbt.ErrDepthExceeded)
}

func TestPackageLevelConvenience(t *testing.T) {
	got, err := ParseBinary(samplePayload())
	require.NoError(t, err)
	assert.Contains(t, got, "hello")

	snbt, err := ToSNBT(samplePayload())
	require.NoError(t, err)
	assert.Contains(t, snbt, "hello")
}

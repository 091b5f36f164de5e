// Package nbtbin provides a high-level API for turning named-binary-tag
// payloads into structured Go values.
//
// It wraps the strict tree decoder in pkg/nbt with the conveniences callers
// usually want: compression sniffing for gzip/zlib envelopes, conversion to
// plain map[string]any / []any trees, and JSON or SNBT text output.
//
// Basic usage:
//
//	// Decode a (possibly compressed) payload to a map
//	data, err := nbtbin.ParseBinary(rawBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render as JSON
//	jsonData, err := nbtbin.ToJSON(rawBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
package nbtbin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/twinfer/nbt-plugin/internal/compress"
	"github.com/twinfer/nbt-plugin/pkg/nbt"
)

// Compression selects how a payload's envelope is handled before decoding.
type Compression int

const (
	// CompressionAuto sniffs gzip/zlib magic bytes and inflates when found.
	CompressionAuto Compression = iota
	// CompressionNone passes the payload through untouched.
	CompressionNone
	// CompressionGzip requires a gzip envelope.
	CompressionGzip
	// CompressionZlib requires a zlib envelope.
	CompressionZlib
)

// Decoder turns binary payloads into structured values.
type Decoder struct {
	logger  *slog.Logger
	options options
}

type options struct {
	logger          *slog.Logger
	maxDepth        int
	compression     Compression
	maxInflatedSize int64
}

// Option is a function that configures decoder options.
type Option func(*options)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxDepth sets the maximum container nesting depth accepted by the
// decoder.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithCompression sets how compression envelopes are handled.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMaxInflatedSize caps the decompressed payload size in bytes. Zero or
// negative disables the cap.
func WithMaxInflatedSize(n int64) Option {
	return func(o *options) {
		o.maxInflatedSize = n
	}
}

func defaultOptions() options {
	return options{
		logger:          slog.Default(),
		maxDepth:        nbt.DefaultMaxDepth,
		compression:     CompressionAuto,
		maxInflatedSize: 512 << 20,
	}
}

// Global decoder instance for convenience functions
var (
	globalDecoder     *Decoder
	globalDecoderOnce sync.Once
)

func getGlobalDecoder() *Decoder {
	globalDecoderOnce.Do(func() {
		globalDecoder = NewDecoder()
	})
	return globalDecoder
}

// NewDecoder creates a new decoder instance with the given options.
func NewDecoder(opts ...Option) *Decoder {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Decoder{
		logger:  options.logger,
		options: options,
	}
}

// ParseBinary decodes a payload into a map[string]any tree.
func ParseBinary(data []byte, opts ...Option) (map[string]any, error) {
	return getGlobalDecoder().ParseBinary(context.Background(), data, opts...)
}

// ParseBinaryWithContext decodes a payload into a map[string]any tree with a
// context.
func ParseBinaryWithContext(ctx context.Context, data []byte, opts ...Option) (map[string]any, error) {
	return getGlobalDecoder().ParseBinary(ctx, data, opts...)
}

// ToJSON decodes a payload and renders it as indented JSON.
func ToJSON(data []byte, opts ...Option) ([]byte, error) {
	return getGlobalDecoder().ToJSON(context.Background(), data, opts...)
}

// ToSNBT decodes a payload and renders it in stringified tag form.
func ToSNBT(data []byte, opts ...Option) (string, error) {
	return getGlobalDecoder().ToSNBT(context.Background(), data, opts...)
}

// Decode decodes a payload into a tag tree, handling the compression
// envelope first. The decode itself is pure and non-blocking; ctx is only
// consulted up front.
func (d *Decoder) Decode(ctx context.Context, data []byte, opts ...Option) (*nbt.Compound, error) {
	options := d.options
	for _, opt := range opts {
		opt(&options)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := d.inflate(data, options)
	if err != nil {
		return nil, fmt.Errorf("decompressing payload: %w", err)
	}

	root, err := nbt.Decode(raw, nbt.WithMaxDepth(options.maxDepth))
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	d.logger.DebugContext(ctx, "decoded payload",
		"compressed_size", len(data), "raw_size", len(raw))
	return root, nil
}

// ParseBinary decodes a payload into a map[string]any tree. Compounds become
// maps (declaration order is not carried over), lists become []any, and the
// numeric array kinds keep their element widths as typed slices.
func (d *Decoder) ParseBinary(ctx context.Context, data []byte, opts ...Option) (map[string]any, error) {
	root, err := d.Decode(ctx, data, opts...)
	if err != nil {
		return nil, err
	}
	return tagToAny(root).(map[string]any), nil
}

// ToJSON decodes a payload and renders it as indented JSON.
func (d *Decoder) ToJSON(ctx context.Context, data []byte, opts ...Option) ([]byte, error) {
	result, err := d.ParseBinary(ctx, data, opts...)
	if err != nil {
		return nil, err
	}
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling to JSON: %w", err)
	}
	return jsonData, nil
}

// ToSNBT decodes a payload and renders it in stringified tag form.
func (d *Decoder) ToSNBT(ctx context.Context, data []byte, opts ...Option) (string, error) {
	root, err := d.Decode(ctx, data, opts...)
	if err != nil {
		return "", err
	}
	return nbt.SNBT(root), nil
}

func (d *Decoder) inflate(data []byte, o options) ([]byte, error) {
	switch o.compression {
	case CompressionNone:
		return data, nil
	case CompressionAuto:
		return compress.DecompressAuto(data, o.maxInflatedSize)
	case CompressionGzip:
		return compress.Decompress(data, compress.FormatGzip, o.maxInflatedSize)
	case CompressionZlib:
		return compress.Decompress(data, compress.FormatZlib, o.maxInflatedSize)
	default:
		return nil, fmt.Errorf("unknown compression mode %d", o.compression)
	}
}

// tagToAny converts a tag tree to plain Go values. ByteArray stays []int8
// rather than []byte so JSON renders numbers, not base64.
func tagToAny(t nbt.Tag) any {
	switch v := t.(type) {
	case nbt.Byte:
		return int8(v)
	case nbt.Short:
		return int16(v)
	case nbt.Int:
		return int32(v)
	case nbt.Long:
		return int64(v)
	case nbt.Float:
		return float32(v)
	case nbt.Double:
		return float64(v)
	case nbt.String:
		return string(v)
	case nbt.ByteArray:
		return []int8(v)
	case nbt.IntArray:
		return []int32(v)
	case nbt.LongArray:
		return []int64(v)
	case *nbt.List:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = tagToAny(item)
		}
		return items
	case *nbt.Compound:
		result := make(map[string]any, v.Len())
		for name, tag := range v.All() {
			result[name] = tagToAny(tag)
		}
		return result
	default:
		return nil
	}
}

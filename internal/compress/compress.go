// Package compress detects and inflates the gzip and zlib envelopes that
// named-binary-tag payloads conventionally arrive in. The tag decoder itself
// only accepts raw bytes; this package is its front door.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Format identifies a compression envelope.
type Format int

const (
	FormatNone Format = iota
	FormatGzip
	FormatZlib
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatGzip:
		return "gzip"
	case FormatZlib:
		return "zlib"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrLimitExceeded is returned when inflated data exceeds the caller's cap.
var ErrLimitExceeded = errors.New("decompressed size limit exceeded")

// Detect sniffs the compression envelope from the payload's leading bytes.
// Gzip is the two-byte 1f 8b magic; zlib is a 78 CMF byte whose CMF/FLG
// pair passes the FCHECK divisibility test.
func Detect(data []byte) Format {
	if len(data) >= 2 {
		if data[0] == 0x1F && data[1] == 0x8B {
			return FormatGzip
		}
		if data[0] == 0x78 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0 {
			return FormatZlib
		}
	}
	return FormatNone
}

// Decompress inflates data according to format. FormatNone returns data
// unchanged. limit caps the inflated size; zero or negative means no cap.
func Decompress(data []byte, format Format, limit int64) ([]byte, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	switch format {
	case FormatNone:
		return data, nil
	case FormatGzip:
		rc, err = gzip.NewReader(bytes.NewReader(data))
	case FormatZlib:
		rc, err = zlib.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown compression format %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s stream: %w", format, err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if limit > 0 {
		r = io.LimitReader(rc, limit+1)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflating %s stream: %w", format, err)
	}
	if limit > 0 && int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrLimitExceeded, limit)
	}
	return out, nil
}

// DecompressAuto sniffs the envelope and inflates accordingly.
func DecompressAuto(data []byte, limit int64) ([]byte, error) {
	return Decompress(data, Detect(data), limit)
}

package nbt

import "fmt"

// DefaultMaxDepth is the container nesting limit applied when no
// WithMaxDepth option is given. It bounds stack growth on adversarial input.
const DefaultMaxDepth = 512

// Option configures a decode.
type Option func(*decodeOptions)

type decodeOptions struct {
	maxDepth int
}

// WithMaxDepth sets the maximum container nesting depth. Values below one
// are treated as one.
func WithMaxDepth(n int) Option {
	return func(o *decodeOptions) {
		if n < 1 {
			n = 1
		}
		o.maxDepth = n
	}
}

// Decode parses a complete document from data. The top-level tag must be a
// named compound; the result is a synthetic compound holding a single entry
// that maps the root's declared name to its decoded body.
//
// Decoding is all-or-nothing: any failure at any depth returns a nil tree
// and a *DecodeError wrapping one of the sentinel errors of this package.
// Bytes trailing the root compound's terminator are ignored.
func Decode(data []byte, opts ...Option) (*Compound, error) {
	o := decodeOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	d := &decoder{r: reader{data: data}, maxDepth: o.maxDepth}
	return d.decodeRoot()
}

type decoder struct {
	r        reader
	maxDepth int
}

func (d *decoder) decodeRoot() (*Compound, error) {
	start := d.r.pos
	id, err := d.r.readTagID()
	if err != nil {
		return nil, err
	}
	if id != TagCompound {
		return nil, errAt(start, fmt.Errorf("%w: got %s", ErrUnexpectedRoot, id))
	}
	name, err := d.r.readString()
	if err != nil {
		return nil, err
	}
	body, err := d.decodeCompound(1)
	if err != nil {
		return nil, err
	}
	root := NewCompound()
	root.Set(name, body)
	return root, nil
}

// decodeTag decodes one value of the given kind. The kind byte has already
// been consumed and validated by the caller.
func (d *decoder) decodeTag(id TagID, depth int) (Tag, error) {
	switch id {
	case TagByte:
		v, err := d.r.readI8()
		if err != nil {
			return nil, err
		}
		return Byte(v), nil
	case TagShort:
		v, err := d.r.readI16()
		if err != nil {
			return nil, err
		}
		return Short(v), nil
	case TagInt:
		v, err := d.r.readI32()
		if err != nil {
			return nil, err
		}
		return Int(v), nil
	case TagLong:
		v, err := d.r.readI64()
		if err != nil {
			return nil, err
		}
		return Long(v), nil
	case TagFloat:
		v, err := d.r.readF32()
		if err != nil {
			return nil, err
		}
		return Float(v), nil
	case TagDouble:
		v, err := d.r.readF64()
		if err != nil {
			return nil, err
		}
		return Double(v), nil
	case TagString:
		v, err := d.r.readString()
		if err != nil {
			return nil, err
		}
		return String(v), nil
	case TagByteArray:
		return d.decodeByteArray()
	case TagIntArray:
		return d.decodeIntArray()
	case TagLongArray:
		return d.decodeLongArray()
	case TagList:
		return d.decodeList(depth)
	case TagCompound:
		return d.decodeCompound(depth)
	default:
		// TagEnd is not a value; it only terminates compounds and marks
		// empty lists, both handled before dispatch.
		return nil, errAt(d.r.pos-1, fmt.Errorf("%w: %s", ErrInvalidTagID, id))
	}
}

// readCount reads a 32-bit signed element count and rejects negative values.
func (d *decoder) readCount() (int, error) {
	start := d.r.pos
	n, err := d.r.readI32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errAt(start, fmt.Errorf("%w: element count %d", ErrMalformedLength, n))
	}
	return int(n), nil
}

func (d *decoder) decodeByteArray() (Tag, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	if d.r.remaining() < n {
		return nil, d.r.truncated(n)
	}
	out := make(ByteArray, n)
	for i := range out {
		out[i] = int8(d.r.data[d.r.pos+i])
	}
	d.r.pos += n
	return out, nil
}

func (d *decoder) decodeIntArray() (Tag, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	if d.r.remaining()/4 < n {
		return nil, d.r.truncated(n * 4)
	}
	out := make(IntArray, n)
	for i := range out {
		v, _ := d.r.readI32()
		out[i] = v
	}
	return out, nil
}

func (d *decoder) decodeLongArray() (Tag, error) {
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	if d.r.remaining()/8 < n {
		return nil, d.r.truncated(n * 8)
	}
	out := make(LongArray, n)
	for i := range out {
		v, _ := d.r.readI64()
		out[i] = v
	}
	return out, nil
}

func (d *decoder) decodeList(depth int) (Tag, error) {
	if depth > d.maxDepth {
		return nil, errAt(d.r.pos, fmt.Errorf("%w: %d", ErrDepthExceeded, d.maxDepth))
	}
	elemStart := d.r.pos
	elem, err := d.r.readTagID()
	if err != nil {
		return nil, err
	}
	if !elem.valid() {
		return nil, errAt(elemStart, fmt.Errorf("%w: list element kind %s", ErrInvalidTagID, elem))
	}
	countStart := d.r.pos
	n, err := d.readCount()
	if err != nil {
		return nil, err
	}
	if elem == TagEnd {
		if n > 0 {
			return nil, errAt(countStart, fmt.Errorf("%w: list of End with %d elements", ErrMalformedLength, n))
		}
		return &List{Elem: TagEnd}, nil
	}
	// Every element consumes at least one byte, so the remaining input caps
	// how much is worth preallocating for a hostile count.
	items := make([]Tag, 0, min(n, d.r.remaining()))
	for i := 0; i < n; i++ {
		item, err := d.decodeTag(elem, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &List{Elem: elem, Items: items}, nil
}

func (d *decoder) decodeCompound(depth int) (*Compound, error) {
	if depth > d.maxDepth {
		return nil, errAt(d.r.pos, fmt.Errorf("%w: %d", ErrDepthExceeded, d.maxDepth))
	}
	c := NewCompound()
	for {
		start := d.r.pos
		id, err := d.r.readTagID()
		if err != nil {
			return nil, err
		}
		if id == TagEnd {
			return c, nil
		}
		if !id.valid() {
			return nil, errAt(start, fmt.Errorf("%w: %s", ErrInvalidTagID, id))
		}
		name, err := d.r.readString()
		if err != nil {
			return nil, err
		}
		tag, err := d.decodeTag(id, depth+1)
		if err != nil {
			return nil, err
		}
		c.Set(name, tag)
	}
}

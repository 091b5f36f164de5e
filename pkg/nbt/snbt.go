package nbt

import "strconv"

// SNBT returns the stringified text form of a tag: typed numeric suffixes
// (1b, 2s, 3L, 4.5f, 6.7d), quoted strings, [B;…]/[I;…]/[L;…] arrays,
// [v,…] lists and {name:v,…} compounds in declaration order.
func SNBT(t Tag) string {
	if t == nil {
		return ""
	}
	return string(t.appendSNBT(nil))
}

func (End) appendSNBT(dst []byte) []byte { return dst }

func (b Byte) appendSNBT(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(b), 10)
	return append(dst, 'b')
}

func (s Short) appendSNBT(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(s), 10)
	return append(dst, 's')
}

func (i Int) appendSNBT(dst []byte) []byte {
	return strconv.AppendInt(dst, int64(i), 10)
}

func (l Long) appendSNBT(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(l), 10)
	return append(dst, 'L')
}

func (f Float) appendSNBT(dst []byte) []byte {
	dst = strconv.AppendFloat(dst, float64(f), 'g', -1, 32)
	return append(dst, 'f')
}

func (d Double) appendSNBT(dst []byte) []byte {
	dst = strconv.AppendFloat(dst, float64(d), 'g', -1, 64)
	return append(dst, 'd')
}

func (s String) appendSNBT(dst []byte) []byte {
	return appendQuoted(dst, string(s))
}

func (a ByteArray) appendSNBT(dst []byte) []byte {
	dst = append(dst, '[', 'B', ';')
	for i, v := range a {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(v), 10)
		dst = append(dst, 'b')
	}
	return append(dst, ']')
}

func (a IntArray) appendSNBT(dst []byte) []byte {
	dst = append(dst, '[', 'I', ';')
	for i, v := range a {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(v), 10)
	}
	return append(dst, ']')
}

func (a LongArray) appendSNBT(dst []byte) []byte {
	dst = append(dst, '[', 'L', ';')
	for i, v := range a {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendInt(dst, int64(v), 10)
		dst = append(dst, 'L')
	}
	return append(dst, ']')
}

func (l *List) appendSNBT(dst []byte) []byte {
	dst = append(dst, '[')
	for i, item := range l.Items {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = item.appendSNBT(dst)
	}
	return append(dst, ']')
}

func (c *Compound) appendSNBT(dst []byte) []byte {
	dst = append(dst, '{')
	for i, name := range c.names {
		if i > 0 {
			dst = append(dst, ',')
		}
		if isBareName(name) {
			dst = append(dst, name...)
		} else {
			dst = appendQuoted(dst, name)
		}
		dst = append(dst, ':')
		dst = c.values[name].appendSNBT(dst)
	}
	return append(dst, '}')
}

// String returns the SNBT form of the list.
func (l *List) String() string { return SNBT(l) }

// String returns the SNBT form of the compound.
func (c *Compound) String() string { return SNBT(c) }

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			dst = append(dst, '\\')
		}
		dst = append(dst, s[i])
	}
	return append(dst, '"')
}

// isBareName reports whether a compound key can be written without quotes.
func isBareName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-' || c == '.' || c == '+':
		default:
			return false
		}
	}
	return true
}

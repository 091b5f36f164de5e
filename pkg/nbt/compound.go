package nbt

import (
	"iter"
	"slices"
)

// Compound is a mapping from unique string names to tags. Iteration order is
// the order in which entries were first set, which for decoded input is the
// declaration order of the wire format.
type Compound struct {
	names  []string
	values map[string]Tag
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{values: make(map[string]Tag)}
}

func (*Compound) ID() TagID { return TagCompound }

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Keys returns the entry names in declaration order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.names)
}

// Contains reports whether an entry with the given name exists.
func (c *Compound) Contains(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.values[name]
	return ok
}

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.values[name]
	return t, ok
}

// Set stores tag under name. Setting an existing name replaces the value but
// keeps the entry's original position.
func (c *Compound) Set(name string, tag Tag) {
	if _, ok := c.values[name]; !ok {
		c.names = append(c.names, name)
	}
	c.values[name] = tag
}

// Remove deletes the entry with the given name and reports whether it existed.
func (c *Compound) Remove(name string) bool {
	if c == nil {
		return false
	}
	if _, ok := c.values[name]; !ok {
		return false
	}
	delete(c.values, name)
	i := slices.Index(c.names, name)
	c.names = slices.Delete(c.names, i, i+1)
	return true
}

// All iterates over the entries in declaration order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		if c == nil {
			return
		}
		for _, name := range c.names {
			if !yield(name, c.values[name]) {
				return
			}
		}
	}
}

// GetByte returns the Byte entry under name, or false if the entry is absent
// or of another kind. The remaining typed getters behave the same way.
func (c *Compound) GetByte(name string) (Byte, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	b, ok := v.(Byte)
	return b, ok
}

func (c *Compound) GetShort(name string) (Short, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	s, ok := v.(Short)
	return s, ok
}

func (c *Compound) GetInt(name string) (Int, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	i, ok := v.(Int)
	return i, ok
}

func (c *Compound) GetLong(name string) (Long, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	l, ok := v.(Long)
	return l, ok
}

func (c *Compound) GetFloat(name string) (Float, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	f, ok := v.(Float)
	return f, ok
}

func (c *Compound) GetDouble(name string) (Double, bool) {
	v, ok := c.Get(name)
	if !ok {
		return 0, false
	}
	d, ok := v.(Double)
	return d, ok
}

func (c *Compound) GetString(name string) (String, bool) {
	v, ok := c.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return s, ok
}

func (c *Compound) GetByteArray(name string) (ByteArray, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	a, ok := v.(ByteArray)
	return a, ok
}

func (c *Compound) GetIntArray(name string) (IntArray, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	a, ok := v.(IntArray)
	return a, ok
}

func (c *Compound) GetLongArray(name string) (LongArray, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	a, ok := v.(LongArray)
	return a, ok
}

func (c *Compound) GetList(name string) (*List, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	l, ok := v.(*List)
	return l, ok
}

func (c *Compound) GetCompound(name string) (*Compound, bool) {
	v, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Compound)
	return sub, ok
}

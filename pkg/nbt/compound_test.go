package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundSetGet(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", String("two"))

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains("a"))
	assert.False(t, c.Contains("missing"))

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, String("two"), v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCompoundReplaceKeepsPosition(t *testing.T) {
	c := NewCompound()
	c.Set("first", Byte(1))
	c.Set("second", Byte(2))
	c.Set("first", Byte(9))

	assert.Equal(t, []string{"first", "second"}, c.Keys())
	v, _ := c.GetByte("first")
	assert.Equal(t, Byte(9), v)
}

func TestCompoundRemove(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", Int(2))
	c.Set("c", Int(3))

	assert.True(t, c.Remove("b"))
	assert.False(t, c.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, c.Keys())
}

func TestCompoundAllOrder(t *testing.T) {
	c := NewCompound()
	c.Set("z", Byte(0))
	c.Set("a", Byte(1))
	c.Set("m", Byte(2))

	var names []string
	for name, tag := range c.All() {
		names = append(names, name)
		assert.NotNil(t, tag)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
}

func TestCompoundTypedGetterKindMismatch(t *testing.T) {
	c := NewCompound()
	c.Set("n", Int(5))

	_, ok := c.GetString("n")
	assert.False(t, ok)
	_, ok = c.GetByte("n")
	assert.False(t, ok)
	_, ok = c.GetCompound("n")
	assert.False(t, ok)

	v, ok := c.GetInt("n")
	require.True(t, ok)
	assert.Equal(t, Int(5), v)
}

func TestCompoundNilReceiverSafety(t *testing.T) {
	var c *Compound
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Keys())
	assert.False(t, c.Contains("x"))
	_, ok := c.Get("x")
	assert.False(t, ok)
	for range c.All() {
		t.Fatal("nil compound must yield nothing")
	}
}

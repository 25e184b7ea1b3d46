package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("products:home", []string{"onion"})

	value, found := c.Get("products:home")
	assert.True(t, found)
	assert.Equal(t, []string{"onion"}, value)

	_, found = c.Get("products:trends")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := New(10 * time.Millisecond)

	c.Set("key", "value")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)

	c.Set("products:home", 1)
	c.Set("products:trends", 2)
	c.Set("ads:approved", 3)

	c.DeleteByPrefix("products:")

	_, found := c.Get("products:home")
	assert.False(t, found)
	_, found = c.Get("products:trends")
	assert.False(t, found)
	_, found = c.Get("ads:approved")
	assert.True(t, found)
	assert.Equal(t, 1, c.Size())
}

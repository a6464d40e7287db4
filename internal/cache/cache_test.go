// internal/cache/cache_test.go
package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_GetSet(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(WithClock(func() time.Time { return now }))

	_, ok := c.Get(PrefixOverview + "user1")
	assert.False(t, ok, "empty cache should miss")

	c.Set(PrefixOverview+"user1", 42)
	v, ok := c.Get(PrefixOverview + "user1")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTTLCache_ExpiryPerCategory(t *testing.T) {
	tests := []struct {
		name string
		key  string
		ttl  time.Duration
	}{
		{"overview expires after 5m", PrefixOverview + "u", 5 * time.Minute},
		{"stats expires after 10m", PrefixStats + "u", 10 * time.Minute},
		{"calendar expires after 30m", PrefixCalendar + "u", 30 * time.Minute},
		{"insights expires after 60m", PrefixInsights + "u", 60 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
			c := New(WithClock(func() time.Time { return now }))
			c.Set(tt.key, "data")

			// Just before the TTL the entry is still a hit.
			now = now.Add(tt.ttl - time.Second)
			_, ok := c.Get(tt.key)
			assert.True(t, ok)

			// At exactly the TTL it becomes a miss.
			now = now.Add(time.Second)
			_, ok = c.Get(tt.key)
			assert.False(t, ok)
		})
	}
}

func TestTTLCache_ExpiredEntryIsMissNotEvicted(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(WithClock(func() time.Time { return now }))

	c.Set(PrefixStats+"u", "old")
	now = now.Add(11 * time.Minute)
	_, ok := c.Get(PrefixStats + "u")
	assert.False(t, ok)

	// A fresh Set for the same key serves again.
	c.Set(PrefixStats+"u", "new")
	v, ok := c.Get(PrefixStats + "u")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestTTL_UnknownPrefixFallsBack(t *testing.T) {
	assert.Equal(t, 5*time.Minute, TTL("something_else"))
	assert.Equal(t, 10*time.Minute, TTL(PrefixStats+"abc"))
}

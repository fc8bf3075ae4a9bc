package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := System().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local)
	f := NewFake(start)

	assert.Equal(t, start, f.Now())

	f.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), f.Now())

	pinned := time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local)
	f.Set(pinned)
	assert.Equal(t, pinned, f.Now())
}

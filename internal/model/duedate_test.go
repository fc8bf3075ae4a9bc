package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)

	assert.False(t, IsOverdue("", now), "no due date is never overdue")
	assert.True(t, IsOverdue("2026-09-14", now), "yesterday is overdue")
	assert.False(t, IsOverdue("2026-09-16", now), "tomorrow is not overdue")
	assert.False(t, IsOverdue("bogus", now), "unparseable dates are not overdue")
}

func TestIsOverdue_TodayNotOverdueUntilNextDay(t *testing.T) {
	// The date-only comparison pins the due date at local midnight, so a
	// reminder due "today" stays non-overdue all day even after its due
	// time passes.
	noon := time.Date(2026, 9, 15, 12, 0, 0, 0, time.Local)
	assert.False(t, IsOverdue("2026-09-15", noon))

	lateNight := time.Date(2026, 9, 15, 23, 59, 59, 0, time.Local)
	assert.False(t, IsOverdue("2026-09-15", lateNight))

	nextMidnight := time.Date(2026, 9, 16, 0, 0, 1, 0, time.Local)
	assert.True(t, IsOverdue("2026-09-15", nextMidnight))
}

func TestIsOverdue_Monotonic(t *testing.T) {
	// Once overdue, advancing the clock never makes it not-overdue.
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.Local)
	due := "2026-09-14"

	require.True(t, IsOverdue(due, now))
	for i := 0; i < 48; i++ {
		now = now.Add(time.Hour)
		assert.True(t, IsOverdue(due, now))
	}
}

func TestIsDueToday(t *testing.T) {
	now := time.Date(2026, 9, 15, 23, 0, 0, 0, time.Local)

	assert.True(t, IsDueToday("2026-09-15", now))
	assert.False(t, IsDueToday("2026-09-14", now))
	assert.False(t, IsDueToday("2026-09-16", now))
	assert.False(t, IsDueToday("", now))
}

func TestDueInstant(t *testing.T) {
	at, ok := DueInstant("2026-09-15", "14:30")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 15, 14, 30, 0, 0, time.Local), at)
}

func TestDueInstant_DefaultTime(t *testing.T) {
	at, ok := DueInstant("2026-09-15", "")
	require.True(t, ok)
	assert.Equal(t, 9, at.Hour(), "empty due time defaults to 09:00")
	assert.Equal(t, 0, at.Minute())
}

func TestDueInstant_Invalid(t *testing.T) {
	_, ok := DueInstant("", "14:30")
	assert.False(t, ok)

	_, ok = DueInstant("not-a-date", "")
	assert.False(t, ok)
}

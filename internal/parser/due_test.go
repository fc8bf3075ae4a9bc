package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/remindme/internal/errors"
)

var parseNow = time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local)

func TestParseDue_Empty(t *testing.T) {
	r, err := ParseDue("", parseNow)
	require.NoError(t, err)
	assert.Empty(t, r.DueDate)
	assert.Empty(t, r.DueTime)
}

func TestParseDue_Relative(t *testing.T) {
	r, err := ParseDue("+2h", parseNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", r.DueDate)
	assert.Equal(t, "12:00", r.DueTime)

	r, err = ParseDue("+3d", parseNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-18", r.DueDate)
	assert.Equal(t, "10:00", r.DueTime)

	r, err = ParseDue("+1w", parseNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-22", r.DueDate)
}

func TestParseDue_ISODateOnly(t *testing.T) {
	r, err := ParseDue("2026-09-20", parseNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-20", r.DueDate)
	assert.Empty(t, r.DueTime, "date-only input carries no due time")
}

func TestParseDue_ISODateTime(t *testing.T) {
	r, err := ParseDue("2026-09-20 14:30", parseNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-20", r.DueDate)
	assert.Equal(t, "14:30", r.DueTime)
}

func TestParseDue_Garbage(t *testing.T) {
	_, err := ParseDue("definitely not a date qq", parseNow)
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
}

func TestFormatDue(t *testing.T) {
	assert.Equal(t, "", FormatDue("", "", parseNow))
	assert.Equal(t, "Today", FormatDue("2026-09-15", "", parseNow))
	assert.Equal(t, "Today at 2:00 PM", FormatDue("2026-09-15", "14:00", parseNow))
	assert.Equal(t, "Tomorrow", FormatDue("2026-09-16", "", parseNow))
	// 2026-09-18 is a Friday within the coming week.
	assert.Equal(t, "Friday", FormatDue("2026-09-18", "", parseNow))
	assert.Equal(t, "Mon, Oct 5", FormatDue("2026-10-05", "", parseNow))
}

func TestFormatTimeUntil(t *testing.T) {
	assert.Equal(t, "overdue", FormatTimeUntil(parseNow.Add(-time.Minute), parseNow))
	assert.Equal(t, "less than a minute", FormatTimeUntil(parseNow.Add(30*time.Second), parseNow))
	assert.Equal(t, "in 5 minutes", FormatTimeUntil(parseNow.Add(5*time.Minute), parseNow))
	assert.Equal(t, "in 1 hour", FormatTimeUntil(parseNow.Add(time.Hour), parseNow))
	assert.Equal(t, "in 2 hours 30 minutes", FormatTimeUntil(parseNow.Add(150*time.Minute), parseNow))
	assert.Equal(t, "in 3 days", FormatTimeUntil(parseNow.Add(72*time.Hour), parseNow))
	assert.Equal(t, "in 2 weeks", FormatTimeUntil(parseNow.Add(14*24*time.Hour), parseNow))
}

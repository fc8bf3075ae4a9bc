package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/remindme/internal/model"
)

var outNow = time.Date(2026, 9, 15, 10, 0, 0, 0, time.Local)

func plainFormatter(buf *bytes.Buffer) *Formatter {
	return &Formatter{Writer: buf, Format: FormatCLI, ColorMode: ColorNever}
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	f := &Formatter{Writer: &buf, ColorMode: ColorAlways}
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	// Auto without a terminal writer disables color.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestReminderLine(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(plainFormatter(&buf))

	r := &model.Reminder{
		ID: "1", Text: "Buy milk",
		Category: model.CategoryShopping, Priority: model.PriorityHigh,
		DueDate: "2026-09-14",
	}

	line := cli.ReminderLine(r, outNow)
	assert.Contains(t, line, "[ ]")
	assert.Contains(t, line, "Buy milk")
	assert.Contains(t, line, "shopping")
	assert.Contains(t, line, "high")
	assert.Contains(t, line, "overdue")
}

func TestReminderLine_Completed(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(plainFormatter(&buf))

	r := &model.Reminder{
		ID: "1", Text: "Done thing",
		Category: model.CategoryWork, Priority: model.PriorityLow,
		DueDate: "2026-09-14", Completed: true,
	}

	line := cli.ReminderLine(r, outNow)
	assert.Contains(t, line, "[x]")
	assert.NotContains(t, line, "overdue", "completed reminders are never flagged overdue")
}

func TestPrintReminderList(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(plainFormatter(&buf))

	cli.PrintReminderList([]*model.Reminder{
		{ID: "1", Text: "one", Category: model.CategoryWork, Priority: model.PriorityHigh},
		{ID: "2", Text: "two", Category: model.CategoryWork, Priority: model.PriorityLow, Completed: true},
	}, outNow)

	out := buf.String()
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, "2 reminders, 1 pending")
}

func TestPrintReminderList_Empty(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(plainFormatter(&buf))

	cli.PrintReminderList(nil, outNow)
	assert.Contains(t, buf.String(), "No reminders")
}

func TestNewListResponse(t *testing.T) {
	reminders := []*model.Reminder{
		{ID: "1", Text: "open", DueDate: "2026-09-14"},
		{ID: "2", Text: "done", Completed: true},
		{ID: "3", Text: "today", DueDate: "2026-09-15"},
	}

	resp := NewListResponse(reminders, outNow)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 2, resp.PendingCount)
	assert.True(t, resp.Reminders[0].Overdue)
	assert.False(t, resp.Reminders[1].Overdue)
	assert.True(t, resp.Reminders[2].DueToday)
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: FormatJSON, ColorMode: ColorNever}

	resp := NewListResponse([]*model.Reminder{
		{ID: "1", Text: "task", Category: model.CategoryWork, Priority: model.PriorityMedium},
	}, outNow)
	require.NoError(t, f.JSON(resp))

	var decoded ListResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.TotalCount)
	assert.Equal(t, "task", decoded.Reminders[0].Text)
}

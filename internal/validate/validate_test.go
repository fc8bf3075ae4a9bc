package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/remindme/internal/errors"
	"github.com/manav03panchal/remindme/internal/model"
)

func TestText(t *testing.T) {
	assert.NoError(t, Text("Buy milk"))
	assert.Error(t, Text(""))
	assert.Error(t, Text("   "))
	assert.NoError(t, Text(strings.Repeat("x", MaxTextLength)))
	assert.Error(t, Text(strings.Repeat("x", MaxTextLength+1)))
}

func TestText_ErrorsAreUserErrors(t *testing.T) {
	err := Text("")
	require.Error(t, err)
	ue, ok := errors.AsUserError(err)
	require.True(t, ok)
	assert.NotEmpty(t, ue.Suggestion)
}

func TestCategory(t *testing.T) {
	for _, c := range model.ValidCategories() {
		assert.NoError(t, Category(c))
	}
	assert.Error(t, Category("chores"))
	assert.Error(t, Category(""))
}

func TestPriority(t *testing.T) {
	for _, p := range model.ValidPriorities() {
		assert.NoError(t, Priority(p))
	}
	assert.Error(t, Priority("urgent"))
}

func TestDueDate(t *testing.T) {
	assert.NoError(t, DueDate(""))
	assert.NoError(t, DueDate("2026-09-15"))
	assert.Error(t, DueDate("15/09/2026"))
	assert.Error(t, DueDate("2026-13-01"))
}

func TestDueTime(t *testing.T) {
	assert.NoError(t, DueTime(""))
	assert.NoError(t, DueTime("09:00"))
	assert.NoError(t, DueTime("23:59"))
	assert.Error(t, DueTime("9am"))
	assert.Error(t, DueTime("25:00"))
}

func TestDraft(t *testing.T) {
	good := model.Draft{
		Text:     "Buy milk",
		Category: model.CategoryShopping,
		Priority: model.PriorityHigh,
		DueDate:  "2026-09-15",
		DueTime:  "09:00",
	}
	assert.NoError(t, Draft(good))

	bad := good
	bad.Text = " "
	assert.Error(t, Draft(bad))

	bad = good
	bad.Category = "nope"
	assert.Error(t, Draft(bad))

	bad = good
	bad.DueDate = "tomorrow"
	assert.Error(t, Draft(bad))
}

// Package parser turns human due expressions into the date and time
// fields a reminder carries.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/remindme/internal/errors"
	"github.com/manav03panchal/remindme/internal/model"
)

// DueResult holds the parsed due fields. DueTime is empty when the
// expression carried no time of day.
type DueResult struct {
	DueDate string
	DueTime string
}

// relativeRegex matches relative expressions like "+5m", "+1h", "+2d".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([smhdw])$`)

// ParseDue parses a natural language due expression relative to now.
// Supports formats like:
//   - "+30m", "+2h", "+3d" (relative)
//   - "friday 5pm", "tomorrow 2pm" (natural language)
//   - "2026-09-15" or "2026-09-15 14:00" (ISO)
func ParseDue(input string, now time.Time) (DueResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DueResult{}, nil
	}

	if match := relativeRegex.FindStringSubmatch(input); match != nil {
		return parseRelativeDue(match[1], match[2], now)
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return DueResult{}, errors.NewUserErrorWithField("due", input,
			"could not understand due date",
			"try formats like 'tomorrow 2pm', 'friday', '+2h', or '2026-09-15'")
	}

	return splitInstant(result.Time), nil
}

// parseRelativeDue handles the "+<n><unit>" shorthand.
func parseRelativeDue(numStr, unit string, now time.Time) (DueResult, error) {
	num, _ := strconv.Atoi(numStr)
	if num <= 0 {
		return DueResult{}, errors.NewUserError(
			"invalid duration: must be positive",
			"use a positive offset like '+30m' or '+2d'")
	}

	var d time.Duration
	switch unit {
	case "s":
		d = time.Duration(num) * time.Second
	case "m":
		d = time.Duration(num) * time.Minute
	case "h":
		d = time.Duration(num) * time.Hour
	case "d":
		d = time.Duration(num) * 24 * time.Hour
	case "w":
		d = time.Duration(num) * 7 * 24 * time.Hour
	default:
		return DueResult{}, errors.NewUserError(
			fmt.Sprintf("invalid time unit: %s", unit),
			"valid units are s, m, h, d, w")
	}

	at := now.Add(d)
	return DueResult{
		DueDate: at.Format(model.DateLayout),
		DueTime: at.Format(model.TimeLayout),
	}, nil
}

// splitInstant maps a parsed instant onto the due fields. An exact
// local midnight is taken as a date-only expression, matching how the
// natural language parser renders "friday" or "2026-09-15".
func splitInstant(t time.Time) DueResult {
	r := DueResult{DueDate: t.Format(model.DateLayout)}
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 {
		r.DueTime = t.Format(model.TimeLayout)
	}
	return r
}

package httpHandler

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for from/to query parameters, tried in order.
var windowTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseWindow turns optional from/to strings into inclusive bounds. An empty
// string is an open bound. A date-only "to" covers the whole day.
func parseWindow(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		t, err := parseWindowTime(fromStr)
		if err != nil {
			return nil, nil, fmt.Errorf("from: %w", err)
		}
		from = &t
	}
	if toStr != "" {
		t, err := parseWindowTime(toStr)
		if err != nil {
			return nil, nil, fmt.Errorf("to: %w", err)
		}
		if len(toStr) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = &t
	}
	return from, to, nil
}

func parseWindowTime(value string) (time.Time, error) {
	for _, layout := range windowTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", value)
}

// splitIDs parses the comma-separated station id list of a multi-station
// query, dropping empty segments.
func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

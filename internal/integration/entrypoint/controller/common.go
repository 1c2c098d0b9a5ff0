// Package controller implements HTTP handlers for the API endpoints.
package controller

import "time"

// dateLayouts are the accepted formats for date fields, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate parses a date string in one of the accepted layouts.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

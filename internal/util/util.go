package util

import (
	"strings"
	"time"
)

const (
	viewDateLayout = "2006-01-02 @ 15:04:05"
	fileDateLayout = "2006-01-02"
)

// Contains checks if a slice contains a specific string
func Contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// ContainsFold reports whether substr is within s, ignoring ASCII case.
func ContainsFold(s, substr string) bool {
	if len(substr) > len(s) {
		return false
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return true
		}
	}
	return false
}

// ViewDate converts a timestamp into a "YYYY-MM-DD @ HH:MM:SS" string.
// Chat log timestamps carry no zone, they are handled as UTC.
func ViewDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(viewDateLayout)
}

// ParseViewDate is the inverse of ViewDate.
func ParseViewDate(s string) (int64, bool) {
	t, err := time.ParseInLocation(viewDateLayout, s, time.UTC)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}

// FileDate converts a timestamp into the date used in log filenames.
func FileDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(fileDateLayout)
}

// ParseFileDate parses a log filename date.
func ParseFileDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(fileDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

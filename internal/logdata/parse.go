package logdata

import (
	"strconv"
	"strings"
	"time"
)

// StatsKey marks the line written by the /stats command.
const StatsKey = " AdventurerLevel: "

// LogTimestamp converts the bracketed part of a chat log line into a
// timestamp. The date inside the bracket is localized, so day and month
// order is unknown; the day is taken from the filename instead. Times are
// H:M:S with an optional AM/PM marker.
func LogTimestamp(text string, day time.Time) (int64, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	hms := strings.Split(parts[1], ":")
	if len(hms) != 3 {
		return 0, false
	}
	hour, err := strconv.Atoi(hms[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(hms[1])
	if err != nil {
		return 0, false
	}
	second, err := strconv.Atoi(hms[2])
	if err != nil {
		return 0, false
	}

	if len(parts) == 3 && parts[2] != "" {
		switch parts[2][0] {
		case 'P', 'p':
			if hour < 12 {
				hour += 12
			}
		case 'A', 'a':
			if hour == 12 {
				hour = 0
			}
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, false
	}

	y, m, d := day.Date()
	return time.Date(y, m, d, hour, minute, second, 0, time.UTC).Unix(), true
}

// StatsTimestamp returns the timestamp of a /stats line.
func StatsTimestamp(line string, day time.Time) (int64, bool) {
	if !strings.HasPrefix(line, "[") {
		return 0, false
	}
	pos := strings.IndexByte(line, ']')
	if pos < 0 || !strings.Contains(line[pos+1:], StatsKey) {
		return 0, false
	}
	return LogTimestamp(line[1:pos], day)
}

// StatsText returns the stats part of line when it is the /stats line
// logged at ts.
func StatsText(line string, ts int64, day time.Time) (string, bool) {
	lts, ok := StatsTimestamp(line, day)
	if !ok || lts != ts {
		return "", false
	}
	pos := strings.LastIndexByte(line, ']')
	return line[pos+1:], true
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

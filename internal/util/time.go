package util

import "time"

// NowMillis returns the current time in milliseconds since Unix epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NowISO returns the current time as an ISO-8601 (RFC 3339) UTC string.
// Used for page meta timestamps.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// MillisToTime converts milliseconds since Unix epoch to time.Time.
func MillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}

// FormatTime formats a time in a human-readable way.
func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// FormatISO formats an ISO-8601 timestamp in a human-readable way.
// Returns the input unchanged if it doesn't parse.
func FormatISO(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return FormatTime(t.Local())
}

package utils

import "time"

// ISO-8601 without zone, second precision. Stored timestamps sort
// lexicographically in this layout, which the list queries rely on.
const timestampLayout = "2006-01-02T15:04:05"

// TimestampNow returns the current server time as an ISO-8601 string.
func TimestampNow() string {
	return time.Now().Format(timestampLayout)
}

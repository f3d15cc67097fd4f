package util

import (
	"fmt"
	"log/slog"
	"time"
)

/*
	usage:

	func foo() {
		defer TimeThis(Msg("foo"))
		// code to measure
	}

*/

func Msg(msg string) (string, time.Time) {
	return msg, time.Now()
}

// TimeThis logs the time elapsed since start at debug level on the default
// slog logger.
func TimeThis(msg string, start time.Time) {
	slog.Debug(msg, "elapsed", time.Since(start))
}

// FormatTime renders d as fractional seconds, e.g. "0.001250s".
func FormatTime(d time.Duration) string {
	return fmt.Sprintf("%0.6fs", d.Seconds())
}

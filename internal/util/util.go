// Package util holds small formatting helpers.
package util

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes formats bytes as a human readable size with at most two decimals, e.g. "1.5 KB".
func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}

	const unit = 1024
	exp := min(int(math.Floor(math.Log(float64(bytes))/math.Log(unit))), len(byteUnits)-1)
	size := math.Round(float64(bytes)/math.Pow(unit, float64(exp))*100) / 100

	return strconv.FormatFloat(size, 'f', -1, 64) + " " + byteUnits[exp]
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FileExtension returns the lowercase extension of name without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

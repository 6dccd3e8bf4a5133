// Package fmtutil holds the small formatting/parsing helpers shared by
// msgproxy, the view panes, and config: size/duration humanizing, the
// MAX_DOWNLOAD_SIZE suffix parser, and double-width-aware string truncation.
package fmtutil

import (
	"fmt"
	"strconv"
	"strings"
)

var sizeSuffixes = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// HumanizeSize formats n bytes using binary IEC suffixes, e.g. 1024 -> "1.0KiB".
func HumanizeSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}
	f := float64(n)
	idx := 0
	for f >= 1024 && idx < len(sizeSuffixes)-1 {
		f /= 1024
		idx++
	}
	return fmt.Sprintf("%.1f%s", f, sizeSuffixes[idx])
}

// parseSizeSuffixes maps the config-file suffix vocabulary to a byte multiplier.
var parseSizeSuffixes = map[string]int64{
	"B":  1,
	"KB": 1_000,
	"MB": 1_000_000,
	"GB": 1_000_000_000,
	"TB": 1_000_000_000_000,
}

// ParseSize parses strings like "10MB" per spec §6's MAX_DOWNLOAD_SIZE surface.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	upper := strings.ToUpper(s)
	for _, suffix := range []string{"TB", "GB", "MB", "KB", "B"} {
		if strings.HasSuffix(upper, suffix) {
			numPart := strings.TrimSpace(s[:len(s)-len(suffix)])
			n, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid size %q: %w", s, err)
			}
			return int64(n * float64(parseSizeSuffixes[suffix])), nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return n, nil
}

// HumanizeDuration formats seconds as M:SS, or H:MM:SS once an hour is reached.
func HumanizeDuration(seconds int32) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

package transcript

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTime renders seconds as "m:ss". Fractions are truncated and
// negative values render as "0:00".
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// ParseTime is the inverse of FormatTime.
func ParseTime(s string) (float64, error) {
	minPart, secPart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: expected m:ss", s)
	}
	mins, err := strconv.Atoi(minPart)
	if err != nil || mins < 0 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	secs, err := strconv.Atoi(secPart)
	if err != nil || secs < 0 || secs >= 60 || len(secPart) != 2 {
		return 0, fmt.Errorf("invalid seconds in %q", s)
	}
	return float64(mins*60 + secs), nil
}

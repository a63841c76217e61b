// ABOUTME: Parses and formats human-entered durations for time-tracked sets.
// ABOUTME: Accepts "mm:ss" or bare whole minutes and renders "m:ss".
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockPattern   = regexp.MustCompile(`^(\d+):(\d{1,2})$`)
	minutesPattern = regexp.MustCompile(`^\d+$`)
)

// maxMinutes is the largest minute count whose "m:59" still fits in an int.
const maxMinutes = (math.MaxInt - 59) / 60

// Parse converts "mm:ss" or a bare number of minutes to seconds.
// ok is false for empty, malformed, or out-of-range input (seconds >= 60, or a total
// that does not fit in an int).
func Parse(text string) (seconds int, ok bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		mins, err := strconv.Atoi(m[1])
		if err != nil || mins > maxMinutes {
			return 0, false
		}
		secs, err := strconv.Atoi(m[2])
		if err != nil || secs >= 60 {
			return 0, false
		}
		return mins*60 + secs, true
	}

	if minutesPattern.MatchString(s) {
		mins, err := strconv.Atoi(s)
		if err != nil || mins > maxMinutes {
			return 0, false
		}
		return mins * 60, true
	}

	return 0, false
}

// ParsePtr is Parse returning nil for "no value".
func ParsePtr(text string) *int {
	secs, ok := Parse(text)
	if !ok {
		return nil
	}
	return &secs
}

// Format renders seconds as "m:ss". Nil or negative input yields "".
func Format(seconds *int) string {
	if seconds == nil {
		return ""
	}
	return FormatSeconds(*seconds)
}

// FormatSeconds renders seconds as "m:ss", or "" when negative.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned for input that is neither "X" nor "M:SS".
var ErrInvalidTimeFormat = errors.New("invalid time format")

// SentinelInput is recorded for a timed game left blank.
const SentinelInput = "99:99"

// SentinelSeconds is SentinelInput in seconds. A time at or above it never
// wins a game.
const SentinelSeconds = 99*60 + 99

var (
	secondsPattern = regexp.MustCompile(`^\d+$`)
	minutesPattern = regexp.MustCompile(`^(\d+):(\d{2})$`)
)

// ParseTime converts "90" or "1:30" into seconds. The input must match one
// of the two shapes exactly; surrounding spaces are rejected.
func ParseTime(input string) (int, error) {
	if secondsPattern.MatchString(input) {
		secs, err := strconv.Atoi(input)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
		}
		return secs, nil
	}

	if m := minutesPattern.FindStringSubmatch(input); m != nil {
		mins, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
		}
		secs, _ := strconv.Atoi(m[2])
		return mins*60 + secs, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
}

// ParseSubmittedTime is ParseTime for form input: surrounding spaces are
// trimmed and blank means the sentinel.
func ParseSubmittedTime(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return SentinelSeconds, nil
	}
	return ParseTime(input)
}

// FormatTime renders seconds as "m:ss".
func FormatTime(seconds int) string {
	if seconds >= SentinelSeconds {
		return SentinelInput
	}
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"90", 90, false},
		{"1:30", 90, false},
		{"0", 0, false},
		{"0:05", 5, false},
		{" 2:00 ", 0, true},
		{"90 ", 0, true},
		{"99:99", SentinelSeconds, false},
		{"1:3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"-5", 0, true},
		{"1:300", 0, true},
		{"1.5", 0, true},
		{":30", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeZeroIsNotAnError(t *testing.T) {
	secs, err := ParseTime("0")
	require.NoError(t, err)
	assert.Zero(t, secs)
}

func TestParseSubmittedTime(t *testing.T) {
	secs, err := ParseSubmittedTime("")
	require.NoError(t, err)
	assert.Equal(t, SentinelSeconds, secs)

	secs, err = ParseSubmittedTime("   ")
	require.NoError(t, err)
	assert.Equal(t, SentinelSeconds, secs)

	secs, err = ParseSubmittedTime(" 2:00 ")
	require.NoError(t, err)
	assert.Equal(t, 120, secs)

	_, err = ParseSubmittedTime("1:3")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "1:30", FormatTime(90))
	assert.Equal(t, "0:05", FormatTime(5))
	assert.Equal(t, "12:00", FormatTime(720))
	assert.Equal(t, SentinelInput, FormatTime(SentinelSeconds))
}

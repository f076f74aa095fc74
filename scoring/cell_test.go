// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xAlexMGGx/LinkGames/roster"
)

func applyAll(t *testing.T, cell string, shares ...Share) string {
	t.Helper()
	for _, s := range shares {
		var err error
		cell, err = ApplyWin(cell, s)
		require.NoError(t, err)
	}
	return cell
}

func TestApplyWinCarries(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		shares []Share
		want   string
		value  float64
	}{
		{"three thirds make one", "", []Share{Third, Third, Third}, "I", 1},
		{"two halves make one", "", []Share{Half, Half}, "I", 1},
		{"one half then another", "i", []Share{Half}, "I", 1},
		{"five wholes make a five", "", []Share{Whole, Whole, Whole, Whole, Whole}, "5", 5},
		{"third carry completes a five", "IIII..", []Share{Third}, "5", 5},
		{"half carry completes a five", "IIIIi", []Share{Half}, "5", 5},
		{"mixed shares stay sorted", "", []Share{Third, Half, Whole}, "Ii.", 1 + 0.5 + 1.0/3},
		{"existing fives kept", "5I", []Share{Whole}, "5II", 7},
		{"stray zero stripped", "0I", []Share{Third}, "I.", 1 + 1.0/3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyAll(t, tt.start, tt.shares...)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.value, DecodeCell(got), 1e-9)
		})
	}
}

func TestApplyWinOrderIndependent(t *testing.T) {
	a := applyAll(t, "", Whole, Third, Half, Whole, Third, Half, Whole, Third, Whole)
	b := applyAll(t, "", Third, Third, Third, Half, Half, Whole, Whole, Whole, Whole)
	assert.Equal(t, a, b)
	assert.Equal(t, "5I", a)
	assert.InDelta(t, 6.0, DecodeCell(a), 1e-9)
}

func TestApplyWinRejectsBadInput(t *testing.T) {
	_, err := ApplyWin("Ix", Whole)
	assert.ErrorIs(t, err, ErrInvalidCell)

	_, err = ApplyWin("I", Share(4))
	assert.ErrorIs(t, err, ErrUnsupportedShare)
}

func TestDecodeCell(t *testing.T) {
	assert.Equal(t, 5+1+0.5+1.0/3, DecodeCell("5Ii."))
	assert.Equal(t, 0.0, DecodeCell(""))
	assert.Equal(t, 0.0, DecodeCell("0"))
	assert.InDelta(t, 2.0/3, DecodeCell(".."), 1e-9)
	assert.InDelta(t, 11.0, DecodeCell("55I"), 1e-9)
}

func TestCellRoundTrip(t *testing.T) {
	c, err := ParseCell(".I5i")
	require.NoError(t, err)
	assert.Equal(t, Cell{Fives: 1, Ones: 1, Halves: 1, Thirds: 1}, c)
	assert.Equal(t, "5Ii.", c.String())
	assert.Equal(t, 41, c.Sixths())
	assert.False(t, c.IsZero())
	assert.True(t, Cell{}.IsZero())
}

func TestShareFor(t *testing.T) {
	tests := []struct {
		kind    roster.Kind
		n       int
		want    Share
		wantErr bool
	}{
		{roster.KindTimed, 1, Whole, false},
		{roster.KindTimed, 2, Half, false},
		{roster.KindTimed, 3, Third, false},
		{roster.KindTimed, 4, 0, true},
		{roster.KindTimed, 0, 0, true},
		{roster.KindBoolean, 1, Whole, false},
		{roster.KindBoolean, 5, Whole, false},
	}

	for _, tt := range tests {
		got, err := ShareFor(tt.kind, tt.n)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedShare, "%s/%d", tt.kind, tt.n)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s/%d", tt.kind, tt.n)
	}
}

func TestCanonicalCell(t *testing.T) {
	assert.Equal(t, "5Ii.", CanonicalCell(".x0I5i"))
	assert.Equal(t, "", CanonicalCell("0"))
	assert.Equal(t, "", CanonicalCell(""))
}

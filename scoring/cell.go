// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xAlexMGGx/LinkGames/roster"
)

var (
	ErrInvalidCell      = errors.New("invalid cell")
	ErrUnsupportedShare = errors.New("unsupported share")
)

// Cell symbols, in canonical order.
const (
	SymbolFive  = '5'
	SymbolOne   = 'I'
	SymbolHalf  = 'i'
	SymbolThird = '.'
	symbolZero  = '0'
)

// Share is the fraction of a daily win credited to one winner, stored as
// its denominator.
type Share int

const (
	Whole Share = 1
	Half  Share = 2
	Third Share = 3
)

func (s Share) String() string {
	switch s {
	case Whole:
		return "1"
	case Half:
		return "1/2"
	case Third:
		return "1/3"
	}
	return fmt.Sprintf("1/%d", int(s))
}

// ShareFor returns what each of nWinners gets for a daily win.
// Boolean games always award a whole point. Timed games split the point,
// and there is no symbol below a third: four or more tied winners get
// ErrUnsupportedShare.
func ShareFor(kind roster.Kind, nWinners int) (Share, error) {
	if nWinners <= 0 {
		return 0, fmt.Errorf("%w: %d winners", ErrUnsupportedShare, nWinners)
	}
	if kind == roster.KindBoolean {
		return Whole, nil
	}
	if nWinners > int(Third) {
		return 0, fmt.Errorf("%w: 1/%d", ErrUnsupportedShare, nWinners)
	}
	return Share(nWinners), nil
}

// Cell is a monthly accumulator for one player and game.
type Cell struct {
	Fives  int
	Ones   int
	Halves int
	Thirds int
}

// ParseCell reads a symbol string such as "5Ii.". Stray '0' runes are
// dropped.
func ParseCell(s string) (Cell, error) {
	var c Cell
	for _, r := range s {
		switch r {
		case SymbolFive:
			c.Fives++
		case SymbolOne:
			c.Ones++
		case SymbolHalf:
			c.Halves++
		case SymbolThird:
			c.Thirds++
		case symbolZero:
		default:
			return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCell, s)
		}
	}
	return c, nil
}

// String returns the canonical, sorted symbol string.
func (c Cell) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(string(SymbolFive), c.Fives))
	b.WriteString(strings.Repeat(string(SymbolOne), c.Ones))
	b.WriteString(strings.Repeat(string(SymbolHalf), c.Halves))
	b.WriteString(strings.Repeat(string(SymbolThird), c.Thirds))
	return b.String()
}

// Add credits one share and applies the carry rules.
func (c Cell) Add(share Share) (Cell, error) {
	switch share {
	case Whole:
		c.Ones++
	case Half:
		c.Halves++
	case Third:
		c.Thirds++
	default:
		return c, fmt.Errorf("%w: %s", ErrUnsupportedShare, share)
	}
	return c.carry(), nil
}

// carry folds thirds, then halves, then ones into the next symbol up.
// The order is fixed: a third carry can complete a five.
func (c Cell) carry() Cell {
	if c.Thirds > 0 && c.Thirds%3 == 0 {
		c.Ones += c.Thirds / 3
		c.Thirds = 0
	}
	if c.Halves > 0 && c.Halves%2 == 0 {
		c.Ones += c.Halves / 2
		c.Halves = 0
	}
	if c.Ones > 0 && c.Ones%5 == 0 {
		c.Fives += c.Ones / 5
		c.Ones = 0
	}
	return c
}

// Sixths is the exact value of the cell in sixths of a point.
func (c Cell) Sixths() int {
	return 30*c.Fives + 6*c.Ones + 3*c.Halves + 2*c.Thirds
}

// Value is the numeric total of the cell.
func (c Cell) Value() float64 {
	return float64(c.Sixths()) / 6
}

// IsZero reports whether the cell holds no points.
func (c Cell) IsZero() bool {
	return c.Sixths() == 0
}

// ApplyWin adds a share to a stored cell string and returns the new string.
func ApplyWin(cell string, share Share) (string, error) {
	c, err := ParseCell(cell)
	if err != nil {
		return cell, err
	}
	c, err = c.Add(share)
	if err != nil {
		return cell, err
	}
	return c.String(), nil
}

// DecodeCell returns the numeric value of a stored cell. Unknown runes are
// worth zero.
func DecodeCell(cell string) float64 {
	return float64(cellSixths(cell)) / 6
}

// CanonicalCell rewrites a stored cell in canonical order. Unknown runes
// are dropped, so the result always parses.
func CanonicalCell(cell string) string {
	var c Cell
	for _, r := range cell {
		switch r {
		case SymbolFive:
			c.Fives++
		case SymbolOne:
			c.Ones++
		case SymbolHalf:
			c.Halves++
		case SymbolThird:
			c.Thirds++
		}
	}
	return c.String()
}

func cellSixths(cell string) int {
	total := 0
	for _, r := range cell {
		switch r {
		case SymbolFive:
			total += 30
		case SymbolOne:
			total += 6
		case SymbolHalf:
			total += 3
		case SymbolThird:
			total += 2
		}
	}
	return total
}

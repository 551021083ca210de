package format

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFloat formats v with exactly precision digits after the decimal
// point. float64 carries about 16 significant digits; digits beyond that
// are the binary expansion of v, not digits of the quantity estimated.
func FormatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatRat formats an exact rational with precision digits after the
// decimal point, rounded half away from zero.
func FormatRat(r *big.Rat, precision int) string {
	if r == nil {
		return ""
	}
	return r.FloatString(precision)
}

// FormatPercent formats a relative error given in percent. Small values use
// scientific notation so that they stay readable.
func FormatPercent(p float64) string {
	switch {
	case p == 0:
		return "0%"
	case math.Abs(p) < 1e-3:
		return fmt.Sprintf("%.3e%%", p)
	default:
		return fmt.Sprintf("%.6f%%", p)
	}
}

// FormatUint formats n with comma thousands separators.
func FormatUint(n uint64) string {
	return FormatNumberString(strconv.FormatUint(n, 10))
}

// FormatNumberString inserts comma thousands separators into a string of
// decimal digits.
func FormatNumberString(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Package currency converts base prices (BDT) into the display unit chosen by
// a visitor. All conversions use one fixed rate and one rounding rule so every
// price on a page agrees.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Code identifies a display unit.
type Code string

const (
	BDT Code = "BDT"
	EUR Code = "EUR"
)

// DefaultEURRate is the number of BDT per EUR used when none is configured.
const DefaultEURRate = 118

// Parse accepts a case-insensitive code and reports whether it is known.
func Parse(raw string) (Code, bool) {
	switch Code(strings.ToUpper(strings.TrimSpace(raw))) {
	case BDT:
		return BDT, true
	case EUR:
		return EUR, true
	default:
		return "", false
	}
}

// Toggle flips between the two units.
func (c Code) Toggle() Code {
	if c == EUR {
		return BDT
	}
	return EUR
}

// Symbol returns the display symbol for the unit.
func (c Code) Symbol() string {
	if c == EUR {
		return "€"
	}
	return "৳"
}

// Converter applies the fixed BDT→EUR rate.
type Converter struct {
	rate float64
}

// NewConverter builds a converter; non-positive rates fall back to DefaultEURRate.
func NewConverter(eurRate float64) *Converter {
	if eurRate <= 0 {
		eurRate = DefaultEURRate
	}
	return &Converter{rate: eurRate}
}

// Rate returns BDT per EUR.
func (cv *Converter) Rate() float64 {
	return cv.rate
}

// Convert returns bdt expressed in unit. EUR amounts are rounded half away
// from zero to whole euros.
func (cv *Converter) Convert(bdt int64, unit Code) int64 {
	if unit != EUR {
		return bdt
	}
	return int64(math.Round(float64(bdt) / cv.rate))
}

// Format renders "<symbol> <amount>" with comma thousands separators.
func (cv *Converter) Format(bdt int64, unit Code) string {
	return fmt.Sprintf("%s %s", unit.Symbol(), groupThousands(cv.Convert(bdt, unit)))
}

// Price is the rendered form of a base price for one unit.
type Price struct {
	Amount    int64  `json:"amount"`
	Currency  Code   `json:"currency"`
	Symbol    string `json:"symbol"`
	Formatted string `json:"formatted"`
}

// Price converts and formats bdt in one step.
func (cv *Converter) Price(bdt int64, unit Code) Price {
	if unit != EUR {
		unit = BDT
	}
	return Price{
		Amount:    cv.Convert(bdt, unit),
		Currency:  unit,
		Symbol:    unit.Symbol(),
		Formatted: cv.Format(bdt, unit),
	}
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}

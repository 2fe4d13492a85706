package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxNameLen = 100

// Name trims s and requires 1..100 characters.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxNameLen {
		return "", false
	}
	return s, true
}

// ID parses a positive integer resource id from a path segment.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// RefID reports whether a body-supplied foreign key is present and positive.
func RefID(id *int64) bool {
	return id != nil && *id > 0
}

// Price requires a present, strictly positive amount.
func Price(p *decimal.Decimal) bool {
	return p != nil && p.IsPositive()
}

// Qty requires a strictly positive quantity; fractions are allowed (1.5 kg).
func Qty(q decimal.Decimal) bool {
	return q.IsPositive()
}

// UnitPrice allows an absent price (snapshot later) or any non-negative amount.
func UnitPrice(p *decimal.Decimal) bool {
	return p == nil || !p.IsNegative()
}

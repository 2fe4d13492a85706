package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestName(t *testing.T) {
	got, ok := Name("  kg ")
	assert.True(t, ok)
	assert.Equal(t, "kg", got)

	_, ok = Name("   ")
	assert.False(t, ok)
	_, ok = Name(strings.Repeat("x", 101))
	assert.False(t, ok)
}

func TestID(t *testing.T) {
	n, ok := ID("42")
	assert.True(t, ok)
	assert.EqualValues(t, 42, n)

	for _, s := range []string{"", "0", "-3", "abc", "1.5"} {
		_, ok := ID(s)
		assert.False(t, ok, s)
	}
}

func TestRefID(t *testing.T) {
	one, zero := int64(1), int64(0)
	assert.True(t, RefID(&one))
	assert.False(t, RefID(&zero))
	assert.False(t, RefID(nil))
}

func TestPriceAndQty(t *testing.T) {
	assert.True(t, Price(dec("0.01")))
	assert.False(t, Price(dec("0")))
	assert.False(t, Price(nil))

	assert.True(t, Qty(decimal.RequireFromString("1.5")))
	assert.False(t, Qty(decimal.Zero))
	assert.False(t, Qty(decimal.RequireFromString("-1")))

	assert.True(t, UnitPrice(nil))
	assert.True(t, UnitPrice(dec("0")))
	assert.False(t, UnitPrice(dec("-0.5")))
}

package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	usd := Lookup("USD")
	assert.Equal(t, "US Dollar", usd.Name)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, 2, usd.MinorUnits)

	jpy := Lookup("JPY")
	assert.Equal(t, 0, jpy.MinorUnits)

	// Unknown and empty codes fall back to USD instead of erroring.
	assert.Equal(t, usd, Lookup("XXX"))
	assert.Equal(t, usd, Lookup(""))
}

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.GreaterOrEqual(t, len(codes), 20)
	assert.Contains(t, codes, "USD")
	assert.Contains(t, codes, "EUR")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1,234.50", Format(1234.5, "USD"))
	assert.Equal(t, "€1.234,50", Format(1234.5, "EUR"))
	assert.Equal(t, "¥1,235", Format(1234.9, "JPY"))

	// Unknown code formats as the default currency.
	assert.Equal(t, "$5.00", Format(5, "XXX"))

	// Non-finite amounts render as zero.
	assert.Equal(t, "$0.00", Format(math.NaN(), "USD"))
	assert.Equal(t, "$0.00", Format(math.Inf(1), "USD"))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1050), ToMinorUnits(10.50, "USD"))
	assert.Equal(t, int64(1050), ToMinorUnits(10.504, "USD"))
	assert.Equal(t, int64(1051), ToMinorUnits(10.506, "USD"))
	assert.Equal(t, int64(11), ToMinorUnits(10.6, "JPY"))
	assert.Equal(t, int64(0), ToMinorUnits(math.NaN(), "USD"))
	assert.Equal(t, int64(0), ToMinorUnits(math.Inf(-1), "USD"))
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, 10.50, FromMinorUnits(1050, "USD"))
	assert.Equal(t, 1050.0, FromMinorUnits(1050, "JPY"))
	assert.Equal(t, 0.0, FromMinorUnits(math.NaN(), "USD"))
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 0.01, 19.99, 62.5, 1234.56} {
		minor := ToMinorUnits(amount, "USD")
		assert.InDelta(t, amount, FromMinorUnits(float64(minor), "USD"), 0.005)
	}
}

package currency

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateKnownCodes(t *testing.T) {
	for _, code := range Codes() {
		rate, err := Rate(code)
		require.NoError(t, err)
		assert.Greater(t, rate, 0.0)
	}
}

func TestRateBaseIsIdentity(t *testing.T) {
	rate, err := Rate(BaseCode)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)
}

func TestRateUnknownCodeTypedError(t *testing.T) {
	_, err := Rate("XYZ")
	require.Error(t, err)

	var unknown *ErrUnknownCode
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "XYZ", unknown.Code)
}

func TestConvertIsLinear(t *testing.T) {
	a, err := Convert(100, "INR")
	require.NoError(t, err)
	b, err := Convert(200, "INR")
	require.NoError(t, err)
	assert.InDelta(t, 2*a, b, 1e-9)
}

func TestConvertUnknownCode(t *testing.T) {
	_, err := Convert(100, "BTC")
	var unknown *ErrUnknownCode
	require.True(t, errors.As(err, &unknown))
}

func TestFormatPrice(t *testing.T) {
	got, err := FormatPrice(125, "USD")
	require.NoError(t, err)
	assert.Equal(t, "$125.00", got)

	got, err = FormatPrice(100, "EUR")
	require.NoError(t, err)
	assert.Equal(t, "€92.00", got)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("INR"))
	assert.True(t, IsSupported("JPY"))
	assert.False(t, IsSupported("inr"))
	assert.False(t, IsSupported(""))
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("GBP")
	require.True(t, ok)
	assert.Equal(t, "£", c.Symbol)
	assert.Equal(t, 0.79, c.Rate)

	_, ok = Lookup("XYZ")
	assert.False(t, ok)
}

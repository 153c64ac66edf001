package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromInt(10), USD)
	require.NoError(t, err)
	assert.Equal(t, USD, m.Currency())

	_, err = NewMoney(decimal.NewFromInt(10), "")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyUSDFromFloat(10.50)
	b := NewMoneyUSDFromFloat(2.25)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(12.75)))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromFloat(8.25)))

	product := b.MultiplyByInt(4)
	assert.True(t, product.Amount().Equal(decimal.NewFromFloat(9.0)))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := NewMoneyUSDFromFloat(1)
	eur, err := NewMoney(decimal.NewFromInt(1), EUR)
	require.NoError(t, err)

	_, err = usd.Add(eur)
	assert.Error(t, err)
	_, err = usd.Subtract(eur)
	assert.Error(t, err)
	assert.Panics(t, func() { usd.MustAdd(eur) })
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroUSD().IsZero())
	assert.True(t, NewMoneyUSDFromFloat(0.01).IsPositive())
	assert.True(t, NewMoneyUSDFromFloat(-0.01).IsNegative())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "10.50 USD", NewMoneyUSDFromFloat(10.5).String())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	original := NewMoneyUSDFromFloat(19.99)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equals(decoded))
}

func TestMoney_Scan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("12.34"))
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(12.34)))
	assert.Equal(t, DefaultCurrency, m.Currency())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	assert.Error(t, m.Scan(42))
}

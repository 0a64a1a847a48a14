package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplewallet/internal/errors"
)

func usd(s string) Money {
	return NewMoney(decimal.RequireFromString(s), "USD")
}

func TestMoney_Zero(t *testing.T) {
	m := Zero("EUR")
	assert.True(t, m.Amount.IsZero())
	assert.Equal(t, "EUR", m.Currency)
	assert.False(t, m.IsPositive())
}

func TestMoney_Add(t *testing.T) {
	sum, err := usd("10.50").Add(usd("4.25"))
	require.NoError(t, err)
	assert.True(t, sum.Equal(usd("14.75")))

	_, err = usd("10").Add(NewMoney(decimal.NewFromInt(5), "EUR"))
	assert.ErrorIs(t, err, errors.ErrCurrencyMismatch)
}

func TestMoney_Sub(t *testing.T) {
	diff, err := usd("10").Sub(usd("4"))
	require.NoError(t, err)
	assert.True(t, diff.Equal(usd("6")))

	_, err = usd("10").Sub(NewMoney(decimal.NewFromInt(5), "EUR"))
	assert.ErrorIs(t, err, errors.ErrCurrencyMismatch)
}

func TestMoney_ImmutableOperands(t *testing.T) {
	a := usd("10")
	b := usd("3")
	_, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, a.Equal(usd("10")))
	assert.True(t, b.Equal(usd("3")))
}

func TestMoney_Equal(t *testing.T) {
	assert.True(t, usd("10.00").Equal(usd("10")))
	assert.False(t, usd("10").Equal(NewMoney(decimal.NewFromInt(10), "EUR")))
	assert.False(t, usd("10").Equal(usd("11")))
}

func TestMoney_LessThan(t *testing.T) {
	assert.True(t, usd("5").LessThan(usd("10")))
	assert.False(t, usd("10").LessThan(usd("10")))
}

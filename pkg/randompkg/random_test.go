package randompkg

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGenerators(t *testing.T) {
	require.NotEmpty(t, FirstName())
	require.NotEmpty(t, LastName())
	require.Contains(t, Email(), "@")
	require.NotEmpty(t, Phone())
	require.NotEmpty(t, Address())
	require.NotEmpty(t, Payee())
}

func TestAmountBetween(t *testing.T) {
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(20)

	for i := 0; i < 100; i++ {
		amount := AmountBetween(10, 20)

		require.True(t, amount.GreaterThanOrEqual(min), "amount=%s below min", amount)
		require.True(t, amount.LessThanOrEqual(max), "amount=%s above max", amount)
		require.GreaterOrEqual(t, amount.Exponent(), int32(-2), "amount=%s has more than 2 decimals", amount)
	}
}

// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// FirstName generates a random first name.
func FirstName() string {
	return gofakeit.FirstName()
}

// LastName generates a random last name.
func LastName() string {
	return gofakeit.LastName()
}

// Email generates a random email.
func Email() string {
	return gofakeit.Email()
}

// Phone generates a random phone number.
func Phone() string {
	return gofakeit.Phone()
}

// Address generates a random street address.
func Address() string {
	return gofakeit.Address().Address
}

// Payee generates a random company name to write checks to.
func Payee() string {
	return gofakeit.Company()
}

// AmountBetween generates a random money amount between min and max rounded
// to 2 decimals.
func AmountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(min, max)).Round(2)
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidAccountError indicates account or customer data that fails validation.
type InvalidAccountError struct {
	Reason string
}

func (e *InvalidAccountError) Error() string {
	return e.Reason
}

// InvalidTransactionError indicates an operation rejected by transaction rules.
type InvalidTransactionError struct {
	Reason string
}

func (e *InvalidTransactionError) Error() string {
	return e.Reason
}

// InsufficientFundsError indicates a withdrawal the account cannot cover.
type InsufficientFundsError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds. Requested: $%s, Available: $%s",
		e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

// AccountNotFoundError indicates a lookup for an unknown account number.
type AccountNotFoundError struct {
	Number string
}

func (e *AccountNotFoundError) Error() string {
	return "Account not found: " + e.Number
}

// CustomerNotFoundError indicates a lookup for an unknown customer id.
type CustomerNotFoundError struct {
	ID string
}

func (e *CustomerNotFoundError) Error() string {
	return "Customer not found: " + e.ID
}

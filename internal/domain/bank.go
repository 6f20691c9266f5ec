package domain

import "github.com/shopspring/decimal"

// BankStats aggregates bank-wide counts and balances.
type BankStats struct {
	BankName        string          `json:"bank_name"`
	BankCode        string          `json:"bank_code"`
	Customers       int             `json:"customers"`
	ActiveCustomers int             `json:"active_customers"`
	Accounts        int             `json:"accounts"`
	ActiveAccounts  int             `json:"active_accounts"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	AccountsByKind  map[Kind]int    `json:"accounts_by_kind"`
}

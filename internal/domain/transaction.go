package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags the direction and cause of a balance change.
type TransactionType string

// Transaction types recorded in account histories.
const (
	TransactionDeposit        TransactionType = "deposit"
	TransactionWithdrawal     TransactionType = "withdrawal"
	TransactionTransferIn     TransactionType = "transfer_in"
	TransactionTransferOut    TransactionType = "transfer_out"
	TransactionInterestCredit TransactionType = "interest_credit"
	TransactionFeeDebit       TransactionType = "fee_debit"
)

// Transaction is an immutable record of a single balance change. BalanceAfter
// snapshots the account balance right after the change was applied.
type Transaction struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"account_number"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}

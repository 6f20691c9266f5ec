// Package domain defines the bank's entities and the business rules they enforce.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind discriminates account variants.
type Kind string

// Supported account kinds.
const (
	Savings  Kind = "savings"
	Checking Kind = "checking"
)

// IsSupportedKind reports whether kind names a supported account variant.
func IsSupportedKind(kind string) bool {
	switch Kind(kind) {
	case Savings, Checking:
		return true
	}

	return false
}

// Title returns the kind's display name.
func (k Kind) Title() string {
	switch k {
	case Savings:
		return "Savings Account"
	case Checking:
		return "Checking Account"
	}

	return string(k)
}

var (
	monthsInYear = decimal.NewFromInt(12)
	oneCent      = decimal.RequireFromString("0.01")
	oneHundred   = decimal.NewFromInt(100)
)

// policy carries the behavior that varies between account kinds. The deposit
// and withdrawal flow itself is fixed on Account.
type policy interface {
	kind() Kind
	minimumBalance() decimal.Decimal
	// canWithdraw reports whether the variant rules allow taking amount
	// from the given balance.
	canWithdraw(balance, amount decimal.Decimal) bool
	// afterWithdrawal runs once the withdrawal transaction is recorded.
	// Monthly counters and penalty fees live here.
	afterWithdrawal(a *Account, before decimal.Decimal)
	// applyMonthlyMaintenance resets monthly counters and posts the
	// variant's fee and interest transactions.
	applyMonthlyMaintenance(a *Account)
}

// Account is a single bank account. The balance changes only through the
// methods below, and every change appends exactly one Transaction to the
// account's history.
type Account struct {
	number     string
	holderName string
	balance    decimal.Decimal
	active     bool
	openedAt   time.Time
	history    []Transaction
	ids        *Sequence
	policy     policy
}

func newAccount(numbers, ids *Sequence, holderName string, initial decimal.Decimal, p policy) (*Account, error) {
	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		return nil, &InvalidAccountError{Reason: "Account holder name cannot be empty"}
	}

	if initial.IsNegative() {
		return nil, &InvalidAccountError{Reason: "Initial balance cannot be negative"}
	}

	a := &Account{
		number:     numbers.Next(),
		holderName: holderName,
		balance:    initial,
		active:     true,
		openedAt:   time.Now(),
		ids:        ids,
		policy:     p,
	}

	if initial.IsPositive() {
		a.record(TransactionDeposit, initial, "Initial deposit")
	}

	// An opening balance below the variant minimum is topped up to the
	// minimum with its own transaction.
	if min := p.minimumBalance(); initial.LessThan(min) {
		shortfall := min.Sub(initial)
		a.balance = a.balance.Add(shortfall)
		a.record(TransactionDeposit, shortfall, "Minimum balance requirement deposit")
	}

	return a, nil
}

// NewSavingsAccount opens a savings account. The numbers sequence issues the
// account number once validation passes; the ids sequence issues transaction
// identifiers for the account's history.
func NewSavingsAccount(numbers, ids *Sequence, holderName string, initial decimal.Decimal) (*Account, error) {
	return newAccount(numbers, ids, holderName, initial, &savingsPolicy{})
}

// NewCheckingAccount opens a checking account with the given overdraft
// protection setting.
func NewCheckingAccount(numbers, ids *Sequence, holderName string, initial decimal.Decimal, overdraftProtection bool) (*Account, error) {
	return newAccount(numbers, ids, holderName, initial, &checkingPolicy{overdraftProtection: overdraftProtection})
}

// Number returns the account number.
func (a *Account) Number() string {
	return a.number
}

// HolderName returns the account holder's name.
func (a *Account) HolderName() string {
	return a.holderName
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// OpenedAt returns the account opening time.
func (a *Account) OpenedAt() time.Time {
	return a.openedAt
}

// IsActive reports whether the account accepts transactions.
func (a *Account) IsActive() bool {
	return a.active
}

// Kind returns the account variant.
func (a *Account) Kind() Kind {
	return a.policy.kind()
}

// MinimumBalance returns the variant's minimum balance.
func (a *Account) MinimumBalance() decimal.Decimal {
	return a.policy.minimumBalance()
}

// Deactivate freezes the account. Deposits and withdrawals are rejected until
// it is activated again.
func (a *Account) Deactivate() {
	a.active = false
}

// Activate unfreezes the account.
func (a *Account) Activate() {
	a.active = true
}

// Deposit adds amount to the balance and records a cash deposit.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	if err := a.validateAmount(amount); err != nil {
		return Transaction{}, err
	}

	a.balance = a.balance.Add(amount)

	return a.record(TransactionDeposit, amount, "Cash deposit"), nil
}

// Withdraw takes amount from the balance and records a cash withdrawal. The
// variant policy decides whether the withdrawal is allowed and may post a
// penalty fee after the withdrawal transaction.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	return a.withdrawAs(amount, TransactionWithdrawal, "Cash withdrawal")
}

// TransferOut withdraws amount as the debit half of a transfer to another
// account. The credit half is recorded separately by the receiving account.
func (a *Account) TransferOut(amount decimal.Decimal, toNumber string) (Transaction, error) {
	return a.withdrawAs(amount, TransactionTransferOut, "Transfer to "+toNumber)
}

// TransferIn deposits amount as the credit half of a transfer from another
// account.
func (a *Account) TransferIn(amount decimal.Decimal, fromNumber string) (Transaction, error) {
	if err := a.validateAmount(amount); err != nil {
		return Transaction{}, err
	}

	a.balance = a.balance.Add(amount)

	return a.record(TransactionTransferIn, amount, "Transfer from "+fromNumber), nil
}

// WriteCheck withdraws amount as a check written to payee. Only checking
// accounts can write checks.
func (a *Account) WriteCheck(amount decimal.Decimal, payee string) (Transaction, error) {
	chk, ok := a.policy.(*checkingPolicy)
	if !ok {
		return Transaction{}, &InvalidTransactionError{Reason: "Check writing is only available for checking accounts"}
	}

	txn, err := a.withdrawAs(amount, TransactionWithdrawal, "Check written to "+payee)
	if err != nil {
		return Transaction{}, err
	}

	chk.checksWritten++

	return txn, nil
}

// SetOverdraftProtection toggles overdraft protection. Only checking accounts
// carry overdraft protection.
func (a *Account) SetOverdraftProtection(enabled bool) error {
	chk, ok := a.policy.(*checkingPolicy)
	if !ok {
		return &InvalidTransactionError{Reason: "Overdraft protection is only available for checking accounts"}
	}

	chk.overdraftProtection = enabled

	return nil
}

// ApplyMonthlyMaintenance resets the variant's monthly counters and posts its
// maintenance fee and interest for the month.
func (a *Account) ApplyMonthlyMaintenance() {
	a.policy.applyMonthlyMaintenance(a)
}

// withdrawAs runs the fixed withdrawal flow: validate, consult the policy,
// move the balance, record the transaction, then let the policy post any
// penalty fee.
func (a *Account) withdrawAs(amount decimal.Decimal, t TransactionType, description string) (Transaction, error) {
	if err := a.validateAmount(amount); err != nil {
		return Transaction{}, err
	}

	if !a.policy.canWithdraw(a.balance, amount) {
		return Transaction{}, &InsufficientFundsError{Requested: amount, Available: a.balance}
	}

	before := a.balance
	a.balance = a.balance.Sub(amount)
	txn := a.record(t, amount, description)
	a.policy.afterWithdrawal(a, before)

	return txn, nil
}

func (a *Account) validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &InvalidTransactionError{Reason: "Transaction amount must be positive"}
	}

	if !a.active {
		return &InvalidTransactionError{Reason: "Account is not active"}
	}

	return nil
}

// record appends a transaction carrying the current balance snapshot.
func (a *Account) record(t TransactionType, amount decimal.Decimal, description string) Transaction {
	txn := Transaction{
		ID:            a.ids.Next(),
		AccountNumber: a.number,
		Type:          t,
		Amount:        amount,
		Description:   description,
		BalanceAfter:  a.balance,
		CreatedAt:     time.Now(),
	}
	a.history = append(a.history, txn)

	return txn
}

// addFee debits a fee outside the public validation path.
func (a *Account) addFee(amount decimal.Decimal, description string) {
	if !amount.IsPositive() {
		return
	}

	a.balance = a.balance.Sub(amount)
	a.record(TransactionFeeDebit, amount, description)
}

// addInterest credits interest outside the public validation path.
func (a *Account) addInterest(amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}

	a.balance = a.balance.Add(amount)
	a.record(TransactionInterestCredit, amount, "Monthly interest credit")
}

// History returns a copy of the account's transaction history, oldest first.
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)

	return out
}

// RecentTransactions returns a copy of the most recent count transactions,
// oldest first.
func (a *Account) RecentTransactions(count int) []Transaction {
	if count <= 0 {
		return []Transaction{}
	}

	start := len(a.history) - count
	if start < 0 {
		start = 0
	}

	out := make([]Transaction, len(a.history)-start)
	copy(out, a.history[start:])

	return out
}

// SavingsInfo carries the savings-only part of an account snapshot.
type SavingsInfo struct {
	InterestRate             decimal.Decimal `json:"interest_rate"`
	WithdrawalsThisMonth     int             `json:"withdrawals_this_month"`
	RemainingFreeWithdrawals int             `json:"remaining_free_withdrawals"`
}

// CheckingInfo carries the checking-only part of an account snapshot.
type CheckingInfo struct {
	OverdraftProtection    bool            `json:"overdraft_protection"`
	OverdraftLimit         decimal.Decimal `json:"overdraft_limit"`
	AvailableOverdraft     decimal.Decimal `json:"available_overdraft"`
	ChecksWrittenThisMonth int             `json:"checks_written_this_month"`
	Overdrawn              bool            `json:"overdrawn"`
}

// AccountInfo is the account read model returned by service queries. Exactly
// one of Savings and Checking is set, matching Kind.
type AccountInfo struct {
	Number         string          `json:"number"`
	Kind           Kind            `json:"kind"`
	HolderName     string          `json:"holder_name"`
	Balance        decimal.Decimal `json:"balance"`
	MinimumBalance decimal.Decimal `json:"minimum_balance"`
	IsActive       bool            `json:"is_active"`
	OpenedAt       time.Time       `json:"opened_at"`
	Transactions   int             `json:"transactions"`
	Savings        *SavingsInfo    `json:"savings,omitempty"`
	Checking       *CheckingInfo   `json:"checking,omitempty"`
}

// Info returns the account read model.
func (a *Account) Info() AccountInfo {
	info := AccountInfo{
		Number:         a.number,
		Kind:           a.Kind(),
		HolderName:     a.holderName,
		Balance:        a.balance,
		MinimumBalance: a.MinimumBalance(),
		IsActive:       a.active,
		OpenedAt:       a.openedAt,
		Transactions:   len(a.history),
	}

	switch p := a.policy.(type) {
	case *savingsPolicy:
		info.Savings = p.info()
	case *checkingPolicy:
		info.Checking = p.info(a.balance)
	}

	return info
}

func (a *Account) String() string {
	return fmt.Sprintf("Account: %s | Type: %s | Holder: %s | Balance: $%s | Status: %s",
		a.number, a.Kind().Title(), a.holderName, a.balance.StringFixed(2), a.status())
}

// Summary returns the formatted account summary with variant details.
func (a *Account) Summary() string {
	var b strings.Builder

	b.WriteString("=== Account Summary ===\n")
	fmt.Fprintf(&b, "Account Number: %s\n", a.number)
	fmt.Fprintf(&b, "Account Type: %s\n", a.Kind().Title())
	fmt.Fprintf(&b, "Account Holder: %s\n", a.holderName)
	fmt.Fprintf(&b, "Current Balance: $%s\n", a.balance.StringFixed(2))
	fmt.Fprintf(&b, "Minimum Balance: $%s\n", a.MinimumBalance().StringFixed(2))
	fmt.Fprintf(&b, "Account Status: %s\n", a.status())
	fmt.Fprintf(&b, "Date Opened: %s\n", a.openedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Total Transactions: %d\n", len(a.history))

	switch p := a.policy.(type) {
	case *savingsPolicy:
		p.summarize(&b)
	case *checkingPolicy:
		p.summarize(&b, a.balance)
	}

	return b.String()
}

func (a *Account) status() string {
	if a.active {
		return "Active"
	}

	return "Inactive"
}

package bankservice

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/go-petr/teller-bank/internal/domain"
)

// CreateSavingsAccount opens a savings account held by the given customer.
func (s *Service) CreateSavingsAccount(ctx context.Context, customerID string, initial decimal.Decimal) (domain.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customer(customerID)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	account, err := domain.NewSavingsAccount(s.accountNumbers, s.transactionIDs, customer.FullName(), initial)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	customer.AddAccount(account)
	s.accounts[account.Number()] = account

	return account.Info(), nil
}

// CreateCheckingAccount opens a checking account held by the given customer.
func (s *Service) CreateCheckingAccount(ctx context.Context, customerID string, initial decimal.Decimal, overdraftProtection bool) (domain.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customer(customerID)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	account, err := domain.NewCheckingAccount(s.accountNumbers, s.transactionIDs, customer.FullName(), initial, overdraftProtection)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	customer.AddAccount(account)
	s.accounts[account.Number()] = account

	return account.Info(), nil
}

// GetAccount returns the account with the given number.
func (s *Service) GetAccount(ctx context.Context, number string) (domain.AccountInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.account(number)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	return account.Info(), nil
}

// ListAccounts returns every account ordered by number.
func (s *Service) ListAccounts(ctx context.Context) []domain.AccountInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]domain.AccountInfo, 0, len(s.accounts))
	for _, account := range s.accounts {
		infos = append(infos, account.Info())
	}

	sortAccountInfos(infos)

	return infos
}

// ListActiveAccounts returns accounts that have not been deactivated,
// ordered by number.
func (s *Service) ListActiveAccounts(ctx context.Context) []domain.AccountInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var infos []domain.AccountInfo
	for _, account := range s.accounts {
		if account.IsActive() {
			infos = append(infos, account.Info())
		}
	}

	sortAccountInfos(infos)

	return infos
}

// Balance returns the current balance of the account.
func (s *Service) Balance(ctx context.Context, number string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.account(number)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return account.Balance(), nil
}

// Deposit credits the amount to the account and returns the posted
// transaction.
func (s *Service) Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(number)
	if err != nil {
		return domain.Transaction{}, err
	}

	return account.Deposit(amount)
}

// Withdraw debits the amount from the account and returns the withdrawal
// transaction. Variant fees triggered by the withdrawal post after it.
func (s *Service) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(number)
	if err != nil {
		return domain.Transaction{}, err
	}

	return account.Withdraw(amount)
}

// Transfer moves amount between two distinct accounts and returns both
// postings. The debit and credit are sequential; when the credit half fails
// the debit is already recorded and stays.
func (s *Service) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) (domain.TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fromNumber == toNumber {
		return domain.TransferResult{}, &domain.InvalidTransactionError{Reason: "Cannot transfer to the same account"}
	}

	from, err := s.account(fromNumber)
	if err != nil {
		return domain.TransferResult{}, err
	}

	to, err := s.account(toNumber)
	if err != nil {
		return domain.TransferResult{}, err
	}

	fromTransaction, err := from.TransferOut(amount, toNumber)
	if err != nil {
		return domain.TransferResult{}, err
	}

	toTransaction, err := to.TransferIn(amount, fromNumber)
	if err != nil {
		return domain.TransferResult{}, err
	}

	return domain.TransferResult{
		FromAccount:     from.Info(),
		ToAccount:       to.Info(),
		FromTransaction: fromTransaction,
		ToTransaction:   toTransaction,
	}, nil
}

// WriteCheck writes a check against a checking account.
func (s *Service) WriteCheck(ctx context.Context, number string, amount decimal.Decimal, payee string) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(number)
	if err != nil {
		return domain.Transaction{}, err
	}

	return account.WriteCheck(amount, payee)
}

// SetOverdraftProtection flips overdraft protection on a checking account.
func (s *Service) SetOverdraftProtection(ctx context.Context, number string, enabled bool) (domain.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(number)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	if err = account.SetOverdraftProtection(enabled); err != nil {
		return domain.AccountInfo{}, err
	}

	return account.Info(), nil
}

// TransactionHistory returns the account's transaction log in posting order.
func (s *Service) TransactionHistory(ctx context.Context, number string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.account(number)
	if err != nil {
		return nil, err
	}

	return account.History(), nil
}

// RecentTransactions returns the last count postings in posting order.
func (s *Service) RecentTransactions(ctx context.Context, number string, count int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.account(number)
	if err != nil {
		return nil, err
	}

	return account.RecentTransactions(count), nil
}

// DeactivateAccount freezes the account. Deposits and withdrawals fail until
// it is activated again.
func (s *Service) DeactivateAccount(ctx context.Context, number string) (domain.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(number)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	account.Deactivate()

	return account.Info(), nil
}

// ActivateAccount unfreezes the account.
func (s *Service) ActivateAccount(ctx context.Context, number string) (domain.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(number)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	account.Activate()

	return account.Info(), nil
}

// ApplyMonthlyMaintenance runs the monthly cycle on one account regardless of
// its active flag.
func (s *Service) ApplyMonthlyMaintenance(ctx context.Context, number string) (domain.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.account(number)
	if err != nil {
		return domain.AccountInfo{}, err
	}

	account.ApplyMonthlyMaintenance()

	return account.Info(), nil
}

// ApplyMonthlyMaintenanceToAll runs the monthly cycle on every active account
// and returns how many were processed.
func (s *Service) ApplyMonthlyMaintenanceToAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	processed := 0

	for _, account := range s.accounts {
		if !account.IsActive() {
			continue
		}

		account.ApplyMonthlyMaintenance()
		processed++
	}

	return processed
}

// AccountSummary returns the formatted multi-line summary for the account.
func (s *Service) AccountSummary(ctx context.Context, number string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, err := s.account(number)
	if err != nil {
		return "", err
	}

	return account.Summary(), nil
}

// account resolves the number under a lock held by the caller.
func (s *Service) account(number string) (*domain.Account, error) {
	account, ok := s.accounts[number]
	if !ok {
		return nil, &domain.AccountNotFoundError{Number: number}
	}

	return account, nil
}

func sortAccountInfos(infos []domain.AccountInfo) {
	sort.Slice(infos, func(i, j int) bool { return infos[i].Number < infos[j].Number })
}

package bankservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/teller-bank/internal/domain"
)

// TotalBalance returns the sum of every account balance, active or not.
func (s *Service) TotalBalance(ctx context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totalBalance()
}

// CustomerCount returns the number of registered customers.
func (s *Service) CustomerCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.customers)
}

// ActiveCustomerCount returns the number of customers not deactivated.
func (s *Service) ActiveCustomerCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0

	for _, customer := range s.customers {
		if customer.IsActive() {
			n++
		}
	}

	return n
}

// AccountCount returns the number of open accounts.
func (s *Service) AccountCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts)
}

// ActiveAccountCount returns the number of accounts not deactivated.
func (s *Service) ActiveAccountCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0

	for _, account := range s.accounts {
		if account.IsActive() {
			n++
		}
	}

	return n
}

// AccountCountsByKind returns how many accounts exist of each kind.
func (s *Service) AccountCountsByKind(ctx context.Context) map[domain.Kind]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[domain.Kind]int)

	for _, account := range s.accounts {
		counts[account.Kind()]++
	}

	return counts
}

// Stats returns the bank-wide counters in one snapshot.
func (s *Service) Stats(ctx context.Context) domain.BankStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.BankStats{
		BankName:       s.bankName,
		BankCode:       s.bankCode,
		TotalBalance:   s.totalBalance(),
		AccountsByKind: make(map[domain.Kind]int),
	}

	for _, customer := range s.customers {
		stats.Customers++

		if customer.IsActive() {
			stats.ActiveCustomers++
		}
	}

	for _, account := range s.accounts {
		stats.Accounts++

		if account.IsActive() {
			stats.ActiveAccounts++
		}

		stats.AccountsByKind[account.Kind()]++
	}

	return stats
}

// BankSummary returns the formatted bank-wide summary.
func (s *Service) BankSummary(ctx context.Context) string {
	stats := s.Stats(ctx)

	var b strings.Builder

	b.WriteString("=== Bank Summary ===\n")
	fmt.Fprintf(&b, "Bank Name: %s\n", stats.BankName)
	fmt.Fprintf(&b, "Bank Code: %s\n", stats.BankCode)
	fmt.Fprintf(&b, "Total Customers: %d\n", stats.Customers)
	fmt.Fprintf(&b, "Active Customers: %d\n", stats.ActiveCustomers)
	fmt.Fprintf(&b, "Total Accounts: %d\n", stats.Accounts)
	fmt.Fprintf(&b, "Active Accounts: %d\n", stats.ActiveAccounts)
	fmt.Fprintf(&b, "Total Bank Balance: $%s\n", stats.TotalBalance.StringFixed(2))

	if stats.Accounts > 0 {
		b.WriteString("\n--- Account Types ---\n")

		for _, kind := range []domain.Kind{domain.Savings, domain.Checking} {
			if n := stats.AccountsByKind[kind]; n > 0 {
				fmt.Fprintf(&b, "• %s: %d accounts\n", kind.Title(), n)
			}
		}
	}

	return b.String()
}

// String implements fmt.Stringer with a one-line digest of the bank.
func (s *Service) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fmt.Sprintf("Bank: %s (%s) | Customers: %d | Accounts: %d | Total Balance: $%s",
		s.bankName, s.bankCode, len(s.customers), len(s.accounts), s.totalBalance().StringFixed(2))
}

// totalBalance sums balances under a lock held by the caller.
func (s *Service) totalBalance() decimal.Decimal {
	total := decimal.Zero

	for _, account := range s.accounts {
		total = total.Add(account.Balance())
	}

	return total
}

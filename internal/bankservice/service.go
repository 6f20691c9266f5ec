// Package bankservice manages the business logic layer of the bank.
package bankservice

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/go-petr/teller-bank/internal/domain"
)

// Service owns the customer and account registries and coordinates every
// banking operation against them. All state lives in memory; the mutex
// serializes access once the service is shared with a concurrent delivery
// layer.
type Service struct {
	bankName string
	bankCode string

	mu        sync.RWMutex
	customers map[string]*domain.Customer
	accounts  map[string]*domain.Account

	customerIDs    *domain.Sequence
	accountNumbers *domain.Sequence
	transactionIDs *domain.Sequence
}

// New returns a bank service with empty registries.
func New(bankName, bankCode string) *Service {
	return &Service{
		bankName:       bankName,
		bankCode:       bankCode,
		customers:      make(map[string]*domain.Customer),
		accounts:       make(map[string]*domain.Account),
		customerIDs:    domain.NewSequence("CUST", 1000),
		accountNumbers: domain.NewSequence("", 100000),
		transactionIDs: domain.NewSequence("TXN", 1000),
	}
}

// BankName returns the configured bank name.
func (s *Service) BankName() string {
	return s.bankName
}

// BankCode returns the configured bank code.
func (s *Service) BankCode() string {
	return s.bankCode
}

// CreateCustomer registers a new customer. The email must not belong to an
// existing customer; the comparison is case-insensitive.
func (s *Service) CreateCustomer(ctx context.Context, firstName, lastName, email string) (domain.CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := strings.TrimSpace(email)
	for _, existing := range s.customers {
		if strings.EqualFold(existing.Email(), candidate) {
			return domain.CustomerInfo{}, &domain.InvalidAccountError{
				Reason: "Customer with email " + email + " already exists",
			}
		}
	}

	customer, err := domain.NewCustomer(s.customerIDs, firstName, lastName, email)
	if err != nil {
		return domain.CustomerInfo{}, err
	}

	s.customers[customer.ID()] = customer

	return customer.Info(), nil
}

// GetCustomer returns the customer with the given id.
func (s *Service) GetCustomer(ctx context.Context, id string) (domain.CustomerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, err := s.customer(id)
	if err != nil {
		return domain.CustomerInfo{}, err
	}

	return customer.Info(), nil
}

// ListCustomers returns every customer ordered by id.
func (s *Service) ListCustomers(ctx context.Context) []domain.CustomerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]domain.CustomerInfo, 0, len(s.customers))
	for _, customer := range s.customers {
		infos = append(infos, customer.Info())
	}

	sortCustomerInfos(infos)

	return infos
}

// ListActiveCustomers returns customers that have not been deactivated,
// ordered by id.
func (s *Service) ListActiveCustomers(ctx context.Context) []domain.CustomerInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var infos []domain.CustomerInfo
	for _, customer := range s.customers {
		if customer.IsActive() {
			infos = append(infos, customer.Info())
		}
	}

	sortCustomerInfos(infos)

	return infos
}

// UpdateCustomer applies the non-nil fields of arg to the customer. Name and
// email changes go through the same validation as creation; email uniqueness
// is not re-checked on update.
func (s *Service) UpdateCustomer(ctx context.Context, id string, arg domain.UpdateCustomerParams) (domain.CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customer(id)
	if err != nil {
		return domain.CustomerInfo{}, err
	}

	if arg.FirstName != nil {
		if err = customer.SetFirstName(*arg.FirstName); err != nil {
			return domain.CustomerInfo{}, err
		}
	}

	if arg.LastName != nil {
		if err = customer.SetLastName(*arg.LastName); err != nil {
			return domain.CustomerInfo{}, err
		}
	}

	if arg.Email != nil {
		if err = customer.SetEmail(*arg.Email); err != nil {
			return domain.CustomerInfo{}, err
		}
	}

	if arg.PhoneNumber != nil {
		customer.SetPhoneNumber(*arg.PhoneNumber)
	}

	if arg.Address != nil {
		customer.SetAddress(*arg.Address)
	}

	return customer.Info(), nil
}

// DeactivateCustomer marks the customer inactive and cascades to every one
// of their accounts.
func (s *Service) DeactivateCustomer(ctx context.Context, id string) (domain.CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customer(id)
	if err != nil {
		return domain.CustomerInfo{}, err
	}

	customer.Deactivate()

	return customer.Info(), nil
}

// ActivateCustomer reactivates the customer. Accounts deactivated by a
// cascade stay inactive until reactivated individually.
func (s *Service) ActivateCustomer(ctx context.Context, id string) (domain.CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customer(id)
	if err != nil {
		return domain.CustomerInfo{}, err
	}

	customer.Activate()

	return customer.Info(), nil
}

// CustomerSummary returns the formatted multi-line summary for the customer.
func (s *Service) CustomerSummary(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, err := s.customer(id)
	if err != nil {
		return "", err
	}

	return customer.Summary(), nil
}

// customer resolves the id under a lock held by the caller.
func (s *Service) customer(id string) (*domain.Customer, error) {
	customer, ok := s.customers[id]
	if !ok {
		return nil, &domain.CustomerNotFoundError{ID: id}
	}

	return customer, nil
}

func sortCustomerInfos(infos []domain.CustomerInfo) {
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
}

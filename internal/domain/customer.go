package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer groups a person's identity with the accounts they hold.
type Customer struct {
	id        string
	firstName string
	lastName  string
	email     string
	phone     string
	address   string
	joinedAt  time.Time
	active    bool
	accounts  []*Account
}

// NewCustomer validates the given identity and returns an active customer
// with no accounts. The ids sequence issues the customer id once validation
// passes, so failed creations leave no gaps.
func NewCustomer(ids *Sequence, firstName, lastName, email string) (*Customer, error) {
	c := &Customer{
		joinedAt: time.Now(),
		active:   true,
	}

	if err := c.SetFirstName(firstName); err != nil {
		return nil, err
	}

	if err := c.SetLastName(lastName); err != nil {
		return nil, err
	}

	if err := c.SetEmail(email); err != nil {
		return nil, err
	}

	c.id = ids.Next()

	return c, nil
}

// ID returns the customer id.
func (c *Customer) ID() string {
	return c.id
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// FullName returns the first and last name joined with a space.
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// Email returns the customer's lowercased email address.
func (c *Customer) Email() string {
	return c.email
}

// PhoneNumber returns the customer's phone number, possibly empty.
func (c *Customer) PhoneNumber() string {
	return c.phone
}

// Address returns the customer's address, possibly empty.
func (c *Customer) Address() string {
	return c.address
}

// JoinedAt returns the time the customer was created.
func (c *Customer) JoinedAt() time.Time {
	return c.joinedAt
}

// IsActive reports whether the customer is active.
func (c *Customer) IsActive() bool {
	return c.active
}

// SetFirstName updates the first name, rejecting blank values.
func (c *Customer) SetFirstName(firstName string) error {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return &InvalidAccountError{Reason: "First name cannot be empty"}
	}

	c.firstName = firstName

	return nil
}

// SetLastName updates the last name, rejecting blank values.
func (c *Customer) SetLastName(lastName string) error {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return &InvalidAccountError{Reason: "Last name cannot be empty"}
	}

	c.lastName = lastName

	return nil
}

// SetEmail validates, lowercases and updates the email address.
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !validEmail(email) {
		return &InvalidAccountError{Reason: "Valid email address is required"}
	}

	c.email = strings.ToLower(email)

	return nil
}

// SetPhoneNumber updates the phone number. Blank clears it.
func (c *Customer) SetPhoneNumber(phone string) {
	c.phone = strings.TrimSpace(phone)
}

// SetAddress updates the address. Blank clears it.
func (c *Customer) SetAddress(address string) {
	c.address = strings.TrimSpace(address)
}

// validEmail demands an "@" after the first character followed by a "." that
// is not the final character.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")

	return at > 0 && dot > at && dot < len(email)-1
}

// Deactivate freezes the customer and every account they hold.
func (c *Customer) Deactivate() {
	c.active = false

	for _, a := range c.accounts {
		a.Deactivate()
	}
}

// Activate unfreezes the customer. Accounts deactivated alongside the
// customer stay inactive until activated individually.
func (c *Customer) Activate() {
	c.active = true
}

// AddAccount attaches an account to the customer. Nil and duplicate accounts
// are ignored.
func (c *Customer) AddAccount(a *Account) {
	if a == nil {
		return
	}

	for _, existing := range c.accounts {
		if existing == a {
			return
		}
	}

	c.accounts = append(c.accounts, a)
}

// RemoveAccount detaches an account and reports whether it was attached.
func (c *Customer) RemoveAccount(a *Account) bool {
	for i, existing := range c.accounts {
		if existing == a {
			c.accounts = append(c.accounts[:i], c.accounts[i+1:]...)
			return true
		}
	}

	return false
}

// Accounts returns a copy of the customer's account list.
func (c *Customer) Accounts() []*Account {
	out := make([]*Account, len(c.accounts))
	copy(out, c.accounts)

	return out
}

// Account returns the customer's account with the given number, or nil.
func (c *Customer) Account(number string) *Account {
	for _, a := range c.accounts {
		if a.Number() == number {
			return a
		}
	}

	return nil
}

// ActiveAccounts returns the customer's active accounts.
func (c *Customer) ActiveAccounts() []*Account {
	var out []*Account

	for _, a := range c.accounts {
		if a.IsActive() {
			out = append(out, a)
		}
	}

	return out
}

// AccountsByKind returns the customer's accounts of the given kind.
func (c *Customer) AccountsByKind(kind Kind) []*Account {
	var out []*Account

	for _, a := range c.accounts {
		if a.Kind() == kind {
			out = append(out, a)
		}
	}

	return out
}

// TotalBalance sums balances across all of the customer's accounts.
func (c *Customer) TotalBalance() decimal.Decimal {
	total := decimal.Zero

	for _, a := range c.accounts {
		total = total.Add(a.Balance())
	}

	return total
}

// AccountCount returns how many accounts the customer holds.
func (c *Customer) AccountCount() int {
	return len(c.accounts)
}

// ActiveAccountCount returns how many of the customer's accounts are active.
func (c *Customer) ActiveAccountCount() int {
	return len(c.ActiveAccounts())
}

// CustomerInfo is the customer read model returned by service queries.
type CustomerInfo struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phone_number,omitempty"`
	Address      string          `json:"address,omitempty"`
	JoinedAt     time.Time       `json:"joined_at"`
	IsActive     bool            `json:"is_active"`
	TotalBalance decimal.Decimal `json:"total_balance"`
	Accounts     []AccountInfo   `json:"accounts"`
}

// Info returns the customer read model with account snapshots.
func (c *Customer) Info() CustomerInfo {
	accounts := make([]AccountInfo, 0, len(c.accounts))
	for _, a := range c.accounts {
		accounts = append(accounts, a.Info())
	}

	return CustomerInfo{
		ID:           c.id,
		FirstName:    c.firstName,
		LastName:     c.lastName,
		Email:        c.email,
		PhoneNumber:  c.phone,
		Address:      c.address,
		JoinedAt:     c.joinedAt,
		IsActive:     c.active,
		TotalBalance: c.TotalBalance(),
		Accounts:     accounts,
	}
}

// UpdateCustomerParams carries the optional fields of a customer update. Nil
// fields keep their current value.
type UpdateCustomerParams struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer: %s | Name: %s | Email: %s | Accounts: %d | Status: %s",
		c.id, c.FullName(), c.email, len(c.accounts), c.status())
}

// Summary returns the formatted customer summary with an account rundown.
func (c *Customer) Summary() string {
	var b strings.Builder

	b.WriteString("=== Customer Summary ===\n")
	fmt.Fprintf(&b, "Customer ID: %s\n", c.id)
	fmt.Fprintf(&b, "Name: %s\n", c.FullName())
	fmt.Fprintf(&b, "Email: %s\n", c.email)

	if c.phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", c.phone)
	}

	if c.address != "" {
		fmt.Fprintf(&b, "Address: %s\n", c.address)
	}

	fmt.Fprintf(&b, "Date Joined: %s\n", c.joinedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "Status: %s\n", c.status())
	fmt.Fprintf(&b, "Total Accounts: %d\n", len(c.accounts))
	fmt.Fprintf(&b, "Active Accounts: %d\n", c.ActiveAccountCount())
	fmt.Fprintf(&b, "Total Balance: $%s\n", c.TotalBalance().StringFixed(2))

	if len(c.accounts) > 0 {
		b.WriteString("\n--- Accounts ---\n")

		for _, a := range c.accounts {
			fmt.Fprintf(&b, "• %s\n", a)
		}
	}

	return b.String()
}

func (c *Customer) status() string {
	if c.active {
		return "Active"
	}

	return "Inactive"
}

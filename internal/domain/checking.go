package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Checking account business constants.
var (
	checkingMinimumBalance   = decimal.NewFromInt(25)
	checkingMaintenanceFee   = decimal.NewFromInt(10)
	checkingOverdraftFee     = decimal.NewFromInt(35)
	checkingOverdraftLimit   = decimal.NewFromInt(500)
	checkingFeeWaiverBalance = decimal.NewFromInt(1000)
	checkingPremiumThreshold = decimal.NewFromInt(5000)
	checkingPremiumRate      = decimal.RequireFromString("0.001") // annual
)

// checkingPolicy enforces checking rules: optional overdraft protection up to
// a limit and premium interest on high balances.
type checkingPolicy struct {
	overdraftProtection bool
	checksWritten       int // checks written this month
}

func (p *checkingPolicy) kind() Kind {
	return Checking
}

func (p *checkingPolicy) minimumBalance() decimal.Decimal {
	return checkingMinimumBalance
}

// canWithdraw allows any withdrawal the balance covers, and with overdraft
// protection also shortfalls up to the overdraft limit.
func (p *checkingPolicy) canWithdraw(balance, amount decimal.Decimal) bool {
	after := balance.Sub(amount)
	if !after.IsNegative() {
		return true
	}

	if p.overdraftProtection {
		return after.Neg().LessThanOrEqual(checkingOverdraftLimit)
	}

	return false
}

// afterWithdrawal posts the overdraft fee exactly when the recorded
// withdrawal took the balance from non-negative to negative under overdraft
// protection.
func (p *checkingPolicy) afterWithdrawal(a *Account, before decimal.Decimal) {
	if !before.IsNegative() && a.balance.IsNegative() && p.overdraftProtection {
		a.addFee(checkingOverdraftFee, "Overdraft fee")
	}
}

// applyMonthlyMaintenance resets the check counter, charges the maintenance
// fee below the waiver balance (taking the whole balance as a partial fee
// when it cannot cover the full fee), then credits premium interest while the
// balance stays above the premium threshold.
func (p *checkingPolicy) applyMonthlyMaintenance(a *Account) {
	p.checksWritten = 0

	if a.balance.LessThan(checkingFeeWaiverBalance) {
		switch {
		case a.balance.GreaterThanOrEqual(checkingMaintenanceFee):
			a.addFee(checkingMaintenanceFee, "Monthly maintenance fee")
		case a.balance.IsPositive():
			a.addFee(a.balance, "Partial monthly maintenance fee")
		}
	}

	if a.balance.GreaterThan(checkingPremiumThreshold) {
		interest := a.balance.Mul(checkingPremiumRate).Div(monthsInYear)
		if interest.GreaterThanOrEqual(oneCent) {
			a.addInterest(interest)
		}
	}
}

// availableOverdraft returns how much of the overdraft limit is still usable
// at the given balance.
func (p *checkingPolicy) availableOverdraft(balance decimal.Decimal) decimal.Decimal {
	if !p.overdraftProtection {
		return decimal.Zero
	}

	if !balance.IsNegative() {
		return checkingOverdraftLimit
	}

	if remaining := checkingOverdraftLimit.Add(balance); remaining.IsPositive() {
		return remaining
	}

	return decimal.Zero
}

func (p *checkingPolicy) info(balance decimal.Decimal) *CheckingInfo {
	return &CheckingInfo{
		OverdraftProtection:    p.overdraftProtection,
		OverdraftLimit:         checkingOverdraftLimit,
		AvailableOverdraft:     p.availableOverdraft(balance),
		ChecksWrittenThisMonth: p.checksWritten,
		Overdrawn:              balance.IsNegative(),
	}
}

func (p *checkingPolicy) summarize(b *strings.Builder, balance decimal.Decimal) {
	if p.overdraftProtection {
		b.WriteString("Overdraft Protection: Enabled\n")
		fmt.Fprintf(b, "Overdraft Limit: $%s\n", checkingOverdraftLimit.StringFixed(2))
		fmt.Fprintf(b, "Available Overdraft: $%s\n", p.availableOverdraft(balance).StringFixed(2))
		fmt.Fprintf(b, "Overdraft Fee: $%s\n", checkingOverdraftFee.StringFixed(2))
	} else {
		b.WriteString("Overdraft Protection: Disabled\n")
	}

	fmt.Fprintf(b, "Monthly Maintenance Fee: $%s\n", checkingMaintenanceFee.StringFixed(2))
	fmt.Fprintf(b, "Fee Waiver Balance: $%s\n", checkingFeeWaiverBalance.StringFixed(2))
	fmt.Fprintf(b, "Checks Written This Month: %d\n", p.checksWritten)

	if balance.IsNegative() {
		fmt.Fprintf(b, "*** ACCOUNT OVERDRAWN BY $%s ***\n", balance.Neg().StringFixed(2))
	}
}

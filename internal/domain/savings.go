package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Savings account business constants.
var (
	savingsMinimumBalance   = decimal.NewFromInt(100)
	savingsInterestRate     = decimal.RequireFromString("0.035") // annual
	savingsMaintenanceFee   = decimal.NewFromInt(5)
	savingsFeeWaiverBalance = decimal.NewFromInt(500)
	savingsExcessFee        = decimal.NewFromInt(2)
)

const savingsFreeWithdrawals = 6

// savingsPolicy enforces savings rules: a hard minimum balance, a monthly
// free-withdrawal allowance, and monthly interest.
type savingsPolicy struct {
	withdrawals int // withdrawals so far this month
}

func (p *savingsPolicy) kind() Kind {
	return Savings
}

func (p *savingsPolicy) minimumBalance() decimal.Decimal {
	return savingsMinimumBalance
}

// canWithdraw keeps the balance at or above the minimum. Past the free
// allowance it also demands headroom for the excess withdrawal fee.
func (p *savingsPolicy) canWithdraw(balance, amount decimal.Decimal) bool {
	after := balance.Sub(amount)
	if after.LessThan(savingsMinimumBalance) {
		return false
	}

	if p.withdrawals < savingsFreeWithdrawals {
		return true
	}

	return after.GreaterThanOrEqual(savingsMinimumBalance.Add(savingsExcessFee))
}

func (p *savingsPolicy) afterWithdrawal(a *Account, _ decimal.Decimal) {
	p.withdrawals++

	if p.withdrawals > savingsFreeWithdrawals {
		a.addFee(savingsExcessFee, "Excess withdrawal fee")
	}
}

// applyMonthlyMaintenance resets the withdrawal counter, charges the
// maintenance fee below the waiver balance, then credits monthly interest on
// the post-fee balance.
func (p *savingsPolicy) applyMonthlyMaintenance(a *Account) {
	p.withdrawals = 0

	if a.balance.LessThan(savingsFeeWaiverBalance) && a.balance.GreaterThanOrEqual(savingsMaintenanceFee) {
		a.addFee(savingsMaintenanceFee, "Monthly maintenance fee")
	}

	interest := a.balance.Mul(savingsInterestRate).Div(monthsInYear)
	if interest.GreaterThanOrEqual(oneCent) {
		a.addInterest(interest)
	}
}

func (p *savingsPolicy) remainingFreeWithdrawals() int {
	if p.withdrawals >= savingsFreeWithdrawals {
		return 0
	}

	return savingsFreeWithdrawals - p.withdrawals
}

func (p *savingsPolicy) info() *SavingsInfo {
	return &SavingsInfo{
		InterestRate:             savingsInterestRate,
		WithdrawalsThisMonth:     p.withdrawals,
		RemainingFreeWithdrawals: p.remainingFreeWithdrawals(),
	}
}

func (p *savingsPolicy) summarize(b *strings.Builder) {
	fmt.Fprintf(b, "Interest Rate: %s%% annually\n", savingsInterestRate.Mul(oneHundred).StringFixed(2))
	fmt.Fprintf(b, "Monthly Maintenance Fee: $%s\n", savingsMaintenanceFee.StringFixed(2))
	fmt.Fprintf(b, "Fee Waiver Balance: $%s\n", savingsFeeWaiverBalance.StringFixed(2))
	fmt.Fprintf(b, "Withdrawals This Month: %d\n", p.withdrawals)
	fmt.Fprintf(b, "Free Withdrawals Remaining: %d\n", p.remainingFreeWithdrawals())
}

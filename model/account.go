package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind names an account variant. The value is also the record tag in the accounts file.
type Kind string

const (
	KindSavings Kind = "Savings"
	KindCurrent Kind = "Current"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrInvalidAmount)
	ErrLimitExceeded       = fmt.Errorf("%w: overdraft limit exceeded", ErrInvalidAmount)
	ErrUnknownKind         = errors.New("unknown account kind")
)

// Account is the operation set shared by savings and current accounts.
// Implementations never perform I/O.
type Account interface {
	Number() int
	HolderName() string
	Balance() decimal.Decimal
	Kind() Kind
	// Extra is the variant-specific field: interest rate or overdraft limit.
	Extra() decimal.Decimal

	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Describe() string
	Serialize() string
}

// NewAccount builds the variant named by kind.
func NewAccount(kind Kind, number int, holderName string, balance, extra decimal.Decimal) (Account, error) {
	switch kind {
	case KindSavings:
		return NewSavingsAccount(number, holderName, balance, extra), nil
	case KindCurrent:
		return NewCurrentAccount(number, holderName, balance, extra), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

type base struct {
	number     int
	holderName string
	balance    decimal.Decimal
}

func (b *base) Number() int              { return b.number }
func (b *base) HolderName() string       { return b.holderName }
func (b *base) Balance() decimal.Decimal { return b.balance }

// Deposit adds a strictly positive amount to the balance.
func (b *base) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	b.balance = b.balance.Add(amount)
	return nil
}

func (b *base) describe(kind Kind) *strings.Builder {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Account Number: %d\n", b.number)
	fmt.Fprintf(&sb, "Account Holder: %s\n", b.holderName)
	fmt.Fprintf(&sb, "Balance: $%s\n", b.balance.StringFixed(2))
	fmt.Fprintf(&sb, "Account Type: %s\n", kind)
	return &sb
}

func (b *base) serialize(kind Kind, extra decimal.Decimal) string {
	return fmt.Sprintf("%s %d %s %s %s", kind, b.number, b.holderName, b.balance.String(), extra.String())
}

// SavingsAccount never lets a withdrawal take the balance below zero.
type SavingsAccount struct {
	base
	interestRate decimal.Decimal
}

func NewSavingsAccount(number int, holderName string, balance, interestRate decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{
		base:         base{number: number, holderName: holderName, balance: balance},
		interestRate: interestRate,
	}
}

func (a *SavingsAccount) Kind() Kind                    { return KindSavings }
func (a *SavingsAccount) Extra() decimal.Decimal        { return a.interestRate }
func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.interestRate }

// Withdraw is legal iff 0 < amount <= balance. Every rejection is
// ErrInsufficientBalance.
func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(a.balance) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *SavingsAccount) Describe() string {
	sb := a.describe(KindSavings)
	fmt.Fprintf(sb, "Interest Rate: %s%%\n", a.interestRate.String())
	return sb.String()
}

func (a *SavingsAccount) Serialize() string {
	return a.serialize(KindSavings, a.interestRate)
}

// CurrentAccount may go negative down to -overdraftLimit.
type CurrentAccount struct {
	base
	overdraftLimit decimal.Decimal
}

func NewCurrentAccount(number int, holderName string, balance, overdraftLimit decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{
		base:           base{number: number, holderName: holderName, balance: balance},
		overdraftLimit: overdraftLimit,
	}
}

func (a *CurrentAccount) Kind() Kind                      { return KindCurrent }
func (a *CurrentAccount) Extra() decimal.Decimal          { return a.overdraftLimit }
func (a *CurrentAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

// Withdraw is legal iff 0 < amount <= balance + overdraftLimit. Every
// rejection is ErrLimitExceeded.
func (a *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(a.balance.Add(a.overdraftLimit)) {
		return ErrLimitExceeded
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

func (a *CurrentAccount) Describe() string {
	sb := a.describe(KindCurrent)
	fmt.Fprintf(sb, "Overdraft Limit: $%s\n", a.overdraftLimit.StringFixed(2))
	return sb.String()
}

func (a *CurrentAccount) Serialize() string {
	return a.serialize(KindCurrent, a.overdraftLimit)
}

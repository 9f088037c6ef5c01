// file: repository/account_store.go

package repository

import (
	"go-bank-console/model"

	"github.com/shopspring/decimal"
)

// AccountStore is the in-memory, insertion-ordered set of accounts.
// It owns account number allocation.
type AccountStore struct {
	accounts          []model.Account
	nextAccountNumber int
}

// NewAccountStore seeds the store with previously loaded accounts.
// Numbering resumes at the highest existing number plus one, or 1 when empty.
func NewAccountStore(accounts []model.Account) *AccountStore {
	next := 1
	for _, acc := range accounts {
		if acc.Number() >= next {
			next = acc.Number() + 1
		}
	}
	return &AccountStore{
		accounts:          append([]model.Account(nil), accounts...),
		nextAccountNumber: next,
	}
}

// AllocateSavings appends a savings account under the next account number.
func (s *AccountStore) AllocateSavings(holderName string, initialDeposit, interestRate decimal.Decimal) *model.SavingsAccount {
	acc := model.NewSavingsAccount(s.take(), holderName, initialDeposit, interestRate)
	s.accounts = append(s.accounts, acc)
	return acc
}

// AllocateCurrent appends a current account under the next account number.
func (s *AccountStore) AllocateCurrent(holderName string, initialDeposit, overdraftLimit decimal.Decimal) *model.CurrentAccount {
	acc := model.NewCurrentAccount(s.take(), holderName, initialDeposit, overdraftLimit)
	s.accounts = append(s.accounts, acc)
	return acc
}

func (s *AccountStore) take() int {
	n := s.nextAccountNumber
	s.nextAccountNumber++
	return n
}

// Find returns the account with the given number.
func (s *AccountStore) Find(accountNumber int) (model.Account, bool) {
	for _, acc := range s.accounts {
		if acc.Number() == accountNumber {
			return acc, true
		}
	}
	return nil, false
}

// All returns the accounts in insertion order.
func (s *AccountStore) All() []model.Account {
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *AccountStore) NextAccountNumber() int {
	return s.nextAccountNumber
}

func (s *AccountStore) Len() int {
	return len(s.accounts)
}

// file: service/banking_service.go

package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go-bank-console/logger"
	"go-bank-console/model"
	"go-bank-console/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrLoadFailed      = errors.New("error loading accounts")
	ErrSaveFailed      = errors.New("error saving accounts")
	ErrEmptyHolderName = errors.New("account holder name is empty")
)

// BankingService owns the account store and writes it through the repository
// after every mutation.
type BankingService struct {
	repo  repository.IAccountRepository
	store *repository.AccountStore

	// SaveOnRejection rewrites the file even when a deposit or withdrawal is rejected.
	SaveOnRejection bool
}

// NewBankingService starts with an empty store; call Load to read the repository.
func NewBankingService(repo repository.IAccountRepository) *BankingService {
	return &BankingService{
		repo:            repo,
		store:           repository.NewAccountStore(nil),
		SaveOnRejection: true,
	}
}

// Load replaces the store with the repository contents. On failure the store
// is left empty and numbering restarts at 1.
func (s *BankingService) Load() error {
	accounts, err := s.repo.LoadAccounts()
	if err != nil {
		s.store = repository.NewAccountStore(nil)
		logger.Log.WithError(err).Warn("Could not load accounts, continuing with an empty store")
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	s.store = repository.NewAccountStore(accounts)
	return nil
}

// CreateSavingsAccount allocates a savings account and persists the store.
// The account number is returned even if saving fails. A blank name is
// rejected before a number is taken.
func (s *BankingService) CreateSavingsAccount(name string, initialDeposit, interestRate decimal.Decimal) (int, error) {
	if err := checkHolderName(name); err != nil {
		return 0, err
	}
	acc := s.store.AllocateSavings(name, initialDeposit, interestRate)

	logger.Log.WithFields(logrus.Fields{
		"account_number": acc.Number(),
		"kind":           acc.Kind(),
	}).Info("Account created")

	return acc.Number(), s.save()
}

// CreateCurrentAccount allocates a current account and persists the store.
// The account number is returned even if saving fails.
func (s *BankingService) CreateCurrentAccount(name string, initialDeposit, overdraftLimit decimal.Decimal) (int, error) {
	if err := checkHolderName(name); err != nil {
		return 0, err
	}
	acc := s.store.AllocateCurrent(name, initialDeposit, overdraftLimit)

	logger.Log.WithFields(logrus.Fields{
		"account_number": acc.Number(),
		"kind":           acc.Kind(),
	}).Info("Account created")

	return acc.Number(), s.save()
}

// Deposit returns the balance after the call.
func (s *BankingService) Deposit(accountNumber int, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.apply("deposit", accountNumber, amount, model.Account.Deposit)
}

// Withdraw returns the balance after the call.
func (s *BankingService) Withdraw(accountNumber int, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.apply("withdraw", accountNumber, amount, model.Account.Withdraw)
}

// DisplayAccountDetails returns the account's description.
func (s *BankingService) DisplayAccountDetails(accountNumber int) (string, error) {
	acc, ok := s.store.Find(accountNumber)
	if !ok {
		return "", ErrAccountNotFound
	}
	return acc.Describe(), nil
}

func (s *BankingService) apply(op string, accountNumber int, amount decimal.Decimal, fn func(model.Account, decimal.Decimal) error) (decimal.Decimal, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"operation":      op,
		"account_number": accountNumber,
		"amount":         amount.String(),
	})

	acc, ok := s.store.Find(accountNumber)
	if !ok {
		log.Info("Account not found")
		return decimal.Zero, ErrAccountNotFound
	}

	opErr := fn(acc, amount)
	if opErr != nil {
		log.WithError(opErr).Info("Operation rejected")
	} else {
		log.WithField("balance", acc.Balance().String()).Info("Operation applied")
	}

	if opErr == nil || s.SaveOnRejection {
		if err := s.save(); err != nil {
			return acc.Balance(), errors.Join(opErr, err)
		}
	}
	return acc.Balance(), opErr
}

func (s *BankingService) save() error {
	if err := s.repo.SaveAccounts(s.store.All()); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// Holder names are a single token in the accounts file. A blank name would
// drop a field from the record and is rejected; a name with inner whitespace
// is kept as given, logged, and will fail the next load.
func checkHolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyHolderName
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		logger.Log.WithField("holder_name", name).Warn("Holder name contains whitespace; the accounts file will not load back")
	}
	return nil
}

package handler

import (
	"errors"

	"go-bank-console/common"
	"go-bank-console/model"
	"go-bank-console/service"

	"github.com/shopspring/decimal"
)

// TransactionHandler holds dependencies for deposit and withdrawal actions.
type TransactionHandler struct {
	service *service.BankingService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.BankingService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) Deposit(c *Console) *common.AppError {
	number, amount, appErr := readTransfer(c, "Enter amount to deposit: ")
	if appErr != nil {
		return appErr
	}

	balance, err := h.service.Deposit(number, amount)
	return report(c, balance, err, "Deposit successful.", "Invalid deposit amount.")
}

func (h *TransactionHandler) Withdraw(c *Console) *common.AppError {
	number, amount, appErr := readTransfer(c, "Enter amount to withdraw: ")
	if appErr != nil {
		return appErr
	}

	balance, err := h.service.Withdraw(number, amount)
	return report(c, balance, err, "Withdrawal successful.", "Invalid withdrawal amount.")
}

func readTransfer(c *Console, amountLabel string) (int, decimal.Decimal, *common.AppError) {
	number, appErr := c.ReadInt("Enter account number: ")
	if appErr != nil {
		return 0, decimal.Zero, appErr
	}
	amount, appErr := c.ReadDecimal(amountLabel)
	if appErr != nil {
		return 0, decimal.Zero, appErr
	}
	return number, amount, nil
}

// report maps a deposit or withdrawal outcome to operator messages. A rejected
// operation followed by a failed save prints the rejection and returns the save error.
func report(c *Console, balance decimal.Decimal, err error, success, invalid string) *common.AppError {
	if errors.Is(err, service.ErrAccountNotFound) {
		return common.NewAppError(common.KindAccountNotFound, "Account not found.", nil)
	}

	var rejection *common.AppError
	switch {
	case errors.Is(err, model.ErrLimitExceeded):
		rejection = common.NewAppError(common.KindLimitExceeded, "Invalid withdrawal amount or overdraft limit exceeded.", nil)
	case errors.Is(err, model.ErrInsufficientBalance):
		rejection = common.NewAppError(common.KindInvalidAmount, "Invalid withdrawal amount or insufficient balance.", nil)
	case errors.Is(err, model.ErrInvalidAmount):
		rejection = common.NewAppError(common.KindInvalidAmount, invalid, nil)
	default:
		c.Printf("%s New balance: %s\n", success, balance.String())
	}

	if errors.Is(err, service.ErrSaveFailed) {
		if rejection != nil {
			rejection.Send(c.Out)
		}
		return common.NewAppError(common.KindSaveError, "Error saving accounts", err)
	}
	return rejection
}

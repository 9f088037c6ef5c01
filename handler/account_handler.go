package handler

import (
	"errors"

	"go-bank-console/common"
	"go-bank-console/logger"
	"go-bank-console/model"
	"go-bank-console/service"

	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.BankingService
}

func NewAccountHandler(service *service.BankingService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateSavingsAccount prompts for holder, deposit and interest rate.
func (h *AccountHandler) CreateSavingsAccount(c *Console) *common.AppError {
	req, appErr := readCreateRequest(c, model.KindSavings, "Enter interest rate: ")
	if appErr != nil {
		return appErr
	}

	number, err := h.service.CreateSavingsAccount(req.HolderName, req.InitialDeposit, req.Extra)
	return reportCreated(c, model.KindSavings, number, err)
}

// CreateCurrentAccount prompts for holder, deposit and overdraft limit.
func (h *AccountHandler) CreateCurrentAccount(c *Console) *common.AppError {
	req, appErr := readCreateRequest(c, model.KindCurrent, "Enter overdraft limit: ")
	if appErr != nil {
		return appErr
	}

	number, err := h.service.CreateCurrentAccount(req.HolderName, req.InitialDeposit, req.Extra)
	return reportCreated(c, model.KindCurrent, number, err)
}

// DisplayAccountDetails prints the description of one account.
func (h *AccountHandler) DisplayAccountDetails(c *Console) *common.AppError {
	number, appErr := c.ReadInt("Enter account number: ")
	if appErr != nil {
		return appErr
	}

	details, err := h.service.DisplayAccountDetails(number)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return common.NewAppError(common.KindAccountNotFound, "Account not found.", nil)
		}
		return common.NewAppError(common.KindInvalidInput, "Could not display account", err)
	}
	c.Printf("%s", details)
	return nil
}

func reportCreated(c *Console, kind model.Kind, number int, err error) *common.AppError {
	if errors.Is(err, service.ErrEmptyHolderName) {
		return common.NewAppError(common.KindInvalidInput, "Account holder name is required.", nil)
	}
	c.Printf("%s account created successfully. Account Number: %d\n", kind, number)
	if err != nil {
		return common.NewAppError(common.KindSaveError, "Error saving accounts", err)
	}
	return nil
}

func readCreateRequest(c *Console, kind model.Kind, extraLabel string) (*model.CreateAccountRequest, *common.AppError) {
	name, err := c.ReadLine("Enter account holder name: ")
	if err != nil {
		return nil, inputClosed(err)
	}
	deposit, appErr := c.ReadDecimal("Enter initial deposit amount: ")
	if appErr != nil {
		return nil, appErr
	}
	extra, appErr := c.ReadDecimal(extraLabel)
	if appErr != nil {
		return nil, appErr
	}

	req := &model.CreateAccountRequest{
		Kind:           kind,
		HolderName:     name,
		InitialDeposit: deposit,
		Extra:          extra,
	}
	if appErr := common.ValidateStruct(req); appErr != nil {
		logger.Log.WithFields(logrus.Fields{
			"kind":  kind,
			"error": appErr.Err,
		}).Debug("Create account request rejected")
		return nil, common.NewAppError(common.KindInvalidInput, "Account holder name is required.", nil)
	}
	return req, nil
}

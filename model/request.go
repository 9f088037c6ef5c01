// file: model/request.go

package model

import "github.com/shopspring/decimal"

// CreateAccountRequest holds the operator input for a new account.
// Extra is the interest rate for savings and the overdraft limit for current accounts.
type CreateAccountRequest struct {
	Kind           Kind            `validate:"required,oneof=Savings Current"`
	HolderName     string          `validate:"required"`
	InitialDeposit decimal.Decimal `validate:"-"`
	Extra          decimal.Decimal `validate:"-"`
}

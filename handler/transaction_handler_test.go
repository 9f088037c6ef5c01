package handler

import (
	"bytes"
	"testing"

	"go-bank-console/common"
	"go-bank-console/model"
	"go-bank-console/repository"
	"go-bank-console/service"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedAccounts = "Savings 1 Alice 100 2.5\nCurrent 2 Bob 0 200\n"

func newSeededHandler(t *testing.T) (*TransactionHandler, *repository.AccountRepository, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testDataFile, []byte(seedAccounts), 0o644))
	repo := repository.NewAccountRepository(fsys, testDataFile, true)
	svc := service.NewBankingService(repo)
	require.NoError(t, svc.Load())
	return NewTransactionHandler(svc), repo, fsys
}

func TestTransactionHandler_Deposit(t *testing.T) {
	h, _, fsys := newSeededHandler(t)
	var out bytes.Buffer

	appErr := h.Deposit(script(&out, "1", "50.5"))

	require.Nil(t, appErr)
	assert.Equal(t,
		"Enter account number: Enter amount to deposit: Deposit successful. New balance: 150.5\n",
		out.String())
	data, err := afero.ReadFile(fsys, testDataFile)
	require.NoError(t, err)
	assert.Equal(t, "Savings 1 Alice 150.5 2.5\nCurrent 2 Bob 0 200\n", string(data))
}

func TestTransactionHandler_Withdraw(t *testing.T) {
	testCases := []struct {
		name    string
		answers []string
		output  string
		kind    common.ErrorKind
		message string
	}{
		{
			name:    "savings success",
			answers: []string{"1", "50"},
			output:  "Withdrawal successful. New balance: 50\n",
		},
		{
			name:    "savings insufficient balance",
			answers: []string{"1", "1000"},
			kind:    common.KindInvalidAmount,
			message: "Invalid withdrawal amount or insufficient balance.",
		},
		{
			name:    "current into overdraft",
			answers: []string{"2", "150"},
			output:  "Withdrawal successful. New balance: -150\n",
		},
		{
			name:    "current overdraft exceeded",
			answers: []string{"2", "250"},
			kind:    common.KindLimitExceeded,
			message: "Invalid withdrawal amount or overdraft limit exceeded.",
		},
		{
			name:    "savings non-positive amount",
			answers: []string{"1", "-5"},
			kind:    common.KindInvalidAmount,
			message: "Invalid withdrawal amount or insufficient balance.",
		},
		{
			name:    "savings zero amount",
			answers: []string{"1", "0"},
			kind:    common.KindInvalidAmount,
			message: "Invalid withdrawal amount or insufficient balance.",
		},
		{
			name:    "current non-positive amount",
			answers: []string{"2", "-5"},
			kind:    common.KindLimitExceeded,
			message: "Invalid withdrawal amount or overdraft limit exceeded.",
		},
		{
			name:    "unknown account",
			answers: []string{"9", "10"},
			kind:    common.KindAccountNotFound,
			message: "Account not found.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, _, _ := newSeededHandler(t)
			var out bytes.Buffer

			appErr := h.Withdraw(script(&out, tc.answers...))

			if tc.message == "" {
				require.Nil(t, appErr)
				assert.Contains(t, out.String(), tc.output)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, tc.kind, appErr.Kind)
			assert.Equal(t, tc.message, appErr.Message)
			assert.NotContains(t, out.String(), "successful")
		})
	}
}

func TestTransactionHandler_DepositInvalidAmount(t *testing.T) {
	h, _, _ := newSeededHandler(t)
	var out bytes.Buffer

	appErr := h.Deposit(script(&out, "1", "-5"))

	require.NotNil(t, appErr)
	assert.Equal(t, common.KindInvalidAmount, appErr.Kind)
	assert.Equal(t, "Invalid deposit amount.", appErr.Message)
}

func TestTransactionHandler_RejectionAndSaveFailure(t *testing.T) {
	h, repo, fsys := newSeededHandler(t)
	repo.FS = afero.NewReadOnlyFs(fsys)
	var out bytes.Buffer

	appErr := h.Withdraw(script(&out, "1", "1000"))

	require.NotNil(t, appErr)
	assert.Equal(t, common.KindSaveError, appErr.Kind)
	assert.ErrorIs(t, appErr, service.ErrSaveFailed)
	assert.ErrorIs(t, appErr, model.ErrInsufficientBalance)
	assert.Contains(t, out.String(), "Invalid withdrawal amount or insufficient balance.\n")
}

func TestTransactionHandler_SuccessThenSaveFailure(t *testing.T) {
	h, repo, fsys := newSeededHandler(t)
	repo.FS = afero.NewReadOnlyFs(fsys)
	var out bytes.Buffer

	appErr := h.Deposit(script(&out, "2", "10"))

	require.NotNil(t, appErr)
	assert.Equal(t, common.KindSaveError, appErr.Kind)
	assert.Contains(t, out.String(), "Deposit successful. New balance: 10\n")
}

func TestTransactionHandler_DepositHugeExponent(t *testing.T) {
	h, _, fsys := newSeededHandler(t)
	var out bytes.Buffer

	appErr := h.Deposit(script(&out, "1", "1e50000000"))

	require.NotNil(t, appErr)
	assert.Equal(t, common.KindInvalidInput, appErr.Kind)
	assert.Equal(t, "Amount out of range.", appErr.Message)
	data, err := afero.ReadFile(fsys, testDataFile)
	require.NoError(t, err)
	assert.Equal(t, seedAccounts, string(data))
}

package common

import (
	"fmt"
	"io"

	"go-bank-console/logger"

	"github.com/sirupsen/logrus"
)

// ErrorKind classifies what went wrong for the operator.
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "invalid_input"
	KindInvalidAmount   ErrorKind = "invalid_amount"
	KindLimitExceeded   ErrorKind = "limit_exceeded"
	KindAccountNotFound ErrorKind = "account_not_found"
	KindLoadError       ErrorKind = "load_error"
	KindSaveError       ErrorKind = "save_error"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Send reports the error to the operator. The internal cause, if any, is
// appended to the message and logged.
func (e *AppError) Send(w io.Writer) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"kind":           e.Kind,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
		fmt.Fprintf(w, "%s: %v\n", e.Message, e.Err)
		return
	}
	fmt.Fprintln(w, e.Message)
}

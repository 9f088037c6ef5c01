package handler

import (
	"errors"
	"io"

	"go-bank-console/common"
)

// HandlerFunc runs one menu action.
type HandlerFunc func(c *Console) *common.AppError

// ErrorHandlingMiddleware reports a handler's AppError on the console. Only
// exhausted input is passed back, as io.EOF, so the menu loop can stop.
func ErrorHandlingMiddleware(next HandlerFunc) func(c *Console) error {
	return func(c *Console) error {
		if err := next(c); err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}
			err.Send(c.Out)
		}
		return nil
	}
}

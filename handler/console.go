package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-bank-console/common"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
)

// Console reads operator answers line by line and writes prompts and results to Out.
type Console struct {
	scanner *bufio.Scanner
	Out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(in), Out: out}
}

// ReadLine prints label and returns the next input line. It returns io.EOF
// once the input is exhausted.
func (c *Console) ReadLine(label string) (string, error) {
	fmt.Fprint(c.Out, label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// ReadInt reads one line and parses it as an integer.
func (c *Console) ReadInt(label string) (int, *common.AppError) {
	line, err := c.ReadLine(label)
	if err != nil {
		return 0, inputClosed(err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, common.NewAppError(common.KindInvalidInput, "Invalid number.", nil)
	}
	return n, nil
}

// ReadDecimal reads one line and parses it as a bounded decimal amount.
func (c *Console) ReadDecimal(label string) (decimal.Decimal, *common.AppError) {
	line, err := c.ReadLine(label)
	if err != nil {
		return decimal.Zero, inputClosed(err)
	}
	amount, err := model.ParseAmount(strings.TrimSpace(line), model.MaxInputDigits)
	if err != nil {
		if errors.Is(err, model.ErrAmountOutOfRange) {
			return decimal.Zero, common.NewAppError(common.KindInvalidInput, "Amount out of range.", nil)
		}
		return decimal.Zero, common.NewAppError(common.KindInvalidInput, "Invalid amount.", nil)
	}
	return amount, nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.Out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.Out, format, a...)
}

func inputClosed(err error) *common.AppError {
	return common.NewAppError(common.KindInvalidInput, "Input closed", err)
}

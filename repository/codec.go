// file: repository/codec.go

package repository

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-bank-console/model"
)

// ErrMalformedRecord is returned when a line of the accounts file cannot be decoded.
var ErrMalformedRecord = errors.New("malformed account record")

// recordFields is the field count of "<Kind> <number> <holder> <balance> <extra>".
const recordFields = 5

// Encode renders accounts as one record per line, in the given order.
func Encode(accounts []model.Account) string {
	var sb strings.Builder
	for _, acc := range accounts {
		sb.WriteString(acc.Serialize())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Decode parses the accounts file. Blank lines are skipped; the first bad
// record aborts the whole decode.
func Decode(raw string) ([]model.Account, error) {
	var accounts []model.Account
	seen := make(map[int]bool)

	scanner := bufio.NewScanner(strings.NewReader(raw))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		acc, err := decodeRecord(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		if seen[acc.Number()] {
			return nil, fmt.Errorf("%w: line %d: duplicate account number %d", ErrMalformedRecord, line, acc.Number())
		}
		seen[acc.Number()] = true
		accounts = append(accounts, acc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not scan accounts: %w", err)
	}
	return accounts, nil
}

func decodeRecord(text string) (model.Account, error) {
	fields := strings.Fields(text)
	if len(fields) != recordFields {
		return nil, fmt.Errorf("expected %d fields, got %d", recordFields, len(fields))
	}

	kind := model.Kind(fields[0])
	if kind != model.KindSavings && kind != model.KindCurrent {
		return nil, fmt.Errorf("unknown account kind %q", fields[0])
	}

	number, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid account number %q", fields[1])
	}
	if number <= 0 {
		return nil, fmt.Errorf("account number must be positive, got %d", number)
	}

	balance, err := model.ParseAmount(fields[3], model.MaxStoredDigits)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %v", fields[3], err)
	}
	extra, err := model.ParseAmount(fields[4], model.MaxStoredDigits)
	if err != nil {
		return nil, fmt.Errorf("invalid %s field %q: %v", kind, fields[4], err)
	}

	return model.NewAccount(kind, number, fields[2], balance, extra)
}

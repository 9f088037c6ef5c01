// cmd/main.go
package main

import (
	"go-bank-console/app"
)

// Console banking: create Savings and Current accounts, deposit, withdraw and
// display details. Accounts are kept in a flat text file rewritten after every change.
//
// Usage:
//
//	bank [--config dir] [--data-file path] [--log-level level] [--log-format text|json]
//
// Every flag can also be set through config.yml or BANK_* environment variables.
func main() {
	app.Run()
}

package router

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"go-bank-console/handler"
	"go-bank-console/logger"
)

type route struct {
	label  string
	handle func(c *handler.Console) error
}

// Router dispatches numbered menu choices to handlers. The choice after the
// last route exits.
type Router struct {
	routes []route
}

func NewRouter(accountHandler *handler.AccountHandler, transactionHandler *handler.TransactionHandler) *Router {
	return &Router{routes: []route{
		{"Create Savings Account", handler.ErrorHandlingMiddleware(accountHandler.CreateSavingsAccount)},
		{"Create Current Account", handler.ErrorHandlingMiddleware(accountHandler.CreateCurrentAccount)},
		{"Deposit", handler.ErrorHandlingMiddleware(transactionHandler.Deposit)},
		{"Withdraw", handler.ErrorHandlingMiddleware(transactionHandler.Withdraw)},
		{"Display Account Details", handler.ErrorHandlingMiddleware(accountHandler.DisplayAccountDetails)},
	}}
}

// Run shows the menu until the operator exits or input runs out.
func (r *Router) Run(c *handler.Console) error {
	exit := len(r.routes) + 1
	for {
		r.printMenu(c)
		line, err := c.ReadLine("Enter your choice: ")
		if err != nil {
			return closeInput(c, err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err == nil && choice == exit:
			c.Println("Exiting...")
			return nil
		case err != nil || choice < 1 || choice > exit:
			c.Println("Invalid choice. Please try again.")
		default:
			if err := r.routes[choice-1].handle(c); err != nil {
				return closeInput(c, err)
			}
		}
	}
}

func (r *Router) printMenu(c *handler.Console) {
	c.Println("\nBanking System Menu")
	for i, rt := range r.routes {
		c.Printf("%d. %s\n", i+1, rt.label)
	}
	c.Printf("%d. Exit\n", len(r.routes)+1)
}

// closeInput ends the session. Exhausted input is a normal exit.
func closeInput(c *handler.Console, err error) error {
	c.Println()
	if errors.Is(err, io.EOF) {
		logger.Log.Debug("Input closed, leaving menu")
		return nil
	}
	return err
}

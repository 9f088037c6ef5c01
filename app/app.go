// File: app/app.go
package app

import (
	"errors"
	"io"
	"os"

	"go-bank-console/common"
	"go-bank-console/config"
	"go-bank-console/handler"
	"go-bank-console/logger"
	"go-bank-console/repository"
	"go-bank-console/router"
	"go-bank-console/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// App holds the wired layers of one banking session.
type App struct {
	Config  *config.Config
	Service *service.BankingService
	Router  *router.Router
}

// New wires repository, service, handlers and router over fsys.
func New(cfg *config.Config, fsys afero.Fs) *App {
	accountRepo := repository.NewAccountRepository(fsys, cfg.Storage.DataFile, cfg.Storage.AtomicWrite)
	bankingService := service.NewBankingService(accountRepo)
	bankingService.SaveOnRejection = cfg.Storage.SaveOnRejection

	accountHandler := handler.NewAccountHandler(bankingService)
	transactionHandler := handler.NewTransactionHandler(bankingService)

	return &App{
		Config:  cfg,
		Service: bankingService,
		Router:  router.NewRouter(accountHandler, transactionHandler),
	}
}

// Start loads the data file and runs the menu on in and out. A load failure
// is reported and the session continues with no accounts.
func (a *App) Start(in io.Reader, out io.Writer) error {
	if err := a.Service.Load(); err != nil {
		common.NewAppError(common.KindLoadError, "Error loading accounts", err).Send(out)
	}
	return a.Router.Run(handler.NewConsole(in, out))
}

func Run() {
	logger.Init()

	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Log.Fatalf("Error parsing flags: %v", err)
	}
	configPath, _ := flags.GetString("config")

	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Log.Fatalf("Error configuring logger: %v", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"data_file":         cfg.Storage.DataFile,
		"atomic_write":      cfg.Storage.AtomicWrite,
		"save_on_rejection": cfg.Storage.SaveOnRejection,
	}).Info("Configuration loaded successfully")

	if err := New(cfg, afero.NewOsFs()).Start(os.Stdin, os.Stdout); err != nil {
		logger.Log.Fatalf("Error reading input: %v", err)
	}
	logger.Log.Info("Session ended")
}

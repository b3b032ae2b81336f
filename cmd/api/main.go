package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"pocketfin/internal/config"
	"pocketfin/internal/currency"
	"pocketfin/internal/export"
	pocketfinHttp "pocketfin/internal/http"
	currencyHandler "pocketfin/internal/http/currency"
	exportHandler "pocketfin/internal/http/exportcsv"
	importHandler "pocketfin/internal/http/importcsv"
	txHandler "pocketfin/internal/http/ledger"
	statsHandler "pocketfin/internal/http/stats"
	"pocketfin/internal/importer"
	"pocketfin/internal/ledger"
	ledgerStore "pocketfin/internal/ledger/store"
	"pocketfin/internal/suggest"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		ledgerService = ledger.NewService(
			ledgerStore.New(cfg.Ledger.File),
			cfg.Ledger.DefaultCurrency,
			slog.Default(),
		)
		importService  = importer.NewService()
		suggestService = suggest.NewService(ledgerService)
		exportService  = export.NewService(ledgerService)
		formatter      = currency.NewFormatter()
	)

	var (
		transactionH = txHandler.NewHandler(ledgerService)
		statsH       = statsHandler.NewHandler(ledgerService, formatter)
		currencyH    = currencyHandler.NewHandler(ledgerService)
		importH      = importHandler.NewHandler(importService, ledgerService, suggestService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := pocketfinHttp.New(transactionH, statsH, currencyH, importH, exportH, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "data_file", cfg.Ledger.File)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

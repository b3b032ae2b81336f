package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	currencyHandler "pocketfin/internal/http/currency"
	"pocketfin/internal/http/exportcsv"
	"pocketfin/internal/http/importcsv"
	ledgerHandler "pocketfin/internal/http/ledger"
	statsHandler "pocketfin/internal/http/stats"
)

func New(
	transactionsV1 *ledgerHandler.Handler,
	statsV1 *statsHandler.Handler,
	currenciesV1 *currencyHandler.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exportcsv.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/stats", statsV1.Routes)

		r.Route("/currencies", currenciesV1.Routes)

		r.Get("/categories", transactionsV1.Categories)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/nodemart/backend/internal/http/catalog"
	"github.com/nodemart/backend/internal/http/employee"
	"github.com/nodemart/backend/internal/http/ledger"
	"github.com/nodemart/backend/internal/http/shift"
)

func New(
	log *zap.Logger,
	allowedOrigins []string,
	productsV1 *catalog.Handler,
	employeesV1 *employee.Handler,
	transactionsV1 *ledger.Handler,
	shiftsV1 *shift.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(RequestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", productsV1.Routes)
		r.Route("/employees", employeesV1.Routes)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			shiftsV1.Routes(r)
		})
	})

	return router
}

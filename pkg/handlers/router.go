// Package handlers wires the per-area HTTP handlers onto a chi router.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umar/yourkhata/pkg/handlers/batwa"
	"github.com/umar/yourkhata/pkg/handlers/customers"
	"github.com/umar/yourkhata/pkg/handlers/profiles"
	"github.com/umar/yourkhata/pkg/handlers/reportsapi"
	"github.com/umar/yourkhata/pkg/handlers/transactions"
	"github.com/umar/yourkhata/pkg/handlers/users"
	"github.com/umar/yourkhata/pkg/middleware"
	"github.com/umar/yourkhata/pkg/reminders"
	"github.com/umar/yourkhata/pkg/storage"
)

// NewRouter builds the full HTTP surface on top of the given store.
func NewRouter(store storage.ApiStore, notifier reminders.Notifier, logger *slog.Logger) chi.Router {
	profilesHandler := profiles.NewProfilesHandler(store)
	customersHandler := customers.NewCustomersHandler(store)
	transactionsHandler := transactions.NewTransactionsHandler(store, notifier, logger)
	batwaHandler := batwa.NewBatwaHandler(store)
	reportsHandler := reportsapi.NewReportsHandler(store)
	usersHandler := users.NewUsersHandler(store)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Route("/profiles", func(r chi.Router) {
		r.Get("/", profilesHandler.ListProfiles)
		r.Post("/", profilesHandler.CreateProfile)
		r.Get("/active", profilesHandler.GetActiveProfile)
		r.Put("/active", profilesHandler.ActivateProfile)
		r.Patch("/{profileId}", func(w http.ResponseWriter, r *http.Request) {
			profilesHandler.UpdateProfile(w, r, chi.URLParam(r, "profileId"))
		})
		r.Delete("/{profileId}", func(w http.ResponseWriter, r *http.Request) {
			profilesHandler.DeleteProfile(w, r, chi.URLParam(r, "profileId"))
		})
	})

	router.Route("/customers", func(r chi.Router) {
		r.Get("/", customersHandler.ListCustomers)
		r.Post("/", customersHandler.CreateCustomer)
		r.Get("/{customerId}", func(w http.ResponseWriter, r *http.Request) {
			customersHandler.GetCustomerById(w, r, chi.URLParam(r, "customerId"))
		})
		r.Patch("/{customerId}", func(w http.ResponseWriter, r *http.Request) {
			customersHandler.UpdateCustomer(w, r, chi.URLParam(r, "customerId"))
		})
		r.Delete("/{customerId}", func(w http.ResponseWriter, r *http.Request) {
			customersHandler.DeleteCustomer(w, r, chi.URLParam(r, "customerId"))
		})
		r.Get("/{customerId}/transactions", func(w http.ResponseWriter, r *http.Request) {
			transactionsHandler.ListCustomerTransactions(w, r, chi.URLParam(r, "customerId"))
		})
	})

	router.Route("/transactions", func(r chi.Router) {
		r.Get("/", transactionsHandler.ListProfileTransactions)
		r.Post("/", transactionsHandler.CreateTransaction)
		r.Delete("/{transactionId}", func(w http.ResponseWriter, r *http.Request) {
			transactionsHandler.DeleteTransaction(w, r, chi.URLParam(r, "transactionId"))
		})
	})

	router.Route("/batwa", func(r chi.Router) {
		r.Get("/", batwaHandler.ListBatwaTransactions)
		r.Post("/", batwaHandler.CreateBatwaTransaction)
		r.Get("/summary", batwaHandler.GetBatwaSummary)
		r.Delete("/{batwaId}", func(w http.ResponseWriter, r *http.Request) {
			batwaHandler.DeleteBatwaTransaction(w, r, chi.URLParam(r, "batwaId"))
		})
	})

	router.Get("/reports/customers/{customerId}", func(w http.ResponseWriter, r *http.Request) {
		reportsHandler.GetCustomerReport(w, r, chi.URLParam(r, "customerId"))
	})

	router.Get("/user", usersHandler.GetUserProfile)
	router.Put("/user", usersHandler.SaveUserProfile)

	router.Handle("/metrics", promhttp.Handler())

	return router
}

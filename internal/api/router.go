// Package api exposes the society ledger over a local JSON API.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"societyledger/internal/document"
	"societyledger/internal/service"
)

// NewRouter creates a chi router with all routes mounted.
func NewRouter(svc *service.Service, society document.Society, noticeDues float64) chi.Router {
	h := NewHandler(svc, society, noticeDues)

	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/members", h.ListMembers)
		r.Post("/members", h.CreateMember)
		r.Get("/members/{id}/notice", h.Notice)

		r.Get("/payments", h.ListPayments)
		r.Post("/payments", h.CreatePayment)
		r.Get("/payments/{id}/receipt", h.Receipt)

		r.Get("/expenses", h.ListExpenses)
		r.Post("/expenses", h.CreateExpense)

		r.Get("/summary", h.Summary)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

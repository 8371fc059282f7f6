package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"societyledger/internal/apperr"
	"societyledger/internal/document"
	"societyledger/internal/service"
)

// Handler holds API route handlers.
type Handler struct {
	svc        *service.Service
	society    document.Society
	noticeDues float64
}

// NewHandler creates a new Handler.
func NewHandler(svc *service.Service, society document.Society, noticeDues float64) *Handler {
	return &Handler{svc: svc, society: society, noticeDues: noticeDues}
}

// writeRecordErr maps a Record* failure onto an HTTP response: validation
// failures become 400 with per-field messages, duplicate ids become 409, and
// anything else is an internal error.
func writeRecordErr(w http.ResponseWriter, action string, err error) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		fields := make(map[string]string, len(verr))
		for field, ferr := range verr {
			fields[field] = ferr.Error()
		}
		writeJSON(w, http.StatusBadRequest, validationBody(fields))
		return
	}
	if errors.Is(err, apperr.ErrDuplicateKey) {
		writeJSON(w, http.StatusConflict, errorBody("record already exists"))
		return
	}
	slog.Error(action+" failed", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
}

// ListMembers handles GET /api/members.
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members := h.svc.Members()
	writeJSON(w, http.StatusOK, map[string]any{
		"members": members,
		"total":   len(members),
	})
}

// CreateMember handles POST /api/members.
func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var input service.NewMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	member, err := h.svc.RecordMember(r.Context(), input)
	if err != nil {
		writeRecordErr(w, "create member", err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

// ListPayments handles GET /api/payments with an optional member_id filter.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	if memberID := r.URL.Query().Get("member_id"); memberID != "" {
		payments, err := h.svc.PaymentsForMember(r.Context(), memberID)
		if err != nil {
			slog.Error("list payments by member failed",
				slog.String("member_id", memberID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"payments": payments,
			"total":    len(payments),
		})
		return
	}

	payments := h.svc.Payments()
	writeJSON(w, http.StatusOK, map[string]any{
		"payments": payments,
		"total":    len(payments),
	})
}

// CreatePayment handles POST /api/payments.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var input service.NewPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	payment, err := h.svc.RecordPayment(r.Context(), input)
	if err != nil {
		writeRecordErr(w, "create payment", err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

// ListExpenses handles GET /api/expenses.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses := h.svc.Expenses()
	writeJSON(w, http.StatusOK, map[string]any{
		"expenses": expenses,
		"total":    len(expenses),
	})
}

// CreateExpense handles POST /api/expenses.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var input service.NewExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	expense, err := h.svc.RecordExpense(r.Context(), input)
	if err != nil {
		writeRecordErr(w, "create expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// Summary handles GET /api/summary.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Summary())
}

// Receipt handles GET /api/payments/{id}/receipt, returning the printable
// maintenance receipt as plain text.
func (h *Handler) Receipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	payment, err := h.svc.PaymentByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("payment not found"))
		} else {
			slog.Error("receipt lookup failed", slog.String("payment_id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	receipt, err := document.Receipt(payment, h.society)
	if err != nil {
		slog.Error("receipt render failed", slog.String("payment_id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeText(w, http.StatusOK, receipt)
}

// Notice handles GET /api/members/{id}/notice, returning the printable
// demand notice as plain text.
func (h *Handler) Notice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	member, err := h.svc.MemberByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("member not found"))
		} else {
			slog.Error("notice lookup failed", slog.String("member_id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	notice, err := document.DemandNotice(member, h.noticeDues, h.society)
	if err != nil {
		slog.Error("notice render failed", slog.String("member_id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeText(w, http.StatusOK, notice)
}

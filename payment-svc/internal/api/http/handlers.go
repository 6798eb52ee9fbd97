package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodordering/payment-svc/internal/domain"
	"foodordering/payment-svc/internal/service"
	"foodordering/pkg/auth"
	"foodordering/pkg/validate"

	"github.com/gorilla/mux"
)

type Handler struct {
	Payments service.PaymentServiceInterface
}

func NewHandler(paymentSvc service.PaymentServiceInterface) *Handler {
	return &Handler{Payments: paymentSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	protected := r.PathPrefix("/api/payments").Subrouter()
	protected.Use(auth.Middleware)

	protected.HandleFunc("", h.requireAdmin(h.listPayments)).Methods("GET")
	protected.HandleFunc("/process", h.processPayment).Methods("POST")
	protected.HandleFunc("/status/{transactionId}", h.paymentStatus).Methods("GET")
	protected.HandleFunc("/order/{orderId}", h.paymentByOrder).Methods("GET")
	protected.HandleFunc("/{transactionId}/refund", h.requireAdmin(h.refundPayment)).Methods("POST")

	protected.HandleFunc("/methods", h.addMethod).Methods("POST")
	protected.HandleFunc("/methods", h.listMethods).Methods("GET")
	protected.HandleFunc("/methods/{id}", h.removeMethod).Methods("DELETE")
	protected.HandleFunc("/methods/{id}/default", h.setDefaultMethod).Methods("PUT")
}

func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !auth.ClaimsFromContext(r.Context()).IsAdmin() {
			writeError(w, r, http.StatusForbidden, "Insufficient permissions")
			return
		}
		next(w, r)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "payment-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var req domain.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	payment, err := h.Payments.Process(r.Context(), claims.UserID, req)
	if err != nil {
		h.paymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) paymentStatus(w http.ResponseWriter, r *http.Request) {
	payment, ok := h.loadOwned(w, r, func() (*domain.Payment, error) {
		return h.Payments.ByTransaction(r.Context(), mux.Vars(r)["transactionId"])
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) paymentByOrder(w http.ResponseWriter, r *http.Request) {
	payment, ok := h.loadOwned(w, r, func() (*domain.Payment, error) {
		return h.Payments.ByOrder(r.Context(), mux.Vars(r)["orderId"])
	})
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	payments, err := h.Payments.List(r.Context(), limit)
	if err != nil {
		h.paymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) refundPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	payment, err := h.Payments.Refund(r.Context(), mux.Vars(r)["transactionId"], req)
	if err != nil {
		h.paymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) addMethod(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var req domain.PaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	method, err := h.Payments.AddMethod(r.Context(), claims.UserID, req)
	if err != nil {
		h.paymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, method)
}

func (h *Handler) listMethods(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	methods, err := h.Payments.Methods(r.Context(), claims.UserID)
	if err != nil {
		h.paymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, methods)
}

func (h *Handler) removeMethod(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	methodID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid payment method id")
		return
	}

	if err := h.Payments.RemoveMethod(r.Context(), claims.UserID, methodID); err != nil {
		h.paymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment method removed"})
}

func (h *Handler) setDefaultMethod(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	methodID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid payment method id")
		return
	}

	if err := h.Payments.SetDefaultMethod(r.Context(), claims.UserID, methodID); err != nil {
		h.paymentError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Default payment method updated"})
}

// loadOwned fetches a payment and enforces that the caller owns it or is
// an admin.
func (h *Handler) loadOwned(w http.ResponseWriter, r *http.Request, fetch func() (*domain.Payment, error)) (*domain.Payment, bool) {
	claims := auth.ClaimsFromContext(r.Context())
	payment, err := fetch()
	if err != nil {
		h.paymentError(w, r, err)
		return nil, false
	}
	if payment.UserID != claims.UserID && !claims.IsAdmin() {
		writeError(w, r, http.StatusForbidden, "Insufficient permissions")
		return nil, false
	}
	return payment, true
}

func (h *Handler) paymentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		writeError(w, r, http.StatusNotFound, "Payment not found")
	case errors.Is(err, service.ErrMethodNotFound):
		writeError(w, r, http.StatusNotFound, "Payment method not found")
	case errors.Is(err, service.ErrDuplicatePayment),
		errors.Is(err, service.ErrNotRefundable),
		errors.Is(err, service.ErrRefundTooLarge):
		writeError(w, r, http.StatusConflict, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := map[string]string{"error": message}
	if requestID := r.Header.Get("X-Request-ID"); requestID != "" && status >= 500 {
		body["request_id"] = requestID
	}
	writeJSON(w, status, body)
}

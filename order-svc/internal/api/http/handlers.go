package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodordering/order-svc/internal/domain"
	"foodordering/order-svc/internal/service"
	"foodordering/pkg/auth"
	"foodordering/pkg/validate"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orderSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	protected := r.PathPrefix("/api/orders").Subrouter()
	protected.Use(auth.Middleware)

	protected.HandleFunc("", h.createOrder).Methods("POST")
	protected.HandleFunc("", h.requireAdmin(h.listOrders)).Methods("GET")
	protected.HandleFunc("/my-orders", h.myOrders).Methods("GET")
	protected.HandleFunc("/recent", h.requireAdmin(h.recentOrders)).Methods("GET")
	protected.HandleFunc("/stats", h.requireAdmin(h.orderStats)).Methods("GET")
	protected.HandleFunc("/user/{userId}", h.ordersByUser).Methods("GET")
	protected.HandleFunc("/restaurant/{restaurantId}", h.requireAdmin(h.ordersByRestaurant)).Methods("GET")
	protected.HandleFunc("/status/{status}", h.requireAdmin(h.ordersByStatus)).Methods("GET")
	protected.HandleFunc("/{id}", h.getOrder).Methods("GET")
	protected.HandleFunc("/{id}/history", h.orderHistory).Methods("GET")
	protected.HandleFunc("/{id}/qrcode", h.orderQR).Methods("GET")
	protected.HandleFunc("/{id}/status", h.requireAdmin(h.updateStatus)).Methods("PUT")
	protected.HandleFunc("/{id}/cancel", h.cancelOrder).Methods("POST")
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
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	order, err := h.Orders.Create(r.Context(), claims.UserID, req)
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.All(r.Context())
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	orders, err := h.Orders.ByUser(r.Context(), claims.UserID)
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) ordersByUser(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	userID := mux.Vars(r)["userId"]
	if userID != claims.UserID && !claims.IsAdmin() {
		writeError(w, r, http.StatusForbidden, "Insufficient permissions")
		return
	}

	orders, err := h.Orders.ByUser(r.Context(), userID)
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) ordersByRestaurant(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ByRestaurant(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) ordersByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(mux.Vars(r)["status"])
	if !status.Valid() {
		writeError(w, r, http.StatusBadRequest, "Unknown order status")
		return
	}

	orders, err := h.Orders.ByStatus(r.Context(), status)
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) recentOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	orders, err := h.Orders.Recent(r.Context(), limit)
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Orders.Stats(r.Context())
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Status == "" {
		writeError(w, r, http.StatusBadRequest, "Field 'status' is required")
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status, claims.UserID)
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	order, err := h.Orders.Cancel(r.Context(), mux.Vars(r)["id"], claims.UserID)
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderHistory(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	events, err := h.Orders.History(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) orderQR(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	png, err := h.Orders.TrackingQR(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.orderError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// loadOwned fetches the order and enforces that the caller owns it or
// is an admin. It writes the error response itself on failure.
func (h *Handler) loadOwned(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	claims := auth.ClaimsFromContext(r.Context())
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.orderError(w, r, err)
		return nil, false
	}
	if order.UserID != claims.UserID && !claims.IsAdmin() {
		writeError(w, r, http.StatusForbidden, "Insufficient permissions")
		return nil, false
	}
	return order, true
}

func (h *Handler) orderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, r, http.StatusNotFound, "Order not found")
	case errors.Is(err, service.ErrUnknownStatus):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrNotCancellable),
		errors.Is(err, service.ErrStatusConflict):
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

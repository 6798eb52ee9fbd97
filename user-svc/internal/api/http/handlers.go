package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodordering/pkg/auth"
	"foodordering/pkg/validate"
	"foodordering/user-svc/internal/domain"
	"foodordering/user-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Users service.UserServiceInterface
}

func NewHandler(userSvc service.UserServiceInterface) *Handler {
	return &Handler{Users: userSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/users/register", h.register).Methods("POST")
	r.HandleFunc("/api/users/login", h.login).Methods("POST")

	protected := r.PathPrefix("/api/users").Subrouter()
	protected.Use(auth.Middleware)
	protected.HandleFunc("/profile", h.getProfile).Methods("GET")
	protected.HandleFunc("/profile", h.updateProfile).Methods("PUT")
	protected.HandleFunc("/profile", h.deactivate).Methods("DELETE")
	protected.HandleFunc("/logout", h.logout).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "user-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	resp, err := h.Users.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, r, http.StatusConflict, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	resp, err := h.Users.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	user, err := h.Users.Profile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, r, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(update); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	user, err := h.Users.UpdateProfile(r.Context(), claims.UserID, update)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, r, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if err := h.Users.Deactivate(r.Context(), claims.UserID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, r, http.StatusNotFound, "User not found")
			return
		}
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deactivated successfully"})
}

// logout is stateless, the token simply expires. Kept for API symmetry.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
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

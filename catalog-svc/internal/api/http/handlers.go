package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodordering/catalog-svc/internal/domain"
	"foodordering/catalog-svc/internal/service"
	"foodordering/pkg/auth"
	"foodordering/pkg/validate"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
}

func NewHandler(restaurants service.RestaurantServiceInterface, menu service.MenuServiceInterface) *Handler {
	return &Handler{Restaurants: restaurants, Menu: menu}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.requireAdmin(h.createRestaurant)).Methods("POST")
	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/search", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/cuisine/{cuisineType}", h.restaurantsByCuisine).Methods("GET")
	r.HandleFunc("/api/restaurants/city/{city}", h.restaurantsByCity).Methods("GET")
	r.HandleFunc("/api/restaurants/rating/{minRating}", h.restaurantsByMinRating).Methods("GET")
	r.HandleFunc("/api/restaurants/cuisines", h.restaurantsByCuisines).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.requireAdmin(h.updateRestaurant)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.requireAdmin(h.deleteRestaurant)).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items", h.requireAdmin(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/categories", h.menuCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/count", h.menuCount).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/top-items", h.topItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{itemId}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{itemId}", h.requireAdmin(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{itemId}", h.requireAdmin(h.deleteMenuItem)).Methods("DELETE")
}

// requireAdmin guards catalog mutations. Reads stay public, writes need
// an ADMIN or RESTAURANT_OWNER token.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := auth.FromAuthorizationHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "Missing or invalid token")
			return
		}
		if !claims.IsAdmin() {
			writeError(w, r, http.StatusForbidden, "Insufficient permissions")
			return
		}
		next(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req domain.RestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	restaurant, err := h.Restaurants.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	sortBy := r.URL.Query().Get("sortBy")
	sortDir := r.URL.Query().Get("sortDir")

	result, err := h.Restaurants.List(r.Context(), page, size, sortBy, sortDir)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.restaurantError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req domain.RestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	restaurant, err := h.Restaurants.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.restaurantError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.Restaurants.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.restaurantError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Restaurant deleted successfully"})
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "Query parameter 'query' is required")
		return
	}

	restaurants, err := h.Restaurants.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) restaurantsByCuisine(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.ByCuisine(r.Context(), mux.Vars(r)["cuisineType"])
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) restaurantsByCity(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.ByCity(r.Context(), mux.Vars(r)["city"])
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) restaurantsByMinRating(w http.ResponseWriter, r *http.Request) {
	minRating, err := strconv.ParseFloat(mux.Vars(r)["minRating"], 64)
	if err != nil || minRating < 0 || minRating > 5 {
		writeError(w, r, http.StatusBadRequest, "minRating must be a number between 0 and 5")
		return
	}

	restaurants, err := h.Restaurants.ByMinRating(r.Context(), minRating)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) restaurantsByCuisines(w http.ResponseWriter, r *http.Request) {
	var cuisines []string
	if err := json.NewDecoder(r.Body).Decode(&cuisines); err != nil || len(cuisines) == 0 {
		writeError(w, r, http.StatusBadRequest, "Request body must be a non-empty JSON array of cuisine types")
		return
	}

	restaurants, err := h.Restaurants.ByCuisines(r.Context(), cuisines)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req domain.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	item, err := h.Menu.Create(r.Context(), mux.Vars(r)["restaurantId"], req)
	if err != nil {
		h.menuError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := domain.MenuQuery{
		Category: params.Get("category"),
		Search:   params.Get("search"),
	}
	if v := params.Get("categories"); v != "" {
		query.Categories = strings.Split(v, ",")
	}
	if v := params.Get("minPrice"); v != "" {
		query.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := params.Get("maxPrice"); v != "" {
		query.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := params.Get("excludeAllergens"); v != "" {
		query.ExcludeAllergens = strings.Split(v, ",")
	}

	items, err := h.Menu.List(r.Context(), mux.Vars(r)["restaurantId"], query)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	item, err := h.Menu.Get(r.Context(), vars["restaurantId"], vars["itemId"])
	if err != nil {
		h.menuError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req domain.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validate.Messages(err))
		return
	}

	vars := mux.Vars(r)
	item, err := h.Menu.Update(r.Context(), vars["restaurantId"], vars["itemId"], req)
	if err != nil {
		h.menuError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Menu.Delete(r.Context(), vars["restaurantId"], vars["itemId"]); err != nil {
		h.menuError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Menu item deleted successfully"})
}

func (h *Handler) menuCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.Categories(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) menuCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Menu.Count(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *Handler) topItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.Menu.TopItems(r.Context(), mux.Vars(r)["restaurantId"], limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) restaurantError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrRestaurantNotFound) {
		writeError(w, r, http.StatusNotFound, "Restaurant not found")
		return
	}
	writeError(w, r, http.StatusInternalServerError, err.Error())
}

func (h *Handler) menuError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrMenuItemNotFound) {
		writeError(w, r, http.StatusNotFound, "Menu item not found")
		return
	}
	if errors.Is(err, service.ErrRestaurantNotFound) {
		writeError(w, r, http.StatusNotFound, "Restaurant not found")
		return
	}
	writeError(w, r, http.StatusInternalServerError, err.Error())
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

package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "foodordering/catalog-svc/internal/api/http"
	"foodordering/catalog-svc/internal/domain"
	"foodordering/catalog-svc/internal/mocks"
	"foodordering/catalog-svc/internal/service"
	"foodordering/pkg/auth"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCatalogRouter(restaurants *mocks.RestaurantRepository, items *mocks.MenuItemRepository) *mux.Router {
	restaurantService := service.NewRestaurantService(restaurants, nil)
	menuService := service.NewMenuService(restaurants, items, nil, nil)
	handler := httpapi.NewHandler(restaurantService, menuService)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestCreateRestaurantHandler_Authorization(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	body := `{"name":"Luigi's","address":{"street":"1 Main St","city":"Springfield"}}`

	tests := []struct {
		name      string
		token     func() string
		setupMock func(*mocks.RestaurantRepository)
		wantCode  int
	}{
		{
			name:      "missing token",
			token:     func() string { return "" },
			setupMock: func(m *mocks.RestaurantRepository) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name: "customer token is rejected",
			token: func() string {
				token, _ := auth.GenerateToken("user-1", "alice@example.com", auth.RoleCustomer)
				return token
			},
			setupMock: func(m *mocks.RestaurantRepository) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name: "admin token creates restaurant",
			token: func() string {
				token, _ := auth.GenerateToken("admin-1", "admin@example.com", auth.RoleAdmin)
				return token
			},
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Restaurant).ID = primitive.NewObjectID()
				}).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "restaurant owner token creates restaurant",
			token: func() string {
				token, _ := auth.GenerateToken("owner-1", "owner@example.com", auth.RoleRestaurantOwner)
				return token
			},
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Restaurant).ID = primitive.NewObjectID()
				}).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			restaurants := new(mocks.RestaurantRepository)
			testCase.setupMock(restaurants)

			req := httptest.NewRequest("POST", "/api/restaurants", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			if token := testCase.token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()

			newCatalogRouter(restaurants, new(mocks.MenuItemRepository)).ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			restaurants.AssertExpectations(t)
		})
	}
}

func TestCreateRestaurantHandler_Validation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, _ := auth.GenerateToken("admin-1", "admin@example.com", auth.RoleAdmin)

	// missing required address.city
	body := `{"name":"Luigi's","address":{"street":"1 Main St"}}`
	req := httptest.NewRequest("POST", "/api/restaurants", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	newCatalogRouter(new(mocks.RestaurantRepository), new(mocks.MenuItemRepository)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "City")
}

func TestGetRestaurantHandler(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		restaurants := new(mocks.RestaurantRepository)
		restaurants.On("FindByID", mock.Anything, id.Hex()).
			Return(&domain.Restaurant{ID: id, Name: "Luigi's", IsActive: true}, nil).Once()

		req := httptest.NewRequest("GET", "/api/restaurants/"+id.Hex(), nil)
		w := httptest.NewRecorder()

		newCatalogRouter(restaurants, new(mocks.MenuItemRepository)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Luigi's")
	})

	t.Run("not found", func(t *testing.T) {
		restaurants := new(mocks.RestaurantRepository)
		restaurants.On("FindByID", mock.Anything, id.Hex()).
			Return(nil, service.ErrRestaurantNotFound).Once()

		req := httptest.NewRequest("GET", "/api/restaurants/"+id.Hex(), nil)
		w := httptest.NewRecorder()

		newCatalogRouter(restaurants, new(mocks.MenuItemRepository)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRestaurantsByMinRatingHandler_BadInput(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/restaurants/rating/seven", nil)
	w := httptest.NewRecorder()

	newCatalogRouter(new(mocks.RestaurantRepository), new(mocks.MenuItemRepository)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMenuItemsHandler_Filters(t *testing.T) {
	restaurantID := primitive.NewObjectID().Hex()
	items := new(mocks.MenuItemRepository)
	items.On("FindByRestaurant", mock.Anything, restaurantID, domain.MenuQuery{
		Category:         "mains",
		MinPrice:         5,
		MaxPrice:         20,
		ExcludeAllergens: []string{"nuts", "gluten"},
	}).Return([]domain.MenuItem{{Name: "Pizza"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/"+restaurantID+"/menu-items?category=mains&minPrice=5&maxPrice=20&excludeAllergens=nuts,gluten", nil)
	w := httptest.NewRecorder()

	newCatalogRouter(new(mocks.RestaurantRepository), items).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pizza")
	items.AssertExpectations(t)
}

func TestMenuItemMutations_RequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	restaurantID := primitive.NewObjectID().Hex()
	itemID := primitive.NewObjectID().Hex()

	customerToken, _ := auth.GenerateToken("user-1", "alice@example.com", auth.RoleCustomer)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{"POST", "/api/restaurants/" + restaurantID + "/menu-items"},
		{"PUT", "/api/restaurants/" + restaurantID + "/menu-items/" + itemID},
		{"DELETE", "/api/restaurants/" + restaurantID + "/menu-items/" + itemID},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(`{}`))
			req.Header.Set("Authorization", "Bearer "+customerToken)
			w := httptest.NewRecorder()

			newCatalogRouter(new(mocks.RestaurantRepository), new(mocks.MenuItemRepository)).ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

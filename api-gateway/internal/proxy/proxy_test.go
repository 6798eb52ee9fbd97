package proxy

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubClient struct {
	lastRequest *http.Request
	response    *http.Response
	err         error
}

func (c *stubClient) Do(req *http.Request) (*http.Response, error) {
	c.lastRequest = req
	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func testRoutes() []Route {
	return []Route{
		{Prefix: "/api/users", Target: "http://user-svc:8084"},
		{Prefix: "/api/restaurants", Target: "http://catalog-svc:8081"},
		{Prefix: "/api/orders", Target: "http://order-svc:8082"},
		{Prefix: "/api/payments", Target: "http://payment-svc:8083"},
	}
}

func TestGateway_RoutesByPrefix(t *testing.T) {
	tests := []struct {
		path       string
		wantTarget string
	}{
		{"/api/users/login", "http://user-svc:8084"},
		{"/api/restaurants/123/menu-items", "http://catalog-svc:8081"},
		{"/api/orders/my-orders", "http://order-svc:8082"},
		{"/api/payments/process", "http://payment-svc:8083"},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			client := &stubClient{response: jsonResponse(http.StatusOK, `{"ok":true}`)}
			gateway := NewGateway(testRoutes(), client)

			req := httptest.NewRequest("GET", testCase.path, nil)
			w := httptest.NewRecorder()
			gateway.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, testCase.wantTarget+testCase.path, client.lastRequest.URL.String())
		})
	}
}

func TestGateway_InjectsRequestID(t *testing.T) {
	t.Run("generates one when absent", func(t *testing.T) {
		client := &stubClient{response: jsonResponse(http.StatusOK, `{}`)}
		gateway := NewGateway(testRoutes(), client)

		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		w := httptest.NewRecorder()
		gateway.ServeHTTP(w, req)

		forwarded := client.lastRequest.Header.Get("X-Request-ID")
		assert.NotEmpty(t, forwarded)
		assert.Equal(t, forwarded, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps an existing one", func(t *testing.T) {
		client := &stubClient{response: jsonResponse(http.StatusOK, `{}`)}
		gateway := NewGateway(testRoutes(), client)

		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		gateway.ServeHTTP(w, req)

		assert.Equal(t, "req-123", client.lastRequest.Header.Get("X-Request-ID"))
	})
}

func TestGateway_ForwardsHeadersAndQuery(t *testing.T) {
	client := &stubClient{response: jsonResponse(http.StatusOK, `{}`)}
	gateway := NewGateway(testRoutes(), client)

	req := httptest.NewRequest("GET", "/api/restaurants?page=2&size=10", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	assert.Equal(t, "Bearer some-token", client.lastRequest.Header.Get("Authorization"))
	assert.Equal(t, "page=2&size=10", client.lastRequest.URL.RawQuery)
}

func TestGateway_StripsHopByHopHeaders(t *testing.T) {
	t.Run("from the forwarded request", func(t *testing.T) {
		client := &stubClient{response: jsonResponse(http.StatusOK, `{}`)}
		gateway := NewGateway(testRoutes(), client)

		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		req.Header.Set("Connection", "close, X-Internal-Token")
		req.Header.Set("Keep-Alive", "timeout=5")
		req.Header.Set("X-Internal-Token", "hop-scoped")
		req.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()
		gateway.ServeHTTP(w, req)

		forwarded := client.lastRequest.Header
		assert.Empty(t, forwarded.Get("Connection"))
		assert.Empty(t, forwarded.Get("Keep-Alive"))
		assert.Empty(t, forwarded.Get("X-Internal-Token"))
		assert.Equal(t, "Bearer some-token", forwarded.Get("Authorization"))
	})

	t.Run("from the upstream response", func(t *testing.T) {
		response := jsonResponse(http.StatusOK, `{}`)
		response.Header.Set("Connection", "keep-alive")
		response.Header.Set("Transfer-Encoding", "chunked")
		client := &stubClient{response: response}
		gateway := NewGateway(testRoutes(), client)

		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		w := httptest.NewRecorder()
		gateway.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Connection"))
		assert.Empty(t, w.Header().Get("Transfer-Encoding"))
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})
}

func TestGateway_UpstreamFailure(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	gateway := NewGateway(testRoutes(), client)

	req := httptest.NewRequest("GET", "/api/orders/my-orders", nil)
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "request_id")
}

func TestGateway_UnknownPath(t *testing.T) {
	client := &stubClient{}
	gateway := NewGateway(testRoutes(), client)

	req := httptest.NewRequest("GET", "/api/unknown/thing", nil)
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Nil(t, client.lastRequest)
}

func TestGateway_PassesUpstreamStatus(t *testing.T) {
	client := &stubClient{response: jsonResponse(http.StatusConflict, `{"error":"duplicate"}`)}
	gateway := NewGateway(testRoutes(), client)

	req := httptest.NewRequest("POST", "/api/payments/process", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate")
}

func TestGateway_Health(t *testing.T) {
	gateway := NewGateway(testRoutes(), &stubClient{})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	gateway.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

package proxy

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HTTPClient is the subset of http.Client the gateway needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Route maps a path prefix to an upstream base URL.
type Route struct {
	Prefix string
	Target string
}

// Gateway forwards API requests to the service owning the path prefix.
// Every forwarded request carries an X-Request-ID so 5xx responses can
// be correlated across services.
type Gateway struct {
	routes []Route
	client HTTPClient
}

func NewGateway(routes []Route, client HTTPClient) *Gateway {
	return &Gateway{routes: routes, client: client}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/health" {
		g.health(w, r)
		return
	}

	route, ok := g.match(r.URL.Path)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No route for path"})
		return
	}

	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}

	upstreamURL := route.Target + r.URL.Path
	if r.URL.RawQuery != "" {
		upstreamURL += "?" + r.URL.RawQuery
	}

	upstream, err := http.NewRequestWithContext(r.Context(), r.Method, upstreamURL, r.Body)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to build upstream request", "request_id": requestID})
		return
	}
	upstream.Header = r.Header.Clone()
	stripHopByHop(upstream.Header)
	upstream.Header.Set("X-Request-ID", requestID)

	resp, err := g.client.Do(upstream)
	if err != nil {
		log.Printf("[api-gateway] %s %s -> %s failed: %v", r.Method, r.URL.Path, route.Target, err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Upstream service unavailable", "request_id": requestID})
		return
	}
	defer resp.Body.Close()

	stripHopByHop(resp.Header)
	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

// hopHeaders are connection-level headers (RFC 7230 section 6.1) that
// must not travel through the proxy in either direction.
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func stripHopByHop(header http.Header) {
	for _, name := range strings.Split(header.Get("Connection"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			header.Del(name)
		}
	}
	for _, name := range hopHeaders {
		header.Del(name)
	}
}

func (g *Gateway) match(path string) (Route, bool) {
	for _, route := range g.routes {
		if strings.HasPrefix(path, route.Prefix) {
			return route, true
		}
	}
	return Route{}, false
}

func (g *Gateway) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

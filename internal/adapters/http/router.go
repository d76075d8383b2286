package http

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/exchangethb/exchange-data-service/internal/config"
)

// NewRouter creates the HTTP router with all routes under the configured path
// prefix. Pairs contain a slash (BTC/THB), so the GET routes capture them
// with a trailing wildcard.
func NewRouter(h *Handler, cfg config.ServerConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	prefix := cfg.PathPrefix

	// Health check (unauthenticated)
	mux.HandleFunc("GET /health", h.Health)

	// Sample data
	mux.HandleFunc("POST "+prefix+"/init", h.Init)

	// Prices
	mux.HandleFunc("POST "+prefix+"/exchange/prices", h.WritePrice)
	mux.HandleFunc("GET "+prefix+"/exchange/prices/{exchange}/{pair...}", h.ReadPrice)

	// Exchange profiles
	mux.HandleFunc("POST "+prefix+"/exchange/info", h.WriteExchangeInfo)
	mux.HandleFunc("GET "+prefix+"/exchange/info", h.ListExchangeInfo)
	mux.HandleFunc("GET "+prefix+"/exchange/info/{name}", h.ReadExchangeInfo)

	// History
	mux.HandleFunc("POST "+prefix+"/exchange/history", h.AppendHistory)
	mux.HandleFunc("GET "+prefix+"/exchange/history/{exchange}/{pair...}", h.ReadHistory)

	// Preferences
	mux.HandleFunc("POST "+prefix+"/user/preferences", h.WritePreferences)
	mux.HandleFunc("GET "+prefix+"/user/preferences/{sessionId}", h.ReadPreferences)

	// Metrics
	mux.HandleFunc("GET "+prefix+"/metrics", h.GetMetrics)

	// Apply middleware chain (order matters: outer -> inner)
	var handler http.Handler = mux
	handler = ContentTypeMiddleware(handler)
	handler = AuthMiddleware(cfg.AuthToken)(handler)
	handler = CORSMiddleware(handler)
	handler = RateLimitMiddleware(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst))(handler)
	handler = RecoveryMiddleware(logger)(handler)
	handler = LoggingMiddleware(logger)(handler)

	return handler
}

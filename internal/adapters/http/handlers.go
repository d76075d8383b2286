package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/exchangethb/exchange-data-service/internal/domain"
	"github.com/exchangethb/exchange-data-service/internal/ports"
)

// Handler contains all HTTP handlers
type Handler struct {
	priceSvc    ports.PriceService
	exchangeSvc ports.ExchangeService
	historySvc  ports.HistoryService
	prefSvc     ports.PreferenceService
	seedSvc     ports.SeedService
	metricsSvc  ports.MetricsService
	store       ports.KeyValueStore
	logger      *slog.Logger
}

// NewHandler creates a new handler
func NewHandler(
	priceSvc ports.PriceService,
	exchangeSvc ports.ExchangeService,
	historySvc ports.HistoryService,
	prefSvc ports.PreferenceService,
	seedSvc ports.SeedService,
	metricsSvc ports.MetricsService,
	store ports.KeyValueStore,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		priceSvc:    priceSvc,
		exchangeSvc: exchangeSvc,
		historySvc:  historySvc,
		prefSvc:     prefSvc,
		seedSvc:     seedSvc,
		metricsSvc:  metricsSvc,
		store:       store,
		logger:      logger.With("component", "http_handler"),
	}
}

// Health returns service health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	storageStatus := "healthy"

	if err := h.store.Ping(r.Context()); err != nil {
		storageStatus = "unhealthy"
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  status,
		"storage": storageStatus,
	})
}

// Init seeds the demonstration data set. Safe to call repeatedly.
func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	if err := h.seedSvc.Seed(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Sample data initialized",
	})
}

// WritePriceRequest represents the request body for storing a price quote
type WritePriceRequest struct {
	Exchange       string          `json:"exchange"`
	Pair           string          `json:"pair"`
	BuyPrice       decimal.Decimal `json:"buyPrice"`
	SellPrice      decimal.Decimal `json:"sellPrice"`
	Volume24h      decimal.Decimal `json:"volume24h"`
	PriceChange24h decimal.Decimal `json:"priceChange24h"`
}

// WritePrice stores a price quote with a derived spread
func (h *Handler) WritePrice(w http.ResponseWriter, r *http.Request) {
	var req WritePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.priceSvc.WritePrice(r.Context(),
		req.Exchange, req.Pair, req.BuyPrice, req.SellPrice, req.Volume24h, req.PriceChange24h)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    quote,
	})
}

// ReadPrice returns the current quote for an exchange and pair
func (h *Handler) ReadPrice(w http.ResponseWriter, r *http.Request) {
	exchange := r.PathValue("exchange")
	pair := r.PathValue("pair")
	if exchange == "" || pair == "" {
		respondError(w, http.StatusBadRequest, "exchange and pair are required")
		return
	}

	quote, err := h.priceSvc.ReadPrice(r.Context(), exchange, pair)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": quote})
}

// WriteExchangeInfo upserts an exchange profile
func (h *Handler) WriteExchangeInfo(w http.ResponseWriter, r *http.Request) {
	var profile domain.ExchangeProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.exchangeSvc.WriteInfo(r.Context(), &profile); err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ReadExchangeInfo returns a single exchange profile
func (h *Handler) ReadExchangeInfo(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "exchange name is required")
		return
	}

	profile, err := h.exchangeSvc.ReadInfo(r.Context(), name)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": profile})
}

// ListExchangeInfo returns all stored exchange profiles
func (h *Handler) ListExchangeInfo(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.exchangeSvc.ListInfo(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	if profiles == nil {
		profiles = []*domain.ExchangeProfile{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": profiles})
}

// AppendHistoryRequest represents the request body for appending a history point
type AppendHistoryRequest struct {
	Exchange  string          `json:"exchange"`
	Pair      string          `json:"pair"`
	Price     decimal.Decimal `json:"price"`
	Timestamp *time.Time      `json:"timestamp,omitempty"`
}

// AppendHistory appends a point to today's history bucket
func (h *Handler) AppendHistory(w http.ResponseWriter, r *http.Request) {
	var req AppendHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ts := time.Time{}
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	dataPoints, err := h.historySvc.AppendPoint(r.Context(), req.Exchange, req.Pair, req.Price, ts)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"dataPoints": dataPoints,
	})
}

// ReadHistory returns today's history bucket, empty if nothing was appended
func (h *Handler) ReadHistory(w http.ResponseWriter, r *http.Request) {
	exchange := r.PathValue("exchange")
	pair := r.PathValue("pair")
	if exchange == "" || pair == "" {
		respondError(w, http.StatusBadRequest, "exchange and pair are required")
		return
	}

	points, err := h.historySvc.ReadDay(r.Context(), exchange, pair)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	if points == nil {
		points = []domain.HistoryPoint{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": points})
}

// WritePreferencesRequest represents the request body for storing preferences
type WritePreferencesRequest struct {
	SessionID   string         `json:"sessionId"`
	Preferences map[string]any `json:"preferences"`
}

// WritePreferences upserts a session's preferences
func (h *Handler) WritePreferences(w http.ResponseWriter, r *http.Request) {
	var req WritePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.prefSvc.WritePreferences(r.Context(), req.SessionID, req.Preferences); err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ReadPreferences returns a session's preferences, empty object if absent
func (h *Handler) ReadPreferences(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		respondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	prefs, err := h.prefSvc.ReadPreferences(r.Context(), sessionID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	// Absent sessions return an empty object, never a 404.
	data := map[string]any{}
	for k, v := range prefs.Values {
		data[k] = v
	}
	if !prefs.UpdatedAt.IsZero() {
		data["updatedAt"] = prefs.UpdatedAt
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"data": data})
}

// GetMetrics returns operational metrics
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.metricsSvc.GetMetrics(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

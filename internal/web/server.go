package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/meme-pulse/dlmm-strategy-engine/internal/advisor"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/analyzer"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/config"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/datafetcher"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/logger"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/state"
	"github.com/meme-pulse/dlmm-strategy-engine/internal/types"
)

var webLogger = logger.GetForComponent("web_server")

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// WebServer handles HTTP requests for strategy suggestions
type WebServer struct {
	router         *mux.Router
	port           string
	advisor        *advisor.Client
	historyEnabled bool
}

// NewWebServer creates a new web server instance
func NewWebServer(port string, client *advisor.Client, historyEnabled bool) *WebServer {
	if port == "" {
		port = "8080"
	}

	server := &WebServer{
		router:         mux.NewRouter(),
		port:           port,
		advisor:        client,
		historyEnabled: historyEnabled,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (ws *WebServer) setupRoutes() {
	// Health endpoint (direct route)
	ws.router.HandleFunc("/health", ws.handleHealth).Methods("GET")

	// API endpoints
	api := ws.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", ws.handleHealth).Methods("GET")
	api.HandleFunc("/suggest", ws.handleSuggest).Methods("POST", "OPTIONS")
	api.HandleFunc("/suggestions", ws.handleGetSuggestions).Methods("GET")
	api.HandleFunc("/metrics/preview", ws.handleMetricsPreview).Methods("POST", "OPTIONS")

	// Add CORS middleware
	ws.router.Use(ws.corsMiddleware)
	ws.router.Use(ws.loggingMiddleware)
}

// Router exposes the configured handler, mainly for tests.
func (ws *WebServer) Router() http.Handler {
	return ws.router
}

// Start starts the web server
func (ws *WebServer) Start() error {
	webLogger.Info().Str("port", ws.port).Msg("Starting web server")

	server := &http.Server{
		Addr:         ":" + ws.port,
		Handler:      ws.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// decodeSuggestionRequest reads and validates the request body. The active
// bin id must be explicitly present: bin 0 is a legal id, so a zero value
// alone cannot distinguish "omitted" from "set".
func decodeSuggestionRequest(r *http.Request) (types.SuggestionRequest, error) {
	var req types.SuggestionRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return req, fmt.Errorf("failed to read request body: %w", err)
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}

	var probe struct {
		CurrentActiveID *int `json:"currentActiveId"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.CurrentActiveID == nil {
		return req, fmt.Errorf("currentActiveId is required")
	}

	if err := req.Validate(); err != nil {
		return req, err
	}
	return req, nil
}

// handleSuggest runs the full pipeline: enrichment, metrics, strategy.
func (ws *WebServer) handleSuggest(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSuggestionRequest(r)
	if err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	datafetcher.EnrichRequest(ctx, &req)

	metrics := analyzer.CalculateMetrics(req)

	start := time.Now()
	recommendation, source := ws.advisor.GenerateStrategy(ctx, req, metrics)
	generationMs := time.Since(start).Milliseconds()

	model := ""
	if source == advisor.SourceModel {
		model = config.AnthropicModel
	}

	record := state.SuggestionRecord{
		SuggestionID:   uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		TokenXAddress:  req.TokenX.Address,
		TokenYAddress:  req.TokenY.Address,
		PairSymbol:     fmt.Sprintf("%s/%s", req.TokenX.Symbol, req.TokenY.Symbol),
		RiskProfile:    req.RiskProfile,
		Source:         string(source),
		Model:          model,
		GenerationMs:   generationMs,
		Recommendation: recommendation,
		Metrics:        metrics,
	}

	// History is best effort; a storage failure never blocks the response.
	if ws.historyEnabled {
		if err := state.SaveSuggestion(record); err != nil {
			webLogger.Error().Err(err).Str("suggestionId", record.SuggestionID).Msg("Failed to persist suggestion")
		}
	}

	response := map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"recommendation":    recommendation,
			"calculatedMetrics": metrics,
			"metadata": map[string]interface{}{
				"suggestionId": record.SuggestionID,
				"source":       record.Source,
				"model":        record.Model,
				"generationMs": record.GenerationMs,
				"generatedAt":  record.CreatedAt.Format(time.RFC3339Nano),
			},
		},
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleMetricsPreview runs only the metrics stage, skipping the model.
func (ws *WebServer) handleMetricsPreview(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSuggestionRequest(r)
	if err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics := analyzer.CalculateMetrics(req)

	response := map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"calculatedMetrics": metrics,
		},
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleGetSuggestions returns recent suggestion history
func (ws *WebServer) handleGetSuggestions(w http.ResponseWriter, r *http.Request) {
	if !ws.historyEnabled {
		ws.writeErrorResponse(w, http.StatusServiceUnavailable, "Suggestion history is not enabled")
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 && parsedLimit <= 100 {
			limit = parsedLimit
		}
	}

	suggestions, err := state.GetRecentSuggestions(limit)
	if err != nil {
		webLogger.Error().Err(err).Msg("Failed to get recent suggestions")
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve suggestions")
		return
	}

	response := map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"suggestions": suggestions,
			"count":       len(suggestions),
			"limit":       limit,
		},
	}

	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleHealth returns server health status
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	dbHealthy := true
	if ws.historyEnabled {
		if err := state.TestDBConnection(r.Context()); err != nil {
			dbHealthy = false
		}
	}

	overallStatus := "OK"
	statusCode := http.StatusOK
	if !dbHealthy {
		overallStatus = "DEGRADED"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"system": map[string]interface{}{
			"version":          runtime.Version(),
			"goroutines_count": runtime.NumGoroutine(),
			"alloc_bytes":      memStats.Alloc,
			"sys_bytes":        memStats.Sys,
			"gc_cycles":        memStats.NumGC,
		},
		"component": map[string]interface{}{
			"name":    "dlmm-strategy-engine",
			"version": "1.0.0",
		},
		"engine_status": map[string]interface{}{
			"model_configured": config.AnthropicAPIKey != "",
			"history_enabled":  ws.historyEnabled,
			"database_healthy": dbHealthy,
		},
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// writeJSONResponse writes a JSON response
func (ws *WebServer) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		webLogger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (ws *WebServer) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := map[string]interface{}{
		"success":   false,
		"error":     message,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// corsMiddleware adds CORS headers
func (ws *WebServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (ws *WebServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)

		webLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("HTTP request")
	})
}

// responseWriterWrapper captures the status code for logging
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriterWrapper) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

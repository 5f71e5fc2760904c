package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/api/handlers"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: routing is configured in this function and nowhere else.
func NewRouter(
	roiHandler *handlers.ROIHandler,
	scenarioHandler *handlers.ScenarioHandler,
	live *LiveHandler,
	limiter *RateLimiter,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// Live what-if session; one long-lived request, not rate limited
	r.HandleFunc("/ws/roi", live.Handle).Methods("GET")

	// API v1
	api := r.PathPrefix("/api").Subrouter()

	// Calculation endpoints
	api.HandleFunc("/roi/defaults", roiHandler.GetDefaults).Methods("GET")
	api.HandleFunc("/roi/calculate", roiHandler.Calculate).Methods("POST")
	api.HandleFunc("/sensitivity", roiHandler.Sensitivity).Methods("POST")

	// Scenario endpoints
	api.HandleFunc("/scenarios", scenarioHandler.Create).Methods("POST")
	api.HandleFunc("/scenarios", scenarioHandler.List).Methods("GET")
	api.HandleFunc("/scenarios/{id}", scenarioHandler.Get).Methods("GET")
	api.HandleFunc("/scenarios/{id}", scenarioHandler.Delete).Methods("DELETE")

	// Rate limiting covers the /api surface only
	api.Use(limiter.Middleware())

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler reports liveness.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "anyroad-roi-api",
	})
}

// loggingMiddleware records one debug line per request.
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware turns handler panics into 500 responses.
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(map[string]interface{}{
						"panic": rec,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

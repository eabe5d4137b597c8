package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"rrcapi/i18n"
)

// AllowedOrigins is the fixed set of browser origins allowed to call the API.
// Requests without an Origin header (same-origin, curl, server-to-server) are
// always let through.
var AllowedOrigins = []string{
	"https://redroofcomp.up.railway.app",
	"http://localhost:3000",
}

const (
	allowedMethods = "GET, POST, PATCH, DELETE, OPTIONS"
	allowedHeaders = "Accept, Accept-Language, Content-Type, Content-Length, Authorization"
)

func originAllowed(origin string) bool {
	return origin == "" || slices.Contains(AllowedOrigins, origin)
}

// CORSMiddleware rejects requests from origins outside AllowedOrigins before
// they reach any route, and answers preflight requests itself.
func CORSMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		w.Header().Add("Vary", "Origin")

		if !originAllowed(origin) {
			logger.Warn("cors rejected", "origin", origin, "method", r.Method, "path", r.URL.Path)
			lang := i18n.DetectLanguage(r)
			sendJSONResponse(w, http.StatusForbidden, errorResponse{Error: i18n.Tf(lang, "CORSBlocked", origin)})
			return
		}
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
				w.Header().Set("Access-Control-Allow-Headers", requested)
				w.Header().Add("Vary", "Access-Control-Request-Headers")
			} else {
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SecurityHeadersMiddleware sets headers suited to a JSON-only API. Responses
// always reflect the current store contents, so nothing may be cached.
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"origin", r.Header.Get("Origin"),
		)
	})
}

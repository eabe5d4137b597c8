package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"rrcapi/db"
	"rrcapi/i18n"
)

// maxBodyBytes bounds request bodies; every payload here is a handful of
// short strings.
const maxBodyBytes = 1 << 20

// API holds what every handler needs. The store is shared by all requests.
type API struct {
	store   *db.Store
	logger  *slog.Logger
	appName string
}

func New(store *db.Store, logger *slog.Logger, appName string) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{store: store, logger: logger, appName: appName}
}

func (a *API) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", a.StatusHandler)

	mux.HandleFunc("GET /api/members", a.ListMembersHandler)
	mux.HandleFunc("POST /api/members", a.UpsertMemberHandler)
	mux.HandleFunc("DELETE /api/members/{id}", a.DeleteMemberHandler)
	mux.HandleFunc("PATCH /api/members/{id}/admin", a.SetMemberAdminHandler)

	mux.HandleFunc("GET /api/weapons", a.ListWeaponsHandler)
	mux.HandleFunc("POST /api/weapons", a.CreateWeaponHandler)
	mux.HandleFunc("DELETE /api/weapons/{id}", a.DeleteWeaponHandler)

	mux.HandleFunc("GET /api/cars", a.ListCarsHandler)
	mux.HandleFunc("POST /api/cars", a.CreateCarHandler)
	mux.HandleFunc("DELETE /api/cars/{id}", a.DeleteCarHandler)

	mux.HandleFunc("GET /api/finance/summary", a.FinanceSummaryHandler)
	mux.HandleFunc("POST /api/finance/transactions", a.CreateTransactionHandler)
	mux.HandleFunc("GET /api/finance/transactions", a.ListTransactionsHandler)
}

// Handler returns the full request pipeline: logging, security headers and
// the CORS gate in front of the routes.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	a.RegisterHandlers(mux)
	return RequestLogger(a.logger, SecurityHeadersMiddleware(CORSMiddleware(a.logger, mux)))
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

var success = successResponse{Success: true}

func sendJSONResponse(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func (a *API) sendValidationError(w http.ResponseWriter, r *http.Request, err *ValidationError) {
	lang := i18n.DetectLanguage(r)
	a.logger.Debug("rejected request", "path", r.URL.Path, "field", err.Field, "error", err)
	sendJSONResponse(w, http.StatusBadRequest, errorResponse{Error: i18n.T(lang, err.Key)})
}

// sendStoreError reports a store failure with the driver's own message.
func (a *API) sendStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var qe *db.QueryError
	if errors.As(err, &qe) {
		a.logger.Error("store error", "method", r.Method, "path", r.URL.Path, "query", qe.Describe())
	} else {
		a.logger.Error("store error", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	sendJSONResponse(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

// decodeJSON reads exactly one JSON object into dst, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) *ValidationError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ValidationError{Key: "InvalidRequestBody", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &ValidationError{Key: "InvalidRequestBody", Err: errors.New("unexpected data after JSON body")}
	}
	return nil
}

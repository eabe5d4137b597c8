package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"rrcapi/db"
)

// Amount accepts a JSON number or a numeric string. Anything else, including
// values that overflow to infinity, leaves Valid false.
type Amount struct {
	Value float64
	Valid bool
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)

	var raw string
	switch {
	case len(data) > 0 && data[0] == '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		raw = string(data)
	default:
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	a.Value, a.Valid = v, true
	return nil
}

type transactionRequest struct {
	What   string `json:"what"`
	Amount Amount `json:"amount"`
}

func (t *transactionRequest) validate() *ValidationError {
	if t.What == "" {
		return &ValidationError{Field: "what", Key: "InvalidTransaction"}
	}
	if !t.Amount.Valid {
		return &ValidationError{Field: "amount", Key: "InvalidTransaction"}
	}
	if math.Abs(db.RoundCents(t.Amount.Value)) >= db.MaxAmount {
		return &ValidationError{Field: "amount", Key: "InvalidTransaction", Err: errors.New("amount out of range")}
	}
	return nil
}

func (a *API) FinanceSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := a.store.FinanceSummary(r.Context())
	if err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, summary)
}

func (a *API) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var input transactionRequest
	if verr := decodeJSON(w, r, &input); verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}
	if verr := input.validate(); verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}

	if err := a.store.CreateTransaction(r.Context(), input.What, input.Amount.Value); err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusCreated, success)
}

func (a *API) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	transactions, err := a.store.ListTransactions(r.Context())
	if err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, transactions)
}

package handlers

import (
	"net/http"

	"rrcapi/i18n"
)

type statusResponse struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
	Time   string `json:"time,omitempty"`
	Error  string `json:"error,omitempty"`
}

// StatusHandler always answers 200; store connectivity is reported in the body.
func (a *API) StatusHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	now, err := a.store.Now(r.Context())
	if err != nil {
		a.logger.Warn("database not reachable", "error", err)
		sendJSONResponse(w, http.StatusOK, statusResponse{
			Status: i18n.T(lang, "StatusDBNotConnected"),
			DB:     false,
			Error:  err.Error(),
		})
		return
	}
	sendJSONResponse(w, http.StatusOK, statusResponse{
		Status: i18n.Tf(lang, "StatusRunning", a.appName),
		DB:     true,
		Time:   now,
	})
}

package handlers

import (
	"net/http"
)

type weaponRequest struct {
	Name  string  `json:"name"`
	Type  *string `json:"type"`
	Owner *string `json:"owner"`
	Notes *string `json:"notes"`
}

func (a *API) ListWeaponsHandler(w http.ResponseWriter, r *http.Request) {
	weapons, err := a.store.ListWeapons(r.Context())
	if err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, weapons)
}

func (a *API) CreateWeaponHandler(w http.ResponseWriter, r *http.Request) {
	var input weaponRequest
	if verr := decodeJSON(w, r, &input); verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}
	if input.Name == "" {
		a.sendValidationError(w, r, &ValidationError{Field: "name", Key: "MissingWeaponName"})
		return
	}

	weapon, err := a.store.CreateWeapon(r.Context(), input.Name, input.Type, input.Owner, input.Notes)
	if err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusCreated, weapon)
}

func (a *API) DeleteWeaponHandler(w http.ResponseWriter, r *http.Request) {
	id, verr := parseID(r.PathValue("id"))
	if verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}
	if err := a.store.DeleteWeapon(r.Context(), id); err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, success)
}

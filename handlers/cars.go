package handlers

import (
	"net/http"

	"rrcapi/db"
)

type carRequest struct {
	Make  string  `json:"make"`
	Model *string `json:"model"`
	Plate *string `json:"plate"`
	Owner *string `json:"owner"`
	Notes *string `json:"notes"`
	Img   *string `json:"img"`
}

func (a *API) ListCarsHandler(w http.ResponseWriter, r *http.Request) {
	cars, err := a.store.ListCars(r.Context())
	if err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, cars)
}

func (a *API) CreateCarHandler(w http.ResponseWriter, r *http.Request) {
	var input carRequest
	if verr := decodeJSON(w, r, &input); verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}
	if input.Make == "" {
		a.sendValidationError(w, r, &ValidationError{Field: "make", Key: "MissingCarMake"})
		return
	}

	car, err := a.store.CreateCar(r.Context(), db.NewCar{
		Make:  input.Make,
		Model: input.Model,
		Plate: input.Plate,
		Owner: input.Owner,
		Notes: input.Notes,
		Img:   input.Img,
	})
	if err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusCreated, car)
}

func (a *API) DeleteCarHandler(w http.ResponseWriter, r *http.Request) {
	id, verr := parseID(r.PathValue("id"))
	if verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}
	if err := a.store.DeleteCar(r.Context(), id); err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, success)
}

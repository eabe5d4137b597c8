package handlers

import (
	"net/http"

	"rrcapi/models"
)

type memberRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Admin *bool  `json:"admin"`
}

func (m *memberRequest) validate() *ValidationError {
	if m.ID == "" {
		return &ValidationError{Field: "id", Key: "MissingMemberIDOrName"}
	}
	if m.Name == "" {
		return &ValidationError{Field: "name", Key: "MissingMemberIDOrName"}
	}
	return nil
}

type adminRequest struct {
	Admin *bool `json:"admin"`
}

func (a *API) ListMembersHandler(w http.ResponseWriter, r *http.Request) {
	members, err := a.store.ListMembers(r.Context())
	if err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, members)
}

// UpsertMemberHandler creates the member or overwrites name, role and admin
// of an existing one with the same id.
func (a *API) UpsertMemberHandler(w http.ResponseWriter, r *http.Request) {
	var input memberRequest
	if verr := decodeJSON(w, r, &input); verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}
	if verr := input.validate(); verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}

	role := input.Role
	if role == "" {
		role = models.DefaultMemberRole
	}
	admin := input.Admin != nil && *input.Admin

	if err := a.store.UpsertMember(r.Context(), input.ID, input.Name, role, admin); err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, success)
}

func (a *API) DeleteMemberHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteMember(r.Context(), r.PathValue("id")); err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, success)
}

func (a *API) SetMemberAdminHandler(w http.ResponseWriter, r *http.Request) {
	var input adminRequest
	if verr := decodeJSON(w, r, &input); verr != nil {
		a.sendValidationError(w, r, verr)
		return
	}
	if input.Admin == nil {
		a.sendValidationError(w, r, &ValidationError{Field: "admin", Key: "MissingAdminFlag"})
		return
	}

	if err := a.store.SetMemberAdmin(r.Context(), r.PathValue("id"), *input.Admin); err != nil {
		a.sendStoreError(w, r, err)
		return
	}
	sendJSONResponse(w, http.StatusOK, success)
}

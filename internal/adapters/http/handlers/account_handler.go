package handlers

import (
	"net/http"

	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
	"github.com/aladdinnow/forms-service/internal/platform/validate"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// AccountHandler handles the sign-up, sign-in, and supplier profile forms.
type AccountHandler struct {
	svc ports.AccountService
	v   *validate.Validator
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc ports.AccountService, v *validate.Validator) *AccountHandler {
	return &AccountHandler{svc: svc, v: v}
}

// CheckSignUp handles POST /api/v1/forms/signup/validate. The report is
// returned with 200 whether or not the form is valid.
func (h *AccountHandler) CheckSignUp(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[dto.SignUpRequest](w, r, h.v)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormReportResponse(h.svc.CheckSignUp(r.Context(), req.ToForm())))
}

// CheckSupplierProfile handles POST /api/v1/forms/supplier-profile/validate.
func (h *AccountHandler) CheckSupplierProfile(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[dto.SupplierProfileRequest](w, r, h.v)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormReportResponse(h.svc.CheckSupplierProfile(r.Context(), req.ToForm())))
}

// SignUp handles POST /api/v1/auth/signup.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[dto.SignUpRequest](w, r, h.v)
	if !ok {
		return
	}

	res, err := h.svc.SignUp(r.Context(), req.ToForm())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToSignUpResponse(res))
}

// SignIn handles POST /api/v1/auth/signin.
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[dto.SignInRequest](w, r, h.v)
	if !ok {
		return
	}

	res, err := h.svc.SignIn(r.Context(), req.ToForm())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSignInResponse(res))
}

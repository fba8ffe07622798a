package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aladdinnow/forms-service/internal/adapters/http/dto"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
	"github.com/aladdinnow/forms-service/internal/platform/validate"
	"github.com/aladdinnow/forms-service/internal/ports"
)

// ValidationHandler serves live field validation for the browser forms.
// Rule violations are 200 responses with valid=false; only malformed
// requests are errors.
type ValidationHandler struct {
	svc ports.ValidationService
	v   *validate.Validator
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(svc ports.ValidationService, v *validate.Validator) *ValidationHandler {
	return &ValidationHandler{svc: svc, v: v}
}

// ValidateField handles POST /api/v1/validate/{field}.
func (h *ValidationHandler) ValidateField(w http.ResponseWriter, r *http.Request) {
	field := chi.URLParam(r, "field")
	if err := h.v.Var("field", field, "required,"+validate.TagFieldKind); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	req, ok := decode[dto.ValidateFieldRequest](w, r, h.v)
	if !ok {
		return
	}

	res, err := h.svc.ValidateField(r.Context(), req.ToInput(validation.Kind(field)))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToValidationResultResponse(res))
}

// ValidateFields handles POST /api/v1/validate.
func (h *ValidationHandler) ValidateFields(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[dto.BatchValidateRequest](w, r, h.v)
	if !ok {
		return
	}

	outcomes, err := h.svc.ValidateFields(r.Context(), req.ToInputs())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBatchValidateResponse(outcomes))
}

// PasswordStrength handles POST /api/v1/password/strength.
func (h *ValidationHandler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[dto.PasswordStrengthRequest](w, r, h.v)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStrengthResponse(h.svc.PasswordStrength(r.Context(), req.Password)))
}

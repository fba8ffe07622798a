package account

import "github.com/aladdinnow/forms-service/internal/domain/validation"

// SupplierProfileForm is the supplier onboarding form.
type SupplierProfileForm struct {
	BusinessName string
	Phone        string
}

// Check runs the supplier profile rules.
func (f *SupplierProfileForm) Check() Report {
	return Report{
		{Field: FieldBusinessName, Result: validation.BusinessName(f.BusinessName)},
		{Field: FieldPhone, Result: validation.Phone(f.Phone)},
	}
}

// Validate returns a *FormError if any field fails, or nil.
func (f *SupplierProfileForm) Validate() error {
	return check("supplier_profile", f.Check())
}

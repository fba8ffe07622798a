package account_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aladdinnow/forms-service/internal/domain"
	"github.com/aladdinnow/forms-service/internal/domain/account"
	"github.com/aladdinnow/forms-service/internal/domain/validation"
)

func validSignUp() account.SignUpForm {
	return account.SignUpForm{
		Email:           "buyer@example.com",
		Password:        "Aa1!Bb2@Cc3#",
		ConfirmPassword: "Aa1!Bb2@Cc3#",
		Role:            account.RoleUser,
	}
}

func TestRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role      account.Role
		wantValid bool
		wantPath  string
	}{
		{account.RoleUser, true, "/buyer-dashboard"},
		{account.RoleAdmin, true, "/dashboard"},
		{"supplier", false, "/buyer-dashboard"},
		{"", false, "/buyer-dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			t.Parallel()
			if got := tt.role.IsValid(); got != tt.wantValid {
				t.Errorf("Role(%q).IsValid() = %v, want %v", tt.role, got, tt.wantValid)
			}
			if got := tt.role.DashboardPath(); got != tt.wantPath {
				t.Errorf("Role(%q).DashboardPath() = %q, want %q", tt.role, got, tt.wantPath)
			}
		})
	}
}

func TestSignUpForm_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		modify     func(*account.SignUpForm)
		wantErr    bool
		wantFields []string
	}{
		{
			name:   "valid form passes",
			modify: func(_ *account.SignUpForm) {},
		},
		{
			name:   "supplier role passes",
			modify: func(f *account.SignUpForm) { f.Role = account.RoleAdmin },
		},
		{
			name:       "empty email fails",
			modify:     func(f *account.SignUpForm) { f.Email = "" },
			wantErr:    true,
			wantFields: []string{account.FieldEmail},
		},
		{
			name: "weak password fails both password fields when confirmation differs",
			modify: func(f *account.SignUpForm) {
				f.Password = "abc"
			},
			wantErr:    true,
			wantFields: []string{account.FieldPassword, account.FieldConfirmPassword},
		},
		{
			name:       "missing confirmation fails",
			modify:     func(f *account.SignUpForm) { f.ConfirmPassword = "" },
			wantErr:    true,
			wantFields: []string{account.FieldConfirmPassword},
		},
		{
			name:       "unknown role fails",
			modify:     func(f *account.SignUpForm) { f.Role = "supplier" },
			wantErr:    true,
			wantFields: []string{account.FieldRole},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := validSignUp()
			tt.modify(&form)
			err := form.Validate()

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, domain.ErrValidation)

			var ferr *account.FormError
			require.True(t, errors.As(err, &ferr), "expected *account.FormError")
			assert.Equal(t, "signup", ferr.Form)

			var failed []string
			for _, f := range ferr.Report.Failed() {
				failed = append(failed, f.Field)
			}
			assert.Equal(t, tt.wantFields, failed)
		})
	}
}

func TestSignUpForm_NormalizeDefaultsToBuyer(t *testing.T) {
	t.Parallel()

	form := validSignUp()
	form.Role = ""
	form.Normalize()

	assert.Equal(t, account.RoleUser, form.Role)
	require.NoError(t, form.Validate())
}

func TestSignUpForm_CheckReportsEveryFieldInOrder(t *testing.T) {
	t.Parallel()

	form := account.SignUpForm{Password: "abc", ConfirmPassword: "abd", Role: account.RoleUser}
	report := form.Check()

	require.Len(t, report, 4)
	assert.Equal(t, account.FieldEmail, report[0].Field)
	assert.Equal(t, account.FieldPassword, report[1].Field)
	assert.Equal(t, account.FieldConfirmPassword, report[2].Field)
	assert.Equal(t, account.FieldRole, report[3].Field)

	assert.Equal(t, []string{validation.MsgEmailRequired}, report.Field(account.FieldEmail).Errors)
	assert.Len(t, report.Field(account.FieldPassword).Errors, 4)
	assert.Equal(t, []string{validation.MsgPasswordMismatch}, report.Field(account.FieldConfirmPassword).Errors)
	assert.True(t, report.Field(account.FieldRole).Valid)
}

func TestSignInForm_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		form     account.SignInForm
		wantErrs map[string][]string
	}{
		{
			name: "valid credentials pass",
			form: account.SignInForm{Email: "buyer@example.com", Password: "x"},
		},
		{
			name: "short password is accepted at sign-in",
			form: account.SignInForm{Email: "buyer@example.com", Password: "abc"},
		},
		{
			name: "missing password",
			form: account.SignInForm{Email: "buyer@example.com"},
			wantErrs: map[string][]string{
				account.FieldPassword: {validation.MsgPasswordRequired},
			},
		},
		{
			name: "bad email and missing password",
			form: account.SignInForm{Email: "nope"},
			wantErrs: map[string][]string{
				account.FieldEmail:    {validation.MsgEmailInvalid},
				account.FieldPassword: {validation.MsgPasswordRequired},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.form.Validate()
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}

			var ferr *account.FormError
			require.ErrorAs(t, err, &ferr)
			for field, want := range tt.wantErrs {
				assert.Equal(t, want, ferr.Report.Field(field).Errors, "field %s", field)
			}
		})
	}
}

func TestSupplierProfileForm_Validate(t *testing.T) {
	t.Parallel()

	ok := account.SupplierProfileForm{BusinessName: "Aladdin Traders", Phone: "+1 (555) 123-4567"}
	require.NoError(t, ok.Validate())

	bad := account.SupplierProfileForm{BusinessName: " ", Phone: "123"}
	err := bad.Validate()

	var ferr *account.FormError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "supplier_profile", ferr.Form)
	assert.Equal(t, []string{validation.MsgBusinessNameRequired}, ferr.Report.Field(account.FieldBusinessName).Errors)
	assert.Equal(t, []string{validation.MsgPhoneInvalid}, ferr.Report.Field(account.FieldPhone).Errors)
}

func TestFormError_Error(t *testing.T) {
	t.Parallel()

	form := account.SupplierProfileForm{BusinessName: "A", Phone: "+15551234567"}
	err := form.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "validation error: supplier_profile: "), msg)
	assert.Contains(t, msg, "business_name: "+validation.MsgBusinessNameTooShort)
	assert.NotContains(t, msg, "phone")
}

func TestReport_FieldMissingReadsValid(t *testing.T) {
	t.Parallel()

	var r account.Report
	got := r.Field("nope")
	assert.True(t, got.Valid)
	assert.Empty(t, got.Errors)
	assert.True(t, r.Valid())
}

package utils

import "testing"

type registerForm struct {
	Name                 string `validate:"nameok"`
	Email                string `validate:"required,emailok"`
	Password             string `validate:"required,pwdmin"`
	PasswordConfirmation string `validate:"required,eqfield=Password"`
}

func TestValidateStructAccepts(t *testing.T) {
	f := registerForm{
		Name:                 "Jane O'Neil",
		Email:                "jane@example.com",
		Password:             "hunter22",
		PasswordConfirmation: "hunter22",
	}
	if err := ValidateStruct(&f); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateStructRejects(t *testing.T) {
	cases := []struct {
		name string
		form registerForm
	}{
		{"missing email", registerForm{Password: "hunter22", PasswordConfirmation: "hunter22"}},
		{"bad email", registerForm{Email: "not-an-email", Password: "hunter22", PasswordConfirmation: "hunter22"}},
		{"short password", registerForm{Email: "a@b.co", Password: "abc", PasswordConfirmation: "abc"}},
		{"mismatched confirmation", registerForm{Email: "a@b.co", Password: "hunter22", PasswordConfirmation: "hunter23"}},
		{"name with symbols", registerForm{Name: "<script>", Email: "a@b.co", Password: "hunter22", PasswordConfirmation: "hunter22"}},
	}
	for _, c := range cases {
		if err := ValidateStruct(&c.form); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}

func TestValidateStructNonStruct(t *testing.T) {
	if err := ValidateStruct("not a struct"); err == nil {
		t.Fatal("expected error for non-struct input")
	}
}

package validation

import (
	"errors"
	"testing"
)

type sampleRequest struct {
	Name   string  `validate:"required"`
	Email  string  `validate:"required,email"`
	Amount float64 `validate:"gt=0"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(sampleRequest{Email: "not-an-email", Amount: -1})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := FormatValidationErrors(err)
	if fields["name"] != "Name is required" {
		t.Errorf("name message: %q", fields["name"])
	}
	if fields["email"] != "Invalid email format" {
		t.Errorf("email message: %q", fields["email"])
	}
	if fields["amount"] != "Amount must be greater than 0" {
		t.Errorf("amount message: %q", fields["amount"])
	}
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	fields := FormatValidationErrors(errors.New("something else"))
	if len(fields) != 0 {
		t.Errorf("expected empty map for non-validator errors, got %v", fields)
	}
}

func TestValidateStructPasses(t *testing.T) {
	v := NewValidator()
	if err := v.ValidateStruct(sampleRequest{Name: "Alex Doe", Email: "alex@example.com", Amount: 500}); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

package validator

import "testing"

type registerForm struct {
	Email   string `json:"email" validate:"required,email"`
	Contact string `json:"contact" validate:"required,len=10,numeric"`
	Gender  string `json:"gender" validate:"required,oneof=M F"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	form := registerForm{Email: "p@clinic.test", Contact: "9876543210", Gender: "F"}
	if err := cv.Validate(&form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	form := registerForm{Email: "not-an-email", Contact: "12345", Gender: "X"}

	err := cv.Validate(&form)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	fields := cv.FormatValidationErrors(err)
	if _, ok := fields["Email"]; !ok {
		t.Error("expected an Email error")
	}
	if _, ok := fields["Contact"]; !ok {
		t.Error("expected a Contact error")
	}
	if _, ok := fields["Gender"]; !ok {
		t.Error("expected a Gender error")
	}
}

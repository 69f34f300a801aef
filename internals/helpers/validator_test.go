package helper

import "testing"

func TestIsValidStudentNumber(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"12223MN-000540", true},
		{"00000AB-123456", true},
		{"1223MN-000540", false},   // 4 digit prefix
		{"12223mn-000540", false},  // huruf kecil
		{"12223MN000540", false},   // tanpa strip
		{"12223MN-00054", false},   // 5 digit suffix
		{"12223MN-0005400", false}, // 7 digit suffix
		{"", false},
		{" 12223MN-000540", false},
	}

	for _, c := range cases {
		if got := IsValidStudentNumber(c.in); got != c.valid {
			t.Errorf("IsValidStudentNumber(%q) = %v, want %v", c.in, got, c.valid)
		}
	}
}

func TestNewValidatorStudentNumberRule(t *testing.T) {
	v := NewValidator()

	type payload struct {
		Number string `validate:"required,student_number"`
	}

	if err := v.Struct(payload{Number: "12223MN-000540"}); err != nil {
		t.Errorf("valid number rejected: %v", err)
	}
	if err := v.Struct(payload{Number: "invalid"}); err == nil {
		t.Error("invalid number accepted")
	}
}

package helper

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Format nomor induk: DDDDDLL-DDDDDD (contoh: 12223MN-000540).
var studentNumberRe = regexp.MustCompile(`^\d{5}[A-Z]{2}-\d{6}$`)

func IsValidStudentNumber(s string) bool {
	return studentNumberRe.MatchString(s)
}

// NewValidator membuat instance validator dengan rule kustom student_number.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("student_number", func(fl validator.FieldLevel) bool {
		return IsValidStudentNumber(fl.Field().String())
	})
	return v
}

package service

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

// CodePattern is the shape of an athlete code. The athletes table carries the
// same expression as a CHECK constraint, so a stored code always passes.
const CodePattern = `^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`

var codeRe = regexp.MustCompile(CodePattern)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("athlete_code", func(fl validator.FieldLevel) bool {
			return IsValidCode(fl.Field().String())
		})
	})
}

// IsValidCode reports whether s can be an athlete code: up to 64 ASCII
// letters, digits, hyphens and underscores, starting with a letter or digit.
func IsValidCode(s string) bool {
	return codeRe.MatchString(s)
}

func validateStruct(s any) error {
	InitValidator()
	return validate.Struct(s)
}

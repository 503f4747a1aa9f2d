package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field length limits for contact submissions
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	MessageMinLen = 10
	MessageMaxLen = 2000
)

// phoneRegex accepts digits with the punctuation phone formats carry.
// Plausibility further requires 7-15 digits overall.
var phoneRegex = regexp.MustCompile(`^\+?[0-9().\-\s]{7,20}$`)

// Validator wraps go-playground validation for the contact pipeline.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom phone rule registered. A
// registration failure is a programmer error, so it panics.
func New() *Validator {
	v := validator.New()
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		panic("failed to register phone validation: " + err.Error())
	}
	return &Validator{validate: v}
}

// ValidEmail checks email syntax.
func (v *Validator) ValidEmail(email string) bool {
	return v.validate.Var(email, "required,email") == nil
}

// ValidPhone checks that a non-empty phone number is plausible.
func (v *Validator) ValidPhone(phone string) bool {
	return v.validate.Var(phone, "phone") == nil
}

// ValidNameLength checks the name is within [NameMinLen, NameMaxLen]
// characters, boundaries inclusive.
func (v *Validator) ValidNameLength(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= NameMinLen && n <= NameMaxLen
}

// ValidMessageLength checks the message is within
// [MessageMinLen, MessageMaxLen] characters, boundaries inclusive.
func (v *Validator) ValidMessageLength(message string) bool {
	n := utf8.RuneCountInString(message)
	return n >= MessageMinLen && n <= MessageMaxLen
}

func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if !phoneRegex.MatchString(phone) {
		return false
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

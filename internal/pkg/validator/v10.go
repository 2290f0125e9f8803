package validator

import (
	"encoding/json"
	"errors"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/shandysiswandi/secureauth/internal/pkg/strcase"
)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{2,31}$`)
	rePhone    = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,19}$`)
)

// Upper bound comes from bcrypt, which ignores input past 72 bytes.
const (
	passwordMin = 8
	passwordMax = 72
)

// ErrTranslatorNotFound is returned when the English translator cannot be loaded.
var ErrTranslatorNotFound = errors.New("validator: translator not found")

// V10ValidationError maps snake_case field names to messages.
type V10ValidationError map[string]string

func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+vs[k])
	}
	return strings.Join(parts, "; ")
}

func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// MarshalJSON keeps the map shape when the error is encoded directly.
func (vs V10ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(vs))
}

// V10Validator implements Validator with go-playground/validator.
//
// Custom tags:
//
//	password  8 to 72 bytes
//	username  3 to 32 of letters, digits, dot, dash, underscore; starts alphanumeric
//	phone     optional leading +, then digits, spaces or dashes
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	trans, ok := ut.New(enLang, enLang).GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	if err := registerRules(validate, trans); err != nil {
		return nil, err
	}

	return &V10Validator{validate: validate, translator: trans}, nil
}

func (v *V10Validator) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(V10ValidationError, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[strcase.ToLowerSnake(fe.Field())] = fe.Translate(v.translator)
	}
	return out
}

type rule struct {
	tag     string
	message string
	check   func(string) bool
}

var rules = []rule{
	{
		tag:     "password",
		message: "{0} must be 8-72 characters",
		check: func(s string) bool {
			return len(s) <= passwordMax && utf8.RuneCountInString(s) >= passwordMin
		},
	},
	{
		tag:     "username",
		message: "{0} must be 3-32 letters, digits, dots, dashes or underscores",
		check:   reUsername.MatchString,
	},
	{
		tag:     "phone",
		message: "{0} must be a valid phone number",
		check:   rePhone.MatchString,
	},
}

func registerRules(validate *validator.Validate, trans ut.Translator) error {
	for _, r := range rules {
		check := r.check
		err := validate.RegisterValidation(r.tag, func(fl validator.FieldLevel) bool {
			s, ok := fl.Field().Interface().(string)
			return ok && check(s)
		})
		if err != nil {
			return err
		}

		tag, msg := r.tag, r.message
		err = validate.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, msg, false) },
			func(t ut.Translator, fe validator.FieldError) string {
				s, err := t.T(fe.Tag(), fe.Field())
				if err != nil {
					return fe.Error()
				}
				return s
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

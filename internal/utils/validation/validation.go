package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/SscSPs/fx_desk/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var (
	innPattern      = regexp.MustCompile(`^\d{10}$|^\d{12}$`)
	ruPhonePattern  = regexp.MustCompile(`^(\+7|8)?[\s\-]?\(?[489][0-9]{2}\)?[\s\-]?[0-9]{3}[\s\-]?[0-9]{2}[\s\-]?[0-9]{2}$`)
	telegramPattern = regexp.MustCompile(`^@[a-zA-Z0-9_]{5,32}$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
)

// FieldError is a single failed rule, keyed by the field's JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is returned when a struct fails validation. It matches
// apperrors.ErrValidation with errors.Is.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("%s: %s", apperrors.ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e Errors) Unwrap() error { return apperrors.ErrValidation }

// Validator wraps go-playground/validator with the desk's custom rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the inn, ru_phone, telegram and
// positive_digits tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("inn", matches(innPattern))
	_ = v.RegisterValidation("ru_phone", matches(ruPhonePattern))
	_ = v.RegisterValidation("telegram", matches(telegramPattern))
	_ = v.RegisterValidation("positive_digits", positiveDigits)

	return &Validator{validate: v}
}

// Struct validates s and returns Errors describing every failed field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func positiveDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !digitsPattern.MatchString(s) {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n > 0
}

// message renders the user-facing text for a failed rule.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "min":
		return fmt.Sprintf("должно быть не менее %s символов", fe.Param())
	case "max":
		return fmt.Sprintf("не должно превышать %s символов", fe.Param())
	case "email":
		return "введите корректный email адрес"
	case "inn":
		return "ИНН должен содержать 10 или 12 цифр"
	case "ru_phone":
		return "введите корректный номер телефона"
	case "telegram":
		return "введите корректный Telegram (@username)"
	case "positive_digits":
		return "введите целое число больше 0"
	default:
		return fmt.Sprintf("не прошло проверку %q", fe.Tag())
	}
}

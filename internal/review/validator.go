package review

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Submission is one review attempt submitted by a user.
type Submission struct {
	UserID int64 `json:"user_id" validate:"gt=0"`
	WordID int64 `json:"word_id" validate:"gt=0"`
	// IsCorrect is a pointer so that a missing outcome can be told apart from false.
	IsCorrect *bool `json:"is_correct" validate:"required"`
	TimeSpent int   `json:"time_spent" validate:"gte=0"`
}

type submissionValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newSubmissionValidator() (*submissionValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &submissionValidator{validate: validate, translator: trans}, nil
}

func (v *submissionValidator) Validate(sub Submission) error {
	err := v.validate.Struct(sub)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	result := &ValidationError{}
	for _, e := range validationErrors {
		result.Violations = append(result.Violations, FieldViolation{
			Field:       e.Field(),
			Description: e.Translate(v.translator),
		})
	}
	return result
}
